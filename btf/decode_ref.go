package btf

// decode_ref.go holds the six kinds whose trailer is either empty or a
// single resolved name: Ptr, Const, Volatile, Typedef, Fwd, Func.

func decodePtr(h *Header, th typeHeader, rng FileRange, r Reader) (Type, error) {
	if th.NameOff != 0 || th.kindFlag() || th.vlen() != 0 {
		return nil, &Error{Code: InvalidPtrBTFTypeEncoding, Range: &rng}
	}
	return Ptr{ReferencedType: TypeID(th.SizeOrType)}, nil
}

func decodeConst(h *Header, th typeHeader, rng FileRange, r Reader) (Type, error) {
	if th.NameOff != 0 || th.kindFlag() || th.vlen() != 0 {
		return nil, &Error{Code: InvalidPtrBTFTypeEncoding, Range: &rng}
	}
	return Const{ReferencedType: TypeID(th.SizeOrType)}, nil
}

func decodeVolatile(h *Header, th typeHeader, rng FileRange, r Reader) (Type, error) {
	if th.NameOff != 0 || th.kindFlag() || th.vlen() != 0 {
		return nil, &Error{Code: InvalidVolatileBTFTypeEncoding, Range: &rng}
	}
	return Volatile{ReferencedType: TypeID(th.SizeOrType)}, nil
}

func decodeTypedef(h *Header, th typeHeader, rng FileRange, r Reader) (Type, error) {
	if th.NameOff == 0 || th.kindFlag() || th.vlen() != 0 {
		return nil, &Error{Code: InvalidTypedefBTFTypeEncoding, Range: &rng}
	}

	name, err := resolveString(r, h.stringSectionStart()+int64(th.NameOff))
	if err != nil {
		return nil, err
	}

	return Typedef{Name: name, ReferencedType: TypeID(th.SizeOrType)}, nil
}

func decodeFwd(h *Header, th typeHeader, rng FileRange, r Reader) (Type, error) {
	if th.NameOff == 0 || th.vlen() != 0 || th.SizeOrType != 0 {
		return nil, &Error{Code: InvalidFwdBTFTypeEncoding, Range: &rng}
	}

	name, err := resolveString(r, h.stringSectionStart()+int64(th.NameOff))
	if err != nil {
		return nil, err
	}

	fwdKind := FwdStruct
	if th.kindFlag() {
		fwdKind = FwdUnion
	}

	return Fwd{Name: name, Fwd: fwdKind}, nil
}

func decodeFunc(h *Header, th typeHeader, rng FileRange, r Reader) (Type, error) {
	if th.NameOff == 0 || th.kindFlag() || th.vlen() != 0 {
		return nil, &Error{Code: InvalidFuncBTFTypeEncoding, Range: &rng}
	}

	name, err := resolveString(r, h.stringSectionStart()+int64(th.NameOff))
	if err != nil {
		return nil, err
	}

	return Func{Name: name, ReferencedType: TypeID(th.SizeOrType)}, nil
}
