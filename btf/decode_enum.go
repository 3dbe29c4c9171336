package btf

var validEnumSizes = map[uint32]bool{1: true, 2: true, 4: true, 8: true}

func decodeEnum(h *Header, th typeHeader, rng FileRange, r Reader) (Type, error) {
	if th.kindFlag() || th.vlen() == 0 {
		return nil, &Error{Code: InvalidEnumBTFTypeEncoding, Range: &rng}
	}

	if !validEnumSizes[th.SizeOrType] {
		return nil, &Error{Code: InvalidEnumBTFTypeEncoding, Range: &rng}
	}

	if bound := checkVlenBound(th.vlen(), rng); bound != nil {
		return nil, bound
	}

	var name string
	if th.NameOff != 0 {
		var err error
		name, err = resolveString(r, h.stringSectionStart()+int64(th.NameOff))
		if err != nil {
			return nil, err
		}
	}

	values := make([]EnumValue, 0, th.vlen())
	for i := uint32(0); i < th.vlen(); i++ {
		nameOff, err := r.U32()
		if err != nil {
			return nil, mapReaderError(err)
		}
		if nameOff == 0 {
			return nil, &Error{Code: InvalidEnumBTFTypeEncoding, Range: &rng}
		}

		valueName, err := resolveString(r, h.stringSectionStart()+int64(nameOff))
		if err != nil {
			return nil, err
		}

		raw, err := r.U32()
		if err != nil {
			return nil, mapReaderError(err)
		}

		values = append(values, EnumValue{Name: valueName, Value: int32(raw)})
	}

	return Enum{Name: name, Size: uint8(th.SizeOrType), Values: values}, nil
}
