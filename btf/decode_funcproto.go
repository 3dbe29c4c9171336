package btf

func decodeFuncProto(h *Header, th typeHeader, rng FileRange, r Reader) (Type, error) {
	if th.NameOff != 0 || th.kindFlag() {
		return nil, &Error{Code: InvalidFuncProtoBTFTypeEncoding, Range: &rng}
	}

	if bound := checkVlenBound(th.vlen(), rng); bound != nil {
		return nil, bound
	}

	params := make([]FuncParam, 0, th.vlen())
	for i := uint32(0); i < th.vlen(); i++ {
		nameOff, err := r.U32()
		if err != nil {
			return nil, mapReaderError(err)
		}

		var name string
		if nameOff != 0 {
			name, err = resolveString(r, h.stringSectionStart()+int64(nameOff))
			if err != nil {
				return nil, err
			}
		}

		paramType, err := r.U32()
		if err != nil {
			return nil, mapReaderError(err)
		}

		params = append(params, FuncParam{Name: name, Type: TypeID(paramType)})
	}

	variadic := false
	if n := len(params); n > 0 {
		last := params[n-1]
		if last.Name == "" && last.Type == 0 {
			params = params[:n-1]
			variadic = true
		}
	}

	return FuncProto{ReturnType: TypeID(th.SizeOrType), Params: params, Variadic: variadic}, nil
}
