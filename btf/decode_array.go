package btf

func decodeArray(h *Header, th typeHeader, rng FileRange, r Reader) (Type, error) {
	if th.NameOff != 0 || th.kindFlag() || th.vlen() != 0 || th.SizeOrType != 0 {
		return nil, &Error{Code: InvalidArrayBTFTypeEncoding, Range: &rng}
	}

	elemType, err := r.U32()
	if err != nil {
		return nil, mapReaderError(err)
	}
	indexType, err := r.U32()
	if err != nil {
		return nil, mapReaderError(err)
	}
	nelems, err := r.U32()
	if err != nil {
		return nil, mapReaderError(err)
	}

	return Array{
		ElementType: TypeID(elemType),
		IndexType:   TypeID(indexType),
		NumElements: nelems,
	}, nil
}
