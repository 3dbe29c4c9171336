package btf

const (
	intEncodingLen   = 4
	intEncodingShift = 24
	intOffsetLen     = 8
	intOffsetShift   = 16
	intBitsLen       = 8
	intBitsShift     = 0
)

var validIntSizes = map[uint32]bool{1: true, 2: true, 4: true, 8: true, 16: true}

func decodeInt(h *Header, th typeHeader, rng FileRange, r Reader) (Type, error) {
	if th.kindFlag() || th.vlen() != 0 {
		return nil, &Error{Code: InvalidIntBTFTypeEncoding, Range: &rng}
	}

	if !validIntSizes[th.SizeOrType] {
		return nil, &Error{Code: InvalidIntBTFTypeEncoding, Range: &rng}
	}

	if th.NameOff == 0 {
		return nil, &Error{Code: InvalidIntBTFTypeEncoding, Range: &rng}
	}

	name, err := resolveString(r, h.stringSectionStart()+int64(th.NameOff))
	if err != nil {
		return nil, err
	}

	raw, rerr := r.U32()
	if rerr != nil {
		return nil, mapReaderError(rerr)
	}

	encoding := readBits(raw, intEncodingLen, intEncodingShift)
	isSigned := encoding&1 != 0
	isChar := encoding&2 != 0
	isBool := encoding&4 != 0

	flagCount := 0
	for _, set := range [...]bool{isSigned, isChar, isBool} {
		if set {
			flagCount++
		}
	}
	if flagCount > 1 {
		return nil, &Error{Code: InvalidIntBTFTypeEncoding, Range: &rng}
	}

	bits := readBits(raw, intBitsLen, intBitsShift)
	if bits > 128 || bits > th.SizeOrType*8 {
		return nil, &Error{Code: InvalidIntBTFTypeEncoding, Range: &rng}
	}

	offset := readBits(raw, intOffsetLen, intOffsetShift)
	if offset+bits > th.SizeOrType*8 {
		return nil, &Error{Code: InvalidIntBTFTypeEncoding, Range: &rng}
	}

	return Int{
		Name:     name,
		Size:     th.SizeOrType,
		Bits:     uint8(bits),
		Offset:   uint8(offset),
		IsSigned: isSigned,
		IsChar:   isChar,
		IsBool:   isBool,
	}, nil
}
