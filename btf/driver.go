package btf

// decodeTypeSection walks the type section from start to end, dispatching
// each entry's type header to its per-kind decoder and appending the
// result to the catalog in encounter order. It stops as soon as the
// cursor reaches or passes the declared end; it does not require landing
// exactly on end, so a blob whose last entry overruns the declared
// length is still accepted.
func decodeTypeSection(h *Header, r Reader) ([]Type, error) {
	start := h.typeSectionStart()
	end := h.typeSectionEnd()

	if err := r.Seek(start); err != nil {
		return nil, mapReaderError(err)
	}

	var types []Type
	for {
		current, err := r.Offset()
		if err != nil {
			return nil, mapReaderError(err)
		}
		if current >= end {
			break
		}

		th, err := readTypeHeader(r)
		if err != nil {
			return nil, err
		}

		kind := th.kind()
		decoder, ok := kindDecoders[kind]
		if !ok {
			return nil, &Error{
				Code:  InvalidBTFKind,
				Range: &FileRange{Offset: uint64(current), Size: uint64(typeHeaderSize)},
			}
		}

		rng := FileRange{
			Offset: uint64(current),
			Size:   uint64(typeHeaderSize) + trailerSize(kind, th.vlen()),
		}

		typ, err := decoder(h, th, rng, r)
		if err != nil {
			return nil, err
		}

		types = append(types, typ)
	}

	return types, nil
}

// trailerSize is the number of bytes a kind's trailer occupies beyond the
// common 12-byte header, used to size the file_range reported alongside a
// validation error. It is computed from the declared vlen, not from bytes
// actually consumed, so it is correct even when the decoder fails before
// reading the trailer.
func trailerSize(kind Kind, vlen uint32) uint64 {
	switch kind {
	case KindInt:
		return 4
	case KindArray:
		return 12
	case KindEnum:
		return uint64(vlen) * 8
	case KindFuncProto:
		return uint64(vlen) * 8
	case KindStruct, KindUnion:
		return uint64(vlen) * 12
	default:
		return 0
	}
}
