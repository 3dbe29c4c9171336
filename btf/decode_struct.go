package btf

// decodeStructOrUnion implements the shared Struct/Union layout: an
// optional name, a total byte size carried in SizeOrType, and vlen
// (name_off, type, offset) members. kind_flag, common to both, selects
// whether each member's offset word is a plain byte offset or a packed
// (bit_size<<24 | bit_offset) bitfield pair.
func decodeStructOrUnion(h *Header, th typeHeader, rng FileRange, r Reader) (string, uint32, []Member, error) {
	if bound := checkVlenBound(th.vlen(), rng); bound != nil {
		return "", 0, nil, bound
	}

	var name string
	if th.NameOff != 0 {
		var err error
		name, err = resolveString(r, h.stringSectionStart()+int64(th.NameOff))
		if err != nil {
			return "", 0, nil, err
		}
	}

	members := make([]Member, 0, th.vlen())
	for i := uint32(0); i < th.vlen(); i++ {
		memberNameOff, err := r.U32()
		if err != nil {
			return "", 0, nil, mapReaderError(err)
		}

		var memberName string
		if memberNameOff != 0 {
			memberName, err = resolveString(r, h.stringSectionStart()+int64(memberNameOff))
			if err != nil {
				return "", 0, nil, err
			}
		}

		memberType, err := r.U32()
		if err != nil {
			return "", 0, nil, mapReaderError(err)
		}

		rawOffset, err := r.U32()
		if err != nil {
			return "", 0, nil, mapReaderError(err)
		}

		bitOffset, bitSize := rawOffset, uint32(0)
		if th.kindFlag() {
			bitOffset = rawOffset & 0xFFFFFF
			bitSize = rawOffset >> 24
		}

		members = append(members, Member{
			Name:      memberName,
			Type:      TypeID(memberType),
			BitOffset: bitOffset,
			BitSize:   bitSize,
		})
	}

	return name, th.SizeOrType, members, nil
}

func decodeStruct(h *Header, th typeHeader, rng FileRange, r Reader) (Type, error) {
	name, size, members, err := decodeStructOrUnion(h, th, rng, r)
	if err != nil {
		return nil, err
	}
	return Struct{Name: name, Size: size, Members: members}, nil
}

func decodeUnion(h *Header, th typeHeader, rng FileRange, r Reader) (Type, error) {
	name, size, members, err := decodeStructOrUnion(h, th, rng, r)
	if err != nil {
		return nil, err
	}
	return Union{Name: name, Size: size, Members: members}, nil
}
