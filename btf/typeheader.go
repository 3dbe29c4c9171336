package btf

// typeHeaderSize is the fixed size in bytes of the common prefix shared by
// every type entry: three u32 words.
const typeHeaderSize = 12

const (
	infoVlenLen       = 16
	infoVlenShift     = 0
	infoKindLen       = 5
	infoKindShift     = 24
	infoKindFlagLen   = 1
	infoKindFlagShift = 31
)

func bitmask(length uint32) uint32 {
	return (1 << length) - 1
}

func readBits(value, length, shift uint32) uint32 {
	return (value >> shift) & bitmask(length)
}

// typeHeader is the common 12-byte prefix of every type entry: a name
// offset into the string pool, a packed info word, and a field whose
// meaning (byte size or referenced type id) depends on kind.
type typeHeader struct {
	NameOff    uint32
	Info       uint32
	SizeOrType uint32
}

func (h typeHeader) vlen() uint32 {
	return readBits(h.Info, infoVlenLen, infoVlenShift)
}

func (h typeHeader) kind() Kind {
	return Kind(readBits(h.Info, infoKindLen, infoKindShift))
}

func (h typeHeader) kindFlag() bool {
	return readBits(h.Info, infoKindFlagLen, infoKindFlagShift) != 0
}

// readTypeHeader reads the three u32s making up the common prefix. It
// performs no validation: the legality of the decoded tuple is the
// responsibility of the per-kind decoder dispatched by the driver.
func readTypeHeader(r Reader) (typeHeader, error) {
	var h typeHeader
	var err error

	if h.NameOff, err = r.U32(); err != nil {
		return typeHeader{}, mapReaderError(err)
	}
	if h.Info, err = r.U32(); err != nil {
		return typeHeader{}, mapReaderError(err)
	}
	if h.SizeOrType, err = r.U32(); err != nil {
		return typeHeader{}, mapReaderError(err)
	}

	return h, nil
}
