package btf

// Magic values, one per endianness. A reader tentatively configured
// little-endian sees littleEndianMagic as-is and bigEndianMagic
// byte-swapped (and vice versa for a genuinely big-endian blob).
const (
	littleEndianMagic uint16 = 0xeB9F
	bigEndianMagic    uint16 = 0x9FEB
)

// headerSize is the fixed, packed size of Header in bytes: two u32-aligned
// fields (Magic+Version+Flags, HdrLen) plus four u32 section fields.
const headerSize = 2 + 1 + 1 + 4 + 4 + 4 + 4 + 4

// Header is the fixed prefix of a BTF blob.
type Header struct {
	Magic   uint16
	Version uint8
	Flags   uint8
	HdrLen  uint32

	TypeOff uint32
	TypeLen uint32
	StrOff  uint32
	StrLen  uint32
}

// typeSectionStart is the absolute file offset of the first type header.
func (h *Header) typeSectionStart() int64 {
	return int64(h.HdrLen) + int64(h.TypeOff)
}

// typeSectionEnd is the absolute file offset one past the last declared
// byte of the type section.
func (h *Header) typeSectionEnd() int64 {
	return h.typeSectionStart() + int64(h.TypeLen)
}

// stringSectionStart is the absolute file offset of the string pool.
func (h *Header) stringSectionStart() int64 {
	return int64(h.HdrLen) + int64(h.StrOff)
}

// detectEndianness seeks to 0, tentatively commits little-endian byte
// order, and reads the 16-bit magic. It reports which endianness the blob
// is actually encoded in without committing it on the reader — the caller
// does that once detection succeeds.
func detectEndianness(r Reader) (littleEndian bool, err error) {
	if err := r.Seek(0); err != nil {
		return false, mapReaderError(err)
	}
	r.SetLittleEndian(true)

	magic, rerr := r.U16()
	if rerr != nil {
		return false, mapReaderError(rerr)
	}

	switch magic {
	case littleEndianMagic:
		return true, nil
	case bigEndianMagic:
		return false, nil
	default:
		return false, &Error{Code: InvalidMagicValue}
	}
}

// readHeader seeks to 0 and reads the eight header fields in declaration
// order. It performs no semantic validation beyond successful reads;
// section offsets are trusted and validated implicitly by the driver's
// termination check.
func readHeader(r Reader) (*Header, error) {
	if err := r.Seek(0); err != nil {
		return nil, mapReaderError(err)
	}

	var h Header
	var rerr error

	if h.Magic, rerr = r.U16(); rerr != nil {
		return nil, mapReaderError(rerr)
	}
	if h.Version, rerr = r.U8(); rerr != nil {
		return nil, mapReaderError(rerr)
	}
	if h.Flags, rerr = r.U8(); rerr != nil {
		return nil, mapReaderError(rerr)
	}
	if h.HdrLen, rerr = r.U32(); rerr != nil {
		return nil, mapReaderError(rerr)
	}
	if h.TypeOff, rerr = r.U32(); rerr != nil {
		return nil, mapReaderError(rerr)
	}
	if h.TypeLen, rerr = r.U32(); rerr != nil {
		return nil, mapReaderError(rerr)
	}
	if h.StrOff, rerr = r.U32(); rerr != nil {
		return nil, mapReaderError(rerr)
	}
	if h.StrLen, rerr = r.U32(); rerr != nil {
		return nil, mapReaderError(rerr)
	}

	return &h, nil
}
