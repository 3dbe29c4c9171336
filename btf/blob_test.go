package btf

import "encoding/binary"

// memReader is an in-memory Reader over a byte slice, used so decoder
// tests can exercise the seek/tell contract without touching a file.
type memReader struct {
	buf []byte
	pos int64
	bo  binary.ByteOrder
}

func newMemReader(buf []byte) *memReader {
	return &memReader{buf: buf, bo: binary.LittleEndian}
}

func (r *memReader) Seek(offset int64) error {
	if offset < 0 || offset > int64(len(r.buf)) {
		return &ReaderError{Code: ReaderIOError, Op: &ReadOperation{Offset: uint64(offset)}}
	}
	r.pos = offset
	return nil
}

func (r *memReader) Offset() (int64, error) {
	return r.pos, nil
}

func (r *memReader) SetLittleEndian(littleEndian bool) {
	if littleEndian {
		r.bo = binary.LittleEndian
	} else {
		r.bo = binary.BigEndian
	}
}

func (r *memReader) readN(n int) ([]byte, error) {
	if r.pos+int64(n) > int64(len(r.buf)) {
		return nil, &ReaderError{Code: ReaderIOError, Op: &ReadOperation{Offset: uint64(r.pos), Size: uint64(n)}}
	}
	b := r.buf[r.pos : r.pos+int64(n)]
	r.pos += int64(n)
	return b, nil
}

func (r *memReader) U8() (uint8, error) {
	b, err := r.readN(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *memReader) U16() (uint16, error) {
	b, err := r.readN(2)
	if err != nil {
		return 0, err
	}
	return r.bo.Uint16(b), nil
}

func (r *memReader) U32() (uint32, error) {
	b, err := r.readN(4)
	if err != nil {
		return 0, err
	}
	return r.bo.Uint32(b), nil
}

// infoWord packs a type header's info field the same way the kernel does:
// vlen in the low 16 bits, kind in bits 24-28, kind_flag in bit 31.
func infoWord(kind Kind, vlen uint32, kindFlag bool) uint32 {
	v := vlen & 0xFFFF
	v |= uint32(kind) << 24
	if kindFlag {
		v |= 1 << 31
	}
	return v
}

// blobBuilder assembles a minimal, well-formed BTF blob byte by byte: a
// 24-byte header, a type section, and a string pool with the mandatory
// empty string at offset 0. bo controls the wire byte order of every
// multi-byte field, including the magic value itself, so the same
// builder can produce either a little- or a big-endian blob.
type blobBuilder struct {
	types   []byte
	strings []byte
	bo      binary.ByteOrder
}

func newBlobBuilder() *blobBuilder {
	return &blobBuilder{strings: []byte{0}, bo: binary.LittleEndian}
}

func newBigEndianBlobBuilder() *blobBuilder {
	return &blobBuilder{strings: []byte{0}, bo: binary.BigEndian}
}

func (b *blobBuilder) packU16(v uint16) []byte {
	buf := make([]byte, 2)
	b.bo.PutUint16(buf, v)
	return buf
}

func (b *blobBuilder) packU32(v uint32) []byte {
	buf := make([]byte, 4)
	b.bo.PutUint32(buf, v)
	return buf
}

func (b *blobBuilder) addString(s string) uint32 {
	off := uint32(len(b.strings))
	b.strings = append(b.strings, []byte(s)...)
	b.strings = append(b.strings, 0)
	return off
}

func (b *blobBuilder) addTypeHeader(nameOff, info, sizeOrType uint32) {
	b.types = append(b.types, b.packU32(nameOff)...)
	b.types = append(b.types, b.packU32(info)...)
	b.types = append(b.types, b.packU32(sizeOrType)...)
}

func (b *blobBuilder) addU32(v uint32) {
	b.types = append(b.types, b.packU32(v)...)
}

func (b *blobBuilder) build() []byte {
	typeOff := uint32(0)
	typeLen := uint32(len(b.types))
	strOff := typeLen
	strLen := uint32(len(b.strings))

	buf := make([]byte, 0, headerSize+int(typeLen)+int(strLen))
	buf = append(buf, b.packU16(littleEndianMagic)...)
	buf = append(buf, 1, 0)
	buf = append(buf, b.packU32(headerSize)...)
	buf = append(buf, b.packU32(typeOff)...)
	buf = append(buf, b.packU32(typeLen)...)
	buf = append(buf, b.packU32(strOff)...)
	buf = append(buf, b.packU32(strLen)...)
	buf = append(buf, b.types...)
	buf = append(buf, b.strings...)
	return buf
}
