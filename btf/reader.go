package btf

import (
	"encoding/binary"
	"io"
	"io/fs"
	"os"

	"github.com/pkg/errors"
)

// ReaderErrorCode classifies a failure raised by a Reader.
type ReaderErrorCode int

const (
	ReaderUnknown ReaderErrorCode = iota
	ReaderOOM
	ReaderFileNotFound
	ReaderIOError
)

// ReadOperation names the offset and size of the read that failed.
type ReadOperation struct {
	Offset uint64
	Size   uint64
}

// ReaderError is the single error variant a Reader may raise. The Error
// Mapper (errors.go) is the only place that inspects it.
type ReaderError struct {
	Code ReaderErrorCode
	Op   *ReadOperation
}

func (e *ReaderError) Error() string {
	switch e.Code {
	case ReaderFileNotFound:
		return "btf: file not found"
	case ReaderOOM:
		return "btf: allocation failure"
	case ReaderIOError:
		return "btf: io error"
	default:
		return "btf: unknown read error"
	}
}

// Reader is the byte-reader contract the decoder consumes. It is
// positioned, endianness-aware, and exposes a seek/tell interface;
// implementations raise a *ReaderError on EOF or I/O failure.
type Reader interface {
	// Seek repositions the reader to an absolute offset from the start
	// of the underlying data.
	Seek(offset int64) error
	// Offset reports the current absolute position.
	Offset() (int64, error)
	// SetLittleEndian commits the byte order used by subsequent
	// multi-byte reads.
	SetLittleEndian(littleEndian bool)

	U8() (uint8, error)
	U16() (uint16, error)
	U32() (uint32, error)
}

// fileReader is the concrete, file-backed Reader used by Load. It performs
// positioned reads directly against an *os.File; BTF headers and type
// entries are small and sparse enough that buffering would only add a
// layer of bookkeeping without a measurable win.
type fileReader struct {
	f  *os.File
	bo binary.ByteOrder
}

func openFileReader(path string) (*fileReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, mapOSError(errors.Wrap(err, "open btf file"), nil)
	}
	return &fileReader{f: f, bo: binary.LittleEndian}, nil
}

func (r *fileReader) Close() error {
	return r.f.Close()
}

func (r *fileReader) Seek(offset int64) error {
	if _, err := r.f.Seek(offset, io.SeekStart); err != nil {
		return mapOSError(errors.Wrap(err, "seek"), &ReadOperation{Offset: uint64(offset)})
	}
	return nil
}

func (r *fileReader) Offset() (int64, error) {
	off, err := r.f.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, mapOSError(errors.Wrap(err, "tell"), nil)
	}
	return off, nil
}

func (r *fileReader) SetLittleEndian(littleEndian bool) {
	if littleEndian {
		r.bo = binary.LittleEndian
	} else {
		r.bo = binary.BigEndian
	}
}

func (r *fileReader) readN(n int) ([]byte, error) {
	off, err := r.Offset()
	if err != nil {
		return nil, err
	}

	buf := make([]byte, n)
	if _, err := io.ReadFull(r.f, buf); err != nil {
		return nil, mapOSError(errors.Wrap(err, "read"), &ReadOperation{Offset: uint64(off), Size: uint64(n)})
	}
	return buf, nil
}

func (r *fileReader) U8() (uint8, error) {
	b, err := r.readN(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *fileReader) U16() (uint16, error) {
	b, err := r.readN(2)
	if err != nil {
		return 0, err
	}
	return r.bo.Uint16(b), nil
}

func (r *fileReader) U32() (uint32, error) {
	b, err := r.readN(4)
	if err != nil {
		return 0, err
	}
	return r.bo.Uint32(b), nil
}

// mapOSError classifies a wrapped os/io error into the Reader's own error
// taxonomy. It is the boundary between "library code wraps for humans"
// (github.com/pkg/errors) and "decoder code classifies for callers".
func mapOSError(err error, op *ReadOperation) *ReaderError {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return &ReaderError{Code: ReaderFileNotFound, Op: op}
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return &ReaderError{Code: ReaderIOError, Op: op}
	default:
		return &ReaderError{Code: ReaderIOError, Op: op}
	}
}
