package btf

import "fmt"

// ErrorCode classifies every failure the decoder can produce.
type ErrorCode int

const (
	// Unknown covers reader failures that don't fit any other code.
	Unknown ErrorCode = iota
	// MemoryAllocationFailure is raised when an entry declares a count
	// (vlen) large enough that honoring it would be an unreasonable
	// allocation, or when the underlying reader reports an allocation
	// failure of its own.
	MemoryAllocationFailure
	// FileNotFound is raised when the backing file cannot be opened.
	FileNotFound
	// IOError covers every other read failure, including EOF reached
	// mid-read.
	IOError
	// InvalidMagicValue is raised when the header's magic field matches
	// neither the little- nor big-endian magic constant.
	InvalidMagicValue
	// InvalidBTFKind is raised when a type header names a kind this
	// decoder does not support.
	InvalidBTFKind
	InvalidIntBTFTypeEncoding
	InvalidPtrBTFTypeEncoding
	InvalidArrayBTFTypeEncoding
	InvalidTypedefBTFTypeEncoding
	InvalidEnumBTFTypeEncoding
	InvalidFuncProtoBTFTypeEncoding
	InvalidVolatileBTFTypeEncoding
	InvalidFwdBTFTypeEncoding
	InvalidFuncBTFTypeEncoding
)

func (c ErrorCode) String() string {
	switch c {
	case Unknown:
		return "Unknown"
	case MemoryAllocationFailure:
		return "MemoryAllocationFailure"
	case FileNotFound:
		return "FileNotFound"
	case IOError:
		return "IOError"
	case InvalidMagicValue:
		return "InvalidMagicValue"
	case InvalidBTFKind:
		return "InvalidBTFKind"
	case InvalidIntBTFTypeEncoding:
		return "InvalidIntBTFTypeEncoding"
	case InvalidPtrBTFTypeEncoding:
		return "InvalidPtrBTFTypeEncoding"
	case InvalidArrayBTFTypeEncoding:
		return "InvalidArrayBTFTypeEncoding"
	case InvalidTypedefBTFTypeEncoding:
		return "InvalidTypedefBTFTypeEncoding"
	case InvalidEnumBTFTypeEncoding:
		return "InvalidEnumBTFTypeEncoding"
	case InvalidFuncProtoBTFTypeEncoding:
		return "InvalidFuncProtoBTFTypeEncoding"
	case InvalidVolatileBTFTypeEncoding:
		return "InvalidVolatileBTFTypeEncoding"
	case InvalidFwdBTFTypeEncoding:
		return "InvalidFwdBTFTypeEncoding"
	case InvalidFuncBTFTypeEncoding:
		return "InvalidFuncBTFTypeEncoding"
	default:
		return fmt.Sprintf("ErrorCode(%d)", int(c))
	}
}

// FileRange names the byte span a diagnostic refers to.
type FileRange struct {
	Offset uint64
	Size   uint64
}

// Error is the single error type the decoder ever returns. Callers switch
// on Code; Range, when present, names the offending bytes.
type Error struct {
	Code  ErrorCode
	Range *FileRange
}

func (e *Error) Error() string {
	if e.Range != nil {
		return fmt.Sprintf("btf: %s (offset %d, size %d)", e.Code, e.Range.Offset, e.Range.Size)
	}
	return fmt.Sprintf("btf: %s", e.Code)
}

// mapReaderError translates a *ReaderError raised by a Reader into the
// decoder's error taxonomy, preserving the code and the optional
// read-operation range verbatim. Pure function, no I/O.
func mapReaderError(err error) *Error {
	rerr, ok := err.(*ReaderError)
	if !ok {
		return &Error{Code: Unknown}
	}

	var code ErrorCode
	switch rerr.Code {
	case ReaderOOM:
		code = MemoryAllocationFailure
	case ReaderFileNotFound:
		code = FileNotFound
	case ReaderIOError:
		code = IOError
	default:
		code = Unknown
	}

	var rng *FileRange
	if rerr.Op != nil {
		rng = &FileRange{Offset: rerr.Op.Offset, Size: rerr.Op.Size}
	}

	return &Error{Code: code, Range: rng}
}
