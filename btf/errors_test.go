package btf

import "testing"

func TestMapReaderErrorCodes(t *testing.T) {
	cases := []struct {
		in   ReaderErrorCode
		want ErrorCode
	}{
		{ReaderOOM, MemoryAllocationFailure},
		{ReaderFileNotFound, FileNotFound},
		{ReaderIOError, IOError},
		{ReaderUnknown, Unknown},
	}

	for _, c := range cases {
		got := mapReaderError(&ReaderError{Code: c.in})
		if got.Code != c.want {
			t.Errorf("map(%v): got %v, want %v", c.in, got.Code, c.want)
		}
	}
}

func TestMapReaderErrorPreservesRange(t *testing.T) {
	got := mapReaderError(&ReaderError{
		Code: ReaderIOError,
		Op:   &ReadOperation{Offset: 42, Size: 4},
	})
	if got.Range == nil {
		t.Fatal("expected range to be preserved")
	}
	if got.Range.Offset != 42 || got.Range.Size != 4 {
		t.Errorf("got range %+v, want {42 4}", got.Range)
	}
}

func TestMapReaderErrorNonReaderError(t *testing.T) {
	got := mapReaderError(errNotAReaderError{})
	if got.Code != Unknown {
		t.Errorf("got %v, want Unknown", got.Code)
	}
	if got.Range != nil {
		t.Errorf("expected nil range, got %+v", got.Range)
	}
}

type errNotAReaderError struct{}

func (errNotAReaderError) Error() string { return "not a reader error" }

func TestErrorStringIncludesRange(t *testing.T) {
	e := &Error{Code: InvalidIntBTFTypeEncoding, Range: &FileRange{Offset: 10, Size: 16}}
	got := e.Error()
	if got != "btf: InvalidIntBTFTypeEncoding (offset 10, size 16)" {
		t.Errorf("got %q", got)
	}
}

func TestErrorStringWithoutRange(t *testing.T) {
	e := &Error{Code: FileNotFound}
	got := e.Error()
	if got != "btf: FileNotFound" {
		t.Errorf("got %q", got)
	}
}
