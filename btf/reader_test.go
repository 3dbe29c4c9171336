package btf

import "testing"

func TestFileReaderNotFound(t *testing.T) {
	_, err := openFileReader("/nonexistent/path/does/not/exist.btf")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	rerr, ok := err.(*ReaderError)
	if !ok {
		t.Fatalf("got %T, want *ReaderError", err)
	}
	if rerr.Code != ReaderFileNotFound {
		t.Errorf("got code %v, want ReaderFileNotFound", rerr.Code)
	}
}

func TestMemReaderSeekReadRestore(t *testing.T) {
	r := newMemReader([]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06})

	if err := r.Seek(4); err != nil {
		t.Fatalf("seek: %v", err)
	}
	before, _ := r.Offset()

	b, err := r.U8()
	if err != nil {
		t.Fatalf("U8: %v", err)
	}
	if b != 0x05 {
		t.Errorf("got %#x, want 0x05", b)
	}

	if err := r.Seek(before); err != nil {
		t.Fatalf("restore seek: %v", err)
	}
	after, _ := r.Offset()
	if after != before {
		t.Errorf("cursor not restored: got %d, want %d", after, before)
	}
}

func TestMemReaderU32Endianness(t *testing.T) {
	r := newMemReader([]byte{0x01, 0x02, 0x03, 0x04})

	r.SetLittleEndian(true)
	r.Seek(0)
	v, err := r.U32()
	if err != nil {
		t.Fatalf("U32: %v", err)
	}
	if v != 0x04030201 {
		t.Errorf("little-endian: got %#x, want 0x04030201", v)
	}

	r.SetLittleEndian(false)
	r.Seek(0)
	v, err = r.U32()
	if err != nil {
		t.Fatalf("U32: %v", err)
	}
	if v != 0x01020304 {
		t.Errorf("big-endian: got %#x, want 0x01020304", v)
	}
}

func TestMemReaderEOF(t *testing.T) {
	r := newMemReader([]byte{0x01, 0x02})
	r.Seek(1)
	if _, err := r.U32(); err == nil {
		t.Fatal("expected error reading past end of buffer")
	}
}
