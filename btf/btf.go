package btf

// Load opens the file at path, detects its endianness, and decodes its
// header and type section into an immutable Catalog. It is the file-based
// entry point into the package; LoadFromReader runs the same pipeline
// over an already-open Reader.
func Load(path string) (*Catalog, error) {
	r, err := openFileReader(path)
	if err != nil {
		return nil, mapReaderError(err)
	}
	defer r.Close()

	return LoadFromReader(r)
}

// LoadFromReader runs the same detect/decode pipeline as Load against an
// already-open Reader, positioned anywhere. It exists so the pipeline can
// be exercised against an in-memory blob without touching a file, and is
// what Load itself delegates to once the file is open.
func LoadFromReader(r Reader) (*Catalog, error) {
	littleEndian, err := detectEndianness(r)
	if err != nil {
		return nil, err
	}
	r.SetLittleEndian(littleEndian)

	header, err := readHeader(r)
	if err != nil {
		return nil, err
	}

	types, err := decodeTypeSection(header, r)
	if err != nil {
		return nil, err
	}

	return &Catalog{types: types}, nil
}
