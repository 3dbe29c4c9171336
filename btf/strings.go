package btf

// resolveString reads a NUL-terminated string out of the string pool at
// absolute offset off. It snapshots the reader's cursor before seeking,
// and unconditionally restores it on every exit path — normal, early
// return, or error — so that forward reads interleaved with name
// resolution never disturb the driver's place in the type section. This
// is the only place in the package that moves the cursor backward.
func resolveString(r Reader, off int64) (string, error) {
	original, err := r.Offset()
	if err != nil {
		return "", mapReaderError(err)
	}
	defer r.Seek(original)

	if err := r.Seek(off); err != nil {
		return "", mapReaderError(err)
	}

	var buf []byte
	for {
		b, err := r.U8()
		if err != nil {
			return "", mapReaderError(err)
		}
		if b == 0 {
			break
		}
		buf = append(buf, b)
	}

	return string(buf), nil
}
