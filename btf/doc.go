// Package btf decodes the type section of a BPF Type Format (BTF) blob
// into an in-memory, ordered catalog of typed entries.
//
// The canonical documentation for the on-disk format lives in the Linux
// kernel repository and is available at
// https://www.kernel.org/doc/html/latest/bpf/btf.html
//
// Decoding is single-threaded and synchronous: Load runs a file to
// completion or returns the first *Error it encounters. A resulting
// *Catalog is immutable and safe to share across goroutines for reads.
package btf
