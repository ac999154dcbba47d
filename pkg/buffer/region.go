// pkg/buffer/region.go

package buffer

import "bytes"

// Key names a byte range of a Buffer by absolute offset and length.
type Key struct {
	Off int
	Len int
}

// Region is an immutable view over a contiguous range of a Buffer.
type Region struct {
	buf *Buffer
	off int
	n   int
}

func (r Region) Len() int {
	return r.n
}

// Offset is the absolute position of the region's first byte in its Buffer.
func (r Region) Offset() int {
	return r.off
}

func (r Region) Buffer() *Buffer {
	return r.buf
}

// AtEOF reports whether the region ends where its Buffer ends.
func (r Region) AtEOF() bool {
	return r.off+r.n == r.buf.Len()
}

// At returns the byte at position i relative to the region start.
func (r Region) At(i int) byte {
	return r.buf.data[r.off+i]
}

// IndexByte returns the relative index of the first c at or after from,
// or -1 if c does not occur before the end of the region.
func (r Region) IndexByte(from int, c byte) int {
	if from >= r.n {
		return -1
	}
	i := bytes.IndexByte(r.Bytes()[from:], c)
	if i < 0 {
		return -1
	}
	return from + i
}

func (r Region) Bytes() []byte {
	return r.buf.data[r.off : r.off+r.n]
}

// Get returns the bytes of the absolute range k.
func (r Region) Get(k Key) []byte {
	return r.buf.data[k.Off : k.Off+k.Len]
}

// Equal compares the contents of two absolute ranges of the same Buffer.
func (r Region) Equal(a, b Key) bool {
	if a.Len != b.Len {
		return false
	}
	data := r.buf.data
	return bytes.Equal(data[a.Off:a.Off+a.Len], data[b.Off:b.Off+b.Len])
}

// Release drops the reference taken by Buffer.Slice.
func (r *Region) Release() {
	if r.buf != nil {
		r.buf.Release()
		r.buf = nil
	}
}
