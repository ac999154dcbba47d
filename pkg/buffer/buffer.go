// pkg/buffer/buffer.go

package buffer

import (
	"runtime"
	"sync/atomic"

	"OneBRC/pkg/utils"
)

var logger = utils.GetLogger("onebrc")

// Buffer is a read-only byte buffer shared by every worker of a run. It is
// either backed by the heap or by a read-only file mapping; the mapping is
// released when the last reference is dropped.
type Buffer struct {
	refs   int32
	mapped bool
	data   []byte
}

// New wraps data in a Buffer holding one reference.
func New(data []byte) *Buffer {
	return &Buffer{refs: 1, data: data}
}

func newMapped(data []byte) *Buffer {
	b := &Buffer{refs: 1, mapped: true, data: data}
	runtime.SetFinalizer(b, func(b *Buffer) {
		refCnt := atomic.LoadInt32(&b.refs)
		if refCnt != 0 {
			logger.Errorf("refcount of buffer %p is not zero: %d", b, refCnt)
			if refCnt > 0 {
				b.unmap()
			}
		}
	})
	return b
}

// Acquire increase the refcount
func (b *Buffer) Acquire() {
	atomic.AddInt32(&b.refs, 1)
}

// Release decreases the refcount
func (b *Buffer) Release() {
	if atomic.AddInt32(&b.refs, -1) == 0 {
		if b.mapped {
			b.unmap()
		}
		b.data = nil
	}
}

func (b *Buffer) unmap() {
	if b.data == nil {
		return
	}
	if err := unmap(b.data); err != nil {
		logger.Warnf("munmap %d bytes: %s", len(b.data), err)
	}
	b.data = nil
}

func (b *Buffer) Len() int {
	return len(b.data)
}

// Bytes exposes the underlying bytes. Callers must not modify them.
func (b *Buffer) Bytes() []byte {
	return b.data
}

func (b *Buffer) Mapped() bool {
	return b.mapped
}

// Slice returns a view of n bytes starting at off. The view holds a
// reference to b until it is released.
func (b *Buffer) Slice(off, n int) Region {
	if off < 0 || n < 0 || off+n > len(b.data) {
		panic("buffer: slice out of range")
	}
	b.Acquire()
	return Region{buf: b, off: off, n: n}
}
