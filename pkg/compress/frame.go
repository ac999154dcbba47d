// pkg/compress/frame.go

package compress

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/DataDog/zstd"
	"github.com/pkg/errors"
)

const frameHeader = 8

// maxRatio bounds the raw size a length-prefixed frame may announce
// relative to the size of its block. LZ4 cannot expand beyond 255:1.
const maxRatio = 256

// Encode compresses src into a self-describing frame. Zstd produces a
// standard zstd frame readable by the zstd tool. Other algorithms write the
// raw length as 8 little-endian bytes followed by one compressed block.
func Encode(c Compressor, src []byte) ([]byte, error) {
	if z, ok := c.(ZStandard); ok {
		out, err := zstd.CompressLevel(nil, src, z.level)
		if err != nil {
			return nil, errors.Wrapf(err, "compress %d bytes with %s", len(src), c.Name())
		}
		return out, nil
	}
	out := make([]byte, frameHeader+c.CompressBound(len(src)))
	binary.LittleEndian.PutUint64(out, uint64(len(src)))
	if len(src) == 0 {
		return out[:frameHeader], nil
	}
	n, err := c.Compress(out[frameHeader:], src)
	if err != nil {
		return nil, errors.Wrapf(err, "compress %d bytes with %s", len(src), c.Name())
	}
	return out[:frameHeader+n], nil
}

// Decode reverses Encode.
func Decode(c Compressor, frame []byte) ([]byte, error) {
	if _, ok := c.(ZStandard); ok {
		r := zstd.NewReader(bytes.NewReader(frame))
		defer r.Close()
		out, err := io.ReadAll(r)
		if err != nil {
			return nil, errors.Wrapf(err, "decompress with %s", c.Name())
		}
		return out, nil
	}
	if len(frame) < frameHeader {
		return nil, errors.Errorf("frame too short: %d bytes", len(frame))
	}
	size := binary.LittleEndian.Uint64(frame)
	block := frame[frameHeader:]
	if size > uint64(len(block))*maxRatio {
		return nil, errors.Errorf("invalid frame size %d for a block of %d bytes", size, len(block))
	}
	out := make([]byte, size)
	if size == 0 {
		return out, nil
	}
	n, err := c.Decompress(out, block)
	if err != nil {
		return nil, errors.Wrapf(err, "decompress with %s", c.Name())
	}
	if uint64(n) != size {
		return nil, errors.Errorf("decompressed %d bytes, expect %d", n, size)
	}
	return out, nil
}

// WriteFrame encodes src and writes it to w.
func WriteFrame(w io.Writer, c Compressor, src []byte) error {
	frame, err := Encode(c, src)
	if err != nil {
		return err
	}
	_, err = w.Write(frame)
	return err
}

// NewStreamWriter returns a writer that compresses into w as data arrives,
// or nil when c only supports whole-buffer frames. Close flushes the
// stream but leaves w open.
func NewStreamWriter(w io.Writer, c Compressor) io.WriteCloser {
	if z, ok := c.(ZStandard); ok {
		return zstd.NewWriterLevel(w, z.level)
	}
	return nil
}
