package compress

import (
	"bytes"
	"strings"
	"testing"

	"github.com/DataDog/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompressor(t *testing.T) {
	assert.Equal(t, "Zstd", NewCompressor("ZSTD").Name())
	assert.Equal(t, "LZ4", NewCompressor("lz4").Name())
	assert.Equal(t, "Noop", NewCompressor("none").Name())
	assert.Nil(t, NewCompressor("snappy"))
}

func TestForPath(t *testing.T) {
	assert.Equal(t, "Zstd", ForPath("measurements.txt.zst").Name())
	assert.Equal(t, "LZ4", ForPath("/data/m.lz4").Name())
	assert.Equal(t, "Noop", ForPath("measurements.txt").Name())
	assert.Equal(t, ".zst", Suffix(NewCompressor("zstd")))
	assert.Equal(t, "", Suffix(NewCompressor("none")))
}

func TestFrame(t *testing.T) {
	src := []byte(strings.Repeat("Hamburg;12.0\nBulawayo;8.9\n", 1000))
	for _, name := range []string{"none", "lz4", "zstd"} {
		c := NewCompressor(name)
		var buf bytes.Buffer
		require.NoError(t, WriteFrame(&buf, c, src), name)
		if name != "none" {
			assert.Less(t, buf.Len(), len(src), name)
		}
		out, err := Decode(c, buf.Bytes())
		require.NoError(t, err, name)
		assert.Equal(t, src, out, name)
	}
}

func TestFrameEmpty(t *testing.T) {
	c := NewCompressor("zstd")
	frame, err := Encode(c, nil)
	require.NoError(t, err)
	out, err := Decode(c, frame)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestDecodeCorrupted(t *testing.T) {
	_, err := Decode(LZ4{}, []byte{1, 2})
	assert.Error(t, err)

	frame, err := Encode(LZ4{}, []byte("Hamburg;12.0\n"))
	require.NoError(t, err)
	frame[0]++ // announce one byte more than the block holds
	_, err = Decode(LZ4{}, frame)
	assert.Error(t, err)
}

func TestDecodeStandardZstd(t *testing.T) {
	src := []byte(strings.Repeat("Hamburg;12.0\n", 500))
	frame, err := zstd.Compress(nil, src)
	require.NoError(t, err)
	out, err := Decode(NewCompressor("zstd"), frame)
	require.NoError(t, err)
	assert.Equal(t, src, out)

	_, err = Decode(NewCompressor("zstd"), []byte("not a zstd frame"))
	assert.Error(t, err)
}

func TestDecodeOversizedHeader(t *testing.T) {
	frame := []byte{0, 0, 0, 0, 0, 1, 0, 0, 'x', 'y', 'z'} // 1 TiB announced
	_, err := Decode(LZ4{}, frame)
	assert.ErrorContains(t, err, "invalid frame size")
}

func TestStreamWriter(t *testing.T) {
	assert.Nil(t, NewStreamWriter(&bytes.Buffer{}, LZ4{}))
	assert.Nil(t, NewStreamWriter(&bytes.Buffer{}, noOp{}))

	src := []byte(strings.Repeat("Bulawayo;8.9\n", 2000))
	var buf bytes.Buffer
	w := NewStreamWriter(&buf, NewCompressor("zstd"))
	require.NotNil(t, w)
	for i := 0; i < len(src); i += 1000 {
		_, err := w.Write(src[i:min(i+1000, len(src))])
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	plain, err := zstd.Decompress(nil, buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, src, plain)
	out, err := Decode(NewCompressor("zstd"), buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, src, out)
}
