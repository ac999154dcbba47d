package buffer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefcount(t *testing.T) {
	b := New([]byte("Hamburg;12.0\n"))
	r := b.Slice(0, 7)
	assert.Equal(t, int32(2), b.refs)
	b.Release()
	assert.NotNil(t, b.Bytes(), "region still holds a reference")
	assert.Equal(t, "Hamburg", string(r.Bytes()))
	r.Release()
	assert.Nil(t, b.Bytes())
	r.Release() // second release is a no-op
	assert.Equal(t, int32(0), b.refs)
}

func TestSliceOutOfRange(t *testing.T) {
	b := New([]byte("abc"))
	assert.Panics(t, func() { b.Slice(1, 3) })
	assert.Panics(t, func() { b.Slice(-1, 1) })
}

func TestRegion(t *testing.T) {
	data := []byte("Oslo;1.0\nRome;2.0\nOslo;3.0\n")
	b := New(data)
	defer b.Release()

	r := b.Slice(9, 18)
	defer r.Release()
	assert.Equal(t, 9, r.Offset())
	assert.Equal(t, 18, r.Len())
	assert.Equal(t, byte('R'), r.At(0))
	assert.True(t, r.AtEOF())
	assert.Equal(t, 4, r.IndexByte(0, ';'))
	assert.Equal(t, 13, r.IndexByte(5, ';'))
	assert.Equal(t, -1, r.IndexByte(14, ';'))
	assert.Equal(t, -1, r.IndexByte(18, '\n'))

	first := b.Slice(0, 9)
	defer first.Release()
	assert.False(t, first.AtEOF())

	// same name at two different offsets compares equal by content
	assert.True(t, r.Equal(Key{Off: 0, Len: 4}, Key{Off: 18, Len: 4}))
	assert.False(t, r.Equal(Key{Off: 0, Len: 4}, Key{Off: 9, Len: 4}))
	assert.False(t, r.Equal(Key{Off: 0, Len: 4}, Key{Off: 0, Len: 3}))
}

func TestMap(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "measurements.txt")
	content := "Bulawayo;8.9\nHamburg;12.0\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	b, err := Map(f)
	require.NoError(t, err)
	assert.Equal(t, len(content), b.Len())
	assert.Equal(t, content, string(b.Bytes()))
	b.Release()
	assert.Nil(t, b.Bytes())
}

func TestMapEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, nil, 0644))
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	b, err := Map(f)
	require.NoError(t, err)
	assert.Equal(t, 0, b.Len())
	assert.False(t, b.Mapped())
	b.Release()
}

func TestRegionGet(t *testing.T) {
	b := New([]byte("Oslo;1.0\nRome;2.0\n"))
	defer b.Release()
	r := b.Slice(9, 9)
	defer r.Release()
	// keys are absolute, so a region can resolve bytes outside itself
	assert.Equal(t, "Oslo", string(r.Get(Key{Off: 0, Len: 4})))
	assert.Equal(t, "Rome", string(r.Get(Key{Off: 9, Len: 4})))
}
