package gen

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"OneBRC/pkg/agg"
	"OneBRC/pkg/buffer"
)

func TestGenerate(t *testing.T) {
	var buf bytes.Buffer
	var rows int64
	require.NoError(t, Generate(&buf, 10000, DefaultStations, 1, func(n int64) { rows += n }))
	assert.Equal(t, int64(10000), rows)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 10000)
	for _, line := range lines {
		name, val, ok := strings.Cut(line, ";")
		require.True(t, ok, line)
		require.NotEmpty(t, name)
		v, n, err := agg.ParseTenths([]byte(val))
		require.NoError(t, err, line)
		require.Equal(t, len(val), n, line)
		require.True(t, v >= -999 && v <= 999, line)
		require.NotEqual(t, "-0.0", val)
	}

	b := buffer.New(buf.Bytes())
	defer b.Release()
	res, err := agg.Run(b, &agg.Config{Workers: 4})
	require.NoError(t, err)
	assert.LessOrEqual(t, len(res.Stations), len(DefaultStations))
}

func TestGenerateDeterministic(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, Generate(&a, 500, DefaultStations, 99, nil))
	require.NoError(t, Generate(&b, 500, DefaultStations, 99, nil))
	assert.Equal(t, a.String(), b.String())
}

func TestGenerateNoStations(t *testing.T) {
	assert.Error(t, Generate(&bytes.Buffer{}, 1, nil, 0, nil))
}
