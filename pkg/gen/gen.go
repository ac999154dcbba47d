// pkg/gen/gen.go

package gen

import (
	"bufio"
	"io"
	"math"
	"math/rand"
	"strconv"

	"github.com/pkg/errors"
)

const progressStep = 1 << 16

// Generate writes rows measurements of randomly picked stations to w. Values
// follow a normal distribution around each station's mean with a standard
// deviation of 10, rounded to one decimal within [-99.9, 99.9]. progress, if
// not nil, receives the number of rows written since its last call.
func Generate(w io.Writer, rows int64, stations []Station, seed int64, progress func(int64)) error {
	if len(stations) == 0 {
		return errors.New("no stations")
	}
	rnd := rand.New(rand.NewSource(seed))
	bw := bufio.NewWriterSize(w, 1<<20)
	line := make([]byte, 0, 128)
	for i := int64(0); i < rows; i++ {
		s := &stations[rnd.Intn(len(stations))]
		v := math.Round((rnd.NormFloat64()*10+s.Mean)*10) / 10
		v = math.Max(-99.9, math.Min(99.9, v))
		if v == 0 {
			v = 0 // no negative zero
		}
		line = append(line[:0], s.Name...)
		line = append(line, ';')
		line = strconv.AppendFloat(line, v, 'f', 1, 64)
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return err
		}
		if progress != nil && (i+1)%progressStep == 0 {
			progress(progressStep)
		}
	}
	if progress != nil && rows%progressStep != 0 {
		progress(rows % progressStep)
	}
	return bw.Flush()
}
