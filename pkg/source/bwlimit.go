// pkg/source/bwlimit.go

package source

import (
	"io"

	"github.com/juju/ratelimit"
)

type limitedReader struct {
	io.Reader
	r *ratelimit.Bucket
}

func (l *limitedReader) Read(buf []byte) (int, error) {
	n, err := l.Reader.Read(buf)
	if l.r != nil {
		l.r.Wait(int64(n))
	}
	return n, err
}

// newLimited throttles r to limit bytes per second; limit <= 0 disables it.
func newLimited(r io.Reader, limit int64) io.Reader {
	if limit <= 0 {
		return r
	}
	return &limitedReader{r, ratelimit.NewBucketWithRate(float64(limit), limit)}
}
