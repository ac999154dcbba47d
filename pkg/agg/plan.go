// pkg/agg/plan.go

package agg

import (
	"bytes"

	"github.com/pkg/errors"
)

// Span is the half-open byte range [Start, End) of one worker.
type Span struct {
	Start, End int
}

func (s Span) Len() int {
	return s.End - s.Start
}

// Plan splits data into n contiguous spans covering [0, len(data)). Every
// inner boundary sits right after a newline, so no record straddles two
// spans. The end of data counts as a boundary even without a trailing
// newline. Trailing spans are empty when data has fewer lines than n.
func Plan(data []byte, n int) ([]Span, error) {
	if n < 1 {
		return nil, errors.Errorf("invalid number of spans: %d", n)
	}
	size := len(data)
	spans := make([]Span, n)
	prev := 0
	for i := 1; i < n; i++ {
		at := int(int64(size) * int64(i) / int64(n))
		if at < prev {
			at = prev
		}
		if at < size {
			if nl := bytes.IndexByte(data[at:], '\n'); nl >= 0 {
				at += nl + 1
			} else {
				at = size
			}
		}
		spans[i-1] = Span{prev, at}
		prev = at
	}
	spans[n-1] = Span{prev, size}
	return spans, nil
}
