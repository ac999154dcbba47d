// pkg/agg/result.go

package agg

import (
	"io"
	"math"
	"sort"
)

// Station is the final summary of one station.
type Station struct {
	Name  string
	Count uint64
	Sum   int64 // tenths
	// exact extremes and the rounded mean, in tenths
	MinTenths  int32
	MeanTenths int64
	MaxTenths  int32

	Min  float64
	Mean float64
	Max  float64
}

func newStation(name string, a Aggregate) Station {
	mean := int64(math.Round(float64(a.Sum) / float64(a.Count)))
	return Station{
		Name:       name,
		Count:      a.Count,
		Sum:        a.Sum,
		MinTenths:  a.Min,
		MeanTenths: mean,
		MaxTenths:  a.Max,
		Min:        float64(a.Min) / 10.0,
		Mean:       float64(mean) / 10.0,
		Max:        float64(a.Max) / 10.0,
	}
}

// Summary renders min/mean/max with one decimal each.
func (s *Station) Summary() string {
	return string(s.appendSummary(nil))
}

func (s *Station) appendSummary(dst []byte) []byte {
	dst = appendTenths(dst, int64(s.MinTenths))
	dst = append(dst, '/')
	dst = appendTenths(dst, s.MeanTenths)
	dst = append(dst, '/')
	return appendTenths(dst, int64(s.MaxTenths))
}

// Result holds the stations of a run in ascending name order.
type Result struct {
	Stations []Station
}

// Lookup finds a station by name.
func (r *Result) Lookup(name string) (*Station, bool) {
	i := sort.Search(len(r.Stations), func(i int) bool { return r.Stations[i].Name >= name })
	if i < len(r.Stations) && r.Stations[i].Name == name {
		return &r.Stations[i], true
	}
	return nil, false
}

func (r *Result) appendTo(dst []byte) []byte {
	dst = append(dst, '{')
	for i := range r.Stations {
		if i > 0 {
			dst = append(dst, ", "...)
		}
		s := &r.Stations[i]
		dst = append(dst, s.Name...)
		dst = append(dst, '=')
		dst = s.appendSummary(dst)
	}
	return append(dst, '}')
}

// String renders `{A=min/mean/max, B=min/mean/max}`.
func (r *Result) String() string {
	return string(r.appendTo(nil))
}

// WriteTo writes the summary line followed by a newline.
func (r *Result) WriteTo(w io.Writer) (int64, error) {
	buf := r.appendTo(make([]byte, 0, 32*len(r.Stations)+3))
	buf = append(buf, '\n')
	n, err := w.Write(buf)
	return int64(n), err
}
