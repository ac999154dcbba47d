// pkg/agg/aggregate.go

package agg

import (
	"time"

	"github.com/pkg/errors"

	"OneBRC/pkg/buffer"
	"OneBRC/pkg/utils"
)

var logger = utils.GetLogger("onebrc")

type partial struct {
	worker int
	table  *Table
	err    error
}

// Run computes per-station statistics over buf with a fixed pool of
// workers, one per planned span. Workers share nothing but the read-only
// buffer; each hands its finished table back over a channel and the merge
// runs once all of them are done. The first error, by worker index, wins.
func Run(buf *buffer.Buffer, conf *Config) (*Result, error) {
	workers := conf.workers()
	capacity := conf.capacity()
	if !utils.IsPowerOfTwo(capacity) {
		return nil, errors.Errorf("table capacity %d is not a power of two", capacity)
	}
	spans, err := Plan(buf.Bytes(), workers)
	if err != nil {
		return nil, err
	}
	logger.Debugf("start to aggregate %d bytes with %d workers, %d slots each", buf.Len(), workers, capacity)
	start := time.Now()

	regions := make([]buffer.Region, len(spans))
	for i, s := range spans {
		regions[i] = buf.Slice(s.Start, s.Len())
	}
	defer func() {
		for i := range regions {
			regions[i].Release()
		}
	}()

	done := make(chan partial, len(regions))
	progress := conf.progress()
	for i := range regions {
		go func(i int) {
			t, err := Scan(regions[i], capacity, progress)
			done <- partial{i, t, err}
		}(i)
	}

	tables := make([]*Table, len(regions))
	errs := make([]error, len(regions))
	for range regions {
		p := <-done
		tables[p.worker], errs[p.worker] = p.table, p.err
		if p.err == nil {
			logger.Tracef("worker %d: %d bytes, %d stations", p.worker, spans[p.worker].Len(), p.table.Len())
		}
	}
	for i, err := range errs {
		if err != nil {
			return nil, errors.Wrapf(err, "worker %d", i)
		}
	}

	res := Merge(tables)
	logger.Debugf("aggregated %d stations in %s", len(res.Stations), time.Since(start))
	return res, nil
}
