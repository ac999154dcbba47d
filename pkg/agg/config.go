// pkg/agg/config.go

package agg

import "runtime"

// DefaultCapacity is the number of slots in each worker's table. It must
// stay above the number of distinct stations in the input.
const DefaultCapacity = 1 << 14

// Config for an aggregation run.
type Config struct {
	Workers  int // <= 0 means runtime.NumCPU()
	Capacity int // slots per worker table, a power of two
	// Progress, if set, receives the number of bytes scanned since the last
	// call. It is called concurrently from every worker.
	Progress func(n int64)
}

func (c *Config) workers() int {
	if c == nil || c.Workers <= 0 {
		return runtime.NumCPU()
	}
	return c.Workers
}

func (c *Config) capacity() int {
	if c == nil || c.Capacity <= 0 {
		return DefaultCapacity
	}
	return c.Capacity
}

func (c *Config) progress() func(int64) {
	if c == nil {
		return nil
	}
	return c.Progress
}
