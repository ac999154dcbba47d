// pkg/agg/merge.go

package agg

import (
	"sort"

	"golang.org/x/exp/maps"
)

// Merge folds the entries of all tables together by station name and
// returns the stations sorted by name. Tables may hold the same name at
// different offsets; they are merged by content.
func Merge(tables []*Table) *Result {
	totals := make(map[string]*Aggregate)
	for _, t := range tables {
		if t == nil {
			continue
		}
		t.Range(func(name []byte, a Aggregate) {
			if total, ok := totals[string(name)]; ok {
				total.merge(a)
				return
			}
			total := a
			totals[string(name)] = &total
		})
	}

	names := maps.Keys(totals)
	sort.Strings(names)
	res := &Result{Stations: make([]Station, 0, len(names))}
	for _, name := range names {
		res.Stations = append(res.Stations, newStation(name, *totals[name]))
	}
	return res
}
