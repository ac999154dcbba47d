// pkg/agg/errors.go

package agg

import "fmt"

// MalformedInputError reports a record without its delimiter or terminator.
type MalformedInputError struct {
	Offset int // absolute offset of the record start
	Reason string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed input at offset %d: %s", e.Offset, e.Reason)
}

// CapacityExhaustedError reports a worker table that ran out of slots.
// Raise the configured capacity above Distinct and run again.
type CapacityExhaustedError struct {
	Capacity int
	Distinct int
}

func (e *CapacityExhaustedError) Error() string {
	return fmt.Sprintf("hash table capacity exhausted: %d slots, at least %d distinct stations", e.Capacity, e.Distinct)
}

// ParseError reports a value field that is not of the form -?d{1,2}.d
type ParseError struct {
	Offset int
	Field  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid temperature %q at offset %d", e.Field, e.Offset)
}
