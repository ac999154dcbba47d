// pkg/agg/scan.go

package agg

import (
	"OneBRC/pkg/buffer"
)

const progressStep = 4 << 20

// Scan aggregates every record of r into a new table. Records are
// `name;value\n`; only the last record of the buffer may omit its newline.
// progress, if not nil, is called with the bytes consumed every few MiB and
// once at the end.
func Scan(r buffer.Region, capacity int, progress func(int64)) (*Table, error) {
	t, err := NewTable(r, capacity)
	if err != nil {
		return nil, err
	}
	data := r.Bytes()
	base := r.Offset()
	eof := r.AtEOF()
	var reported int

	for cur := 0; cur < len(data); {
		// find ';' and hash the name on the way
		h := uint32(17)
		sc := cur
		for ; sc < len(data); sc++ {
			c := data[sc]
			if c == ';' {
				break
			}
			if c == '\n' {
				return nil, &MalformedInputError{Offset: base + cur, Reason: "missing ';' delimiter"}
			}
			h = 31*h + uint32(c)
		}
		if sc == len(data) {
			return nil, &MalformedInputError{Offset: base + cur, Reason: "missing ';' delimiter"}
		}

		end := r.IndexByte(sc+1, '\n')
		next := end + 1
		if end < 0 {
			if !eof {
				return nil, &MalformedInputError{Offset: base + cur, Reason: "missing newline terminator"}
			}
			end = len(data)
			next = end
		}

		field := data[sc+1 : end]
		v, n, err := ParseTenths(field)
		if err != nil || n != len(field) {
			return nil, &ParseError{Offset: base + sc + 1, Field: string(field)}
		}

		if err = t.Upsert(buffer.Key{Off: base + cur, Len: sc - cur}, h, v); err != nil {
			return nil, err
		}
		cur = next

		if progress != nil && cur-reported >= progressStep {
			progress(int64(cur - reported))
			reported = cur
		}
	}
	if progress != nil && len(data) > reported {
		progress(int64(len(data) - reported))
	}
	return t, nil
}
