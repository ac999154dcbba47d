// pkg/agg/parse.go

package agg

import "strconv"

// ParseTenths parses a temperature of the form -?d{1,2}.d from the start of
// b and returns it scaled by ten, with the number of bytes consumed.
func ParseTenths(b []byte) (int32, int, error) {
	i := 0
	neg := false
	if i < len(b) && b[i] == '-' {
		neg = true
		i++
	}
	if i >= len(b) || !isDigit(b[i]) {
		return 0, 0, &ParseError{Field: string(b)}
	}
	v := int32(b[i] - '0')
	i++
	if i < len(b) && isDigit(b[i]) {
		v = v*10 + int32(b[i]-'0')
		i++
	}
	if i+1 >= len(b) || b[i] != '.' || !isDigit(b[i+1]) {
		return 0, 0, &ParseError{Field: string(b)}
	}
	v = v*10 + int32(b[i+1]-'0')
	i += 2
	if neg {
		v = -v
	}
	return v, i, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// FormatTenths renders a tenths-scaled value with exactly one decimal.
func FormatTenths(v int64) string {
	return string(appendTenths(nil, v))
}

func appendTenths(dst []byte, v int64) []byte {
	if v < 0 {
		dst = append(dst, '-')
		v = -v
	}
	dst = strconv.AppendInt(dst, v/10, 10)
	dst = append(dst, '.')
	return append(dst, byte('0'+v%10))
}
