package services

import (
	"math"
	"net/url"
)

const (
	// MaxLimit caps the number of persons a single request can ask for.
	MaxLimit = 5000

	MaxTreePrefixLength = 20
	MaxAPIKeyLength     = 40
)

// ExportRequest holds the coerced parameters of one export request.
type ExportRequest struct {
	Start    int
	Limit    int
	Tree     string
	APIKey   string
	BasePath string
}

// ParseExportRequest coerces the query parameters of an export request.
// Nothing is rejected here: numbers are read leniently, strings truncated.
func ParseExportRequest(values url.Values, basePath string) ExportRequest {
	start := CoerceInt(values.Get("start"))
	if start < 0 {
		start = 0
	}
	limit := CoerceInt(values.Get("limit"))
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return ExportRequest{
		Start:    start,
		Limit:    limit,
		Tree:     truncate(values.Get("tree"), MaxTreePrefixLength),
		APIKey:   truncate(values.Get("api-key"), MaxAPIKeyLength),
		BasePath: basePath,
	}
}

// CoerceInt reads an integer the way the CMS casts request values: leading
// whitespace and an optional sign followed by the leading decimal digits.
// Anything without leading digits reads as 0, out of range values saturate.
func CoerceInt(s string) int {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}

	negative := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		negative = s[i] == '-'
		i++
	}

	n := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		d := int(s[i] - '0')
		if n > (math.MaxInt-d)/10 {
			if negative {
				return math.MinInt
			}
			return math.MaxInt
		}
		n = n*10 + d
	}
	if negative {
		return -n
	}
	return n
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen])
}
