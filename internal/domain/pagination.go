package domain

import (
	"encoding/base64"
	"strconv"
)

// Page sizes for table displays.
const (
	DefaultMaxResults = 50
	MaxMaxResults     = 500
)

// PageRequest selects one page of rows to display. Paging only affects what
// is shown: searches and summaries always run over the full table.
type PageRequest struct {
	MaxResults int
	PageToken  string
}

// Offset is the first row of the page. Malformed or negative tokens start
// from the top.
func (p PageRequest) Offset() int {
	if p.PageToken == "" {
		return 0
	}
	raw, err := base64.RawURLEncoding.DecodeString(p.PageToken)
	if err != nil {
		return 0
	}
	n, err := strconv.Atoi(string(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Limit is MaxResults clamped to (0, MaxMaxResults]; zero or negative means
// DefaultMaxResults.
func (p PageRequest) Limit() int {
	switch {
	case p.MaxResults <= 0:
		return DefaultMaxResults
	case p.MaxResults > MaxMaxResults:
		return MaxMaxResults
	default:
		return p.MaxResults
	}
}

// Bounds returns the half-open range [start, end) of a total-row table that
// this page covers.
func (p PageRequest) Bounds(total int) (start, end int) {
	start = min(p.Offset(), total)
	return start, min(start+p.Limit(), total)
}

// EncodePageToken turns a row offset into a page token. Offset zero is the
// first page and has no token.
func EncodePageToken(offset int) string {
	if offset <= 0 {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString([]byte(strconv.Itoa(offset)))
}

// NextPageToken returns the token of the page after [offset, offset+limit),
// or "" when that page would be empty.
func NextPageToken(offset, limit, total int) string {
	if offset+limit >= total {
		return ""
	}
	return EncodePageToken(offset + limit)
}
