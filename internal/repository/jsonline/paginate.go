package jsonline

import (
	"sort"

	"github.com/msomdec/weblog/internal/domain"
)

// SortNewestFirst stably sorts records by the timestamp field
// extracted by timestamp, newest first. Unparsable timestamps sort as
// oldest; ties keep file order.
func SortNewestFirst[T any](records []T, timestamp func(T) string) {
	sort.SliceStable(records, func(i, j int) bool {
		ti, _ := domain.ParseTime(timestamp(records[i]))
		tj, _ := domain.ParseTime(timestamp(records[j]))
		return ti.After(tj)
	})
}

// Paginate returns the [offset, offset+limit) slice of records.
// Negative or out-of-range values clamp to an empty page; Paginate
// never fails.
func Paginate[T any](records []T, limit, offset int) []T {
	if limit <= 0 || offset < 0 || offset >= len(records) {
		return nil
	}
	end := offset + limit
	if end > len(records) {
		end = len(records)
	}
	return records[offset:end]
}
