package chafengine

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Stats is a run summary.
type Stats struct {
	// Total is a number of lines read.
	Total int
	// Included is a number of lines kept, including failed ones.
	Included int
	// Excluded is a number of lines dropped.
	Excluded int
	// Errors is a number of lines kept because predicate failed.
	Errors int
	// Bytes is a number of bytes read.
	Bytes int64
}

// String implements [fmt.Stringer].
func (s Stats) String() string {
	return fmt.Sprintf("processed %s lines (%s), excluded %s, output %s, errors %s",
		humanize.Comma(int64(s.Total)),
		humanize.Bytes(uint64(s.Bytes)),
		humanize.Comma(int64(s.Excluded)),
		humanize.Comma(int64(s.Included)),
		humanize.Comma(int64(s.Errors)),
	)
}
