// Package trackpoint holds the validated position sample that the
// rest of the pipeline passes around.
package trackpoint

import (
	"fmt"
	"time"

	"github.com/paulmach/orb"
)

// TrackPoint is one validated position observation.
// Unix is the sole ordering key, at 1-second granularity.
// SourceLine is the original 1-based input ordinal; it breaks ordering ties
// and feeds diagnostics, and is never mutated after normalization.
type TrackPoint struct {
	Unix       int64
	Lat        float64
	Lon        float64
	SourceLine int
}

// Point returns the sample as an orb.Point, so (lon, lat) ordered.
func (tp *TrackPoint) Point() orb.Point {
	return orb.Point{tp.Lon, tp.Lat}
}

// Time returns the sample time, UTC.
func (tp *TrackPoint) Time() time.Time {
	return time.Unix(tp.Unix, 0).UTC()
}

func (tp *TrackPoint) String() string {
	return fmt.Sprintf("line=%d t=%d [%.6f,%.6f]", tp.SourceLine, tp.Unix, tp.Lat, tp.Lon)
}

// SlicesSortFunc implements the slices.SortFunc for TrackPoint slices.
// Sorting is chronological; source line breaks ties, so the order is a
// deterministic total order for any permutation of the same samples.
// > cmp(a, b) should return a negative number when a < b,
// > a positive number when a > b, and zero when a == b
func SlicesSortFunc(a, b *TrackPoint) int {
	if a.Unix < b.Unix {
		return -1
	}
	if a.Unix > b.Unix {
		return 1
	}
	if a.SourceLine < b.SourceLine {
		return -1
	}
	if a.SourceLine > b.SourceLine {
		return 1
	}
	return 0
}
