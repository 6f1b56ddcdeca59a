package trackpoint

import (
	"math/rand"
	"slices"
	"testing"
)

func TestSlicesSortFunc(t *testing.T) {
	want := []*TrackPoint{
		{Unix: 100, SourceLine: 5},
		{Unix: 200, SourceLine: 3},
		{Unix: 200, SourceLine: 4},
		{Unix: 201, SourceLine: 2},
	}

	// Any permutation of the same samples must sort identically.
	for i := 0; i < 10; i++ {
		got := slices.Clone(want)
		rand.Shuffle(len(got), func(i, j int) {
			got[i], got[j] = got[j], got[i]
		})
		slices.SortStableFunc(got, SlicesSortFunc)
		if !slices.Equal(got, want) {
			t.Errorf("permutation %d sorted to %v, want %v", i, got, want)
		}
	}
}

func TestPointLonLatOrder(t *testing.T) {
	tp := &TrackPoint{Lat: 46.9292804, Lon: -114.0877518}
	pt := tp.Point()
	if pt.Lon() != tp.Lon || pt.Lat() != tp.Lat {
		t.Errorf("Point() = %v, want [lon lat] = [%v %v]", pt, tp.Lon, tp.Lat)
	}
}

func TestTimeIsUTC(t *testing.T) {
	tp := &TrackPoint{Unix: 1731952467}
	if zone, _ := tp.Time().Zone(); zone != "UTC" {
		t.Errorf("Time() zone = %q, want UTC", zone)
	}
	if tp.Time().Unix() != tp.Unix {
		t.Errorf("Time().Unix() = %d, want %d", tp.Time().Unix(), tp.Unix)
	}
}
