package ingest

import (
	"fmt"
	"strings"

	"tripcut/params"
)

// ColumnIndex holds the resolved 0-based positions of the three
// required columns.
type ColumnIndex struct {
	Lat  int
	Lon  int
	Time int
}

// ResolveColumns matches the header row against the candidate name lists,
// case-insensitively. Candidate order is priority order; a header carrying
// both "lon" and "x" resolves to "lon". A missing column is fatal for
// the whole run.
func ResolveColumns(header []string) (ColumnIndex, error) {
	find := func(candidates []string) int {
		for _, candidate := range candidates {
			for i, field := range header {
				if strings.EqualFold(strings.TrimSpace(field), candidate) {
					return i
				}
			}
		}
		return -1
	}

	ci := ColumnIndex{
		Lat:  find(params.LatColumnNames),
		Lon:  find(params.LonColumnNames),
		Time: find(params.TimeColumnNames),
	}
	if ci.Lat < 0 {
		return ci, fmt.Errorf("missing required column: latitude (one of %v)", params.LatColumnNames)
	}
	if ci.Lon < 0 {
		return ci, fmt.Errorf("missing required column: longitude (one of %v)", params.LonColumnNames)
	}
	if ci.Time < 0 {
		return ci, fmt.Errorf("missing required column: time (one of %v)", params.TimeColumnNames)
	}
	return ci, nil
}
