package ingest

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"tripcut/types/trackpoint"
)

// Reason classifies a rejected input row.
type Reason string

const (
	RejectMissingField Reason = "missing-field"
	RejectNonNumeric   Reason = "non-numeric-coordinate"
	RejectOutOfBounds  Reason = "out-of-bounds-coordinate"
	RejectBadTimestamp Reason = "unparseable-timestamp"
)

// RejectError reports one excluded row. Rejections never halt the batch;
// the row is logged and skipped.
type RejectError struct {
	Line   int
	Reason Reason
}

func (e *RejectError) Error() string {
	return fmt.Sprintf("Line %d: %s", e.Line, e.Reason)
}

// timeLayouts are tried in order for timestamps that are neither 10-digit
// unix seconds nor 13-digit unix milliseconds. Naive layouts parse as UTC.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ParseTimestamp interprets a raw time field as unix seconds.
// Exactly 10 digits read as unix seconds, exactly 13 as unix milliseconds
// floored to seconds; anything else, digit runs of other lengths included,
// goes through the layout list.
func ParseTimestamp(s string) (int64, bool) {
	if isDigits(s) {
		switch len(s) {
		case 10:
			if v, err := strconv.ParseInt(s, 10, 64); err == nil {
				return v, true
			}
		case 13:
			if v, err := strconv.ParseInt(s, 10, 64); err == nil {
				return v / 1000, true
			}
		}
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Unix(), true
		}
	}
	return 0, false
}

// NormalizeRow converts one raw record into a TrackPoint, or rejects it
// with a *RejectError. line is the record's 1-based input ordinal.
// No plausibility checks happen here beyond coordinate domain bounds.
func NormalizeRow(record []string, cols ColumnIndex, line int) (*trackpoint.TrackPoint, error) {
	field := func(i int) (string, bool) {
		if i < 0 || i >= len(record) {
			return "", false
		}
		s := strings.TrimSpace(record[i])
		return s, s != ""
	}

	latRaw, latOK := field(cols.Lat)
	lonRaw, lonOK := field(cols.Lon)
	timeRaw, timeOK := field(cols.Time)
	if !latOK || !lonOK || !timeOK {
		return nil, &RejectError{Line: line, Reason: RejectMissingField}
	}

	lat, latErr := strconv.ParseFloat(latRaw, 64)
	lon, lonErr := strconv.ParseFloat(lonRaw, 64)
	if latErr != nil || lonErr != nil {
		return nil, &RejectError{Line: line, Reason: RejectNonNumeric}
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return nil, &RejectError{Line: line, Reason: RejectOutOfBounds}
	}

	unix, ok := ParseTimestamp(timeRaw)
	if !ok {
		return nil, &RejectError{Line: line, Reason: RejectBadTimestamp}
	}

	return &trackpoint.TrackPoint{
		Unix:       unix,
		Lat:        lat,
		Lon:        lon,
		SourceLine: line,
	}, nil
}
