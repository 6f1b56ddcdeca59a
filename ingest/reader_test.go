package ingest

import (
	"strings"
	"testing"
)

func TestSniffDelimiter(t *testing.T) {
	cases := []struct {
		header string
		want   rune
	}{
		{"lat,lon,timestamp", ','},
		{"lat;lon;timestamp", ';'},
		{"lat\tlon\ttimestamp", '\t'},
		{"lat,lon,timestamp\n1;2;3", ','}, // only the first line counts
		{"lat", ','},                      // comma wins when nothing matches
	}
	for _, c := range cases {
		if got := SniffDelimiter([]byte(c.header)); got != c.want {
			t.Errorf("SniffDelimiter(%q) = %q, want %q", c.header, got, c.want)
		}
	}
}

type rejectRecorder struct {
	lines   []int
	reasons []Reason
}

func (r *rejectRecorder) reject(line int, reason Reason) {
	r.lines = append(r.lines, line)
	r.reasons = append(r.reasons, reason)
}

func TestReadTracks(t *testing.T) {
	in := strings.Join([]string{
		"name,lat,lon,timestamp",
		"a,46.93,-114.09,1731952467",
		"b,46.94,oops,1731952527",
		"c,46.95,-114.11,1731952587",
		"d,,-114.12,1731952647",
	}, "\n")

	rec := &rejectRecorder{}
	points, err := ReadTracks(strings.NewReader(in), rec.reject)
	if err != nil {
		t.Fatalf("ReadTracks error: %v", err)
	}

	if len(points) != 2 {
		t.Fatalf("got %d points, want 2", len(points))
	}
	if points[0].SourceLine != 2 || points[1].SourceLine != 4 {
		t.Errorf("source lines = %d, %d; want 2, 4", points[0].SourceLine, points[1].SourceLine)
	}

	if len(rec.lines) != 2 {
		t.Fatalf("got %d rejects, want 2", len(rec.lines))
	}
	if rec.lines[0] != 3 || rec.reasons[0] != RejectNonNumeric {
		t.Errorf("first reject = line %d %s", rec.lines[0], rec.reasons[0])
	}
	if rec.lines[1] != 5 || rec.reasons[1] != RejectMissingField {
		t.Errorf("second reject = line %d %s", rec.lines[1], rec.reasons[1])
	}
}

func TestReadTracksBlankLinesKeepPhysicalNumbering(t *testing.T) {
	// The codec skips blank lines without a record; line numbers must not
	// drift from the physical input line.
	in := strings.Join([]string{
		"lat,lon,timestamp",
		"0.0,0.0,1700000000",
		"",
		"0.0,0.01,bananas", // physical line 4
		"",
		"0.0,0.02,1700000120", // physical line 6
	}, "\n")

	rec := &rejectRecorder{}
	points, err := ReadTracks(strings.NewReader(in), rec.reject)
	if err != nil {
		t.Fatalf("ReadTracks error: %v", err)
	}

	if len(rec.lines) != 1 || rec.lines[0] != 4 || rec.reasons[0] != RejectBadTimestamp {
		t.Errorf("rejects = %v %v, want line 4 unparseable-timestamp", rec.lines, rec.reasons)
	}
	if len(points) != 2 {
		t.Fatalf("got %d points, want 2", len(points))
	}
	if points[0].SourceLine != 2 || points[1].SourceLine != 6 {
		t.Errorf("source lines = %d, %d; want 2, 6", points[0].SourceLine, points[1].SourceLine)
	}
}

func TestReadTracksSemicolon(t *testing.T) {
	in := "lat;lon;time\n0.0;0.01;1700000000\n"
	points, err := ReadTracks(strings.NewReader(in), func(int, Reason) {
		t.Fatal("unexpected reject")
	})
	if err != nil {
		t.Fatalf("ReadTracks error: %v", err)
	}
	if len(points) != 1 || points[0].Lon != 0.01 {
		t.Errorf("points = %v", points)
	}
}

func TestReadTracksMissingColumnFatal(t *testing.T) {
	in := "lat,speed,time\n1,2,1700000000\n"
	if _, err := ReadTracks(strings.NewReader(in), func(int, Reason) {}); err == nil {
		t.Fatal("want error for missing longitude column")
	}
}

func TestReadTracksEmptyBody(t *testing.T) {
	points, err := ReadTracks(strings.NewReader("lat,lon,time\n"), func(int, Reason) {
		t.Fatal("unexpected reject")
	})
	if err != nil {
		t.Fatalf("ReadTracks error: %v", err)
	}
	if len(points) != 0 {
		t.Errorf("got %d points, want 0", len(points))
	}
}
