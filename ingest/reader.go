// Package ingest reads delimited-text position samples: it resolves the
// required columns from the header row, normalizes each record into a
// trackpoint.TrackPoint, and reports rejected rows to a side channel.
package ingest

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"tripcut/types/trackpoint"
)

// sniffWindow bounds how far into the input the delimiter sniff looks.
const sniffWindow = 4096

// SniffDelimiter picks the delimiter from (comma, semicolon, tab) occurring
// most often in the first line of sample. Comma wins ties.
func SniffDelimiter(sample []byte) rune {
	if i := bytes.IndexByte(sample, '\n'); i >= 0 {
		sample = sample[:i]
	}
	delim, count := ',', bytes.Count(sample, []byte{','})
	for _, c := range []byte{';', '\t'} {
		if n := bytes.Count(sample, []byte{c}); n > count {
			delim, count = rune(c), n
		}
	}
	return delim
}

// ReadTracks scans the delimited input, resolves the three required columns
// from the header row, and normalizes every remaining row. Rejected rows go
// to reject and are excluded; they never halt the batch. Line numbers are
// physical input lines, 1-based with the header on line 1; blank lines the
// codec skips still count.
func ReadTracks(r io.Reader, reject RejectFunc) ([]*trackpoint.TrackPoint, error) {
	br := bufio.NewReader(r)
	sample, _ := br.Peek(sniffWindow)

	cr := csv.NewReader(br)
	cr.Comma = SniffDelimiter(sample)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols, err := ResolveColumns(header)
	if err != nil {
		return nil, err
	}

	points := make([]*trackpoint.TrackPoint, 0)
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// A row the codec cannot even split has no usable fields.
			line := 0
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				line = parseErr.Line
			}
			reject(line, RejectMissingField)
			continue
		}
		// The codec skips blank lines, so the physical input line comes
		// from the reader's own position, not a record counter.
		line, _ := cr.FieldPos(0)
		tp, err := NormalizeRow(record, cols, line)
		if err != nil {
			var re *RejectError
			if errors.As(err, &re) {
				reject(re.Line, re.Reason)
				continue
			}
			return nil, err
		}
		points = append(points, tp)
	}
	return points, nil
}
