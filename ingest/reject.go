package ingest

import (
	"fmt"
	"io"
	"log/slog"
)

// RejectFunc receives each rejected row with its 1-based input line number.
type RejectFunc func(line int, reason Reason)

// RejectLog writes one line per rejected row in the form "Line <n>: <reason>"
// and mirrors each to slog at Warn. The file is the contract surface; the
// log lines are operator convenience.
type RejectLog struct {
	w io.Writer
}

func NewRejectLog(w io.Writer) *RejectLog {
	return &RejectLog{w: w}
}

func (l *RejectLog) Reject(line int, reason Reason) {
	fmt.Fprintf(l.w, "Line %d: %s\n", line, reason)
	slog.Warn("Rejected row", "line", line, "reason", reason)
}
