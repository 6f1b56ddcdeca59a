// Package api wires the pipeline stages into a single run:
// read -> normalize -> sequence -> segment -> export.
package api

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/paulmach/orb/geojson"

	"tripcut/geo/tripsegmenter"
	"tripcut/ingest"
	"tripcut/params"
	"tripcut/types/trackpoint"
	"tripcut/types/triplap"
)

// RunResult summarizes one input-to-output pass.
type RunResult struct {
	OutputPath    string
	RejectLogPath string
	Samples       int
	Rejects       int
	Trips         int
}

// OutputPath derives the geometry document path from the input path by
// swapping its extension for .geojson, appending when the input has none.
func OutputPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	return strings.TrimSuffix(inputPath, ext) + params.GeoJSONExt
}

// RejectLogPath likewise derives the reject log path.
func RejectLogPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	return strings.TrimSuffix(inputPath, ext) + params.RejectLogExt
}

// Segment runs the whole pipeline over inputPath.
// Per-row rejects are logged and skipped; everything returned as an error
// here is fatal and produces no output document. A run with zero valid rows
// is not an error: it writes a well-formed, empty feature collection.
func Segment(inputPath string, config params.Config) (*RunResult, error) {
	result := &RunResult{
		OutputPath:    config.OutputPath,
		RejectLogPath: RejectLogPath(inputPath),
	}
	if result.OutputPath == "" {
		result.OutputPath = OutputPath(inputPath)
	}

	in, err := os.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	rejectFile, err := os.Create(result.RejectLogPath)
	if err != nil {
		return nil, fmt.Errorf("create reject log: %w", err)
	}
	defer rejectFile.Close()

	rejectLog := ingest.NewRejectLog(rejectFile)
	points, err := ingest.ReadTracks(in, func(line int, reason ingest.Reason) {
		result.Rejects++
		rejectLog.Reject(line, reason)
	})
	if err != nil {
		return nil, err
	}
	result.Samples = len(points)

	slices.SortStableFunc(points, trackpoint.SlicesSortFunc)

	trips := tripsegmenter.Segment(points, config.SegmenterConfig)

	fc := geojson.NewFeatureCollection()
	for _, trip := range trips {
		lap := triplap.NewTripLap(trip)
		if lap == nil {
			// Too short to draw a line. Dropped, not rejected.
			slog.Debug("Dropping short trip", "points", len(trip))
			continue
		}
		result.Trips++
		lap.Properties["id"] = fmt.Sprintf("trip_%d", result.Trips)
		lap.Properties["stroke"] = params.StrokePalette[(result.Trips-1)%len(params.StrokePalette)]
		lap.Properties["stroke-width"] = config.StrokeWidth
		fc.Append(lap.Feature())
	}

	data, err := fc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("marshal feature collection: %w", err)
	}
	if err := os.WriteFile(result.OutputPath, data, 0644); err != nil {
		return nil, fmt.Errorf("write output: %w", err)
	}
	return result, nil
}
