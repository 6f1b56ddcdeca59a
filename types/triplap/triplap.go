// Package triplap builds the export view of a trip: a GeoJSON LineString
// feature annotated with derived motion statistics.
package triplap

import (
	"time"

	"github.com/montanaflynn/stats"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"tripcut/common"
	"tripcut/types/trackpoint"
)

// TripLap is a trip drawn as a line.
// It's an alias of geojson.Feature with definite LineString geometry,
// coordinates in GeoJSON's (lon, lat) order.
type TripLap geojson.Feature

func (tl TripLap) MarshalJSON() ([]byte, error) {
	return (geojson.Feature)(tl).MarshalJSON()
}

func (tl *TripLap) UnmarshalJSON(data []byte) error {
	return (*geojson.Feature)(tl).UnmarshalJSON(data)
}

func (tl *TripLap) Feature() *geojson.Feature {
	return (*geojson.Feature)(tl)
}

func (tl *TripLap) IsValid() bool {
	_, ok := tl.Geometry.(orb.LineString)
	return ok
}

// NewTripLap builds the line feature for one trip and installs its
// statistics. Trips need at least 2 points to form a line; anything shorter
// yields nil and is dropped from output without ceremony (it is not a
// reject). Statistics accumulate at full precision; rounding happens only
// here, at the property boundary.
func NewTripLap(points []*trackpoint.TrackPoint) *TripLap {
	if len(points) < 2 {
		return nil
	}

	ff := geojson.NewFeature(orb.LineString{})
	f := (*TripLap)(ff)

	first, last := points[0], points[len(points)-1]
	durationMin := float64(last.Unix-first.Unix) / 60

	distanceKm := 0.0
	segmentSpeeds := make([]float64, 0, len(points)-1)

	for i := 0; i < len(points); i++ {
		point := points[i]
		f.Geometry = append(f.Geometry.(orb.LineString), point.Point())

		if i == 0 {
			continue
		}

		prev := points[i-1]
		segmentKm := common.HaversineKm(prev.Point(), point.Point())
		distanceKm += segmentKm

		segmentHours := float64(point.Unix-prev.Unix) / 3600
		if segmentHours <= 0 {
			// Shared timestamps contribute nothing, never infinity.
			continue
		}
		segmentSpeeds = append(segmentSpeeds, segmentKm/segmentHours)
	}

	avgSpeedKmh := 0.0
	if durationMin > 0 {
		avgSpeedKmh = distanceKm / (durationMin / 60)
	}

	statsMustFloat := func(fn func() (float64, error), def float64) float64 {
		out, err := fn()
		if err != nil {
			return def
		}
		return out
	}
	speedData := stats.Float64Data(segmentSpeeds)

	f.Properties["points"] = len(points)
	f.Properties["distance_km"] = common.DecimalToFixed(distanceKm, 3)
	f.Properties["duration_min"] = common.DecimalToFixed(durationMin, 1)
	f.Properties["avg_speed_kmh"] = common.DecimalToFixed(avgSpeedKmh, 2)
	f.Properties["max_speed_kmh"] = common.DecimalToFixed(statsMustFloat(speedData.Max, 0), 2)
	f.Properties["seg_speed_mean_kmh"] = common.DecimalToFixed(statsMustFloat(speedData.Mean, 0), 2)
	f.Properties["seg_speed_median_kmh"] = common.DecimalToFixed(statsMustFloat(speedData.Median, 0), 2)
	f.Properties["start_time"] = first.Time().Format(time.RFC3339)
	f.Properties["end_time"] = last.Time().Format(time.RFC3339)

	return f
}

// DistanceKm recomputes traversed distance from the geometry.
func (tl *TripLap) DistanceKm() (distance float64) {
	ls := tl.Geometry.(orb.LineString)
	for i := 1; i < len(ls); i++ {
		distance += common.HaversineKm(ls[i-1], ls[i])
	}
	return
}
