package params

import "time"

type Config struct {
	SegmenterConfig
	ExportConfig
}

func DefaultConfig() Config {
	return Config{
		SegmenterConfig: DefaultSegmenterConfig,
		ExportConfig:    DefaultExportConfig,
	}
}

type SegmenterConfig struct {
	// GapInterval is the maximum elapsed time between consecutive samples
	// before a trip boundary is forced.
	GapInterval time.Duration

	// JumpDistanceKm is the maximum great-circle distance between consecutive
	// samples before a trip boundary is forced.
	// Covers GPS glitches and vehicle changes that a time gap misses.
	JumpDistanceKm float64
}

var DefaultSegmenterConfig = SegmenterConfig{
	GapInterval:    25 * time.Minute,
	JumpDistanceKm: 2.0,
}
