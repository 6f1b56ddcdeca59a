package params

// Column-name candidates, matched case-insensitively against the header row.
// List order is priority order when a header carries more than one candidate.
var (
	LatColumnNames  = []string{"lat", "latitude", "y"}
	LonColumnNames  = []string{"lon", "lng", "longitude", "x"}
	TimeColumnNames = []string{"timestamp", "time", "datetime", "date", "ts", "iso8601"}
)
