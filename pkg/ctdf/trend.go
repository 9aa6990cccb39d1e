package ctdf

// Trend is static metadata describing how a run compares to its history.
// Values outside the constants below are kept as-is.
type Trend string

const (
	TrendStable   Trend = "stable"
	TrendUp       Trend = "up"
	TrendDown     Trend = "down"
	TrendCritical Trend = "critical"
)
