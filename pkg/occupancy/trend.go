package occupancy

import "github.com/travigo/busload/pkg/ctdf"

type TrendIndicator struct {
	Glyph string
	Color string
	Label string
}

var neutralTrendIndicator = TrendIndicator{Glyph: "→", Color: "text-gray-600", Label: "Estável"}

var trendIndicators = map[ctdf.Trend]TrendIndicator{
	ctdf.TrendUp:       {Glyph: "↗", Color: "text-orange-600", Label: "Alta"},
	ctdf.TrendDown:     {Glyph: "↘", Color: "text-green-600", Label: "Baixa"},
	ctdf.TrendCritical: {Glyph: "⚠", Color: "text-red-600", Label: "Crítico"},
}

// TrendIndicatorFor returns the display glyph and color for a trend tag.
// Stable and any unrecognised tag fall back to the neutral indicator.
func TrendIndicatorFor(trend ctdf.Trend) TrendIndicator {
	if indicator, exists := trendIndicators[trend]; exists {
		return indicator
	}

	return neutralTrendIndicator
}
