package dashboard

import (
	"github.com/travigo/busload/pkg/ctdf"
	"github.com/travigo/busload/pkg/occupancy"
)

type View struct {
	State  State
	Header LineHeader

	Schedule  *SchedulePanel  `json:",omitempty"`
	Analytics *AnalyticsPanel `json:",omitempty"`
	HeatMap   *HeatMapPanel   `json:",omitempty"`

	SearchResults []LineHeader `json:",omitempty"`
}

type LineHeader struct {
	Identifier string
	Number     string
	Type       string
	Route      string
	Capacity   int
}

type LegendItem struct {
	Tier  occupancy.Tier
	Color string
	Label string
}

type ScheduleCell struct {
	Time          string
	Passengers    int
	AvgPassengers int
	Capacity      int
	Occupancy     int
	BusType       string

	Tier  occupancy.Tier
	Color string
	Style string
	Trend occupancy.TrendIndicator

	Selected bool
}

type SchedulePanel struct {
	Summary occupancy.Summary
	Legend  []LegendItem
	Cells   []ScheduleCell

	// Detail is nil when no time is selected. A selected time with no matching
	// entry gives a Detail with no Entries.
	Detail *DetailPanel `json:",omitempty"`
}

type DetailPanel struct {
	Time    string
	Entries []DetailEntry
}

type DetailEntry struct {
	Passengers    int
	Capacity      int
	AvgPassengers int
	AvgWindow     string
	Occupancy     int
	ProgressWidth int
	Color         string
	Trend         occupancy.TrendIndicator
}

type ChartPoint struct {
	Time          string
	Passengers    int
	AvgPassengers int
}

type RankedEntry struct {
	Rank       int
	Time       string
	BusType    string
	Passengers int
	Occupancy  int
	Tier       occupancy.Tier
}

type AnalyticsPanel struct {
	Chart   []ChartPoint
	Ranking []RankedEntry
}

type HeatMapPanel struct {
	Available   bool
	Title       string
	Message     string
	Description string
}

const averageWindowLabel = "últimos 30 dias"

var heatMapPlaceholder = HeatMapPanel{
	Available:   false,
	Title:       "Mapa de Calor",
	Message:     "Integração com mapa de calor em desenvolvimento",
	Description: "O mapa de calor mostrará visualmente os pontos de maior concentração de passageiros ao longo da rota, permitindo identificar padrões de uso e otimizar o serviço.",
}

func NewLineHeader(line *ctdf.Line) LineHeader {
	return LineHeader{
		Identifier: line.Identifier,
		Number:     line.Number,
		Type:       line.Type,
		Route:      line.Route,
		Capacity:   line.Capacity,
	}
}

func Legend() []LegendItem {
	legend := []LegendItem{}
	for _, tier := range occupancy.Tiers {
		legend = append(legend, LegendItem{
			Tier:  tier,
			Color: tier.Color(),
			Label: tier.Label(),
		})
	}

	return legend
}

// ClassifyEntries decorates schedule entries with their tier and trend tokens.
func ClassifyEntries(entries []*ctdf.ScheduleEntry, capacity int) []ScheduleCell {
	cells := []ScheduleCell{}

	for _, entry := range entries {
		tier := occupancy.Classify(entry.Occupancy)

		cells = append(cells, ScheduleCell{
			Time:          entry.Time,
			Passengers:    entry.Passengers,
			AvgPassengers: entry.AvgPassengers,
			Capacity:      capacity,
			Occupancy:     entry.Occupancy,
			BusType:       entry.BusType,
			Tier:          tier,
			Color:         tier.Color(),
			Style:         tier.Style(),
			Trend:         occupancy.TrendIndicatorFor(entry.Trend),
		})
	}

	return cells
}

// RankedEntries is the peak hours ranking with 1-based rank numbers.
func RankedEntries(entries []*ctdf.ScheduleEntry) []RankedEntry {
	return numberRanking(occupancy.RankPeakHours(entries, occupancy.PeakHoursCount))
}

func numberRanking(peakHours []*ctdf.ScheduleEntry) []RankedEntry {
	ranking := []RankedEntry{}

	for index, entry := range peakHours {
		ranking = append(ranking, RankedEntry{
			Rank:       index + 1,
			Time:       entry.Time,
			BusType:    entry.BusType,
			Passengers: entry.Passengers,
			Occupancy:  entry.Occupancy,
			Tier:       occupancy.Classify(entry.Occupancy),
		})
	}

	return ranking
}

// Build derives everything the active tab displays from the line and state.
// Nothing is carried over from previous builds.
func Build(line *ctdf.Line, state State) (*View, error) {
	state, err := state.Normalise()
	if err != nil {
		return nil, err
	}

	entries, err := line.EntriesFor(state.Direction)
	if err != nil {
		return nil, err
	}

	view := &View{
		State:  state,
		Header: NewLineHeader(line),
	}

	switch state.ActiveTab {
	case TabSchedule:
		view.Schedule = buildSchedulePanel(line, entries, state)
	case TabAnalytics:
		view.Analytics = buildAnalyticsPanel(entries)
	case TabMap:
		heatMap := heatMapPlaceholder
		view.HeatMap = &heatMap
	}

	return view, nil
}

func buildSchedulePanel(line *ctdf.Line, entries []*ctdf.ScheduleEntry, state State) *SchedulePanel {
	panel := &SchedulePanel{
		Summary: occupancy.Summarize(entries),
		Legend:  Legend(),
		Cells:   ClassifyEntries(entries, line.Capacity),
	}

	for i := range panel.Cells {
		panel.Cells[i].Selected = state.SelectedTime != "" && panel.Cells[i].Time == state.SelectedTime
	}

	if state.SelectedTime != "" {
		panel.Detail = buildDetailPanel(line, entries, state.SelectedTime)
	}

	return panel
}

func buildDetailPanel(line *ctdf.Line, entries []*ctdf.ScheduleEntry, selectedTime string) *DetailPanel {
	detail := &DetailPanel{
		Time:    selectedTime,
		Entries: []DetailEntry{},
	}

	for _, entry := range entries {
		if entry.Time != selectedTime {
			continue
		}

		detail.Entries = append(detail.Entries, DetailEntry{
			Passengers:    entry.Passengers,
			Capacity:      line.Capacity,
			AvgPassengers: entry.AvgPassengers,
			AvgWindow:     averageWindowLabel,
			Occupancy:     entry.Occupancy,
			ProgressWidth: clampPercentage(entry.Occupancy),
			Color:         occupancy.Classify(entry.Occupancy).Color(),
			Trend:         occupancy.TrendIndicatorFor(entry.Trend),
		})
	}

	return detail
}

func buildAnalyticsPanel(entries []*ctdf.ScheduleEntry) *AnalyticsPanel {
	peakHours := occupancy.RankPeakHours(entries, occupancy.PeakHoursCount)

	panel := &AnalyticsPanel{
		Chart:   []ChartPoint{},
		Ranking: numberRanking(peakHours),
	}

	for _, entry := range peakHours {
		panel.Chart = append(panel.Chart, ChartPoint{
			Time:          entry.Time,
			Passengers:    entry.Passengers,
			AvgPassengers: entry.AvgPassengers,
		})
	}

	return panel
}

func clampPercentage(value int) int {
	if value < 0 {
		return 0
	}
	if value > 100 {
		return 100
	}
	return value
}
