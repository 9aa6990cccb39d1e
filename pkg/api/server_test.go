package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/busload/pkg/ctdf"
	"github.com/travigo/busload/pkg/dashboard"
	"github.com/travigo/busload/pkg/dataaggregator"
	"github.com/travigo/busload/pkg/dataaggregator/source/catalog"
	"github.com/travigo/busload/pkg/occupancy"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	catalogSource, err := catalog.LoadDefault()
	require.NoError(t, err)

	aggregator := &dataaggregator.Aggregator{}
	aggregator.RegisterSource(catalogSource)

	return NewApp(aggregator)
}

func doRequest(t *testing.T, app *fiber.App, request *http.Request, into any) int {
	t.Helper()

	response, err := app.Test(request, -1)
	require.NoError(t, err)
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	require.NoError(t, err)

	if into != nil {
		require.NoError(t, json.Unmarshal(body, into), string(body))
	}

	return response.StatusCode
}

func get(t *testing.T, app *fiber.App, target string, into any) int {
	return doRequest(t, app, httptest.NewRequest(http.MethodGet, target, nil), into)
}

func TestVersion(t *testing.T) {
	var body map[string]string
	status := get(t, newTestApp(t), "/core/version", &body)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "v0.1", body["version"])
}

func TestLegend(t *testing.T) {
	var legend []map[string]string
	status := get(t, newTestApp(t), "/core/legend", &legend)

	require.Equal(t, fiber.StatusOK, status)
	require.Len(t, legend, 4)
	assert.Equal(t, "low", legend[0]["Tier"])
	assert.Equal(t, "bg-green-500", legend[0]["Color"])
	assert.Equal(t, "Crítica (≥90%)", legend[3]["Label"])
}

func TestListLines(t *testing.T) {
	app := newTestApp(t)

	var lines []map[string]any
	require.Equal(t, fiber.StatusOK, get(t, app, "/core/lines", &lines))
	require.Len(t, lines, 1)
	assert.Equal(t, "019", lines[0]["Identifier"])
	assert.Equal(t, "Biopark via CD", lines[0]["Route"])
	assert.NotContains(t, lines[0], "Schedules")
	assert.NotContains(t, lines[0], "DataSource")

	require.Equal(t, fiber.StatusOK, get(t, app, "/core/lines?search=biopark", &lines))
	assert.Len(t, lines, 1)

	require.Equal(t, fiber.StatusOK, get(t, app, "/core/lines?search=nowhere", &lines))
	assert.Empty(t, lines)
}

func TestGetLine(t *testing.T) {
	app := newTestApp(t)

	var line map[string]any
	require.Equal(t, fiber.StatusOK, get(t, app, "/core/lines/019", &line))
	assert.Equal(t, float64(45), line["Capacity"])
	assert.Len(t, line["DaysOfWeek"], 7)
	assert.NotContains(t, line, "DataSource")

	schedules, ok := line["Schedules"].(map[string]any)
	require.True(t, ok)
	assert.Len(t, schedules["ida"], 7)
	assert.Len(t, schedules["volta"], 3)

	var notFound map[string]string
	assert.Equal(t, fiber.StatusNotFound, get(t, app, "/core/lines/999", &notFound))
	assert.Equal(t, "Could not find Line matching Line Identifier", notFound["error"])
}

func TestLineOverview(t *testing.T) {
	var overview struct {
		Line       dashboard.LineHeader
		Directions []struct {
			Direction ctdf.Direction
			Summary   occupancy.Summary
		}
	}
	require.Equal(t, fiber.StatusOK, get(t, newTestApp(t), "/core/lines/019/overview", &overview))

	assert.Equal(t, "019", overview.Line.Identifier)
	require.Len(t, overview.Directions, 2)

	assert.Equal(t, ctdf.DirectionIda, overview.Directions[0].Direction)
	assert.Equal(t, 4, overview.Directions[0].Summary.CriticalCount)
	require.NotNil(t, overview.Directions[0].Summary.PeakTime)
	assert.Equal(t, "07:08", *overview.Directions[0].Summary.PeakTime)

	assert.Equal(t, ctdf.DirectionVolta, overview.Directions[1].Direction)
	assert.Equal(t, 3, overview.Directions[1].Summary.Entries)
}

func TestGetSchedule(t *testing.T) {
	app := newTestApp(t)

	var cells []dashboard.ScheduleCell
	require.Equal(t, fiber.StatusOK, get(t, app, "/core/lines/019/schedules/ida", &cells))
	require.Len(t, cells, 7)
	assert.Equal(t, "06:45", cells[0].Time)
	assert.Equal(t, occupancy.TierHigh, cells[0].Tier)
	assert.Equal(t, 45, cells[0].Capacity)
	assert.Equal(t, "↗", cells[1].Trend.Glyph)

	require.Equal(t, fiber.StatusOK, get(t, app, "/core/lines/019/schedules/Volta", &cells))
	assert.Len(t, cells, 3)

	var errorBody map[string]string
	assert.Equal(t, fiber.StatusBadRequest, get(t, app, "/core/lines/019/schedules/sideways", &errorBody))
	assert.NotEmpty(t, errorBody["error"])
}

func TestGetScheduleFiltered(t *testing.T) {
	app := newTestApp(t)

	var cells []dashboard.ScheduleCell
	target := "/core/lines/019/schedules/ida?filter=" + urlEncode(`occupancy >= 90 && trend != "stable"`)
	require.Equal(t, fiber.StatusOK, get(t, app, target, &cells))

	times := []string{}
	for _, cell := range cells {
		times = append(times, cell.Time)
	}
	assert.Equal(t, []string{"07:05", "07:08", "18:00"}, times)

	var errorBody map[string]string
	assert.Equal(t, fiber.StatusBadRequest, get(t, app, "/core/lines/019/schedules/ida?filter="+urlEncode("occupancy +"), &errorBody))
	assert.Contains(t, errorBody["error"], "compile filter")
}

func TestScheduleSummaryAndPeakHours(t *testing.T) {
	app := newTestApp(t)

	var summary occupancy.Summary
	require.Equal(t, fiber.StatusOK, get(t, app, "/core/lines/019/schedules/volta/summary", &summary))
	require.NotNil(t, summary.MeanOccupancy)
	assert.Equal(t, 81, *summary.MeanOccupancy)
	require.NotNil(t, summary.MeanAvgPassengers)
	assert.Equal(t, 34, *summary.MeanAvgPassengers)
	assert.Equal(t, 1, summary.CriticalCount)
	require.NotNil(t, summary.PeakTime)
	assert.Equal(t, "18:15", *summary.PeakTime)

	var ranking []dashboard.RankedEntry
	require.Equal(t, fiber.StatusOK, get(t, app, "/core/lines/019/schedules/ida/peak_hours", &ranking))
	require.Len(t, ranking, 5)
	assert.Equal(t, 1, ranking[0].Rank)
	assert.Equal(t, "07:08", ranking[0].Time)
	assert.Equal(t, "06:55", ranking[4].Time)

	assert.Equal(t, fiber.StatusNotFound, get(t, app, "/core/lines/404/schedules/ida/summary", nil))
}

func TestGetDashboard(t *testing.T) {
	app := newTestApp(t)

	var view dashboard.View
	require.Equal(t, fiber.StatusOK, get(t, app, "/core/dashboard", &view))
	assert.Equal(t, "019", view.State.LineIdentifier)
	assert.Equal(t, ctdf.DirectionIda, view.State.Direction)
	assert.Equal(t, dashboard.TabSchedule, view.State.ActiveTab)
	require.NotNil(t, view.Schedule)
	assert.Len(t, view.Schedule.Cells, 7)
	assert.Nil(t, view.Schedule.Detail)
	assert.Nil(t, view.Analytics)

	view = dashboard.View{}
	require.Equal(t, fiber.StatusOK, get(t, app, "/core/dashboard?line=019&direction=volta&tab=analytics&search=019", &view))
	require.NotNil(t, view.Analytics)
	assert.Len(t, view.Analytics.Chart, 3)
	assert.Equal(t, "18:15", view.Analytics.Ranking[0].Time)
	require.Len(t, view.SearchResults, 1)
	assert.Equal(t, "019", view.SearchResults[0].Identifier)

	assert.Equal(t, fiber.StatusBadRequest, get(t, app, "/core/dashboard?tab=timeline", nil))
	assert.Equal(t, fiber.StatusNotFound, get(t, app, "/core/dashboard?line=404", nil))
}

func TestPostDashboardEvent(t *testing.T) {
	app := newTestApp(t)

	post := func(body string, into any) int {
		request := httptest.NewRequest(http.MethodPost, "/core/dashboard", strings.NewReader(body))
		request.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

		return doRequest(t, app, request, into)
	}

	var response struct {
		State dashboard.State `json:"state"`
		View  dashboard.View  `json:"view"`
	}

	status := post(`{"state": {"LineIdentifier": "019", "Direction": "ida", "ActiveTab": "schedule"}, "event": {"type": "switch_direction", "value": "volta"}}`, &response)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, ctdf.DirectionVolta, response.State.Direction)
	require.NotNil(t, response.View.Schedule)
	assert.Len(t, response.View.Schedule.Cells, 3)

	status = post(`{"state": {"LineIdentifier": "019"}, "event": {"type": "toggle_time", "value": "07:08"}}`, &response)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "07:08", response.State.SelectedTime)
	require.NotNil(t, response.View.Schedule.Detail)
	require.Len(t, response.View.Schedule.Detail.Entries, 1)
	assert.Equal(t, 100, response.View.Schedule.Detail.Entries[0].Occupancy)

	var errorBody map[string]string
	assert.Equal(t, fiber.StatusBadRequest, post(`{"state": {"LineIdentifier": "019"}, "event": {"type": "teleport"}}`, &errorBody))
	assert.Contains(t, errorBody["error"], "unknown dashboard event")

	assert.Equal(t, fiber.StatusBadRequest, post(`not json`, nil))
}

func urlEncode(value string) string {
	return url.QueryEscape(value)
}
