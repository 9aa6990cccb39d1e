package dashboard

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/travigo/busload/pkg/ctdf"
	"github.com/travigo/busload/pkg/occupancy"
)

// EntryFilter is a compiled boolean expression over a schedule entry, for
// example `occupancy >= 90 && trend != "down"`.
type EntryFilter struct {
	Expression string
	program    *vm.Program
}

func filterEnvironment(entry *ctdf.ScheduleEntry) map[string]any {
	return map[string]any{
		"time":          entry.Time,
		"passengers":    entry.Passengers,
		"avgPassengers": entry.AvgPassengers,
		"occupancy":     entry.Occupancy,
		"trend":         string(entry.Trend),
		"busType":       entry.BusType,
		"tier":          occupancy.Classify(entry.Occupancy).String(),
	}
}

func CompileFilter(expression string) (*EntryFilter, error) {
	program, err := expr.Compile(expression, expr.Env(filterEnvironment(&ctdf.ScheduleEntry{})), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile filter: %w", err)
	}

	return &EntryFilter{
		Expression: expression,
		program:    program,
	}, nil
}

// Apply returns the matching entries in their original order.
func (f *EntryFilter) Apply(entries []*ctdf.ScheduleEntry) ([]*ctdf.ScheduleEntry, error) {
	matched := []*ctdf.ScheduleEntry{}

	for _, entry := range entries {
		output, err := expr.Run(f.program, filterEnvironment(entry))
		if err != nil {
			return nil, fmt.Errorf("run filter on %s: %w", entry.Time, err)
		}

		if output.(bool) {
			matched = append(matched, entry)
		}
	}

	return matched, nil
}
