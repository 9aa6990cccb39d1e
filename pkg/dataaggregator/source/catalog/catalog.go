package catalog

import (
	"context"
	"reflect"

	"github.com/jinzhu/copier"
	"github.com/travigo/busload/pkg/ctdf"
	"github.com/travigo/busload/pkg/dataaggregator/source"
	"golang.org/x/exp/slices"
)

// Source serves lines from a catalog loaded once at startup. Every lookup
// returns deep copies so the catalog itself cannot be modified by callers.
type Source struct {
	lines map[string]*ctdf.Line
	order []string
}

func (s *Source) GetName() string {
	return "Line Catalog"
}

func (s *Source) Supports() []reflect.Type {
	return []reflect.Type{
		reflect.TypeOf(ctdf.Line{}),
		reflect.TypeOf([]*ctdf.Line{}),
	}
}

func (s *Source) Lookup(ctx context.Context, q any) (interface{}, error) {
	switch query := q.(type) {
	case ctdf.QueryLine:
		return s.LineQuery(query)
	case ctdf.QueryLines:
		return s.LinesQuery(query)
	default:
		return nil, source.ErrUnsupportedQuery
	}
}

func (s *Source) LineQuery(query ctdf.QueryLine) (*ctdf.Line, error) {
	line, exists := s.lines[query.Identifier]
	if !exists {
		return nil, source.ErrLineNotFound
	}

	return copyLine(line)
}

func (s *Source) LinesQuery(query ctdf.QueryLines) ([]*ctdf.Line, error) {
	identifiers := slices.Clone(s.order)
	slices.Sort(identifiers)

	lines := []*ctdf.Line{}

	for _, identifier := range identifiers {
		line := s.lines[identifier]
		if !query.Matches(line) {
			continue
		}

		lineCopy, err := copyLine(line)
		if err != nil {
			return nil, err
		}
		lines = append(lines, lineCopy)
	}

	return lines, nil
}

// Lines returns copies of every line in load order.
func (s *Source) Lines() ([]*ctdf.Line, error) {
	lines := []*ctdf.Line{}

	for _, identifier := range s.order {
		lineCopy, err := copyLine(s.lines[identifier])
		if err != nil {
			return nil, err
		}
		lines = append(lines, lineCopy)
	}

	return lines, nil
}

func copyLine(line *ctdf.Line) (*ctdf.Line, error) {
	var lineCopy ctdf.Line
	if err := copier.CopyWithOption(&lineCopy, line, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}

	return &lineCopy, nil
}
