package databaselookup

import (
	"context"
	"reflect"

	"github.com/travigo/busload/pkg/ctdf"
	"github.com/travigo/busload/pkg/dataaggregator/source"
)

type Source struct {
}

func (s Source) GetName() string {
	return "Database Lookup"
}

func (s Source) Supports() []reflect.Type {
	return []reflect.Type{
		reflect.TypeOf(ctdf.Line{}),
		reflect.TypeOf([]*ctdf.Line{}),
	}
}

func (s Source) Lookup(ctx context.Context, q any) (interface{}, error) {
	switch query := q.(type) {
	case ctdf.QueryLine:
		return s.LineQuery(ctx, query)
	case ctdf.QueryLines:
		return s.LinesQuery(ctx, query)
	}

	return nil, source.ErrUnsupportedQuery
}
