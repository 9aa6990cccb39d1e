package dataaggregator

import (
	"context"
	"errors"
	"reflect"

	"github.com/rs/zerolog/log"
	"github.com/travigo/busload/pkg/ctdf"
	"github.com/travigo/busload/pkg/dataaggregator/source"
)

// LineRepository is how the rest of busload reads the line catalog.
type LineRepository interface {
	GetLine(ctx context.Context, identifier string) (*ctdf.Line, error)
	ListLines(ctx context.Context, search string) ([]*ctdf.Line, error)
}

type Aggregator struct {
	Sources []DataSource
}

func (a *Aggregator) RegisterSource(source DataSource) {
	a.Sources = append(a.Sources, source)

	log.Debug().Str("name", source.GetName()).Msg("Registering new Data Source")
}

// Lookup asks every source that supports T in registration order and returns
// the first answer. Not found and unsupported answers move on to the next
// source, other failures are logged and also move on.
func Lookup[T any](ctx context.Context, a *Aggregator, query any) (T, error) {
	var empty T

	lookupType := reflect.TypeOf(*new(T))
	if lookupType.Kind() == reflect.Pointer {
		lookupType = lookupType.Elem()
	}

	lookupError := source.ErrUnsupportedQuery

	for _, dataSource := range a.Sources {
		matches := false

		for _, supportedType := range dataSource.Supports() {
			if lookupType == supportedType {
				matches = true
				break
			}
		}

		if !matches {
			continue
		}

		returnValue, err := dataSource.Lookup(ctx, query)

		if err == nil && returnValue != nil {
			value, ok := returnValue.(T)
			if !ok {
				log.Error().Str("source", dataSource.GetName()).Str("type", lookupType.String()).Msg("Data Source returned unexpected type")
				continue
			}

			return value, nil
		}

		switch {
		case err == nil, errors.Is(err, source.ErrUnsupportedQuery):
		case errors.Is(err, source.ErrLineNotFound):
			lookupError = err
		default:
			log.Error().Err(err).Str("source", dataSource.GetName()).Msg("Data Source lookup failed")

			if !errors.Is(lookupError, source.ErrLineNotFound) {
				lookupError = err
			}
		}
	}

	return empty, lookupError
}

func (a *Aggregator) GetLine(ctx context.Context, identifier string) (*ctdf.Line, error) {
	return Lookup[*ctdf.Line](ctx, a, ctdf.QueryLine{Identifier: identifier})
}

func (a *Aggregator) ListLines(ctx context.Context, search string) ([]*ctdf.Line, error) {
	return Lookup[[]*ctdf.Line](ctx, a, ctdf.QueryLines{Search: search})
}
