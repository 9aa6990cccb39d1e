package cachedresults

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/busload/pkg/ctdf"
	"github.com/travigo/busload/pkg/dataaggregator/source"
)

type countingSource struct {
	lookups int
	lines   map[string]*ctdf.Line
}

func (s *countingSource) GetName() string {
	return "Counting"
}

func (s *countingSource) Supports() []reflect.Type {
	return []reflect.Type{reflect.TypeOf(ctdf.Line{}), reflect.TypeOf([]*ctdf.Line{})}
}

func (s *countingSource) Lookup(ctx context.Context, q any) (interface{}, error) {
	s.lookups++

	switch query := q.(type) {
	case ctdf.QueryLine:
		line, exists := s.lines[query.Identifier]
		if !exists {
			return nil, source.ErrLineNotFound
		}
		return line, nil
	case ctdf.QueryLines:
		lines := []*ctdf.Line{}
		for _, line := range s.lines {
			if query.Matches(line) {
				lines = append(lines, line)
			}
		}
		return lines, nil
	}

	return nil, source.ErrUnsupportedQuery
}

func newTestCache(t *testing.T) (*Source, *countingSource, *miniredis.Miniredis) {
	redisServer := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: redisServer.Addr()})

	inner := &countingSource{
		lines: map[string]*ctdf.Line{
			"019": {
				Identifier: "019",
				Number:     "019",
				Route:      "Biopark via CD",
				Capacity:   45,
				Schedules: map[ctdf.Direction][]*ctdf.ScheduleEntry{
					ctdf.DirectionIda:   {{Time: "07:08", Passengers: 45, AvgPassengers: 43, Occupancy: 100, Trend: ctdf.TrendCritical}},
					ctdf.DirectionVolta: {},
				},
			},
		},
	}

	return New(inner, client, time.Hour), inner, redisServer
}

func TestCachedLineLookup(t *testing.T) {
	cached, inner, redisServer := newTestCache(t)

	first, err := cached.Lookup(context.Background(), ctdf.QueryLine{Identifier: "019"})
	require.NoError(t, err)
	assert.Equal(t, 1, inner.lookups)
	assert.True(t, redisServer.Exists("busload/cachedresults/line/019"))

	second, err := cached.Lookup(context.Background(), ctdf.QueryLine{Identifier: "019"})
	require.NoError(t, err)
	assert.Equal(t, 1, inner.lookups)

	require.IsType(t, &ctdf.Line{}, second)
	assert.Equal(t, first, second)
	assert.Equal(t, 45, second.(*ctdf.Line).Schedules[ctdf.DirectionIda][0].Passengers)
}

func TestCachedLinesLookup(t *testing.T) {
	cached, inner, _ := newTestCache(t)

	for i := 0; i < 3; i++ {
		value, err := cached.Lookup(context.Background(), ctdf.QueryLines{Search: " Biopark "})
		require.NoError(t, err)
		require.IsType(t, []*ctdf.Line{}, value)
		assert.Len(t, value, 1)
	}

	assert.Equal(t, 1, inner.lookups)

	_, err := cached.Lookup(context.Background(), ctdf.QueryLines{Search: "biopark"})
	require.NoError(t, err)
	assert.Equal(t, 1, inner.lookups)
}

func TestCachedLookupExpires(t *testing.T) {
	cached, inner, redisServer := newTestCache(t)

	_, err := cached.Lookup(context.Background(), ctdf.QueryLine{Identifier: "019"})
	require.NoError(t, err)

	redisServer.FastForward(2 * time.Hour)

	_, err = cached.Lookup(context.Background(), ctdf.QueryLine{Identifier: "019"})
	require.NoError(t, err)
	assert.Equal(t, 2, inner.lookups)
}

func TestCachedLookupDoesNotCacheErrors(t *testing.T) {
	cached, inner, redisServer := newTestCache(t)

	for i := 0; i < 2; i++ {
		_, err := cached.Lookup(context.Background(), ctdf.QueryLine{Identifier: "404"})
		assert.True(t, errors.Is(err, source.ErrLineNotFound))
	}

	assert.Equal(t, 2, inner.lookups)
	assert.False(t, redisServer.Exists("busload/cachedresults/line/404"))
}

func TestCachedLookupPassesThroughOtherQueries(t *testing.T) {
	cached, inner, _ := newTestCache(t)

	_, err := cached.Lookup(context.Background(), "stops")
	assert.ErrorIs(t, err, source.ErrUnsupportedQuery)
	assert.Equal(t, 1, inner.lookups)

	assert.Equal(t, "Cached Counting", cached.GetName())
	assert.Equal(t, inner.Supports(), cached.Supports())
}
