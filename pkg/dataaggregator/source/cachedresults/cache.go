package cachedresults

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/travigo/busload/pkg/ctdf"
	"github.com/travigo/busload/pkg/dataaggregator"
)

const keyPrefix = "busload/cachedresults"

// Source is a read-through cache in front of another data source. Only line
// data is cached; anything derived from it is always recomputed.
type Source struct {
	Source dataaggregator.DataSource
	Cache  *cache.Cache[string]
}

func New(source dataaggregator.DataSource, client *redis.Client, expiration time.Duration) *Source {
	redisStore := redisstore.NewRedis(client, store.WithExpiration(expiration))

	return &Source{
		Source: source,
		Cache:  cache.New[string](redisStore),
	}
}

func (s *Source) GetName() string {
	return fmt.Sprintf("Cached %s", s.Source.GetName())
}

func (s *Source) Supports() []reflect.Type {
	return s.Source.Supports()
}

func (s *Source) Lookup(ctx context.Context, q any) (interface{}, error) {
	var cacheKey string
	var decode func(string) (interface{}, error)

	switch query := q.(type) {
	case ctdf.QueryLine:
		cacheKey = fmt.Sprintf("%s/line/%s", keyPrefix, query.Identifier)
		decode = func(cachedJSON string) (interface{}, error) {
			var line *ctdf.Line
			err := json.Unmarshal([]byte(cachedJSON), &line)
			return line, err
		}
	case ctdf.QueryLines:
		cacheKey = fmt.Sprintf("%s/lines/%s", keyPrefix, strings.ToLower(strings.TrimSpace(query.Search)))
		decode = func(cachedJSON string) (interface{}, error) {
			lines := []*ctdf.Line{}
			err := json.Unmarshal([]byte(cachedJSON), &lines)
			return lines, err
		}
	default:
		return s.Source.Lookup(ctx, q)
	}

	if cachedJSON, err := s.Cache.Get(ctx, cacheKey); err == nil && cachedJSON != "" {
		value, err := decode(cachedJSON)
		if err == nil {
			log.Debug().Str("key", cacheKey).Msg("Cache hit")

			return value, nil
		}

		log.Error().Err(err).Str("key", cacheKey).Msg("Failed to decode cached value")
	}

	value, err := s.Source.Lookup(ctx, q)
	if err != nil {
		return nil, err
	}

	valueJSON, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}

	if err := s.Cache.Set(ctx, cacheKey, string(valueJSON)); err != nil {
		log.Error().Err(err).Str("key", cacheKey).Msg("Failed to store cached value")
	}

	return value, nil
}
