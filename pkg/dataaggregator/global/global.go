package global

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/travigo/busload/pkg/dataaggregator"
	"github.com/travigo/busload/pkg/dataaggregator/source/cachedresults"
	"github.com/travigo/busload/pkg/dataaggregator/source/catalog"
	"github.com/travigo/busload/pkg/dataaggregator/source/databaselookup"
	"github.com/travigo/busload/pkg/database"
	"github.com/travigo/busload/pkg/redis_client"
	"github.com/travigo/busload/pkg/util"
)

const defaultCacheTTL = "PT90M"

// Setup builds the aggregator. MongoDB is used when BUSLOAD_MONGODB_CONNECTION
// is set, cached in Redis when BUSLOAD_REDIS_ADDRESS is also set. The file
// catalog is always registered last.
func Setup(catalogPath string) (*dataaggregator.Aggregator, error) {
	env := util.GetEnvironmentVariables()

	aggregator := &dataaggregator.Aggregator{}

	if util.GetConfigValue(env, "MONGODB_CONNECTION", "") != "" {
		if err := database.Connect(); err != nil {
			return nil, err
		}

		var lineSource dataaggregator.DataSource = databaselookup.Source{}

		if util.GetConfigValue(env, "REDIS_ADDRESS", "") != "" {
			if err := redis_client.Connect(); err != nil {
				return nil, err
			}

			cacheTTL, err := util.ParseISO8601Duration(util.GetConfigValue(env, "CACHE_TTL", defaultCacheTTL))
			if err != nil {
				return nil, err
			}

			lineSource = cachedresults.New(lineSource, redis_client.Client, cacheTTL)
			log.Info().Str("ttl", cacheTTL.String()).Msg("Caching line lookups in Redis")
		}

		aggregator.RegisterSource(lineSource)
	}

	catalogSource, err := LoadCatalog(catalogPath)
	if err != nil {
		return nil, err
	}
	aggregator.RegisterSource(catalogSource)

	return aggregator, nil
}

// LoadCatalog loads the file catalog from catalogPath, then BUSLOAD_CATALOG_PATH,
// then the catalog embedded in the binary.
func LoadCatalog(catalogPath string) (*catalog.Source, error) {
	if catalogPath == "" {
		catalogPath = util.GetConfigValue(util.GetEnvironmentVariables(), "CATALOG_PATH", "")
	}

	startTime := time.Now()
	defer func() {
		log.Debug().Str("path", catalogPath).Str("Length", time.Since(startTime).String()).Msg("Catalog load")
	}()

	if catalogPath == "" {
		return catalog.LoadDefault()
	}

	return catalog.Load(catalogPath)
}
