package dataimporter

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/travigo/busload/pkg/dataaggregator/global"
	"github.com/travigo/busload/pkg/dataaggregator/source/databaselookup"
)

// ImportCatalog loads a file catalog and upserts every line into MongoDB.
// The database must already be connected.
func ImportCatalog(ctx context.Context, catalogPath string) (int64, error) {
	startTime := time.Now()

	catalogSource, err := global.LoadCatalog(catalogPath)
	if err != nil {
		return 0, err
	}

	lines, err := catalogSource.Lines()
	if err != nil {
		return 0, err
	}

	count, err := databaselookup.ImportLines(ctx, lines)
	if err != nil {
		return 0, err
	}

	log.Info().
		Int("lines", len(lines)).
		Int64("written", count).
		Str("Length", time.Since(startTime).String()).
		Msg("Imported line catalog")

	return count, nil
}
