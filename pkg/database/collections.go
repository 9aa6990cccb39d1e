package database

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const LinesCollection = "lines"

func createIndexes(ctx context.Context) {
	createLinesIndexes(ctx)
}

func createLinesIndexes(ctx context.Context) {
	linesCollection := GetCollection(LinesCollection)
	linesIndex := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "identifier", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "number", Value: 1}},
		},
	}

	_, err := linesCollection.Indexes().CreateMany(ctx, linesIndex, options.CreateIndexes())
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}
