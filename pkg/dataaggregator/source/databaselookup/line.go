package databaselookup

import (
	"context"
	"errors"

	"github.com/travigo/busload/pkg/ctdf"
	"github.com/travigo/busload/pkg/dataaggregator/source"
	"github.com/travigo/busload/pkg/database"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (s Source) LineQuery(ctx context.Context, query ctdf.QueryLine) (*ctdf.Line, error) {
	if query.Identifier == "" {
		return nil, source.ErrLineNotFound
	}

	collection := database.GetCollection(database.LinesCollection)

	var line *ctdf.Line
	err := collection.FindOne(ctx, query.ToBson()).Decode(&line)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, source.ErrLineNotFound
	} else if err != nil {
		return nil, err
	}

	return line, nil
}

func (s Source) LinesQuery(ctx context.Context, query ctdf.QueryLines) ([]*ctdf.Line, error) {
	collection := database.GetCollection(database.LinesCollection)

	opts := options.Find().SetSort(bson.D{{Key: "identifier", Value: 1}})
	cursor, err := collection.Find(ctx, query.ToBson(), opts)
	if err != nil {
		return nil, err
	}

	lines := []*ctdf.Line{}
	if err := cursor.All(ctx, &lines); err != nil {
		return nil, err
	}

	return lines, nil
}

// ImportLines upserts catalog lines into the lines collection keyed on identifier.
func ImportLines(ctx context.Context, lines []*ctdf.Line) (int64, error) {
	if len(lines) == 0 {
		return 0, nil
	}

	collection := database.GetCollection(database.LinesCollection)

	operations := []mongo.WriteModel{}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return 0, err
		}

		operation := mongo.NewReplaceOneModel()
		operation.SetFilter(bson.M{"identifier": line.Identifier})
		operation.SetReplacement(line)
		operation.SetUpsert(true)

		operations = append(operations, operation)
	}

	result, err := collection.BulkWrite(ctx, operations, options.BulkWrite().SetOrdered(false))
	if err != nil {
		return 0, err
	}

	return result.UpsertedCount + result.ModifiedCount, nil
}
