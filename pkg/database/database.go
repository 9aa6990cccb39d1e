package database

import (
	"context"
	"time"

	"github.com/travigo/busload/pkg/util"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoInstance struct {
	Client   *mongo.Client
	Database *mongo.Database
}

var MongoGlobalInstance *MongoInstance

const defaultMongoConnectionString = "mongodb://localhost:27017/"
const defaultMongoDatabase = "busload"

func Connect() error {
	env := util.GetEnvironmentVariables()

	connectionString := util.GetConfigValue(env, "MONGODB_CONNECTION", defaultMongoConnectionString)
	dbName := util.GetConfigValue(env, "MONGODB_DATABASE", defaultMongoDatabase)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(connectionString))
	if err != nil {
		return err
	}

	MongoGlobalInstance = &MongoInstance{
		Client:   client,
		Database: client.Database(dbName),
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		return err
	}

	createIndexes(ctx)

	return nil
}

func Disconnect(ctx context.Context) error {
	if MongoGlobalInstance == nil {
		return nil
	}

	return MongoGlobalInstance.Client.Disconnect(ctx)
}

func GetCollection(collectionName string) *mongo.Collection {
	return MongoGlobalInstance.Database.Collection(collectionName)
}
