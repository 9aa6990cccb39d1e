package redis_client

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/travigo/busload/pkg/util"
)

var Client *redis.Client

const defaultConnectionAddress = "localhost:6379"
const defaultConnectionPassword = ""
const defaultDatabase = 0

func Connect() error {
	env := util.GetEnvironmentVariables()

	address := util.GetConfigValue(env, "REDIS_ADDRESS", defaultConnectionAddress)
	password := util.GetConfigValue(env, "REDIS_PASSWORD", defaultConnectionPassword)
	database := defaultDatabase

	if databaseValue := util.GetConfigValue(env, "REDIS_DATABASE", ""); databaseValue != "" {
		n, err := strconv.Atoi(databaseValue)
		if err != nil {
			return err
		}
		database = n
	}

	Client = redis.NewClient(&redis.Options{
		Addr:     address,
		Password: password,
		DB:       database,
	})

	return Client.Ping(context.Background()).Err()
}
