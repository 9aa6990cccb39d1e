package util

import (
	"os"
	"strings"
)

// EnvironmentPrefix is prepended to every configuration variable busload reads.
const EnvironmentPrefix = "BUSLOAD_"

func GetEnvironmentVariables() map[string]string {
	environmentVariables := map[string]string{}

	for _, variable := range os.Environ() {
		pair := strings.SplitN(variable, "=", 2)
		if len(pair) != 2 {
			continue
		}

		environmentVariables[pair[0]] = pair[1]
	}

	return environmentVariables
}

// GetConfigValue reads BUSLOAD_<name> from env, falling back when it is unset or empty.
func GetConfigValue(env map[string]string, name string, fallback string) string {
	if value := env[EnvironmentPrefix+name]; value != "" {
		return value
	}

	return fallback
}
