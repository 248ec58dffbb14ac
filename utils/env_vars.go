package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"
)

type EnvValue interface {
	string | int | bool | time.Duration
}

func parseEnv[V EnvValue](envVar, envValue string) V {
	var out V
	switch ptr := any(&out).(type) {
	case *string:
		*ptr = envValue
	case *int:
		intValue, err := strconv.Atoi(envValue)
		if err != nil {
			log.Fatalf("%s environment variable is not valid: '%s' is not an integer", envVar, envValue)
		}
		*ptr = intValue
	case *bool:
		boolValue, err := strconv.ParseBool(envValue)
		if err != nil {
			log.Fatalf("%s environment variable is not valid: '%s' cannot be converted to bool", envVar, envValue)
		}
		*ptr = boolValue
	case *time.Duration:
		durationValue, err := time.ParseDuration(envValue)
		if err != nil {
			log.Fatalf("%s environment variable is not valid: '%s' cannot be converted to duration", envVar, envValue)
		}
		*ptr = durationValue
	default:
		panic(fmt.Sprintf("unsupported type for environment variable %s", envVar))
	}
	return out
}

func GetEnv[V EnvValue](envVar string, defaultValue V) V {
	envValue, ok := os.LookupEnv(envVar)
	if !ok || envValue == "" {
		return defaultValue
	}
	return parseEnv[V](envVar, envValue)
}

func GetRequiredEnv[V EnvValue](envVar string) V {
	envValue, ok := os.LookupEnv(envVar)
	if !ok || envValue == "" {
		log.Fatalf("%s environment variable is required", envVar)
	}
	return parseEnv[V](envVar, envValue)
}
