package config

import (
	"os"
	"strconv"
	"time"
)

// Seed reads the SEED env variable, falling back to the wall clock so
// every run gets a fresh one. The driver logs the value it ended up with
// so failing runs can be replayed.
func Seed() uint64 {
	if s, ok := os.LookupEnv("SEED"); ok {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			return v
		}
	}
	return uint64(time.Now().UnixNano())
}

func LogLevel() string {
	return os.Getenv("AAT_LOG_LEVEL")
}

func LogFile() string {
	return os.Getenv("AAT_LOG_FILE")
}
