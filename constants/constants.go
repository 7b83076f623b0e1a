package constants

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

func getEnv(key string, fallback string) string {
	val := os.Getenv(key)
	if val != "" {
		return val
	}
	return fallback
}

func GetOutDir() string {
	return getEnv("OUT_PATH", "./out")
}

func GetSampleRate() uint32 {
	rate, err := strconv.ParseUint(getEnv("SAMPLE_RATE", "44100"), 10, 32)
	if err != nil || rate == 0 {
		return DefaultSampleRate
	}
	return uint32(rate)
}

func GetPort() string {
	return getEnv("PORT", "8080")
}

// GetDynamoEndpoint returns an empty string when chord labels are disabled.
func GetDynamoEndpoint() string {
	return os.Getenv("DYNAMO_ENDPOINT")
}

func GetDynamoTable() string {
	return getEnv("DYNAMO_TABLE", "twelvetet-chords")
}

func GetDynamoRegion() string {
	return getEnv("DYNAMO_REGION", "localhost")
}

func GetLogLevel() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

const DefaultSampleRate = 44100

const DefaultDuration = 5

// 16-bit WAV output
const BitDepth = 16

// samples are scaled by this before encoding so four summed voices fit [-1, 1]
const MaxAmplitude = 4.0
