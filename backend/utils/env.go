package utils

import (
	"os"
	"strconv"
	"time"
)

// GetEnv returns the value of key, or defaultValue when it is unset or empty.
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetDurationEnv parses key as a time.Duration ("1s", "250ms").
// A bare integer is read as milliseconds.
func GetDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if ms, err := strconv.Atoi(value); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	return defaultValue
}

// ListenAddress turns a port from the environment into a listen address.
func ListenAddress(port string) string {
	if port == "" {
		return ""
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
