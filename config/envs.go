// Package config loads the labyrinth command settings from the environment
// and an optional .env file.
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvWidth    = "LABYRINTH_WIDTH"
	EnvHeight   = "LABYRINTH_HEIGHT"
	EnvSeed     = "LABYRINTH_SEED"
	EnvBraid    = "LABYRINTH_BRAID"
	EnvAddr     = "LABYRINTH_ADDR"
	EnvMaxDraws = "LABYRINTH_MAX_DRAWS"
	EnvGinMode  = "GIN_MODE"
)

// Defaults used when a variable is unset or malformed.
const (
	DefaultWidth    = 21
	DefaultHeight   = 21
	DefaultBraid    = 0.0
	DefaultAddr     = ":8080"
	DefaultMaxDraws = 10000
	DefaultGinMode  = "release"
)

// Config holds the command's configuration values.
type Config struct {
	Width    int     // lattice width in cells
	Height   int     // lattice height in cells
	Seed     int64   // generator seed, meaningful when HasSeed is set
	HasSeed  bool    // false means "seed from the clock"
	Braid    float64 // fraction of connector walls to open after generation
	Addr     string  // listen address for the HTTP server
	MaxDraws int     // generation draw cap
	GinMode  string  // Mode for the Gin framework (e.g., release, debug, test)
}

// Load reads the configuration. It first loads the given .env files (".env"
// when none are named) without overriding variables already set. A missing
// file or a malformed value is logged and the default is kept.
func Load(files ...string) Config {
	if err := godotenv.Load(files...); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	cfg := Config{
		Width:    getEnvAsInt(EnvWidth, DefaultWidth),
		Height:   getEnvAsInt(EnvHeight, DefaultHeight),
		Braid:    getEnvAsFloat(EnvBraid, DefaultBraid),
		Addr:     getEnvWithDefault(EnvAddr, DefaultAddr),
		MaxDraws: getEnvAsInt(EnvMaxDraws, DefaultMaxDraws),
		GinMode:  getEnvWithDefault(EnvGinMode, DefaultGinMode),
	}
	if s, ok := os.LookupEnv(EnvSeed); ok {
		seed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			log.Printf("[APP] [WARN] Environment variable %s must be an integer: %v", EnvSeed, err)
		} else {
			cfg.Seed, cfg.HasSeed = seed, true
		}
	}

	return cfg
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to defaultValue.
func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("[APP] [WARN] Environment variable %s must be an integer: %v", key, err)
		return defaultValue
	}
	return value
}

// getEnvAsFloat parses a float variable, falling back to defaultValue.
func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("[APP] [WARN] Environment variable %s must be a number: %v", key, err)
		return defaultValue
	}
	return value
}
