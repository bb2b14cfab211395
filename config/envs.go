package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	Seed         int64 // Seed for the random source
	SeedSet      bool  // Whether MAZE_SEED was given; otherwise the seed comes from the clock
	StartX       int   // Column the corridor generator starts from
	StartY       int   // Row the corridor generator starts from
	ConnectRooms bool  // Whether each room gets a door into the corridors
	Color        bool  // Whether the maze is rendered with colors
	Verbose      bool  // Whether generation logs are written to stderr
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[APP] [WARN] .env file could not be loaded: %v", err)
	}
	return Load()
}

// Load reads the configuration from the current environment.
func Load() Config {
	seed, seedSet := lookupEnvAsInt64("MAZE_SEED")
	return Config{
		Seed:         seed,
		SeedSet:      seedSet,
		StartX:       getEnvAsIntWithDefault("MAZE_START_X", 0),
		StartY:       getEnvAsIntWithDefault("MAZE_START_Y", 0),
		ConnectRooms: getEnvAsBoolWithDefault("MAZE_CONNECT_ROOMS", true),
		Color:        getEnvAsBoolWithDefault("MAZE_COLOR", false),
		Verbose:      getEnvAsBoolWithDefault("MAZE_VERBOSE", false),
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves an integer environment variable, falling back to the default
// when it is unset or malformed.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr := getEnvWithDefault(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("[APP] [WARN] Environment variable %s must be an integer: %v", key, err)
		return defaultValue
	}
	return value
}

// lookupEnvAsInt64 retrieves an int64 environment variable and reports whether a valid value was set.
func lookupEnvAsInt64(key string) (int64, bool) {
	valueStr := getEnvWithDefault(key, "")
	if valueStr == "" {
		return 0, false
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		log.Printf("[APP] [WARN] Environment variable %s must be an integer: %v", key, err)
		return 0, false
	}
	return value, true
}

func getEnvAsBoolWithDefault(key string, defaultValue bool) bool {
	valueStr := getEnvWithDefault(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("[APP] [WARN] Environment variable %s must be a boolean: %v", key, err)
		return defaultValue
	}
	return value
}
