package main

import (
	"os"
)

const defaultConfigPath = "bondcache.yaml"

// GetConfigPath resolves the config file path with the following priority:
// 1. BONDCACHE_CONFIG_FILE environment variable
// 2. bondcache.yaml in the working directory, if it exists
// 3. Empty string, meaning run on built-in defaults
func GetConfigPath() string {
	if path := os.Getenv("BONDCACHE_CONFIG_FILE"); path != "" {
		return path
	}

	if _, err := os.Stat(defaultConfigPath); err == nil {
		return defaultConfigPath
	}

	return ""
}
