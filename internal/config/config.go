package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// EnvMusicPath names the environment variable carrying the music roots.
const EnvMusicPath = "MUSIC_LIBRARY_PATH"

const defaultListen = ":5000"

// Configuration represents entire service configuration
type Configuration struct {
	// Roots are the directories scanned for audio files
	Roots []string

	// Listen is the HTTP listen address
	Listen string
}

var config Configuration

// Load reads the optional configuration file and applies environment
// overrides. The music roots are required: a missing MUSIC_LIBRARY_PATH
// with no configured roots is a fatal configuration error.
func Load(configFilePath string) error {
	config = Configuration{Listen: defaultListen}

	if configFilePath != "" {
		data, err := os.ReadFile(configFilePath)
		if err != nil {
			if !os.IsNotExist(err) {
				return fmt.Errorf("read config %q: %w", configFilePath, err)
			}
		} else if err := json.Unmarshal(data, &config); err != nil {
			return fmt.Errorf("parse config %q: %w", configFilePath, err)
		}
	}

	if env := os.Getenv(EnvMusicPath); env != "" {
		config.Roots = splitRoots(env)
	}
	if config.Listen == "" {
		config.Listen = defaultListen
	}

	if len(config.Roots) == 0 {
		return fmt.Errorf("no music roots configured: set %s or the Roots config field", EnvMusicPath)
	}
	return nil
}

// Config returns loaded configuration
func Config() Configuration {
	return config
}

func splitRoots(value string) []string {
	var roots []string
	for _, p := range strings.Split(value, ",") {
		if p = strings.TrimSpace(p); p != "" {
			roots = append(roots, p)
		}
	}
	return roots
}
