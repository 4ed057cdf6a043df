package main

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	SaveDirectory   string
	TileWidth       int
	TileHeight      int
	Gap             int
	TopMargin       int
	MemorizePerTile time.Duration
	ShuffleInterval time.Duration
	MaxAttempts     int
	Seed            int64
	LogFile         string
	LogLevel        string
}

func defaultConfig() *Config {
	return &Config{
		SaveDirectory:   "",
		TileWidth:       defaultTileWidth,
		TileHeight:      defaultTileHeight,
		Gap:             defaultGap,
		TopMargin:       defaultTopMargin,
		MemorizePerTile: defaultMemorizePerTile,
		ShuffleInterval: defaultShuffleInterval,
		MaxAttempts:     defaultMaxAttempts,
		LogLevel:        "info",
	}
}

func loadConfig() *Config {
	config := defaultConfig()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		config.applyEnv()
		return config
	}

	configPath := filepath.Join(homeDir, ".memorizerc")
	if file, err := os.Open(configPath); err == nil {
		config.parse(file, homeDir)
		file.Close()
	}

	config.applyEnv()
	return config
}

// parse reads key = value lines. Unknown keys and malformed values are
// skipped so a typo never keeps the game from starting.
func (c *Config) parse(r io.Reader, homeDir string) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "savedirectory", "save_directory", "savedir":
			c.SaveDirectory = expandPath(value, homeDir)
		case "tilewidth", "tile_width":
			setPositiveInt(&c.TileWidth, value)
		case "tileheight", "tile_height":
			setPositiveInt(&c.TileHeight, value)
		case "gap":
			if n, err := strconv.Atoi(value); err == nil && n >= 0 {
				c.Gap = n
			}
		case "topmargin", "top_margin":
			if n, err := strconv.Atoi(value); err == nil && n >= 0 {
				c.TopMargin = n
			}
		case "memorizepertile", "memorize_per_tile", "memorize":
			setDuration(&c.MemorizePerTile, value)
		case "shuffleinterval", "shuffle_interval", "interval":
			setDuration(&c.ShuffleInterval, value)
		case "maxattempts", "max_attempts":
			setPositiveInt(&c.MaxAttempts, value)
		case "seed":
			if n, err := strconv.ParseInt(value, 10, 64); err == nil {
				c.Seed = n
			}
		case "logfile", "log_file":
			c.LogFile = expandPath(value, homeDir)
		case "loglevel", "log_level":
			c.LogLevel = strings.ToLower(value)
		}
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv("MEMORIZE_LOG_FILE"); v != "" {
		c.LogFile = v
	}
	if v := os.Getenv("MEMORIZE_LOG_LEVEL"); v != "" {
		c.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv("MEMORIZE_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = n
		}
	}
}

func (c *Config) BoardSettings() BoardSettings {
	return BoardSettings{
		TileWidth:   c.TileWidth,
		TileHeight:  c.TileHeight,
		Gap:         c.Gap,
		TopMargin:   c.TopMargin,
		MaxAttempts: c.MaxAttempts,
	}
}

func (c *Config) GetSavePath(filename string) string {
	if c.SaveDirectory == "" {
		return filename
	}
	os.MkdirAll(c.SaveDirectory, 0755)
	return filepath.Join(c.SaveDirectory, filename)
}

func expandPath(value, homeDir string) string {
	if strings.HasPrefix(value, "~") && homeDir != "" {
		value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}

func setPositiveInt(dst *int, value string) {
	if n, err := strconv.Atoi(value); err == nil && n > 0 {
		*dst = n
	}
}

// setDuration accepts Go durations ("1500ms") or a bare number of seconds.
func setDuration(dst *time.Duration, value string) {
	if d, err := time.ParseDuration(value); err == nil && d > 0 {
		*dst = d
		return
	}
	if secs, err := strconv.ParseFloat(value, 64); err == nil && secs > 0 {
		*dst = time.Duration(secs * float64(time.Second))
	}
}
