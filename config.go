package main

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ReducedMotion   bool
	Mouse           bool
	Locale          string
	SaveDirectory   string
	LogFile         string
	SubmitURL       string
	AutoAdvance     time.Duration
	SwipeThreshold  int
	TrailFactor     float64
	CounterDuration time.Duration
	CounterStagger  time.Duration
}

func defaultConfig() *Config {
	return &Config{
		ReducedMotion:   false,
		Mouse:           true,
		Locale:          "en",
		SaveDirectory:   "",
		LogFile:         "",
		SubmitURL:       "",
		AutoAdvance:     defaultAutoAdvance,
		SwipeThreshold:  defaultSwipeThreshold,
		TrailFactor:     defaultTrailFactor,
		CounterDuration: defaultCounterDuration,
		CounterStagger:  defaultCounterStagger,
	}
}

func loadConfig() *Config {
	config := defaultConfig()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return config
	}

	configPath := filepath.Join(homeDir, ".vitrinerc")
	file, err := os.Open(configPath)
	if err != nil {
		return config
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
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
		case "reduced_motion", "reducedmotion":
			config.ReducedMotion = strings.ToLower(value) == "true"
		case "mouse":
			config.Mouse = strings.ToLower(value) == "true"
		case "locale":
			config.Locale = value
		case "savedirectory", "save_directory", "savedir":
			if strings.HasPrefix(value, "~") {
				value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
			}
			if !filepath.IsAbs(value) {
				if absPath, err := filepath.Abs(value); err == nil {
					value = absPath
				}
			}
			config.SaveDirectory = value
		case "log_file", "logfile":
			if strings.HasPrefix(value, "~") {
				value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
			}
			config.LogFile = value
		case "submit_url", "submiturl":
			config.SubmitURL = value
		case "carousel_interval_ms", "autoadvance_ms":
			if ms, err := strconv.Atoi(value); err == nil && ms > 0 {
				config.AutoAdvance = time.Duration(ms) * time.Millisecond
			}
		case "swipe_threshold":
			if n, err := strconv.Atoi(value); err == nil && n > 0 {
				config.SwipeThreshold = n
			}
		case "trail_factor":
			if f, err := strconv.ParseFloat(value, 64); err == nil && f > 0 && f <= 1 {
				config.TrailFactor = f
			}
		case "counter_duration_ms":
			if ms, err := strconv.Atoi(value); err == nil && ms > 0 {
				config.CounterDuration = time.Duration(ms) * time.Millisecond
			}
		case "counter_stagger_ms":
			if ms, err := strconv.Atoi(value); err == nil && ms >= 0 {
				config.CounterStagger = time.Duration(ms) * time.Millisecond
			}
		}
	}

	return config
}

func (c *Config) GetSavePath(filename string) string {
	if c.SaveDirectory == "" {
		return filename
	}
	os.MkdirAll(c.SaveDirectory, 0755)
	return filepath.Join(c.SaveDirectory, filename)
}

func (c *Config) GetLogPath() string {
	if c.LogFile != "" {
		return c.LogFile
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".vitrine.log")
}
