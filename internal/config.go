/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config carries the settings shared by the viewer binaries.
type Config struct {
	TeamsURL    string
	FixturesURL string
	GroupsURL   string

	CacheBucket string
	CacheTTL    time.Duration

	ListenAddr     string
	RateLimit      float64
	AllowedOrigins []string

	DiscordPublicKey string
	DiscordBotToken  string
	DiscordAppID     string
	DiscordCmdID     string
}

// LoadConfig reads Config from the environment, first merging in a .env file
// from the working directory if one exists.
func LoadConfig() (*Config, error) {
	// a missing .env is normal outside of local development
	_ = godotenv.Load()

	return configFromEnv(os.Getenv)
}

func configFromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		TeamsURL:         getenv("WC_TEAMS_URL"),
		FixturesURL:      getenv("WC_FIXTURES_URL"),
		GroupsURL:        getenv("WC_GROUPS_URL"),
		CacheBucket:      getenv("WC_CACHE_BUCKET"),
		CacheTTL:         DefaultCacheTTL,
		ListenAddr:       getenv("WC_LISTEN_ADDR"),
		RateLimit:        DefaultRateLimit,
		AllowedOrigins:   []string{"*"},
		DiscordPublicKey: getenv("DISCORD_PUBLIC_KEY"),
		DiscordBotToken:  getenv("DISCORD_BOT_TOKEN"),
		DiscordAppID:     getenv("DISCORD_APP_ID"),
		DiscordCmdID:     getenv("DISCORD_CMD_ID"),
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = DefaultListenAddr
	}

	set := 0
	for _, u := range []string{cfg.TeamsURL, cfg.FixturesURL, cfg.GroupsURL} {
		if u != "" {
			set++
		}
	}
	if set != 0 && set != 3 {
		return nil, fmt.Errorf("WC_TEAMS_URL, WC_FIXTURES_URL and WC_GROUPS_URL must be set together")
	}

	if v := getenv("WC_CACHE_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid WC_CACHE_TTL: %w", err)
		}
		if ttl <= 0 {
			return nil, fmt.Errorf("WC_CACHE_TTL must be positive, got %v", ttl)
		}
		cfg.CacheTTL = ttl
	}

	if v := getenv("WC_RATE_LIMIT"); v != "" {
		rl, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid WC_RATE_LIMIT: %w", err)
		}
		if rl <= 0 {
			return nil, fmt.Errorf("WC_RATE_LIMIT must be positive, got %v", rl)
		}
		cfg.RateLimit = rl
	}

	if v := getenv("WC_ALLOWED_ORIGINS"); v != "" {
		cfg.AllowedOrigins = nil
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}

	return cfg, nil
}

// HasDatasetURLs reports whether remote dataset locations are configured;
// otherwise the embedded snapshot is used.
func (cfg *Config) HasDatasetURLs() bool {
	return cfg.TeamsURL != ""
}
