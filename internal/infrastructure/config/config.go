// Package config reads the service configuration from the environment.
// A .env file, when present, is loaded by the binaries before Load runs.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"agro_cart/internal/domain/recommendation"
	"agro_cart/internal/infrastructure/logging"
)

const (
	defaultPort           = 8080
	defaultAdvisorTimeout = 10 * time.Second
)

type Config struct {
	Port int

	// MarketplaceBaseURL is where hand-offs send the browser.
	MarketplaceBaseURL string

	// AdvisorURLs holds the base URL of the upstream agent serving each flow.
	AdvisorURLs    map[recommendation.Flow]string
	AdvisorTimeout time.Duration

	Logging logging.Config
}

func Load() Config {
	return Config{
		Port:               getenvInt("PORT", defaultPort),
		MarketplaceBaseURL: strings.TrimSpace(os.Getenv("MARKETPLACE_BASE_URL")),
		AdvisorURLs: map[recommendation.Flow]string{
			recommendation.FlowCropDiagnosis:     strings.TrimSpace(os.Getenv("DISEASE_AGENT_URL")),
			recommendation.FlowEquipmentAnalysis: strings.TrimSpace(os.Getenv("EQUIPMENT_AGENT_URL")),
			recommendation.FlowSchemeMarketplace: strings.TrimSpace(os.Getenv("SCHEME_AGENT_URL")),
		},
		AdvisorTimeout: getenvDuration("ADVISOR_TIMEOUT", defaultAdvisorTimeout),
		Logging: logging.Config{
			Level:  getenvDefault("LOG_LEVEL", "info"),
			Format: getenvDefault("LOG_FORMAT", "json"),
			Output: getenvDefault("LOG_OUTPUT", "stdout"),
		},
	}
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil || n <= 0 {
		return def
	}
	return n
}

// getenvDuration accepts Go durations ("1500ms") or plain seconds ("15").
func getenvDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil && d > 0 {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil && n > 0 {
		return time.Duration(n) * time.Second
	}
	return def
}
