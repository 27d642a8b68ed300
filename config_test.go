package landing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSiteConfigDefaults(t *testing.T) {
	var cfg SiteConfig
	cfg.setDefaults()

	assert.Equal(t, "FashFlow", cfg.Name)
	assert.Equal(t, "https://fashflow.app", cfg.URL)
	assert.Equal(t, ":3000", cfg.Addr)
	assert.Equal(t, "public", cfg.StaticDir)
	assert.Equal(t, 10*time.Minute, cfg.PageCacheTTL)
	assert.Equal(t, 120, cfg.RateLimit)
	assert.Equal(t, time.Minute, cfg.RateWindow)
	assert.Equal(t, "info", cfg.LogLevel)
	require.NoError(t, cfg.Validate())
}

func TestSiteConfigNormalises(t *testing.T) {
	cfg := SiteConfig{URL: "https://example.com/", LogLevel: "DEBUG", RateLimit: -1}
	cfg.setDefaults()

	assert.Equal(t, "https://example.com", cfg.URL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, -1, cfg.RateLimit)
	assert.NoError(t, cfg.Validate())
}

func TestSiteConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SiteConfig)
		want   string
	}{
		{"bad url", func(c *SiteConfig) { c.URL = "not a url" }, "URL must satisfy url"},
		{"bad level", func(c *SiteConfig) { c.LogLevel = "verbose" }, "LogLevel must satisfy oneof=debug info warn error"},
		{"negative ttl", func(c *SiteConfig) { c.PageCacheTTL = -time.Second }, "PageCacheTTL must satisfy gt=0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg SiteConfig
			cfg.setDefaults()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "landing: invalid config")
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
