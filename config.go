package landing

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/fashflow/landing/views"
)

// SiteConfig holds all configuration for the landing site.
type SiteConfig struct {
	Name string `validate:"required"`     // Site name (default "FashFlow")
	URL  string `validate:"required,url"` // Canonical URL (default "https://fashflow.app")

	Addr      string `validate:"required"` // Listen address (default ":3000")
	StaticDir string `validate:"required"` // User-owned assets served under /public (default "public")

	PageCacheTTL time.Duration `validate:"gt=0"` // Rendered page lifetime (default 10m)
	RateLimit    int           // Requests per RateWindow per IP; negative disables (default 120)
	RateWindow   time.Duration `validate:"gt=0"` // (default 1m)

	WatchAssets bool   // Rebuild the asset manifest when StaticDir changes
	Profiling   bool   // Mount pprof under /debug/pprof
	LogLevel    string `validate:"oneof=debug info warn error"` // (default "info")
}

var validate = validator.New()

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = views.SiteName
	}
	if c.URL == "" {
		c.URL = views.DefaultURL
	}
	c.URL = strings.TrimSuffix(c.URL, "/")
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.PageCacheTTL == 0 {
		c.PageCacheTTL = 10 * time.Minute
	}
	if c.RateLimit == 0 {
		c.RateLimit = 120
	}
	if c.RateWindow == 0 {
		c.RateWindow = time.Minute
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	c.LogLevel = strings.ToLower(c.LogLevel)
}

// Validate reports every field that fails its constraint.
func (c SiteConfig) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("landing: invalid config: %w", err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s must satisfy %s", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("landing: invalid config: %s", strings.Join(msgs, "; "))
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App after the built-in routes are mounted.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithViews replaces the built-in page templates.
func WithViews(v ViewFuncs) Option {
	return func(a *App) {
		a.Views = v
	}
}
