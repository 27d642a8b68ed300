package main

import (
	"github.com/spf13/viper"

	"github.com/fashflow/landing"
)

// siteConfig builds a SiteConfig from viper. Unset values stay zero so the
// App applies its own defaults.
func siteConfig() landing.SiteConfig {
	return landing.SiteConfig{
		Name:         viper.GetString("name"),
		URL:          viper.GetString("url"),
		Addr:         viper.GetString("addr"),
		StaticDir:    viper.GetString("static-dir"),
		PageCacheTTL: viper.GetDuration("page-cache-ttl"),
		RateLimit:    viper.GetInt("rate-limit"),
		RateWindow:   viper.GetDuration("rate-window"),
		WatchAssets:  viper.GetBool("watch"),
		Profiling:    viper.GetBool("pprof"),
		LogLevel:     viper.GetString("log-level"),
	}
}
