package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "fashflow",
	Short: "Serve or export the FashFlow landing page",
	Long: `fashflow serves the FashFlow marketing site with Echo, or writes a static
build of it to a directory.

Settings come from flags, FASHFLOW_* environment variables, and a .env file
in the working directory, in that order of precedence.`,
	SilenceUsage: true,
}

func init() {
	// A missing .env is normal in production.
	_ = godotenv.Load()

	viper.SetEnvPrefix("FASHFLOW")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	flags := rootCmd.PersistentFlags()
	flags.String("name", "", "site name (default \"FashFlow\")")
	flags.String("url", "", "canonical site URL (default \"https://fashflow.app\")")
	flags.String("static-dir", "", "directory served under /public (default \"public\")")
	flags.String("log-level", "", "debug, info, warn or error (default \"info\")")
	for _, name := range []string{"name", "url", "static-dir", "log-level"} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
