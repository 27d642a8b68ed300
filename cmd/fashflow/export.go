package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fashflow/landing"
)

var exportCmd = &cobra.Command{
	Use:   "export <dir>",
	Short: "Write a static build of the site to dir",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := landing.New(siteConfig())
		defer app.Close()

		res, err := app.Export(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, f := range res.Files {
			fmt.Fprintf(out, "  wrote %s\n", f)
		}
		fmt.Fprintf(out, "\nExported %d files to %s\n", len(res.Files), args[0])
		return nil
	},
}
