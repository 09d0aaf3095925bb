package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var outDir string

func init() {
	buildCmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (default: out_dir from the config)")
	rootCmd.AddCommand(buildCmd)
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render the site to static files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := loadApp()
		if err != nil {
			return err
		}

		dir := outDir
		if dir == "" {
			dir = filepath.Join(configDir, app.Config.OutDir)
		}
		dir, err = filepath.Abs(dir)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}

		report, err := app.Build(cmd.Context(), afero.NewBasePathFs(afero.NewOsFs(), dir))
		for _, bl := range report.BrokenLinks {
			fmt.Fprintf(cmd.ErrOrStderr(), "broken link in %s: %s\n", bl.Page, bl.Href)
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Built %d pages into %s\n", report.Pages, dir)
		return nil
	},
}
