package main

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/eringen/docsite"
	"github.com/eringen/docsite/log"
)

var (
	configDir string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:               "docsite",
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	Short:             "docsite is a documentation site engine built with Go, Echo, and templ",
	SilenceUsage:      true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log.SetDebug(verbose)
		err := godotenv.Load(filepath.Join(configDir, ".env"))
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configDir, "config", "c", ".", "directory holding "+docsite.ConfigName+".yaml")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// loadApp reads the configuration and builds an App rooted at configDir.
func loadApp() (*docsite.App, error) {
	cfg, err := docsite.LoadConfig(configDir)
	if err != nil {
		return nil, err
	}
	root, err := filepath.Abs(configDir)
	if err != nil {
		return nil, err
	}
	return docsite.New(cfg, docsite.WithFs(afero.NewBasePathFs(afero.NewOsFs(), root))), nil
}
