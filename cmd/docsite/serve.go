package main

import (
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/eringen/docsite/log"
)

var watch bool

func init() {
	serveCmd.Flags().BoolVarP(&watch, "watch", "w", false, "reload docs when files change")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := loadApp()
		if err != nil {
			return err
		}
		defer func() {
			_ = app.Close()
			_ = log.L().Sync()
		}()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if watch {
			if err := app.Watch(ctx, filepath.Join(configDir, app.Config.DocsDir)); err != nil {
				return err
			}
		}
		return app.Start(ctx)
	},
}
