package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/job-matcher/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		log, err := buildLogger(cfg)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		eng, cleanup, err := buildEngine(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}
		defer cleanup()

		srv := server.New(server.Config{
			Port:        cfg.Port,
			NumToSearch: cfg.NumToSearch,
			NumToShow:   cfg.NumToShow,
			Concurrency: cfg.Concurrency,
		}, eng, log)
		return srv.Run()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
