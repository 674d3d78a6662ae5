package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lrc/internal/deps"
	"lrc/internal/logging"
)

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Report whether the configured transcoder can be found",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			svc, err := ctx.service(out)
			if err != nil {
				return err
			}
			record, saved, err := ctx.loadOrDefault(svc)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Config: %s\n", ctx.configPath)
			fmt.Fprintf(out, "Settings: %s (saved: %s)\n", ctx.store.Path(), yesNo(saved))
			fmt.Fprintf(out, "Log file: %s\n", cfg.LogPath())

			status := deps.CheckTranscoder(record.FFmpegLocation)
			state := "ok"
			if !status.Available {
				state = "missing"
			}
			rows := [][]string{{status.Name, status.Description, status.Command, state, status.Detail}}
			writeTable(out, []string{"Dependency", "Used For", "Command", "Status", "Detail"}, rows)

			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			logger.Named(cliLoggerName).Info("transcoder check",
				logging.String("command", status.Command),
				logging.Bool("available", status.Available),
			)
			return nil
		},
	}
}
