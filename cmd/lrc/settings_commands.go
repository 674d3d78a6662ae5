package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"lrc/internal/audio"
	"lrc/internal/config"
	"lrc/internal/settings"
)

func newSettingsCommand(ctx *commandContext) *cobra.Command {
	settingsCmd := &cobra.Command{
		Use:   "settings",
		Short: "View and change user preferences",
	}

	settingsCmd.AddCommand(newSettingsShowCommand(ctx))
	settingsCmd.AddCommand(newSettingsInitCommand(ctx))
	settingsCmd.AddCommand(newSettingsSetCommand(ctx))
	settingsCmd.AddCommand(newSettingsFFmpegCommand(ctx))
	settingsCmd.AddCommand(newSettingsPathCommand(ctx))

	return settingsCmd
}

func newSettingsShowCommand(ctx *commandContext) *cobra.Command {
	var asTable bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the saved preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			svc, err := ctx.service(out)
			if err != nil {
				return err
			}
			if !svc.Exists() {
				fmt.Fprintln(out, "No settings saved yet; run `lrc settings init` to create them")
				return nil
			}
			record, err := svc.Load()
			if err != nil {
				return err
			}
			if !asTable && !isTerminal(out) {
				svc.Print()
				return nil
			}

			fields := append(settings.Describe(record),
				settings.Field{Label: "FFmpeg Location", Value: noneIfEmpty(record.FFmpegLocation)},
				settings.Field{Label: "Sample Rate", Value: fmt.Sprintf("%d Hz", record.AudioQuality.SampleRate())},
				settings.Field{Label: "File Extension", Value: record.OutputFormat.Extension()},
			)
			rows := make([][]string, 0, len(fields))
			for _, field := range fields {
				rows = append(rows, []string{field.Label, field.Value})
			}
			writeTable(out, []string{"Setting", "Value"}, rows)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asTable, "table", false, "Render as a table even when output is not a terminal")
	return cmd
}

func newSettingsInitCommand(ctx *commandContext) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Save default preferences on first run",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := ctx.service(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if svc.Exists() && !force {
				return fmt.Errorf("settings already exist at %s (use --force to reset them)", ctx.store.Path())
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			return svc.Save(settings.Defaults(cfg.Paths.DefaultProjectDir))
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing preferences with the defaults")
	return cmd
}

func newSettingsSetCommand(ctx *commandContext) *cobra.Command {
	var (
		quality    string
		format     string
		microphone string
		projectDir string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change one or more preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !flags.Changed("quality") && !flags.Changed("format") && !flags.Changed("microphone") && !flags.Changed("project-dir") {
				return fmt.Errorf("nothing to change (use --quality, --format, --microphone or --project-dir)")
			}

			svc, err := ctx.service(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			record, _, err := ctx.loadOrDefault(svc)
			if err != nil {
				return err
			}

			if flags.Changed("quality") {
				if record.AudioQuality, err = settings.ParseAudioQuality(quality); err != nil {
					return err
				}
			}
			if flags.Changed("format") {
				if record.OutputFormat, err = settings.ParseOutputMode(format); err != nil {
					return err
				}
			}
			if flags.Changed("microphone") {
				record.Microphone = strings.TrimSpace(microphone)
			}
			if flags.Changed("project-dir") {
				dir := strings.TrimSpace(projectDir)
				if dir != "" {
					if dir, err = config.ExpandPath(dir); err != nil {
						return fmt.Errorf("resolve project directory: %w", err)
					}
				}
				record.ProjectRootDir = dir
			}
			return svc.Save(record)
		},
	}

	cmd.Flags().StringVarP(&quality, "quality", "q", "", "Audio quality (Low, Normal, High, Highest)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (WAV, MP3, OGG, FLAC)")
	cmd.Flags().StringVarP(&microphone, "microphone", "m", "", "Microphone name; empty clears the choice")
	cmd.Flags().StringVarP(&projectDir, "project-dir", "p", "", "Root directory for projects")
	return cmd
}

func newSettingsFFmpegCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "ffmpeg <path|none>",
		Short: "Set the FFmpeg binary used for conversions",
		Long: "Set the FFmpeg binary used for conversions. Pass \"none\" to use the\n" +
			"ffmpeg found on PATH. The path is not checked; run `lrc doctor` to verify it.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			svc, err := ctx.service(out)
			if err != nil {
				return err
			}
			record, _, err := ctx.loadOrDefault(svc)
			if err != nil {
				return err
			}

			location := strings.TrimSpace(args[0])
			if strings.EqualFold(location, "none") {
				location = ""
			} else if location, err = config.ExpandPath(location); err != nil {
				return fmt.Errorf("resolve ffmpeg path: %w", err)
			}
			if err := svc.SetFFmpegLocation(&record, location); err != nil {
				return err
			}
			fmt.Fprintf(out, "Converter: %s\n", audio.Converter())
			return nil
		},
	}
}

func newSettingsPathCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show where preferences are stored",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := ctx.ensureStore()
			if err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Backend: %s\n", cfg.Store.Backend)
			fmt.Fprintf(out, "Location: %s\n", s.Path())
			fmt.Fprintf(out, "Saved: %s\n", yesNo(s.Exists()))
			return nil
		},
	}
}

func noneIfEmpty(value string) string {
	if value == "" {
		return "None"
	}
	return value
}
