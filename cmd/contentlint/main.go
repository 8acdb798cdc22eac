// Command contentlint checks the markdown content tree for authoring problems.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"stereos/internal/config"
	"stereos/internal/content"
	"stereos/internal/contentlint"
	"stereos/internal/logging"
)

const watchDebounce = 500 * time.Millisecond

// errFindings makes the process exit non-zero without printing a second message.
var errFindings = errors.New("content check failed")

func main() {
	cfg := config.Load()
	log := logging.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(cfg, log).ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errFindings) {
			fmt.Fprintln(os.Stderr, err)
		}
		stop()
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.AppConfig, log zerolog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           "contentlint",
		Short:         "Check guides, industry guides and topic hubs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("content", cfg.Content.Dir, "content directory")
	root.PersistentFlags().Bool("fail-on-warn", false, "treat warnings as failures")

	root.AddCommand(newCheckCmd(log), newWatchCmd(log))
	return root
}

func newCheckCmd(log zerolog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Lint the content tree once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, _ := cmd.Flags().GetString("content")
			failOnWarn, _ := cmd.Flags().GetBool("fail-on-warn")

			report, err := lintDir(cmd.Context(), dir, log, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if report.Errors() > 0 || (failOnWarn && report.Warnings() > 0) {
				return errFindings
			}
			return nil
		},
	}
}

func newWatchCmd(log zerolog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Lint the content tree on every change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, _ := cmd.Flags().GetString("content")
			out := cmd.OutOrStdout()

			run := func() {
				if _, err := lintDir(cmd.Context(), dir, log, out); err != nil {
					log.Error().Err(err).Msg("content check failed")
				}
			}
			run()
			return contentlint.Watch(cmd.Context(), dir, watchDebounce, log, run)
		},
	}
}

func lintDir(ctx context.Context, dir string, log zerolog.Logger, out io.Writer) (*contentlint.Report, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("content directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content directory: %s is not a directory", dir)
	}

	src := content.NewSource(os.DirFS(dir), nil, log)
	report, err := contentlint.Lint(ctx, src)
	if err != nil {
		return nil, err
	}
	report.Print(out)
	return report, nil
}
