package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ayusman/palmtrace/internal/app"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// errSessionFailed marks errors the session has already logged.
var errSessionFailed = errors.New("session failed")

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := newRootCmd(logger).Execute(); err != nil {
		report(logger, err)
		os.Exit(1)
	}
}

// report logs command errors, such as bad flags, that never reached a session.
func report(log logrus.FieldLogger, err error) {
	if errors.Is(err, errSessionFailed) {
		return
	}
	log.WithError(err).Error("palmtrace failed")
}

func newRootCmd(logger *logrus.Logger) *cobra.Command {
	cfg := app.DefaultConfig()

	cmd := &cobra.Command{
		Use:           "palmtrace",
		Short:         "Live hand landmark overlay from a camera",
		Long:          "palmtrace mirrors the camera feed, detects hands and draws their keypoints,\nskeleton and a Left/Right label. Press q in the window to quit.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Logger = logger
			if err := app.New(cfg).Run(); err != nil {
				return fmt.Errorf("%w: %w", errSessionFailed, err)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&cfg.MaxHands, "max-hands", cfg.MaxHands, "maximum number of hands to detect per frame")

	return cmd
}
