package main

import (
	"context"
	"fmt"
	"os"

	"xestetik/internal/config"
	"xestetik/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const version = "1.0.0"

var (
	// Global flags
	configFile string

	cfg    *config.AppConfig
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:           "xestetik",
	Short:         "X-Estetik catalog site",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return err
		}
		logger, err = logging.Init(cfg.Logger)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd, args)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "TOML config file (default $CONFIG_FILE)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(qrCmd)
	leadsCmd.AddCommand(leadsListCmd)
	leadsCmd.AddCommand(leadsExportCmd)
	rootCmd.AddCommand(leadsCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
