// Package cli implements the astargraph command line: loading serialized
// graphs and running searches over them.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "ASTARGRAPH"

// NewRootCommand builds the command tree. Every call gets its own viper
// instance so commands can be built and run independently.
func NewRootCommand() *cobra.Command {
	v := viper.New()
	var configFile string

	rootCmd := &cobra.Command{
		Use:          "astargraph",
		Short:        "Shortest paths over serialized graphs",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v, configFile)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (yaml, json or toml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	_ = v.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(newSearchCommand(v))
	rootCmd.AddCommand(newValidateCommand(v))
	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func initConfig(v *viper.Viper, configFile string) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile == "" {
		return nil
	}
	v.SetConfigFile(configFile)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config %s: %w", configFile, err)
	}
	return nil
}

func newLogger(cmd *cobra.Command, v *viper.Viper) *slog.Logger {
	level := slog.LevelInfo
	if v.GetBool("verbose") {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}
