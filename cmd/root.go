// -- cmd/root.go --
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/xkilldash9x/peacock/internal/config"
	"github.com/xkilldash9x/peacock/internal/observability"
)

// appState carries the loaded configuration across subcommands. Each call to
// newRootCmd builds a fresh instance, keeping test runs isolated.
type appState struct {
	cfgFile string
	cfg     *config.Config
}

// configOrDefault returns the loaded config, falling back to defaults when
// the persistent pre-run was skipped (tests do this).
func (s *appState) configOrDefault() *config.Config {
	if s.cfg == nil {
		s.cfg = config.NewDefaultConfig()
	}
	return s.cfg
}

// newRootCmd constructs the base command and its subcommands.
func newRootCmd() (*cobra.Command, *appState) {
	state := &appState{}

	rootCmd := &cobra.Command{
		Use:          "peacock",
		Short:        "Peacock compiles, checks, and generates code for UI stylesheets.",
		Version:      Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Runs before any command, setting up config and logging.
			v, err := initializeViper(state.cfgFile)
			if err != nil {
				return err
			}
			cfg, err := config.NewConfigFromViper(v)
			if err != nil {
				// Fall back to a plain logger so the error is visible.
				observability.InitializeLogger(config.LoggerConfig{Level: "info", Format: "console", ServiceName: "peacock"})
				return fmt.Errorf("failed to load config: %w", err)
			}
			state.cfg = cfg

			observability.InitializeLogger(cfg.Logger())
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&state.cfgFile, "config", "c", "", "config file (default is ./peacock.yaml)")
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	rootCmd.AddCommand(newCheckCmd(state))
	rootCmd.AddCommand(newGenCmd(state))

	return rootCmd, state
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	rootCmd, _ := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if logger := observability.GetLogger(); logger != nil {
			logger.Error("Command execution failed", zap.Error(err))
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		observability.Sync()
		os.Exit(1)
	}
	observability.Sync()
}

// initializeViper reads the config file and PEACOCK_* environment variables.
func initializeViper(cfgFile string) (*viper.Viper, error) {
	v := viper.New()
	config.SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("peacock")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("PEACOCK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; proceed with defaults/env vars.
	}
	return v, nil
}
