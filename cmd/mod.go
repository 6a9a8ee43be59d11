package cmd

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the sssrecon command with all its sub-commands.
func NewRootCmd() *cobra.Command {
	conf := DefaultConfig()
	var configPath string
	var logLevel string

	command := &cobra.Command{
		Use:           "sssrecon",
		Short:         "Reconstruct Shamir secrets from radix-encoded shares",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				loaded, err := ConfigFromYAML(configPath)
				if err != nil {
					return err
				}
				conf = loaded
			}
			if cmd.Flags().Changed("loglevel") {
				conf.LogLevel = logLevel
			}

			level, err := conf.Level()
			if err != nil {
				return err
			}
			zerolog.SetGlobalLevel(level)
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()})

			return nil
		},
	}

	command.PersistentFlags().StringVar(&configPath, "config", "", "YAML configuration file")
	command.PersistentFlags().StringVar(&logLevel, "loglevel", conf.LogLevel, "Log level (debug, info, warn, error)")

	command.AddCommand(newReconstructCmd(&conf))
	command.AddCommand(newDealCmd())
	command.AddCommand(newServeCmd(&conf))

	return command
}
