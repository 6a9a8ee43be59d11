package cmd

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"go.dedis.ch/sssrecon/httpserver"
	"go.dedis.ch/sssrecon/runner"
	"go.dedis.ch/sssrecon/sss"
)

func newServeCmd(conf *Config) *cobra.Command {
	var addr string

	command := &cobra.Command{
		Use:   "serve",
		Short: "Serve reconstructions over HTTP",
		Long:  "Serve reconstructions over HTTP: POST a JSON record to /reconstruct.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := conf.Validate()
			if err != nil {
				return err
			}

			var opts []sss.Option
			if conf.EmptyAsZero {
				opts = append(opts, sss.WithEmptyAsZero())
			}

			server := httpserver.NewServer(addr, runner.NewRunner(conf.Workers, opts...).WithMaxEntries(conf.MemoSize))
			log.Info().Msgf("listening on %s", addr)

			return server.ListenAndServe()
		},
	}

	command.Flags().StringVarP(&addr, "addr", "a", "127.0.0.1:8080", "Listening address")

	return command
}
