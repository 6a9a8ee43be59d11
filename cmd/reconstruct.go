package cmd

import (
	"io"

	"github.com/spf13/cobra"
	"go.dedis.ch/sssrecon/record"
	"go.dedis.ch/sssrecon/runner"
	"go.dedis.ch/sssrecon/sss"
	"go.dedis.ch/sssrecon/types"
	"golang.org/x/xerrors"
)

// stdinSource is the file name standing for the standard input.
const stdinSource = "-"

func newReconstructCmd(conf *Config) *cobra.Command {
	var format string
	var workers int
	var emptyAsZero bool

	command := &cobra.Command{
		Use:   "reconstruct [files...]",
		Short: "Reconstruct the secret of each record",
		Long: "Reconstruct the secret of each JSON or YAML record, using the k shares with the smallest keys. " +
			"Reads a JSON record from the standard input when no file is given or the file is '-'.",
		Args: cobra.MinimumNArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("format") {
				conf.Format = format
			}
			if cmd.Flags().Changed("workers") {
				conf.Workers = workers
			}
			if cmd.Flags().Changed("empty-as-zero") {
				conf.EmptyAsZero = emptyAsZero
			}
			err := conf.Validate()
			if err != nil {
				return err
			}

			if len(args) == 0 {
				args = []string{stdinSource}
			}

			reqs := make([]types.Request, len(args))
			for i, path := range args {
				if path == stdinSource {
					reqs[i] = requestFromReader(cmd.InOrStdin())
					continue
				}
				reqs[i] = runner.NewRequestFromFile(path)
			}

			var opts []sss.Option
			if conf.EmptyAsZero {
				opts = append(opts, sss.WithEmptyAsZero())
			}

			responses := runner.NewRunner(conf.Workers, opts...).WithMaxEntries(conf.MemoSize).Run(reqs)

			err = render(cmd.OutOrStdout(), conf.Format, responses)
			if err != nil {
				return err
			}

			failed := 0
			for _, resp := range responses {
				if resp.Failed() {
					failed++
				}
			}
			if failed > 0 {
				return xerrors.Errorf("%d of %d records failed", failed, len(responses))
			}
			return nil
		},
	}

	command.Flags().StringVarP(&format, "format", "f", conf.Format, "Output format (text, json, yaml)")
	command.Flags().IntVarP(&workers, "workers", "w", conf.Workers, "Number of records reconstructed concurrently")
	command.Flags().BoolVar(&emptyAsZero, "empty-as-zero", conf.EmptyAsZero, "Treat an empty share value as zero")

	return command
}

func requestFromReader(in io.Reader) types.Request {
	data, err := io.ReadAll(in)
	if err != nil {
		req := runner.NewRequest("stdin", types.ShareSet{})
		req.Err = xerrors.Errorf("failed to read standard input: %w", err)
		return req
	}

	set, err := record.Parse(data)
	req := runner.NewRequest("stdin", set)
	req.Err = err
	return req
}
