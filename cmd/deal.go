package cmd

import (
	"math/big"

	"github.com/spf13/cobra"
	"go.dedis.ch/sssrecon/record"
	"go.dedis.ch/sssrecon/sss"
	"golang.org/x/xerrors"
)

func newDealCmd() *cobra.Command {
	var secret string
	var n, k int
	var bases []int
	var format string

	command := &cobra.Command{
		Use:   "deal",
		Short: "Split a secret into a record of shares",
		Long:  "Split a non-negative base-10 secret into n shares, any k of which reconstruct it, and print the record.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			value, ok := new(big.Int).SetString(secret, 10)
			if !ok {
				return xerrors.Errorf("secret %q is not a base-10 integer", secret)
			}

			set, err := sss.Deal(value, n, k, bases)
			if err != nil {
				return err
			}

			var out []byte
			switch format {
			case FormatJSON:
				out, err = record.Marshal(set)
			case FormatYAML:
				out, err = record.MarshalYAML(set)
			default:
				return xerrors.Errorf("unknown record format %q", format)
			}
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	command.Flags().StringVarP(&secret, "secret", "s", "", "Secret to split, in base 10")
	command.Flags().IntVarP(&n, "shares", "n", 5, "Number of shares")
	command.Flags().IntVarP(&k, "threshold", "k", 3, "Number of shares needed to reconstruct")
	command.Flags().IntSliceVarP(&bases, "bases", "b", []int{10}, "Radixes used in turn to encode the shares")
	command.Flags().StringVarP(&format, "format", "f", FormatJSON, "Record format (json, yaml)")
	_ = command.MarkFlagRequired("secret")

	return command
}
