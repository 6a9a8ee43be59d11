package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"go.dedis.ch/sssrecon/types"
	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

// render writes the responses in the given format.
func render(out io.Writer, format string, responses []types.Response) error {
	views := make([]types.ResponseView, len(responses))
	for i, resp := range responses {
		views[i] = resp.View()
	}

	switch format {
	case FormatText:
		for _, resp := range responses {
			_, err := fmt.Fprintln(out, resp.String())
			if err != nil {
				return err
			}
		}
		return nil

	case FormatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(views)

	case FormatYAML:
		enc := yaml.NewEncoder(out)
		err := enc.Encode(views)
		if err != nil {
			return err
		}
		return enc.Close()

	default:
		return xerrors.Errorf("unknown output format %q", format)
	}
}
