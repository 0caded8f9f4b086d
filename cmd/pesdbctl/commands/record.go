package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRecordCmd(opts *rootOptions) *cobra.Command {
	var (
		name string
		id   string
		out  string
	)

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Saves a raw upstream page so it can be replayed as a fixture.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if (name == "") == (id == "") {
				return errors.New("exactly one of --name or --id is required")
			}

			client := opts.client()
			var (
				body []byte
				err  error
			)
			if name != "" {
				body, err = client.SearchPage(cmd.Context(), name)
			} else {
				body, err = client.PlayerPage(cmd.Context(), id)
			}
			if err != nil {
				return err
			}

			if out == "" || out == "-" {
				_, err = cmd.OutOrStdout().Write(body)
				return err
			}
			if err := os.WriteFile(out, body, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d bytes to %s\n", len(body), out)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&name, "name", "", "record the search page for this name")
	flags.StringVar(&id, "id", "", "record the player page for this id")
	flags.StringVarP(&out, "out", "o", "", "output file (stdout when empty)")
	return cmd
}
