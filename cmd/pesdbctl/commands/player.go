package commands

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/efootball-data-service/internal/domain/players"
)

func newPlayerCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "player <id>",
		Short: "Prints the attribute sheet of a player as JSON.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			detail, err := opts.client().FetchPlayer(cmd.Context(), id)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(players.DetailResponse{Success: true, ID: id, Info: detail})
		},
	}
}
