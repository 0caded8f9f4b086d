package commands

import (
	"encoding/json"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/preston-bernstein/efootball-data-service/internal/domain/players"
)

func newSearchCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "search <name>",
		Short: "Lists players whose name matches the query.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := opts.client().SearchPlayers(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(players.NewSearchResponse(items))
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"ID", "Pos", "Name", "Team", "Nationality", "Age", "Rating"})
			for _, p := range items {
				id := "-"
				if p.ID != nil {
					id = *p.ID
				}
				t.AppendRow(table.Row{id, p.Position, p.Name, p.TeamName, p.Nationality, p.Age, p.Rating})
			}
			t.AppendFooter(table.Row{"", "", "", "", "", "Total", len(items)})
			t.SetStyle(table.StyleRounded)
			t.Render()
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the /api/player payload instead of a table")
	return cmd
}
