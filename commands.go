package main

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"
)

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <artist name>",
		Short: "Look up an artist with its top tracks and print it as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close(cmd.Context())

			profile, err := a.service.Search(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}

			return printJSON(cmd, profile)
		},
	}
}

func newSuggestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <query>",
		Short: "Print artist suggestions for a partial name as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close(cmd.Context())

			suggestions, err := a.service.Suggest(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}

			return printJSON(cmd, map[string]any{"suggestions": suggestions})
		},
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
