package cli

import (
	"fmt"

	"github.com/dom/hxh-catalog/internal/client"
	"github.com/spf13/cobra"
)

func newInfoCmd(newClient func() *client.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show which backend the service runs on",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := newClient().Info(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), info)
		},
	}
}

func newListCmd(newClient func() *client.Client) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every character",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			namesOnly, _ := cmd.Flags().GetBool("names-only")

			characters, err := newClient().List(cmd.Context())
			if err != nil {
				return err
			}

			if namesOnly {
				for _, c := range characters {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", c.ID, c.Name)
				}
				return nil
			}
			return printJSON(cmd.OutOrStdout(), characters)
		},
	}

	cmd.Flags().Bool("names-only", false, "Only output id and name")

	return cmd
}

func newSearchCmd(newClient func() *client.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Find characters whose name contains query (case-insensitive)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			matches, err := newClient().Search(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), matches)
		},
	}
}

func newGetCmd(newClient func() *client.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one character",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			character, err := newClient().Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), character)
		},
	}
}
