// Package cli implements the hxhctl commands.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dom/hxh-catalog/internal/client"
	"github.com/spf13/cobra"
)

const defaultBaseURL = "http://localhost:4000"

// NewRootCmd builds the top-level command with every subcommand attached.
func NewRootCmd() *cobra.Command {
	var baseURL string

	root := &cobra.Command{
		Use:           "hxhctl",
		Short:         "Hunter x Hunter character catalog client",
		Long:          "Browse and edit the character catalog over HTTP. Works against the relational or the document service.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&baseURL, "base-url", "u", "", "Service URL (default: $HXH_API_URL or "+defaultBaseURL+")")

	newClient := func() *client.Client {
		return client.New(resolveBaseURL(baseURL))
	}

	root.AddCommand(
		newInfoCmd(newClient),
		newListCmd(newClient),
		newSearchCmd(newClient),
		newGetCmd(newClient),
		newCreateCmd(newClient),
		newUpdateCmd(newClient),
		newDeleteCmd(newClient),
		newSeedCmd(newClient),
	)

	return root
}

// Execute runs the CLI and reports failures on stderr.
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func resolveBaseURL(flag string) string {
	if flag != "" {
		return flag
	}
	if env := os.Getenv("HXH_API_URL"); env != "" {
		return env
	}
	return defaultBaseURL
}

func printJSON(w io.Writer, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
