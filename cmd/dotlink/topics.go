package main

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/dotlink/pkg/errors"
)

//go:embed docs/*.md
var docsFS embed.FS

var topicsCmd = &cobra.Command{
	Use:       "topics [topic]",
	Short:     MsgTopicsShort,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: topicNames(),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), MsgAvailableTopics)
			for _, name := range topicNames() {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", name)
			}
			return nil
		}

		content, err := docsFS.ReadFile("docs/" + args[0] + ".md")
		if err != nil {
			return errors.Newf(errors.ErrInvalidInput, "unknown topic: %q", args[0])
		}

		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
		)
		if err != nil {
			// No styled renderer available; the raw markdown is still useful.
			fmt.Fprintln(cmd.OutOrStdout(), string(content))
			return nil
		}
		rendered, err := renderer.Render(string(content))
		if err != nil {
			fmt.Fprintln(cmd.OutOrStdout(), string(content))
			return nil
		}
		fmt.Fprint(cmd.OutOrStdout(), rendered)
		return nil
	},
}

func topicNames() []string {
	entries, err := docsFS.ReadDir("docs")
	if err != nil {
		return nil
	}
	var names []string
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), ".md"))
	}
	sort.Strings(names)
	return names
}
