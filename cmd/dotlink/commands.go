package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/dotlink/pkg/dotfile"
	"github.com/arthur-debert/dotlink/pkg/style"
)

var (
	syncForce bool
	syncReAdd bool
)

func init() {
	syncCmd.Flags().BoolVar(&syncForce, "force", false, MsgFlagForce)
	syncCmd.Flags().BoolVar(&syncReAdd, "re-add", false, MsgFlagReAdd)
	syncCmd.MarkFlagsMutuallyExclusive("force", "re-add")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(moveCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: MsgListShort,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := loadRepository()
		if err != nil {
			return err
		}
		for _, e := range r.List(true) {
			fmt.Fprintln(cmd.OutOrStdout(), style.Entry(e.Name, e.Status))
		}
		return nil
	},
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: MsgCheckShort,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := loadRepository()
		if err != nil {
			return err
		}
		entries := r.List(false)
		if len(entries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), MsgNothingToReport)
			return nil
		}
		for _, e := range entries {
			fmt.Fprintln(cmd.OutOrStdout(), style.Entry(e.Name, e.Status))
		}
		return nil
	},
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: MsgSyncShort,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := loadRepository()
		if err != nil {
			return err
		}
		mode := dotfile.SyncSkip
		if syncForce {
			mode = dotfile.SyncOverwrite
		}
		if syncReAdd {
			mode = dotfile.SyncReAdd
		}
		reports, err := r.Sync(mode)
		printReports(cmd.OutOrStdout(), reports)
		return err
	},
}

var addCmd = &cobra.Command{
	Use:   "add <file>...",
	Short: MsgAddShort,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := loadRepository()
		if err != nil {
			return err
		}
		reports, err := r.Add(args)
		printReports(cmd.OutOrStdout(), reports)
		return err
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove <file>...",
	Short: MsgRemoveShort,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := loadRepository()
		if err != nil {
			return err
		}
		reports, err := r.Remove(args)
		printReports(cmd.OutOrStdout(), reports)
		return err
	},
}

var moveCmd = &cobra.Command{
	Use:   "move <target>",
	Short: MsgMoveShort,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := loadRepository()
		if err != nil {
			return err
		}
		return r.Move(args[0])
	},
}

// printReports writes the one-line soft-skip messages. Reports are the only
// user-facing signal for non-error conditions.
func printReports(w io.Writer, reports []dotfile.Report) {
	for _, report := range reports {
		fmt.Fprintf(w, MsgSkipFormat, report.File, report.Reason)
	}
}
