package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"fplthreats/internal/app"
	"fplthreats/internal/storage"
)

var (
	listsDryRun bool
	listsName   string
)

var listsCmd = &cobra.Command{
	Use:   "lists",
	Short: "Manage the held and unwanted player id lists in PostgreSQL",
}

var listsSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Replace the stored lists with the contents of the id files",
	RunE: func(cmd *cobra.Command, args []string) error {
		return getApp().SyncLists(cmd.Context(), app.SyncListsOptions{DryRun: listsDryRun})
	},
}

var listsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the stored lists",
	RunE: func(cmd *cobra.Command, args []string) error {
		switch listsName {
		case "", storage.ListHeld, storage.ListUnwanted:
		default:
			return fmt.Errorf("--list must be %q or %q", storage.ListHeld, storage.ListUnwanted)
		}
		return getApp().ShowLists(cmd.Context(), app.ShowListsOptions{List: listsName})
	},
}

func init() {
	listsSyncCmd.Flags().BoolVar(&listsDryRun, "dry-run", false, "Parse the files without writing to storage")
	listsShowCmd.Flags().StringVar(&listsName, "list", "", "Only show one list (held or unwanted)")

	listsCmd.AddCommand(listsSyncCmd)
	listsCmd.AddCommand(listsShowCmd)
}
