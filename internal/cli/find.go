package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

var findCmd = &cobra.Command{
	Use:   "find [name]",
	Short: "Look up player ids by approximate name",
	RunE: func(cmd *cobra.Command, args []string) error {
		return getApp().Find(cmd.Context(), strings.Join(args, " "))
	},
}
