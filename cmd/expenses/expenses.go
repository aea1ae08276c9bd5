// Package expenses implements the expense import, entry and export commands.
package expenses

import (
	"github.com/spf13/cobra"
)

// Cmd represents the expenses command
var Cmd = &cobra.Command{
	Use:   "expenses",
	Short: "Import, add and export business expenses",
}

func init() {
	Cmd.AddCommand(importCmd, addCmd, listCmd)
}
