package main

import (
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <interface>",
	Short: "Delete a virtual device",
	Long: `Delete a virtual device (bond or vlan). Physical devices cannot be
deleted, and a device referenced by a bond or vlan must be released first.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opErr := mdl.DeleteLink(args[0])
		return finishWrite("delete", args[0], nil, opErr)
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
