package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var vlanCmd = &cobra.Command{
	Use:   "vlan",
	Short: "Manage VLAN devices",
	Long: `Manage VLAN devices. A VLAN is named after its parent and tag.

Examples:
  ifplan vlan add eth0 100        # creates eth0.100
  ifplan delete eth0.100 -x`,
}

var vlanAddCmd = &cobra.Command{
	Use:   "add <parent> <id>",
	Short: "Create a VLAN on a parent device",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid VLAN ID: %s", args[1])
		}
		dev, opErr := mdl.AddVLAN(args[0], id)
		device := args[0]
		if dev != nil {
			device = dev.Name
		}
		return finishWrite("vlan.add", device, map[string]string{
			"parent": args[0],
			"id":     args[1],
		}, opErr)
	},
}

func init() {
	vlanCmd.AddCommand(vlanAddCmd)
	rootCmd.AddCommand(vlanCmd)
}
