package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/ifplan-network/ifplan/pkg/model"
)

var (
	bondMode     string
	bondMembers  []string
	bondXmitHash string
	bondLACPRate string
	bondRenameTo string
)

var bondCmd = &cobra.Command{
	Use:   "bond",
	Short: "Manage bond devices",
	Long: `Manage bond devices.

Parameters a mode does not support are dropped, not rejected:
transmit-hash-policy applies to balance-xor, 802.3ad and balance-tlb;
lacp-rate applies to 802.3ad only.

Examples:
  ifplan bond create bond0 --mode 802.3ad --members eth0,eth1
  ifplan bond update bond0 --mode active-backup
  ifplan bond update bond0 --rename-to bond1 -x`,
}

var bondCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a bond",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, opErr := mdl.AddOrUpdateBond("", args[0], model.BondConfig{
			Interfaces:     bondMembers,
			Mode:           bondMode,
			XmitHashPolicy: bondXmitHash,
			LACPRate:       bondLACPRate,
		})
		return finishWrite("bond.create", args[0], bondArgs(), opErr)
	},
}

var bondUpdateCmd = &cobra.Command{
	Use:   "update <name>",
	Short: "Update (and optionally rename) a bond",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if bondRenameTo != "" {
			name = bondRenameTo
		}
		cfg, opErr := updatedBondConfig(args[0], cmd.Flags().Changed)
		if opErr == nil {
			_, opErr = mdl.AddOrUpdateBond(args[0], name, cfg)
		}
		return finishWrite("bond.update", name, bondArgs(), opErr)
	},
}

// updatedBondConfig seeds an update from the bond's current configuration;
// only fields whose flags were given on the command line are overridden.
// A rename-only update must not touch members or parameters.
func updatedBondConfig(name string, changed func(string) bool) (model.BondConfig, error) {
	dev, err := mdl.Get(name)
	if err != nil {
		return model.BondConfig{}, err
	}
	var cfg model.BondConfig
	if existing, ok := dev.Config.(*model.BondConfig); ok && existing != nil {
		cfg = *existing
		cfg.Interfaces = append([]string(nil), existing.Interfaces...)
	}
	if changed("mode") || cfg.Mode == "" {
		cfg.Mode = bondMode
	}
	if changed("members") {
		cfg.Interfaces = bondMembers
	}
	if changed("xmit-hash-policy") {
		cfg.XmitHashPolicy = bondXmitHash
	}
	if changed("lacp-rate") {
		cfg.LACPRate = bondLACPRate
	}
	return cfg, nil
}

func bondArgs() map[string]string {
	return map[string]string{
		"mode":    bondMode,
		"members": strings.Join(bondMembers, ","),
	}
}

func init() {
	for _, c := range []*cobra.Command{bondCreateCmd, bondUpdateCmd} {
		c.Flags().StringVar(&bondMode, "mode", "balance-rr", "bond mode ("+strings.Join(model.BondModes, ", ")+")")
		c.Flags().StringSliceVar(&bondMembers, "members", nil, "member interfaces")
		c.Flags().StringVar(&bondXmitHash, "xmit-hash-policy", "", "transmit hash policy")
		c.Flags().StringVar(&bondLACPRate, "lacp-rate", "", "LACP rate (slow, fast)")
	}
	bondUpdateCmd.Flags().StringVar(&bondRenameTo, "rename-to", "", "new name for the bond")

	bondCmd.AddCommand(bondCreateCmd, bondUpdateCmd)
	rootCmd.AddCommand(bondCmd)
}
