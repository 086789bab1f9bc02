package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ifplan-network/ifplan/pkg/model"
)

var (
	addrV4        bool
	addrV6        bool
	addrAddresses []string
	addrGateway   string
	addrNS        []string
	addrSearch    []string
)

var addrCmd = &cobra.Command{
	Use:   "addr",
	Short: "Manage device addressing",
	Long: `Manage per-version addressing of a device.

Examples:
  ifplan addr static eth0 -4 --address 10.0.2.15/24 --gateway 10.0.2.2 --ns 10.0.2.3
  ifplan addr dhcp eth0 -4 -x
  ifplan addr disable eth0 -6 -x`,
}

var addrStaticCmd = &cobra.Command{
	Use:   "static <interface>",
	Short: "Set static addressing for one IP version",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		version, err := ipVersionFlag(addrV4, addrV6)
		if err != nil {
			return err
		}
		opErr := mdl.SetStaticConfig(args[0], version, model.StaticConfig{
			Addresses:     addrAddresses,
			Gateway:       addrGateway,
			Nameservers:   addrNS,
			SearchDomains: addrSearch,
		})
		return finishWrite("addr.static", args[0], map[string]string{
			"version":   fmt.Sprintf("%d", version),
			"addresses": strings.Join(addrAddresses, ","),
			"gateway":   addrGateway,
		}, opErr)
	},
}

var addrDHCPCmd = &cobra.Command{
	Use:   "dhcp <interface>",
	Short: "Enable DHCP for one IP version",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		version, err := ipVersionFlag(addrV4, addrV6)
		if err != nil {
			return err
		}
		opErr := mdl.EnableDHCP(args[0], version)
		return finishWrite("addr.dhcp", args[0], map[string]string{
			"version": fmt.Sprintf("%d", version),
		}, opErr)
	},
}

var addrDisableCmd = &cobra.Command{
	Use:   "disable <interface>",
	Short: "Disable networking for one IP version",
	Long: `Disable networking for one IP version: clears the DHCP flag, static
addresses, gateway, routes and nameservers of that version. The other
version is untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		version, err := ipVersionFlag(addrV4, addrV6)
		if err != nil {
			return err
		}
		opErr := mdl.DisableNetwork(args[0], version)
		return finishWrite("addr.disable", args[0], map[string]string{
			"version": fmt.Sprintf("%d", version),
		}, opErr)
	},
}

func init() {
	for _, c := range []*cobra.Command{addrStaticCmd, addrDHCPCmd, addrDisableCmd} {
		c.Flags().BoolVarP(&addrV4, "ipv4", "4", false, "operate on IPv4")
		c.Flags().BoolVarP(&addrV6, "ipv6", "6", false, "operate on IPv6")
	}
	addrStaticCmd.Flags().StringSliceVar(&addrAddresses, "address", nil, "CIDR address (repeatable)")
	addrStaticCmd.Flags().StringVar(&addrGateway, "gateway", "", "default gateway")
	addrStaticCmd.Flags().StringSliceVar(&addrNS, "ns", nil, "nameserver address (repeatable)")
	addrStaticCmd.Flags().StringSliceVar(&addrSearch, "search", nil, "search domain (repeatable)")

	addrCmd.AddCommand(addrStaticCmd, addrDHCPCmd, addrDisableCmd)
	rootCmd.AddCommand(addrCmd)
}
