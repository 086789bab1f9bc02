package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ifplan-network/ifplan/pkg/cli"
	"github.com/ifplan-network/ifplan/pkg/model"
)

var showDeleted bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List devices",
	RunE: func(cmd *cobra.Command, args []string) error {
		summaries := mdl.ListSummaries(showDeleted)

		if jsonOutput {
			return json.NewEncoder(os.Stdout).Encode(summaries)
		}
		if len(summaries) == 0 {
			fmt.Println("No devices")
			return nil
		}

		t := cli.NewTable("NAME", "KIND", "PRESENT", "DHCP4", "ADDRESSES", "ACTIONS")
		for _, s := range summaries {
			addrs := append(append([]string(nil), s.IPv4.StaticAddresses...), s.IPv6.StaticAddresses...)
			addrs = append(addrs, s.IPv4.LiveAddresses...)
			addrs = append(addrs, s.IPv6.LiveAddresses...)
			t.Row(s.Name, string(s.Kind), yn(s.Present), dhcpCell(s.IPv4),
				dash(strings.Join(addrs, ",")), actionsCell(s.EnabledActions))
		}
		t.Flush()
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <interface>",
	Short: "Show one device in detail",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := mdl.GetSummary(args[0])
		if err != nil {
			return err
		}
		if jsonOutput {
			return json.NewEncoder(os.Stdout).Encode(s)
		}

		fmt.Printf("%s (%s)\n", cli.Bold(s.Name), s.Kind)
		if s.DisabledReason != "" {
			fmt.Println("  disabled:", cli.Red(s.DisabledReason))
		}
		fmt.Println("  present:   ", yn(s.Present))
		if s.HWAddr != "" {
			fmt.Println("  hwaddr:    ", s.HWAddr)
		}
		if s.Vendor != "" || s.Model != "" {
			fmt.Println("  hardware:  ", strings.TrimSpace(s.Vendor+" "+s.Model))
		}
		printVersion(4, s.IPv4)
		printVersion(6, s.IPv6)
		if s.Bond != nil {
			fmt.Println("  bond:")
			fmt.Println("    mode:      ", s.Bond.Mode)
			if s.Bond.XmitHashPolicy != "" {
				fmt.Println("    hash:      ", s.Bond.XmitHashPolicy)
			}
			if s.Bond.LACPRate != "" {
				fmt.Println("    lacp-rate: ", s.Bond.LACPRate)
			}
			fmt.Println("    members:   ", strings.Join(s.Bond.Interfaces, ", "))
		}
		if s.VLAN != nil {
			fmt.Printf("  vlan:       %d on %s\n", s.VLAN.ID, s.VLAN.Link)
		}
		if s.WLAN != nil {
			fmt.Println("  wifi:")
			fmt.Println("    ssid:      ", dash(s.WLAN.SSID))
			fmt.Println("    psk:       ", yn(s.WLAN.PSKSet))
			if len(s.WLAN.VisibleSSIDs) > 0 {
				fmt.Println("    visible:   ", strings.Join(s.WLAN.VisibleSSIDs, ", "))
			}
		}
		fmt.Println("  actions:   ", actionsCell(s.EnabledActions))
		return nil
	},
}

func printVersion(version int, vs model.VersionStatus) {
	parts := []string{}
	if vs.DHCPEnabled {
		p := "dhcp"
		if vs.DHCPState != "" {
			p += " (" + string(vs.DHCPState) + ")"
		}
		parts = append(parts, p)
	}
	parts = append(parts, vs.StaticAddresses...)
	for _, a := range vs.LiveAddresses {
		parts = append(parts, a+" (lease)")
	}
	if vs.Gateway != "" {
		parts = append(parts, "via "+vs.Gateway)
	}
	if len(parts) == 0 {
		return
	}
	fmt.Printf("  ipv%d:       %s\n", version, strings.Join(parts, ", "))
}

func yn(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func dhcpCell(vs model.VersionStatus) string {
	if !vs.DHCPEnabled {
		return "-"
	}
	if vs.DHCPState != "" {
		return string(vs.DHCPState)
	}
	return "on"
}

func actionsCell(actions []model.Action) string {
	strs := make([]string, len(actions))
	for i, a := range actions {
		strs[i] = string(a)
	}
	return strings.Join(strs, ",")
}

func init() {
	listCmd.Flags().BoolVar(&showDeleted, "all", false, "include logically deleted devices")
	rootCmd.AddCommand(listCmd, showCmd)
}
