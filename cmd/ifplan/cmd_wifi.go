package main

import (
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ifplan-network/ifplan/pkg/util"
)

var (
	wifiSSID    string
	wifiPSK     string
	wifiHashPSK bool
)

var wifiCmd = &cobra.Command{
	Use:   "wifi",
	Short: "Manage wireless configuration",
	Long: `Manage the access point of a wireless device. At most one access
point is configured per device.

Examples:
  ifplan wifi set wlan0 --ssid home             # prompts for passphrase
  ifplan wifi set wlan0 --ssid open --psk ""
  ifplan wifi set wlan0 --ssid home --hash-psk  # store derived PSK, not passphrase
  ifplan wifi clear wlan0 -x`,
}

var wifiSetCmd = &cobra.Command{
	Use:   "set <interface>",
	Short: "Set the access point",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if wifiSSID == "" {
			return fmt.Errorf("--ssid is required")
		}
		psk := wifiPSK
		if !cmd.Flags().Changed("psk") {
			fmt.Fprintf(os.Stderr, "Passphrase for %q (empty for open network): ", wifiSSID)
			raw, err := term.ReadPassword(int(syscall.Stdin))
			fmt.Fprintln(os.Stderr)
			if err != nil {
				return fmt.Errorf("reading passphrase: %w", err)
			}
			psk = string(raw)
		}
		if wifiHashPSK && psk != "" {
			derived, err := util.DeriveWPAPSK(psk, wifiSSID)
			if err != nil {
				return err
			}
			psk = derived
		}
		opErr := mdl.SetWLAN(args[0], wifiSSID, psk)
		return finishWrite("wifi.set", args[0], map[string]string{
			"ssid": wifiSSID,
		}, opErr)
	},
}

var wifiClearCmd = &cobra.Command{
	Use:   "clear <interface>",
	Short: "Clear the access point",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opErr := mdl.SetWLAN(args[0], "", "")
		return finishWrite("wifi.clear", args[0], nil, opErr)
	},
}

func init() {
	wifiSetCmd.Flags().StringVar(&wifiSSID, "ssid", "", "network SSID")
	wifiSetCmd.Flags().StringVar(&wifiPSK, "psk", "", "passphrase or pre-hashed PSK (prompted when omitted)")
	wifiSetCmd.Flags().BoolVar(&wifiHashPSK, "hash-psk", false, "derive and store the WPA PSK instead of the passphrase")

	wifiCmd.AddCommand(wifiSetCmd, wifiClearCmd)
	rootCmd.AddCommand(wifiCmd)
}
