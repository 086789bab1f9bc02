// ifplan - Interface Configuration Tool
//
// A CLI for managing network interface configuration the way an installer
// does: an in-memory device registry is seeded from the netplan documents
// under the target root (and, for watch, from the prober's link events),
// configuration commands mutate the registry, and the result is rendered
// back as a netplan document.
//
// Write commands preview the rendered document by default and only write
// artifacts with -x:
//
//	ifplan list
//	ifplan show eth0
//	ifplan addr static eth0 -4 --address 10.0.2.15/24 --gateway 10.0.2.2
//	ifplan addr dhcp eth0 -4 -x
//	ifplan vlan add eth0 100
//	ifplan bond create bond0 --mode 802.3ad --members eth0,eth1
//	ifplan wifi set wlan0 --ssid home
//	ifplan delete bond0 -x
//	ifplan render -x
//	ifplan watch
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ifplan-network/ifplan/pkg/audit"
	"github.com/ifplan-network/ifplan/pkg/netplan"
	"github.com/ifplan-network/ifplan/pkg/network"
	"github.com/ifplan-network/ifplan/pkg/settings"
	"github.com/ifplan-network/ifplan/pkg/util"
	"github.com/ifplan-network/ifplan/pkg/version"
)

var (
	// Global option flags
	rootDir     string
	redisAddr   string
	executeMode bool
	verbose     bool
	jsonOutput  bool

	// Global state
	userSettings *settings.Settings
	mdl          *network.Model
	auditLogger  audit.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:               "ifplan",
	Short:             "Interface Configuration Tool",
	SilenceUsage:      true,
	SilenceErrors:     true,
	CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},
	Long: `ifplan manages network interface configuration and renders it as a
netplan document for the target system.

Write commands preview changes by default; use -x to write the artifacts.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if isSettingsOrHelp(cmd) {
			return nil
		}

		// Load user settings
		var err error
		userSettings, err = settings.Load()
		if err != nil {
			util.Warnf("Could not load settings: %v", err)
			userSettings = &settings.Settings{}
		}

		// Apply defaults from settings
		if rootDir == "" {
			rootDir = userSettings.GetRoot()
		}
		if redisAddr == "" {
			redisAddr = userSettings.GetRedisAddr()
		}

		// Quiet by default, verbose on -v
		if verbose {
			util.SetLogLevel("debug")
		} else {
			util.SetLogLevel("warn")
		}

		// Seed the model from the netplan documents under the target root
		doc, err := netplan.Load(rootDir)
		if err != nil {
			return fmt.Errorf("loading netplan config: %w", err)
		}
		mdl = network.NewModel(userSettings.GetProject(), util.Logger.WithField("component", "network"))
		configs := network.ImportDocument(doc)
		mdl.LoadConfig(configs)
		mdl.AdoptConfig(configs)

		auditLogger, err = audit.NewFileLogger(
			filepath.Join(filepath.Dir(settings.DefaultSettingsPath()), "audit.log"),
			audit.RotationConfig{MaxSize: 10 * 1024 * 1024, MaxBackups: 10})
		if err != nil {
			util.Warnf("Audit logging disabled: %v", err)
			auditLogger = nil
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if auditLogger != nil {
			auditLogger.Close()
		}
	},
}

func isSettingsOrHelp(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "settings", "help", "completion", "version":
			return true
		}
	}
	return false
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("ifplan", version.Info())
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootDir, "root", "", "target filesystem root (default from settings, then /)")
	pf.StringVar(&redisAddr, "redis", "", "prober Redis address (default from settings, then localhost:6379)")
	pf.BoolVarP(&executeMode, "execute", "x", false, "write rendered artifacts instead of previewing")
	pf.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	pf.BoolVar(&jsonOutput, "json", false, "output JSON where supported")

	rootCmd.AddCommand(versionCmd)
}
