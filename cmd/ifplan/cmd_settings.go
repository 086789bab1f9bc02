package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ifplan-network/ifplan/pkg/settings"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage persistent settings",
	Long: `Manage persistent user settings stored in ~/.ifplan/settings.json.

Keys: root, redis, project.

Examples:
  ifplan settings show
  ifplan settings set root /target
  ifplan settings clear`,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := settings.Load()
		if err != nil {
			return err
		}
		fmt.Println("root:   ", s.GetRoot())
		fmt.Println("redis:  ", s.GetRedisAddr())
		fmt.Println("project:", s.GetProject())
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := settings.Load()
		if err != nil {
			return err
		}
		switch args[0] {
		case "root":
			s.Root = args[1]
		case "redis":
			s.RedisAddr = args[1]
		case "project":
			s.Project = args[1]
		default:
			return fmt.Errorf("unknown setting %q (keys: root, redis, project)", args[0])
		}
		return s.Save()
	},
}

var settingsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Reset all settings to defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := &settings.Settings{}
		return s.Save()
	},
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd, settingsSetCmd, settingsClearCmd)
	rootCmd.AddCommand(settingsCmd)
}
