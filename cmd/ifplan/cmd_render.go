package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the netplan document",
	Long: `Render the current configuration as a netplan document. With -x the
document and the cloud-init disable stub are written under the target root.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return finishWrite("render", "", nil, nil)
	},
}

var renderPathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Print the files a render cycle writes",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, path := range mdl.RenderedConfigPaths(rootDir) {
			fmt.Println(path)
		}
		return nil
	},
}

func init() {
	renderCmd.AddCommand(renderPathsCmd)
	rootCmd.AddCommand(renderCmd)
}
