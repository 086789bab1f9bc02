package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ifplan-network/ifplan/pkg/model"
)

var (
	routeV4     bool
	routeV6     bool
	routeTo     []string
	routeVia    []string
	routeMetric int
)

var routeCmd = &cobra.Command{
	Use:   "route",
	Short: "Manage static routes",
	Long: `Manage static routes of a device. Routes are grouped by the family
of their via nexthop.

Examples:
  ifplan route set eth0 -4 --to default --via 10.0.2.2
  ifplan route clear eth0 -6 -x`,
}

var routeSetCmd = &cobra.Command{
	Use:   "set <interface>",
	Short: "Replace the routes of one IP version",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		version, err := ipVersionFlag(routeV4, routeV6)
		if err != nil {
			return err
		}
		if len(routeTo) != len(routeVia) {
			return fmt.Errorf("--to and --via must be given the same number of times")
		}
		routes := make([]model.Route, len(routeTo))
		for i := range routeTo {
			routes[i] = model.Route{To: routeTo[i], Via: routeVia[i], Metric: routeMetric}
		}
		opErr := mdl.SetRoutes(args[0], version, routes)
		return finishWrite("route.set", args[0], map[string]string{
			"version": fmt.Sprintf("%d", version),
			"count":   fmt.Sprintf("%d", len(routes)),
		}, opErr)
	},
}

var routeClearCmd = &cobra.Command{
	Use:   "clear <interface>",
	Short: "Remove the routes of one IP version",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		version, err := ipVersionFlag(routeV4, routeV6)
		if err != nil {
			return err
		}
		opErr := mdl.RemoveRoutes(args[0], version)
		return finishWrite("route.clear", args[0], map[string]string{
			"version": fmt.Sprintf("%d", version),
		}, opErr)
	},
}

func init() {
	for _, c := range []*cobra.Command{routeSetCmd, routeClearCmd} {
		c.Flags().BoolVarP(&routeV4, "ipv4", "4", false, "operate on IPv4")
		c.Flags().BoolVarP(&routeV6, "ipv6", "6", false, "operate on IPv6")
	}
	routeSetCmd.Flags().StringSliceVar(&routeTo, "to", nil, "route destination (repeatable)")
	routeSetCmd.Flags().StringSliceVar(&routeVia, "via", nil, "route nexthop (repeatable, pairs with --to)")
	routeSetCmd.Flags().IntVar(&routeMetric, "metric", 0, "route metric")

	routeCmd.AddCommand(routeSetCmd, routeClearCmd)
	rootCmd.AddCommand(routeCmd)
}
