package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"go-writing-services/internal/container"
)

var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "List the available services",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		c, err := container.NewContainer(cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize container: %w", err)
		}
		defer c.Close()

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "SLUG\tTITLE\tENDPOINT\tMOCKED")
		for _, svc := range c.Registry().All() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%t\n", svc.Slug, svc.CardTitle, svc.Endpoint, c.Backends().IsMocked(svc.Slug))
		}
		return w.Flush()
	},
}
