package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newSitesCmd(deps *dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sites",
		Short: "Manage sites",
	}

	var flags listFlags
	list := &cobra.Command{
		Use:   "list",
		Short: "List sites",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := deps.init(); err != nil {
				return err
			}
			page, err := deps.facility.GetSites(cmd.Context(), flags.filters())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(page.Data))
			for _, site := range page.Data {
				active := "no"
				if site.Active {
					active = "yes"
				}
				rows = append(rows, []string{strconv.Itoa(site.ID), site.Name, site.Address, active})
			}
			printTable([]string{"ID", "NAME", "ADDRESS", "ACTIVE"}, rows)
			printMeta(page.Meta)
			return nil
		},
	}
	flags.register(list)

	remove := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a site",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := deps.init(); err != nil {
				return err
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid site id %q", args[0])
			}
			if err := deps.facility.DeleteSite(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Println("deleted")
			return nil
		},
	}

	cmd.AddCommand(list, remove)
	return cmd
}

func newZonesCmd(deps *dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zones",
		Short: "Manage zones",
	}

	var flags listFlags
	list := &cobra.Command{
		Use:   "list",
		Short: "List zones",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := deps.init(); err != nil {
				return err
			}
			page, err := deps.facility.GetZones(cmd.Context(), flags.filters())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(page.Data))
			for _, zone := range page.Data {
				rows = append(rows, []string{strconv.Itoa(zone.ID), strconv.Itoa(zone.SiteID), zone.FullPath})
			}
			printTable([]string{"ID", "SITE", "PATH"}, rows)
			printMeta(page.Meta)
			return nil
		},
	}
	flags.register(list)

	tree := &cobra.Command{
		Use:   "tree <site-id>",
		Short: "Print the zone tree of a site",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := deps.init(); err != nil {
				return err
			}
			siteID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid site id %q", args[0])
			}
			zones, err := deps.facility.GetZoneTree(cmd.Context(), siteID)
			if err != nil {
				return err
			}
			for _, zone := range zones {
				fmt.Println(zone.FullPath)
			}
			return nil
		},
	}

	cmd.AddCommand(list, tree)
	return cmd
}
