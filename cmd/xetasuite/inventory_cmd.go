package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newItemsCmd(deps *dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "items",
		Short: "Manage inventory items",
	}

	var flags listFlags
	var zoneID int
	list := &cobra.Command{
		Use:   "list",
		Short: "List items",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := deps.init(); err != nil {
				return err
			}
			filters := flags.filters()
			if zoneID > 0 {
				if filters.Extra == nil {
					filters.Extra = map[string]string{}
				}
				filters.Extra["zone_id"] = strconv.Itoa(zoneID)
			}
			page, err := deps.inventory.GetItems(cmd.Context(), filters)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(page.Data))
			for _, item := range page.Data {
				rows = append(rows, []string{
					strconv.Itoa(item.ID), item.Reference, item.Name,
					item.Price.StringFixed(2), strconv.Itoa(item.ZoneID),
				})
			}
			printTable([]string{"ID", "REFERENCE", "NAME", "PRICE", "ZONE"}, rows)
			printMeta(page.Meta)
			return nil
		},
	}
	flags.register(list)
	list.Flags().IntVar(&zoneID, "zone", 0, "restrict to one zone")

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one item with its materials",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := deps.init(); err != nil {
				return err
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid item id %q", args[0])
			}
			item, err := deps.inventory.GetItemByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Printf("%s (%s), zone %d, price %s\n", item.Name, item.Reference, item.ZoneID, item.Price.StringFixed(2))
			materials, err := deps.inventory.GetMaterialsByItem(cmd.Context(), id)
			if err != nil {
				return err
			}
			for _, material := range materials {
				fmt.Printf("  - %s: %.2f %s\n", material.Name, material.Stock, material.Unit)
			}
			return nil
		},
	}

	cmd.AddCommand(list, show)
	return cmd
}

func newMaterialsCmd(deps *dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "materials",
		Short: "Manage materials",
	}

	var flags listFlags
	list := &cobra.Command{
		Use:   "list",
		Short: "List materials",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := deps.init(); err != nil {
				return err
			}
			page, err := deps.inventory.GetMaterials(cmd.Context(), flags.filters())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(page.Data))
			for _, material := range page.Data {
				rows = append(rows, []string{
					strconv.Itoa(material.ID), material.Name,
					fmt.Sprintf("%.2f %s", material.Stock, material.Unit),
					strconv.Itoa(material.ItemID),
				})
			}
			printTable([]string{"ID", "NAME", "STOCK", "ITEM"}, rows)
			printMeta(page.Meta)
			return nil
		},
	}
	flags.register(list)

	cmd.AddCommand(list)
	return cmd
}
