package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/xetasuite/xetasuite-go/modules/facility"
	"github.com/xetasuite/xetasuite-go/modules/inventory"
	"github.com/xetasuite/xetasuite-go/pkg/export"
)

func newExportCmd(deps *dependencies) *cobra.Command {
	var output string
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "export <items|sites>",
		Short: "Export a list to an xlsx workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := deps.init(); err != nil {
				return err
			}
			entity := args[0]
			if output == "" {
				output = export.Filename(entity)
			}
			f, err := os.Create(output)
			if err != nil {
				return err
			}
			defer func() { _ = f.Close() }()

			switch entity {
			case "items":
				columns := []export.Column[inventory.Item]{
					{Header: "ID", Value: func(i inventory.Item) any { return i.ID }},
					{Header: "Reference", Value: func(i inventory.Item) any { return i.Reference }},
					{Header: "Name", Value: func(i inventory.Item) any { return i.Name }},
					{Header: "Price", Value: func(i inventory.Item) any { return i.Price.StringFixed(2) }},
					{Header: "Zone", Value: func(i inventory.Item) any { return i.ZoneID }},
				}
				err = export.Write(cmd.Context(), f, deps.inventory.GetItems, flags.filters(), columns, export.Options{
					SheetName: "Items",
					PageSize:  100,
				})
			case "sites":
				columns := []export.Column[facility.Site]{
					{Header: "ID", Value: func(s facility.Site) any { return s.ID }},
					{Header: "Name", Value: func(s facility.Site) any { return s.Name }},
					{Header: "Address", Value: func(s facility.Site) any { return s.Address }},
					{Header: "Active", Value: func(s facility.Site) any { return strconv.FormatBool(s.Active) }},
				}
				err = export.Write(cmd.Context(), f, deps.facility.GetSites, flags.filters(), columns, export.Options{
					SheetName: "Sites",
					PageSize:  100,
				})
			default:
				return fmt.Errorf("unsupported export entity %q", entity)
			}
			if err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default xetasuite_<entity>.xlsx)")
	flags.register(cmd)
	return cmd
}
