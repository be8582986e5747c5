package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newIncidentsCmd(deps *dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "incidents",
		Short: "Manage incidents",
	}

	var flags listFlags
	var openOnly bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List incidents",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := deps.init(); err != nil {
				return err
			}
			filters := flags.filters()
			if openOnly {
				if filters.Extra == nil {
					filters.Extra = map[string]string{}
				}
				filters.Extra["resolved"] = "0"
			}
			page, err := deps.maintenance.GetIncidents(cmd.Context(), filters)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(page.Data))
			for _, incident := range page.Data {
				state := "open"
				if incident.Resolved {
					state = "resolved"
				}
				rows = append(rows, []string{
					strconv.Itoa(incident.ID), string(incident.Severity), state, incident.Description,
				})
			}
			printTable([]string{"ID", "SEVERITY", "STATE", "DESCRIPTION"}, rows)
			printMeta(page.Meta)
			return nil
		},
	}
	flags.register(list)
	list.Flags().BoolVar(&openOnly, "open", false, "only unresolved incidents")

	resolve := &cobra.Command{
		Use:   "resolve <id>",
		Short: "Mark an incident resolved",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := deps.init(); err != nil {
				return err
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid incident id %q", args[0])
			}
			incident, err := deps.maintenance.ResolveIncident(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Printf("incident %d resolved at %s\n", incident.ID, incident.ResolvedAt.Format("2006-01-02 15:04"))
			return nil
		},
	}

	cmd.AddCommand(list, resolve)
	return cmd
}

func newMaintenancesCmd(deps *dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "maintenances",
		Short: "Manage maintenances",
	}

	var flags listFlags
	list := &cobra.Command{
		Use:   "list",
		Short: "List maintenances",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := deps.init(); err != nil {
				return err
			}
			page, err := deps.maintenance.GetMaintenances(cmd.Context(), flags.filters())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(page.Data))
			for _, m := range page.Data {
				realized := "-"
				if m.RealizedAt != nil {
					realized = m.RealizedAt.Format("2006-01-02")
				}
				rows = append(rows, []string{
					strconv.Itoa(m.ID), string(m.Type),
					m.ScheduledAt.Format("2006-01-02"), realized, m.Description,
				})
			}
			printTable([]string{"ID", "TYPE", "SCHEDULED", "REALIZED", "DESCRIPTION"}, rows)
			printMeta(page.Meta)
			return nil
		},
	}
	flags.register(list)

	cmd.AddCommand(list)
	return cmd
}

func newCleaningsCmd(deps *dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cleanings",
		Short: "Manage cleanings",
	}

	var flags listFlags
	list := &cobra.Command{
		Use:   "list",
		Short: "List cleanings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := deps.init(); err != nil {
				return err
			}
			page, err := deps.maintenance.GetCleanings(cmd.Context(), flags.filters())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(page.Data))
			for _, cleaning := range page.Data {
				rows = append(rows, []string{
					strconv.Itoa(cleaning.ID), strconv.Itoa(cleaning.ZoneID),
					cleaning.PerformedAt.Format("2006-01-02"), cleaning.Notes,
				})
			}
			printTable([]string{"ID", "ZONE", "PERFORMED", "NOTES"}, rows)
			printMeta(page.Meta)
			return nil
		},
	}
	flags.register(list)

	cmd.AddCommand(list)
	return cmd
}
