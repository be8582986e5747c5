package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newCalendarCmd(deps *dependencies) *cobra.Command {
	var fromStr, toStr string
	var siteID int

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show scheduled maintenances and cleanings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := deps.init(); err != nil {
				return err
			}
			now := time.Now()
			from := now.AddDate(0, 0, -now.Day()+1)
			to := from.AddDate(0, 1, -1)
			var err error
			if fromStr != "" {
				if from, err = time.Parse("2006-01-02", fromStr); err != nil {
					return fmt.Errorf("invalid --from date %q", fromStr)
				}
			}
			if toStr != "" {
				if to, err = time.Parse("2006-01-02", toStr); err != nil {
					return fmt.Errorf("invalid --to date %q", toStr)
				}
			}
			events, err := deps.planner.GetRange(cmd.Context(), from, to, siteID)
			if err != nil {
				return err
			}
			for _, event := range events {
				when := event.StartsAt.Format("2006-01-02 15:04")
				if event.AllDay {
					when = event.StartsAt.Format("2006-01-02")
				}
				fmt.Printf("%s  [%s]  %s\n", when, event.Kind, event.Title)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&fromStr, "from", "", "range start (YYYY-MM-DD, default: first of month)")
	cmd.Flags().StringVar(&toStr, "to", "", "range end (YYYY-MM-DD, default: end of month)")
	cmd.Flags().IntVar(&siteID, "site", 0, "restrict to one site")
	return cmd
}

func newDashboardCmd(deps *dependencies) *cobra.Command {
	var siteID int

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the overview statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := deps.init(); err != nil {
				return err
			}
			stats, err := deps.dashboard.GetOverview(cmd.Context(), siteID)
			if err != nil {
				return err
			}
			printTable([]string{"METRIC", "COUNT"}, [][]string{
				{"Sites", fmt.Sprint(stats.Sites)},
				{"Zones", fmt.Sprint(stats.Zones)},
				{"Items", fmt.Sprint(stats.Items)},
				{"Materials", fmt.Sprint(stats.Materials)},
				{"Open incidents", fmt.Sprint(stats.OpenIncidents)},
				{"Upcoming maintenances", fmt.Sprint(stats.UpcomingMaintenances)},
				{"Cleanings this week", fmt.Sprint(stats.CleaningsThisWeek)},
				{"Users", fmt.Sprint(stats.Users)},
			})
			return nil
		},
	}
	cmd.Flags().IntVar(&siteID, "site", 0, "restrict to one site")
	return cmd
}
