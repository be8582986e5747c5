package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xetasuite/xetasuite-go/pkg/apierrors"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "xetasuite",
		Short:         "XetaSuite facility-maintenance admin client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	deps := &dependencies{}
	cmd.PersistentFlags().StringVar(&deps.baseURL, "base-url", "", "backend base URL (overrides XETA_BASE_URL)")

	cmd.AddCommand(newSitesCmd(deps))
	cmd.AddCommand(newZonesCmd(deps))
	cmd.AddCommand(newItemsCmd(deps))
	cmd.AddCommand(newMaterialsCmd(deps))
	cmd.AddCommand(newIncidentsCmd(deps))
	cmd.AddCommand(newMaintenancesCmd(deps))
	cmd.AddCommand(newCleaningsCmd(deps))
	cmd.AddCommand(newCompaniesCmd(deps))
	cmd.AddCommand(newUsersCmd(deps))
	cmd.AddCommand(newRolesCmd(deps))
	cmd.AddCommand(newCalendarCmd(deps))
	cmd.AddCommand(newDashboardCmd(deps))
	cmd.AddCommand(newExportCmd(deps))
	return cmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		if _, ok := apierrors.As(err); ok {
			fmt.Fprintln(os.Stderr, apierrors.Display(err))
		} else {
			fmt.Fprintln(os.Stderr, err.Error())
		}
		os.Exit(1)
	}
}
