package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newCompaniesCmd(deps *dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "companies",
		Short: "Manage maintainer companies",
	}

	var flags listFlags
	list := &cobra.Command{
		Use:   "list",
		Short: "List companies",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := deps.init(); err != nil {
				return err
			}
			page, err := deps.directory.GetCompanies(cmd.Context(), flags.filters())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(page.Data))
			for _, company := range page.Data {
				rows = append(rows, []string{strconv.Itoa(company.ID), company.Name, company.Email, company.Phone})
			}
			printTable([]string{"ID", "NAME", "EMAIL", "PHONE"}, rows)
			printMeta(page.Meta)
			return nil
		},
	}
	flags.register(list)

	cmd.AddCommand(list)
	return cmd
}

func newUsersCmd(deps *dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage users",
	}

	var flags listFlags
	list := &cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := deps.init(); err != nil {
				return err
			}
			page, err := deps.directory.GetUsers(cmd.Context(), flags.filters())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(page.Data))
			for _, user := range page.Data {
				rows = append(rows, []string{strconv.Itoa(user.ID), user.FullName(), user.Email})
			}
			printTable([]string{"ID", "NAME", "EMAIL"}, rows)
			printMeta(page.Meta)
			return nil
		},
	}
	flags.register(list)

	whoami := &cobra.Command{
		Use:   "whoami",
		Short: "Show the account behind the current session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := deps.init(); err != nil {
				return err
			}
			user, err := deps.directory.GetCurrentUser(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("%s <%s> (role %d)\n", user.FullName(), user.Email, user.RoleID)
			return nil
		},
	}

	cmd.AddCommand(list, whoami)
	return cmd
}

func newRolesCmd(deps *dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roles",
		Short: "Manage roles and permissions",
	}

	var flags listFlags
	list := &cobra.Command{
		Use:   "list",
		Short: "List roles",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := deps.init(); err != nil {
				return err
			}
			page, err := deps.directory.GetRoles(cmd.Context(), flags.filters())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(page.Data))
			for _, role := range page.Data {
				rows = append(rows, []string{
					strconv.Itoa(role.ID), role.Name, strings.Join(role.Permissions, ", "),
				})
			}
			printTable([]string{"ID", "NAME", "PERMISSIONS"}, rows)
			printMeta(page.Meta)
			return nil
		},
	}
	flags.register(list)

	permissions := &cobra.Command{
		Use:   "permissions",
		Short: "Print the permission-flag catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := deps.init(); err != nil {
				return err
			}
			catalog, err := deps.directory.GetPermissions(cmd.Context())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(catalog))
			for _, permission := range catalog {
				rows = append(rows, []string{permission.Name, permission.Description})
			}
			printTable([]string{"FLAG", "DESCRIPTION"}, rows)
			return nil
		},
	}

	cmd.AddCommand(list, permissions)
	return cmd
}
