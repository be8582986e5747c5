package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/xetasuite/xetasuite-go/pkg/pagination"
	"github.com/xetasuite/xetasuite-go/pkg/query"
)

// listFlags are the shared flags of every list subcommand.
type listFlags struct {
	page    int
	perPage int
	search  string
	sortBy  string
	desc    bool
	siteID  int
}

func (f *listFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.page, "page", 1, "page to fetch")
	cmd.Flags().IntVar(&f.perPage, "per-page", 0, "page size (0 keeps the server default)")
	cmd.Flags().StringVar(&f.search, "search", "", "search query")
	cmd.Flags().StringVar(&f.sortBy, "sort", "", "sort column")
	cmd.Flags().BoolVar(&f.desc, "desc", false, "sort descending")
	cmd.Flags().IntVar(&f.siteID, "site", 0, "restrict to one site")
}

func (f *listFlags) filters() query.Filters {
	out := query.Filters{
		Page:    f.page,
		PerPage: f.perPage,
		Search:  f.search,
		SortBy:  f.sortBy,
	}
	if out.SortBy != "" {
		out.SortDirection = query.SortAsc
		if f.desc {
			out.SortDirection = query.SortDesc
		}
	}
	if f.siteID > 0 {
		out.Extra = map[string]string{"site_id": fmt.Sprintf("%d", f.siteID)}
	}
	return out
}

// printTable renders rows with aligned columns on stdout.
func printTable(header []string, rows [][]string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for i, col := range header {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, col)
	}
	fmt.Fprintln(w)
	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				fmt.Fprint(w, "\t")
			}
			fmt.Fprint(w, cell)
		}
		fmt.Fprintln(w)
	}
	_ = w.Flush()
}

// printMeta prints the pagination footer and the page row under a table.
func printMeta(meta pagination.Meta) {
	fmt.Printf("\n%d-%d of %d", meta.From, meta.To, meta.Total)
	if meta.LastPage > 1 {
		fmt.Print("  pages:")
		for _, p := range pagination.Window(meta.CurrentPage, meta.LastPage) {
			if p == pagination.Ellipsis {
				fmt.Print(" ...")
				continue
			}
			if p == meta.CurrentPage {
				fmt.Printf(" [%d]", p)
			} else {
				fmt.Printf(" %d", p)
			}
		}
	}
	fmt.Println()
}
