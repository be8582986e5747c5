package export_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/xetasuite/xetasuite-go/pkg/export"
	"github.com/xetasuite/xetasuite-go/pkg/pagination"
	"github.com/xetasuite/xetasuite-go/pkg/query"
)

type site struct {
	ID   int
	Name string
}

func pagedFetch(total, perPage int) func(context.Context, query.Filters) (*pagination.Page[site], error) {
	return func(_ context.Context, filters query.Filters) (*pagination.Page[site], error) {
		lastPage := (total + perPage - 1) / perPage
		start := (filters.Page - 1) * perPage
		var data []site
		for i := start; i < start+perPage && i < total; i++ {
			data = append(data, site{ID: i + 1, Name: "Site " + string(rune('A'+i))})
		}
		return &pagination.Page[site]{
			Data: data,
			Meta: pagination.Meta{CurrentPage: filters.Page, LastPage: lastPage, PerPage: perPage, Total: total},
		}, nil
	}
}

func TestWriteDrainsAllPages(t *testing.T) {
	t.Parallel()

	columns := []export.Column[site]{
		{Header: "ID", Value: func(s site) any { return s.ID }},
		{Header: "Name", Value: func(s site) any { return s.Name }},
	}

	var buf bytes.Buffer
	err := export.Write(context.Background(), &buf, pagedFetch(5, 2), query.Filters{}, columns, export.Options{
		SheetName: "Sites",
		PageSize:  2,
	})
	require.NoError(t, err)

	file, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	rows, err := file.GetRows("Sites")
	require.NoError(t, err)
	require.Len(t, rows, 6, "header plus five entities across three pages")
	assert.Equal(t, []string{"ID", "Name"}, rows[0])
	assert.Equal(t, "Site A", rows[1][1])
	assert.Equal(t, "5", rows[5][0])
}

func TestWriteRequiresColumns(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := export.Write(context.Background(), &buf, pagedFetch(1, 1), query.Filters{}, nil, export.Options{})
	assert.Error(t, err)
}

func TestFilename(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "xetasuite_items.xlsx", export.Filename("items"))
}
