package main

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/xetasuite/xetasuite-go/modules/dashboard"
	"github.com/xetasuite/xetasuite-go/modules/directory"
	"github.com/xetasuite/xetasuite-go/modules/facility"
	"github.com/xetasuite/xetasuite-go/modules/inventory"
	"github.com/xetasuite/xetasuite-go/modules/maintenance"
	"github.com/xetasuite/xetasuite-go/modules/planner"
	"github.com/xetasuite/xetasuite-go/pkg/apiclient"
	"github.com/xetasuite/xetasuite-go/pkg/configuration"
	"github.com/xetasuite/xetasuite-go/pkg/logging"
)

// dependencies wires the client and services lazily, so commands that
// never touch the network (help, completion) skip configuration loading.
type dependencies struct {
	baseURL string

	once   sync.Once
	err    error
	client *apiclient.Client

	facility    *facility.Service
	inventory   *inventory.Service
	maintenance *maintenance.Service
	directory   *directory.Service
	planner     *planner.Service
	dashboard   *dashboard.Service
}

func (d *dependencies) init() error {
	d.once.Do(func() {
		cfg, err := configuration.Load(".env", ".env.local")
		if err != nil {
			d.err = err
			return
		}
		baseURL := cfg.BaseURL
		if d.baseURL != "" {
			baseURL = d.baseURL
		}
		logger, err := logging.New(cfg.LogrusLogLevel(), cfg.LogPath)
		if err != nil {
			d.err = err
			return
		}
		opts := []apiclient.Option{
			apiclient.WithLogger(logger),
			apiclient.WithTimeout(cfg.HTTPTimeout),
		}
		if cfg.MetricsEnabled {
			opts = append(opts, apiclient.WithMetrics(prometheus.DefaultRegisterer))
		}
		client, err := apiclient.New(baseURL, opts...)
		if err != nil {
			d.err = err
			return
		}
		d.client = client
		d.facility = facility.NewService(facility.NewRepository(client))
		d.inventory = inventory.NewService(inventory.NewRepository(client))
		d.maintenance = maintenance.NewService(maintenance.NewRepository(client))
		d.directory = directory.NewService(directory.NewRepository(client))
		d.planner = planner.NewService(planner.NewRepository(client))
		d.dashboard = dashboard.NewService(dashboard.NewRepository(client))
	})
	return d.err
}
