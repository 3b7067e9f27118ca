package main

import (
	"context"
	"folio/internal/metrics"
	"folio/internal/web"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type ServeCmd struct {
	Addr string `short:"a" help:"Listen address (overrides server.addr)"`
}

func (cmd *ServeCmd) Run(g *Globals) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	srv, err := web.New(web.Options{
		Catalog:   g.Cat,
		Contact:   g.ContactService(),
		Presenter: g.Presenter,
		Metrics:   metrics.New(reg),
		Logger:    g.Logger,
		Site:      g.Config.Site,
	})
	if err != nil {
		return err
	}

	serverCfg := g.Config.Server
	if cmd.Addr != "" {
		serverCfg.Addr = cmd.Addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return srv.ListenAndServe(ctx, serverCfg)
}
