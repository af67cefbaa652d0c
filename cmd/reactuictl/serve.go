package main

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/vango-go/reactui/metrics"
	"github.com/vango-go/reactui/runtime"
	"github.com/vango-go/reactui/tracing"
	"github.com/vango-go/reactui/transport/wsupdater"
)

func serveCmd() *cobra.Command {
	var (
		port          int
		host          string
		metricsPath   string
		enableMetrics bool
		enableTracing bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the demo root component over WebSocket",
		Long: `serve boots an HTTP server mounting a demo counter component
behind a WebSocket transport at /ws, for local exploration.

Examples:
  reactuictl serve
  reactuictl serve --port=8080 --metrics`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(host, port, metricsPath, enableMetrics, enableTracing)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 8080, "Port to listen on")
	cmd.Flags().StringVarP(&host, "host", "H", "0.0.0.0", "Host to bind to")
	cmd.Flags().BoolVar(&enableMetrics, "metrics", false, "Expose Prometheus metrics at /metrics")
	cmd.Flags().StringVar(&metricsPath, "metrics-path", "/metrics", "Path to expose metrics on")
	cmd.Flags().BoolVar(&enableTracing, "tracing", false, "Trace renders and dispatches via OpenTelemetry")

	return cmd
}

func runServe(host string, port int, metricsPath string, enableMetrics, enableTracing bool) error {
	logger := slog.Default()

	var rtOpts []runtime.Option
	if enableMetrics {
		rtOpts = append(rtOpts, runtime.WithMetrics(metrics.New()))
	}
	if enableTracing {
		rtOpts = append(rtOpts, runtime.WithTracer(tracing.New()))
	}

	r := chi.NewRouter()
	r.Handle("/ws", wsupdater.New(demoRoot, []wsupdater.Option{wsupdater.WithLogger(logger)}, rtOpts...))

	if enableMetrics {
		r.Handle(metricsPath, promhttp.Handler())
	}

	addr := fmt.Sprintf("%s:%d", host, port)
	printBanner()
	success("listening on %s", addr)
	info("WebSocket endpoint: ws://%s/ws", addr)
	if enableMetrics {
		info("Metrics endpoint:   http://%s%s", addr, metricsPath)
	}

	return http.ListenAndServe(addr, r)
}
