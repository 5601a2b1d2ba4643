package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jmoren/wellspring/internal/httpserver"
	"github.com/jmoren/wellspring/internal/sensor"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the wellness coaching HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")

			a, err := buildApp(configPath)
			if err != nil {
				return err
			}
			defer a.close()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			var sim *sensor.Simulator
			if a.cfg.Sensor.Enabled {
				sim = sensor.NewSimulator(a.cfg.Sensor.Interval, a.log)
				sim.Start(ctx)
				defer sim.Stop()
			}

			router := httpserver.NewRouter(a.svc, sim, a.cfg.Server.CORSOrigins, a.log)
			srv := httpserver.NewServer(a.cfg.Server.Addr, router, a.log)

			if !a.svc.Ready(ctx) {
				a.log.Warn("model endpoint unreachable, starting in degraded mode",
					zap.String("endpoint", a.cfg.LLM.Endpoint))
			}

			return srv.Run(ctx)
		},
	}
}
