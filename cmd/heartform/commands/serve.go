package commands

import (
	"context"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/goliatone/go-heartform/internal/web"
)

const shutdownTimeout = 5 * time.Second

// NewServeCommand returns the serve subcommand.
func NewServeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the prediction form over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "host",
				Usage: "Host to listen on",
			},
			&cli.IntFlag{
				Name:  "port",
				Usage: "Port to listen on",
			},
		},
		Action: runServe,
	}
}

func runServe(ctx context.Context, cmd *cli.Command) error {
	e, err := loadEnv(cmd)
	if err != nil {
		return err
	}

	// CLI flags override config
	if cmd.IsSet("host") {
		e.cfg.Server.Host = cmd.String("host")
	}
	if cmd.IsSet("port") {
		e.cfg.Server.Port = int(cmd.Int("port"))
	}

	// Build the form once up front so a broken contract fails at startup.
	if _, err := e.orch.Form(ctx); err != nil {
		return err
	}

	server, err := web.NewServer(e.orch, e.client,
		web.WithLogger(e.logger),
		web.WithAddr(e.cfg.Server.Addr()),
	)
	if err != nil {
		return err
	}
	e.logger.Info("forwarding predictions", "endpoint", e.client.Endpoint())

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
