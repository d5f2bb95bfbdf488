package listen

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mpapenbr/f1tel/log"
	"github.com/mpapenbr/f1tel/pkg/cmd/cmdutil"
	"github.com/mpapenbr/f1tel/pkg/config"
	"github.com/mpapenbr/f1tel/pkg/listener"
)

func NewListenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listen",
		Short: "receives telemetry datagrams from the game",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cmdutil.SetupLogger(); err != nil {
				return err
			}
			return startListener(cmd.Context())
		},
	}
	cmd.Flags().StringVarP(&config.ListenAddr,
		"addr",
		"a",
		":20777",
		"UDP address to listen on")
	cmd.Flags().IntVar(&config.ReadBuffer,
		"read-buffer",
		0,
		"size of the socket receive buffer (0 keeps the os default)")
	cmdutil.AddPipelineFlags(cmd)
	return cmd
}

func startListener(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry := cmdutil.SetupTelemetry()
	defer shutdownTelemetry()

	p, err := cmdutil.NewPipeline(ctx, "listen")
	if err != nil {
		return err
	}
	defer p.Close()

	stats := p.Dispatcher.Stats()
	l := listener.NewUDPListener(config.ListenAddr, p.Dispatcher,
		listener.WithReadBuffer(config.ReadBuffer),
		listener.WithStatsLogging(
			cmdutil.ParseDuration(config.StatsInterval, time.Minute),
			func() { stats.Log(log.Default().Named("stats")) }),
	)
	if err := l.Listen(); err != nil {
		return err
	}
	log.Info("Listening for telemetry", log.String("addr", l.LocalAddr().String()))
	err = l.Serve(ctx)
	stats.Log(log.Default().Named("stats"))
	log.Info("Listener stopped")
	return err
}
