package replay

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
	"github.com/mpapenbr/f1tel/pkg/replay"
)

func NewReplayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay <capture-file>",
		Short: "replays telemetry datagrams from a pcap or pcapng capture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cmdutil.SetupLogger(); err != nil {
				return err
			}
			return replayFile(cmd.Context(), args[0])
		},
	}
	cmd.Flags().IntVar(&config.Replay.UDPPort,
		"port",
		20777,
		"only datagrams sent to this UDP port are replayed")
	cmd.Flags().IntVar(&config.Replay.Speed,
		"speed",
		1,
		"Recording speed (0 means: go as fast as possible)")
	cmd.Flags().StringVar(&config.Replay.FastForward,
		"fast-forward",
		"",
		"replay this duration with max speed")
	cmdutil.AddPipelineFlags(cmd)
	return cmd
}

func replayFile(parent context.Context, name string) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry := cmdutil.SetupTelemetry()
	defer shutdownTelemetry()

	p, err := cmdutil.NewPipeline(ctx, "replay")
	if err != nil {
		return err
	}
	defer p.Close()

	r := replay.NewReplay(p.Dispatcher,
		replay.WithPort(config.Replay.UDPPort),
		replay.WithSpeed(config.Replay.Speed),
		replay.WithFastForward(cmdutil.ParseDuration(config.Replay.FastForward, 0)),
	)
	res, err := r.ReplayFile(ctx, name)
	log.Info("Replay done",
		log.Int("frames", res.Frames),
		log.Int("datagrams", res.Datagrams),
		log.Duration("duration", res.Duration.Truncate(time.Millisecond)))
	p.Dispatcher.Stats().Log(log.Default().Named("stats"))
	return err
}
