// Package cmdutil holds the setup shared by the commands.
package cmdutil

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mpapenbr/f1tel/log"
	"github.com/mpapenbr/f1tel/pkg/config"
	"github.com/mpapenbr/f1tel/pkg/handler"
	"github.com/mpapenbr/f1tel/pkg/packet"
	"github.com/mpapenbr/f1tel/pkg/publish"
	"github.com/mpapenbr/f1tel/pkg/sink"
	"github.com/mpapenbr/f1tel/pkg/utils"
	"github.com/mpapenbr/f1tel/pkg/utils/broadcast"
)

func ParseLogLevel(l string, defaultVal log.Level) log.Level {
	level, err := log.ParseLevel(l)
	if err != nil {
		return defaultVal
	}
	return level
}

// AddLogFlags adds the logging flags to cmd.
func AddLogFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&config.LogLevel,
		"log-level",
		"info",
		"controls the log level (debug, info, warn, error, fatal)")
	cmd.Flags().StringVar(&config.LogFormat,
		"log-format",
		"text",
		"controls the log output format (json, text)")
	cmd.Flags().StringVar(&config.LogConfig,
		"log-config",
		"",
		"path to a zap config file (yaml), overrides log-level and log-format")
	cmd.Flags().StringVar(&config.LogFilter,
		"log-filter",
		"",
		"zapfilter rules, for example 'debug:dispatch info:*'")
}

// AddPipelineFlags adds the flags used by commands receiving datagrams.
func AddPipelineFlags(cmd *cobra.Command) {
	AddLogFlags(cmd)
	cmd.Flags().StringSliceVar(&config.Packets,
		"packets",
		nil,
		"packet names to process (default all), e.g. lap-data,event")
	cmd.Flags().StringVar(&config.NatsURL,
		"nats-url",
		"",
		"publish packets to this NATS server")
	cmd.Flags().StringVar(&config.NatsSubjectPrefix,
		"nats-subject-prefix",
		"f1tel",
		"subject prefix, packets are published to <prefix>.<year>.<packet>")
	cmd.Flags().StringVar(&config.WaitForServices,
		"wait-for-services",
		"15s",
		"Duration to wait for the NATS server to be ready")
	cmd.Flags().StringVar(&config.SourceID,
		"source-id",
		"",
		"id sent with every NATS message (default random uuid)")
	cmd.Flags().StringVarP(&config.OutputFile,
		"output",
		"o",
		"",
		"write packets as JSON lines to this file (- for stdout)")
	cmd.Flags().BoolVar(&config.PrintMessage,
		"print-message",
		false,
		"if true and log level is debug, the packets will be printed")
	cmd.Flags().StringVar(&config.StatsInterval,
		"stats-interval",
		"1m",
		"interval for logging packet statistics")
	cmd.Flags().BoolVar(&config.EnableTelemetry,
		"enable-telemetry",
		false,
		"enables metrics (written to stderr)")
	cmd.Flags().StringVar(&config.TelemetryInterval,
		"telemetry-interval",
		"1m",
		"interval for writing metrics")
}

func SetupLogger() error {
	var logger *log.Logger
	switch {
	case config.LogConfig != "":
		var err error
		if logger, err = log.FromConfigFile(config.LogConfig); err != nil {
			return err
		}
	case config.LogFormat == "json":
		logger = log.New(
			os.Stderr,
			ParseLogLevel(config.LogLevel, log.InfoLevel),
			log.WithCaller(true),
			log.AddCallerSkip(1))
	default:
		logger = log.DevLogger(
			os.Stderr,
			ParseLogLevel(config.LogLevel, log.InfoLevel),
			log.WithCaller(true),
			log.AddCallerSkip(1))
	}
	filtered, err := logger.WithFilter(config.LogFilter)
	if err != nil {
		return fmt.Errorf("log filter: %w", err)
	}
	log.ResetDefault(filtered)
	return nil
}

// SetupTelemetry installs the metrics provider if enabled.
// The returned func flushes the metrics.
func SetupTelemetry() func() {
	if !config.EnableTelemetry {
		return func() {}
	}
	interval := ParseDuration(config.TelemetryInterval, time.Minute)
	t, err := config.SetupTelemetry(os.Stderr, interval)
	if err != nil {
		log.Warn("Could not setup telemetry", log.ErrorField(err))
		return func() {}
	}
	return func() {
		if err := t.Shutdown(context.Background()); err != nil {
			log.Warn("Could not shutdown telemetry", log.ErrorField(err))
		}
	}
}

func ParseDuration(s string, defaultVal time.Duration) time.Duration {
	if s == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		log.Warn("Invalid duration value. Using default",
			log.String("value", s), log.Duration("default", defaultVal))
		return defaultVal
	}
	return d
}

// PacketIDs resolves packet names.
func PacketIDs(names []string) ([]packet.ID, error) {
	ret := make([]packet.ID, 0, len(names))
	for _, name := range names {
		id, ok := packet.IDFromName(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", packet.ErrUnknownPacketID, name)
		}
		ret = append(ret, id)
	}
	return ret, nil
}

// Pipeline is the dispatcher with its configured handlers.
type Pipeline struct {
	Dispatcher *handler.Dispatcher
	closers    []func()
}

// NewPipeline creates the handlers configured by the flags.
//
//nolint:funlen // one block per handler
func NewPipeline(ctx context.Context, name string) (*Pipeline, error) {
	ret := &Pipeline{}
	handlers := []handler.Handler{}

	if config.NatsURL != "" {
		if addr := utils.ExtractFromNatsURL(config.NatsURL); addr != "" {
			timeout := ParseDuration(config.WaitForServices, 15*time.Second)
			if err := utils.WaitForTCP(ctx, addr, timeout); err != nil {
				return nil, err
			}
		}
		conn, err := publish.Connect(config.NatsURL)
		if err != nil {
			return nil, fmt.Errorf("connect nats: %w", err)
		}
		ret.closers = append(ret.closers, func() {
			if err := conn.Drain(); err != nil {
				log.Warn("Could not drain nats connection", log.ErrorField(err))
			}
		})
		p := publish.NewPublisher(conn,
			publish.WithSubjectPrefix(config.NatsSubjectPrefix),
			publish.WithSourceID(config.SourceID))
		log.Info("Publishing to NATS",
			log.String("url", config.NatsURL),
			log.String("source", p.SourceID()))
		handlers = append(handlers, p)
	}
	if config.OutputFile != "" {
		w, closeFn, err := openOutput(config.OutputFile)
		if err != nil {
			ret.Close()
			return nil, err
		}
		ret.closers = append(ret.closers, closeFn)
		handlers = append(handlers, sink.NewJSONL(w))
	}
	if len(handlers) == 0 {
		log.Warn("Neither --nats-url nor --output given, packets are only counted")
	}

	ids, err := PacketIDs(config.Packets)
	if err != nil {
		ret.Close()
		return nil, err
	}
	stats := handler.NewStats()
	bcstOpts := []broadcast.Option[packet.Packet]{}
	if config.EnableTelemetry {
		if err := stats.RegisterMetrics(name); err != nil {
			log.Warn("Could not register metrics", log.ErrorField(err))
		}
		bcstOpts = append(bcstOpts, broadcast.WithTelemetry[packet.Packet]())
	}
	fanout := handler.NewFanout(ctx, name, handlers, bcstOpts...)
	// the fanout has to be closed before the handlers
	ret.closers = append([]func(){fanout.Close}, ret.closers...)
	ret.Dispatcher = handler.NewDispatcher(fanout,
		handler.WithStats(stats),
		handler.WithPackets(ids...),
		handler.WithPrintMessage(config.PrintMessage))
	return ret, nil
}

func (p *Pipeline) Close() {
	for _, c := range p.closers {
		c()
	}
}

func openOutput(name string) (io.Writer, func(), error) {
	if name == "-" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(name)
	if err != nil {
		return nil, nil, err
	}
	return f, func() {
		if err := f.Close(); err != nil {
			log.Warn("Could not close output", log.ErrorField(err))
		}
	}, nil
}
