// Command logmux follows one or more Apache access logs, multiplexes
// them into a single stream of parsed records, and either prints the
// records matching a status filter or broadcasts every record to a set
// of concurrent consumers.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/kbukum/streamkit/apachelog"
	"github.com/kbukum/streamkit/config"
	"github.com/kbukum/streamkit/follow"
	"github.com/kbukum/streamkit/handoff"
	"github.com/kbukum/streamkit/logger"
	"github.com/kbukum/streamkit/observability"
	"github.com/kbukum/streamkit/stream"
	"github.com/kbukum/streamkit/version"
)

func main() {
	var (
		configPath  string
		mode        string
		showVersion bool
	)
	flag.StringVar(&configPath, "config", "", "path to config file (default: search standard locations)")
	flag.StringVar(&mode, "mode", "filter", "filter: print matching records; broadcast: fan out to consumers")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println("logmux", version.Full())
		return
	}

	var cfg Config
	var loadOpts []config.LoaderOption
	if configPath != "" {
		loadOpts = append(loadOpts, config.WithConfigFile(configPath))
	}
	if err := config.LoadConfig("logmux", &cfg, loadOpts...); err != nil {
		fmt.Fprintf(os.Stderr, "logmux: load config: %v\n", err)
		os.Exit(1)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "logmux: invalid config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Logging)
	log := logger.Get("logmux")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var metrics *observability.Metrics
	if cfg.Telemetry.Enabled {
		meterCfg := observability.DefaultMeterConfig(cfg.Name)
		if cfg.Telemetry.Endpoint != "" {
			meterCfg.Endpoint = cfg.Telemetry.Endpoint
		}
		provider, err := observability.InitMeter(ctx, &meterCfg)
		if err != nil {
			log.Fatal("init meter", logger.ErrorFields("init_meter", err))
		}
		defer provider.Shutdown(context.Background())

		metrics, err = observability.NewMetrics(observability.Meter(cfg.Name))
		if err != nil {
			log.Fatal("init metrics", logger.ErrorFields("init_metrics", err))
		}
	}

	records := buildPipeline(&cfg, metrics, log)

	var err error
	switch mode {
	case "filter":
		err = runFilter(ctx, &cfg, records, log)
	case "broadcast":
		err = runBroadcast(ctx, records, log)
	default:
		fmt.Fprintf(os.Stderr, "logmux: unknown mode %q\n", mode)
		os.Exit(1)
	}
	if err != nil && ctx.Err() == nil {
		log.Fatal("pipeline failed", logger.ErrorFields("run", err))
	}
	log.Info("done")
}

// buildPipeline follows every configured source and merges the parsed
// records round-robin into one stream.
func buildPipeline(cfg *Config, metrics *observability.Metrics, log *logger.Logger) *stream.Stream[apachelog.Record] {
	followOpts := []follow.Option{follow.WithPollInterval(cfg.PollInterval)}
	if cfg.FromStart {
		followOpts = append(followOpts, follow.FromStart())
	}

	sources := make([]*stream.Stream[apachelog.Record], 0, len(cfg.Sources))
	for _, path := range cfg.Sources {
		lines := follow.Follow(path, followOpts...)
		var records *stream.Stream[apachelog.Record]
		if cfg.Lenient {
			records = apachelog.RecordsLenient(lines)
		} else {
			records = apachelog.Records(lines)
		}
		sources = append(sources, records)
		log.Info("following source", logger.Fields(logger.FieldSource, path))
	}

	muxOpts := []handoff.Option{
		handoff.WithName("access"),
		handoff.WithLogger(log.WithComponent("handoff")),
	}
	if metrics != nil {
		muxOpts = append(muxOpts, handoff.WithMetrics(metrics))
	}
	return handoff.Multiplex(sources, muxOpts...)
}

func runFilter(ctx context.Context, cfg *Config, records *stream.Stream[apachelog.Record], log *logger.Logger) error {
	matched := stream.Filter(records, func(r apachelog.Record) bool {
		return r.Status == cfg.StatusFilter
	})
	return stream.Drain(ctx, matched, func(_ context.Context, r apachelog.Record) error {
		log.Info("matched record", logger.Fields(
			logger.FieldSource, r.Host,
			"path", r.Path,
			"status", r.Status,
			"bytes", r.Bytes,
		))
		return nil
	})
}

func runBroadcast(ctx context.Context, records *stream.Stream[apachelog.Record], log *logger.Logger) error {
	notFound := handoff.NewConsumer(func(ctx context.Context, values *stream.Stream[apachelog.Record]) error {
		misses := stream.Filter(values, func(r apachelog.Record) bool { return r.Status == 404 })
		return stream.Drain(ctx, misses, func(_ context.Context, r apachelog.Record) error {
			log.Info("404", logger.Fields("path", r.Path, logger.FieldSource, r.Host))
			return nil
		})
	}, handoff.WithName("find-404"))

	var totalBytes atomic.Int64
	byteCounter := handoff.NewConsumer(func(ctx context.Context, values *stream.Stream[apachelog.Record]) error {
		return stream.Drain(ctx, values, func(_ context.Context, r apachelog.Record) error {
			log.Info("bytes so far", logger.Fields("total", totalBytes.Add(r.Bytes)))
			return nil
		})
	}, handoff.WithName("count-bytes"))

	notFound.Start(ctx)
	byteCounter.Start(ctx)

	err := handoff.Broadcast(ctx, records, notFound, byteCounter)

	if werr := notFound.Wait(); err == nil {
		err = werr
	}
	if werr := byteCounter.Wait(); err == nil {
		err = werr
	}
	log.Info("total bytes served", logger.Fields("total", totalBytes.Load()))
	return err
}
