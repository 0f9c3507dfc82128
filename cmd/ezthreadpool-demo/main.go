// Package main runs a small thread pool workload: N jobs where job i sleeps for
// i*job_duration, followed by a drain (or a hard stop with -stop).
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/pgvanniekerk/ezthreadpool/internal/config"
	"github.com/pgvanniekerk/ezthreadpool/pkg/threadpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	var (
		configFile = flag.String("config", "", "config file path (YAML/JSON)")
		hardStop   = flag.Bool("stop", false, "stop the pool instead of draining it")
	)
	flag.Parse()

	if err := run(*configFile, *hardStop); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(configFile string, hardStop bool) error {
	cfg := config.Default()
	if configFile != "" {
		loaded, err := config.LoadFile(configFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}
	jobDuration, err := cfg.JobDuration()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	opts := append(cfg.ThreadPoolOptions(), threadpool.WithLogger(logger))

	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		m, err := threadpool.NewMetrics(reg, cfg.Metrics.Namespace, nil)
		if err != nil {
			return fmt.Errorf("register metrics: %w", err)
		}
		opts = append(opts, threadpool.WithMetrics(m))

		srv := &http.Server{
			Addr:              cfg.Metrics.Address,
			Handler:           promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server failed", "err", err)
			}
		}()
		defer srv.Close()
	}

	tp, err := threadpool.New(opts...)
	if err != nil {
		return err
	}
	defer tp.Close()

	if !tp.Start() {
		return fmt.Errorf("thread pool did not start, status %s", tp.Status())
	}

	for i := 0; i < cfg.Demo.Jobs; i++ {
		d := time.Duration(i) * jobDuration
		ok := tp.Enqueue(func() {
			logger.Info("job working", "job", i, "duration", d)
			time.Sleep(d)
			logger.Info("job done", "job", i)
		})
		if !ok {
			logger.Warn("job rejected", "job", i)
		}
	}

	logger.Info("jobs enqueued", "queued", tp.NumTasks(), "available", tp.AvailableThreads())

	if hardStop {
		tp.Stop()
	} else {
		tp.Drain()
	}

	logger.Info("done", "status", tp.Status())
	return nil
}
