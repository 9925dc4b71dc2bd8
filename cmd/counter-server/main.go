// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ava-labs/countervm/codec"
	"github.com/ava-labs/countervm/config"
	"github.com/ava-labs/countervm/consts"
	"github.com/ava-labs/countervm/event"
	"github.com/ava-labs/countervm/genesis"
	"github.com/ava-labs/countervm/rpc"
	"github.com/ava-labs/countervm/server"
	"github.com/ava-labs/countervm/vm"
)

var (
	configPath  string
	genesisPath string

	rootCmd = &cobra.Command{
		Use:   "counter-server",
		Short: "Serve a counter state machine over JSON-RPC",
		RunE:  run,
	}
)

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "path to config JSON")
	rootCmd.Flags().StringVar(&genesisPath, "genesis", "", "path to genesis JSON")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func readOptional(path string) ([]byte, error) {
	if path == "" {
		return nil, nil
	}
	return os.ReadFile(path)
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	parsed, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	cfg.Level = parsed
	return cfg.Build()
}

func run(cmd *cobra.Command, _ []string) error {
	configBytes, err := readOptional(configPath)
	if err != nil {
		return err
	}
	cfg, err := config.New(configBytes)
	if err != nil {
		return err
	}
	genesisBytes, err := readOptional(genesisPath)
	if err != nil {
		return err
	}
	gen, err := genesis.New(genesisBytes)
	if err != nil {
		return err
	}

	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() {
		_ = log.Sync()
	}()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	registry := prometheus.NewRegistry()
	eventLogger := event.SubscriptionFunc[codec.Typed]{
		AcceptF: func(_ context.Context, e codec.Typed) error {
			log.Info("event",
				zap.Uint8("type", e.GetTypeID()),
				zap.Any("body", e),
			)
			return nil
		},
	}

	machine, err := vm.New(
		ctx,
		log,
		memdb.New(),
		gen,
		cfg.NetworkID,
		consts.ID,
		registry,
		[]event.Subscription[codec.Typed]{eventLogger},
	)
	if err != nil {
		return err
	}

	handler, err := server.NewJSONRPCHandler(rpc.NewJSONRPCServer(machine))
	if err != nil {
		return err
	}

	listener, err := net.Listen("tcp", cfg.HTTPAddr)
	if err != nil {
		return err
	}
	srv := server.New(log, listener, server.HTTPConfig{
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}, cfg.AllowedOrigins, cfg.ShutdownTimeout)
	srv.AddRoute(handler, rpc.JSONRPCEndpoint)
	srv.AddRoute(promhttp.HandlerFor(registry, promhttp.HandlerOpts{}), "/metrics")

	log.Info("serving",
		zap.Stringer("version", consts.Version),
		zap.String("addr", cfg.HTTPAddr),
		zap.Stringer("owner", gen.Owner),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Dispatch)
	g.Go(func() error {
		<-gctx.Done()
		return srv.Shutdown()
	})
	if err := g.Wait(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
