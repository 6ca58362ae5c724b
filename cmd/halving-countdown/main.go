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
	"time"

	"github.com/goodnatureofminers/halving-countdown/internal/clock"
	"github.com/goodnatureofminers/halving-countdown/internal/format"
	"github.com/goodnatureofminers/halving-countdown/internal/halving/service"
	"github.com/goodnatureofminers/halving-countdown/internal/halving/source"
	"github.com/goodnatureofminers/halving-countdown/internal/metrics"
	"github.com/goodnatureofminers/halving-countdown/internal/render"
	"github.com/goodnatureofminers/halving-countdown/internal/transport"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type config struct {
	Source          string        `long:"source" env:"HALVING_SOURCE" description:"block height source" choice:"http" choice:"node" default:"http"`
	HeightURL       string        `long:"height-url" env:"HALVING_HEIGHT_URL" description:"endpoint returning the tip height as a JSON integer" default:"https://mempool.space/api/blocks/tip/height"`
	HTTPTimeout     time.Duration `long:"http-timeout" env:"HALVING_HTTP_TIMEOUT" description:"timeout for height requests" default:"10s"`
	MinInterval     time.Duration `long:"min-request-interval" env:"HALVING_MIN_REQUEST_INTERVAL" description:"minimum spacing between height requests" default:"5s"`
	RPCURL          string        `long:"rpc-url" env:"HALVING_RPC_URL" description:"Bitcoin RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser         string        `long:"rpc-user" env:"HALVING_RPC_USER" description:"Bitcoin RPC username"`
	RPCPassword     string        `long:"rpc-password" env:"HALVING_RPC_PASSWORD" description:"Bitcoin RPC password"`
	TickInterval    time.Duration `long:"tick-interval" env:"HALVING_TICK_INTERVAL" description:"countdown tick interval" default:"1s"`
	RefreshInterval time.Duration `long:"refresh-interval" env:"HALVING_REFRESH_INTERVAL" description:"block height refresh interval" default:"2m"`
	Locale          string        `long:"locale" env:"HALVING_LOCALE" description:"BCP 47 locale for number formatting" default:"en-US"`
	RestAddr        string        `long:"rest-addr" env:"HALVING_REST_ADDR" description:"REST and metrics address, empty to disable" default:":8001"`
	GRPCAddr        string        `long:"grpc-addr" env:"HALVING_GRPC_ADDR" description:"gRPC health address, empty to disable" default:":8000"`
	Headless        bool          `long:"headless" env:"HALVING_HEADLESS" description:"do not draw the countdown in the terminal"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	grpcZap.ReplaceGrpcLoggerV2(logger)

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("halving countdown failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	heights, closeSource, err := newHeightSource(cfg)
	if err != nil {
		return fmt.Errorf("init height source: %w", err)
	}
	defer closeSource()

	tracker, err := service.NewTracker(
		source.NewLimitedSource(
			source.NewObservedSource(heights, metrics.NewHeightSource(cfg.Source)),
			cfg.MinInterval,
		),
		metrics.NewTracker(),
		logger.Named("tracker"),
		cfg.TickInterval,
		cfg.RefreshInterval,
	)
	if err != nil {
		return err
	}
	formatter := format.New(cfg.Locale)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return tracker.Run(ctx) })

	if cfg.RestAddr != "" {
		handler, err := transport.NewRESTHandler(tracker, formatter, logger.Named("rest"))
		if err != nil {
			return err
		}
		g.Go(func() error { return serveHTTP(ctx, cfg.RestAddr, handler, logger) })
	}
	if cfg.GRPCAddr != "" {
		g.Go(func() error { return serveGRPC(ctx, cfg.GRPCAddr, tracker, logger) })
	}
	if !cfg.Headless {
		term := render.NewTerminal(os.Stdout, formatter, true)
		g.Go(func() error {
			return clock.Every(ctx, cfg.TickInterval, func(time.Time) {
				if err := term.Render(tracker.Snapshot()); err != nil {
					logger.Warn("failed to render countdown", zap.Error(err))
				}
			})
		})
	}

	return g.Wait()
}

func newHeightSource(cfg config) (source.HeightSource, func(), error) {
	if cfg.Source != "node" {
		return source.NewHTTPSource(cfg.HeightURL, cfg.HTTPTimeout), func() {}, nil
	}

	client, err := source.NewRPCClient(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword)
	if err != nil {
		return nil, nil, err
	}
	return source.NewNodeSource(client), func() {
		client.Shutdown()
		client.WaitForShutdown()
	}, nil
}

func serveHTTP(ctx context.Context, addr string, handler http.Handler, logger *zap.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("starting HTTP server", zap.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen and serve: %w", err)
	}
	return nil
}

func serveGRPC(ctx context.Context, addr string, provider transport.SnapshotProvider, logger *zap.Logger) error {
	server, hs := transport.NewGRPCServer(logger.Named("grpc"))

	socket, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("net.Listen: %w", err)
	}

	go func() {
		_ = transport.WatchHealth(ctx, provider, hs, time.Second)
	}()
	go func() {
		<-ctx.Done()
		logger.Info("shutting down gRPC server")
		hs.Shutdown()
		server.GracefulStop()
	}()

	logger.Info("starting gRPC server", zap.String("addr", addr))
	return server.Serve(socket)
}
