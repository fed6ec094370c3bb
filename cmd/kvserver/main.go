// Command kvserver is the CLI surface from spec §6: a -config path flag,
// -addr and -admin-addr listen address overrides (positional arguments are
// ignored), and a graceful-shutdown TCP accept loop
// plus an admin HTTP server, supervised together the way the teacher's
// cmd/edrmount/main.go boots its own config, API server, and background
// loops off one shared context.
package main

import (
	"context"
	"flag"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gaby/kvserver/internal/admin"
	"github.com/gaby/kvserver/internal/config"
	"github.com/gaby/kvserver/internal/keyspace"
	"github.com/gaby/kvserver/internal/logging"
	"github.com/gaby/kvserver/internal/server"
)

func main() {
	os.Exit(run())
}

func run() int {
	var cfgPath, addrOverride, adminAddrOverride string
	flag.StringVar(&cfgPath, "config", "/etc/kvserver/config.json", "path to config file (json)")
	flag.StringVar(&addrOverride, "addr", "", "override server.listen_addr")
	flag.StringVar(&adminAddrOverride, "admin-addr", "", "override admin.listen_addr")
	flag.Parse()

	if err := config.EnsureConfigFile(cfgPath); err != nil {
		log.Fatalf("config bootstrap: %v", err)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config load: %v", err)
	}
	if addrOverride != "" {
		cfg.Server.ListenAddr = addrOverride
	}
	if adminAddrOverride != "" {
		cfg.Admin.ListenAddr = adminAddrOverride
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config validate: %v", err)
	}

	logger := logging.New(cfg.Log.Level)
	ks := keyspace.New()
	adminSrv := admin.New(ks, cfg, cfgPath)
	limits := server.Limits{MaxInlineLine: cfg.Limits.MaxInlineLine, MaxBulkLen: cfg.Limits.MaxBulkLen}
	srv := server.New(ks, logger, adminSrv, limits)

	ln, err := net.Listen("tcp", cfg.Server.ListenAddr)
	if err != nil {
		logger.Printf("bind %s: %v", cfg.Server.ListenAddr, err)
		return 1
	}
	defer ln.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Banner(os.Stdout, os.Stdout.Fd(), time.Now(), cfg.Server.ListenAddr, cfg.Admin.ListenAddr)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Serve(gctx, ln)
	})

	if cfg.Admin.Enabled {
		httpSrv := &http.Server{Addr: cfg.Admin.ListenAddr, Handler: adminSrv}
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return httpSrv.Shutdown(shutdownCtx)
		})
		g.Go(func() error {
			if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Printf("server: %v", err)
		return 1
	}
	return 0
}
