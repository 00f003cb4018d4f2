// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"os/user"
	"path/filepath"
	"runtime"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/oreprotocol/ore/ledger"
	"github.com/oreprotocol/ore/log"
	"github.com/oreprotocol/ore/lvldb"
	"github.com/oreprotocol/ore/metrics"
)

const configKey = "config"

var (
	logger = log.WithContext("pkg", "orectl")

	metricsServer *http.Server
)

func before(ctx *cli.Context) error {
	initLogger(ctx)

	cfg, err := LoadConfig(ctx.GlobalString(configFlag.Name))
	if err != nil {
		return err
	}
	ctx.App.Metadata = map[string]any{configKey: cfg}

	if addr := ctx.GlobalString(metricsAddrFlag.Name); addr != "" {
		return startMetricsServer(addr)
	}
	return nil
}

func after(ctx *cli.Context) error {
	if metricsServer == nil {
		return nil
	}
	logger.Info("serving metrics until interrupted", "addr", metricsServer.Addr)
	waitForExitSignal()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return metricsServer.Shutdown(shutdownCtx)
}

func config(ctx *cli.Context) *Config {
	return ctx.App.Metadata[configKey].(*Config)
}

func initLogger(ctx *cli.Context) {
	handler := log.NewTerminalHandler(os.Stderr)
	if ctx.GlobalBool(jsonLogsFlag.Name) {
		handler = log.JSONHandler(os.Stderr)
	}
	log.SetDefault(handler)
	log.SetLevel(log.LevelFromVerbosity(ctx.GlobalInt(verbosityFlag.Name)))
}

func startMetricsServer(addr string) error {
	metrics.InitializePrometheusMetrics(prometheus.NewRegistry())

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Wrapf(err, "listen metrics api addr [%v]", addr)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.HTTPHandler())
	metricsServer = &http.Server{Addr: listener.Addr().String(), Handler: mux, ReadHeaderTimeout: time.Second}
	go func() {
		if err := metricsServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server stopped", "err", err)
		}
	}()
	return nil
}

func waitForExitSignal() {
	exitSignalCh := make(chan os.Signal, 1)
	signal.Notify(exitSignalCh, os.Interrupt, syscall.SIGTERM)
	<-exitSignalCh
	signal.Stop(exitSignalCh)
}

// openLedger opens the ledger kept in dataDir, or an in-memory one when
// dataDir is empty.
func openLedger(dataDir string) (*ledger.Ledger, func(), error) {
	var (
		db  *lvldb.LevelDB
		err error
	)
	if dataDir == "" {
		db, err = lvldb.NewMem()
	} else {
		if err := os.MkdirAll(dataDir, 0o700); err != nil {
			return nil, nil, errors.Wrap(err, "create data dir")
		}
		db, err = lvldb.New(filepath.Join(dataDir, "ledger"), lvldb.Options{CacheSize: 64, OpenFilesCacheCapacity: 64})
	}
	if err != nil {
		return nil, nil, err
	}
	l, err := ledger.New(db, clockwork.NewRealClock(), ledger.Options{})
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	return l, func() { db.Close() }, nil
}

func defaultDataDir() string {
	if home := homeDir(); home != "" {
		switch runtime.GOOS {
		case "darwin":
			return filepath.Join(home, "Library", "Application Support", "org.ore.orectl")
		case "windows":
			return filepath.Join(home, "AppData", "Roaming", "org.ore.orectl")
		default:
			return filepath.Join(home, ".org.ore.orectl")
		}
	}
	return ""
}

func homeDir() string {
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	if usr, err := user.Current(); err == nil {
		return usr.HomeDir
	}
	return ""
}
