// Copyright (c) 2026 The Aurum developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/aurumchain/aurum/api"
	"github.com/aurumchain/aurum/health"
	"github.com/aurumchain/aurum/ledger"
	"github.com/aurumchain/aurum/metrics"
	"github.com/aurumchain/aurum/runtime"
	"github.com/aurumchain/aurum/state"
)

var (
	version   string
	gitCommit string
	log       = logrus.WithField("pkg", "main")
)

func fullVersion() string {
	if gitCommit == "" {
		return version + "-dev"
	}
	return fmt.Sprintf("%s-%s", version, gitCommit)
}

func main() {
	app := cli.App{
		Version:   fullVersion(),
		Name:      "Aurum",
		Usage:     "Node of the Aurum token ledger",
		Copyright: "2026 The Aurum developers",
		Flags: []cli.Flag{
			networkFlag,
			dataDirFlag,
			apiAddrFlag,
			apiCorsFlag,
			metricsAddrFlag,
			verbosityFlag,
		},
		Action: defaultAction,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func defaultAction(ctx *cli.Context) error {
	initLogger(ctx)

	if metricsAddr := ctx.String(metricsAddrFlag.Name); metricsAddr != "" {
		metrics.InitializePrometheusMetrics()
		go func() {
			srv := &http.Server{Addr: metricsAddr, Handler: metrics.HTTPHandler(), ReadHeaderTimeout: 5 * time.Second}
			if err := srv.ListenAndServe(); err != http.ErrServerClosed {
				log.WithError(err).Warn("metrics server stopped")
			}
		}()
	}

	mainDB, err := openMainDB(ctx)
	if err != nil {
		return err
	}
	defer mainDB.Close()

	eventDB, err := openEventDB(ctx)
	if err != nil {
		return err
	}
	defer eventDB.Close()

	l := ledger.New(state.New(mainDB))
	ver, err := l.Version()
	if err != nil {
		return err
	}
	if ver == 0 {
		gene, err := selectGenesis(ctx)
		if err != nil {
			return err
		}
		if l, err = gene.Build(state.New(mainDB)); err != nil {
			return err
		}
		log.WithField("network", gene.ID()).Info("ledger state initialized")
	}

	code := runtime.CodeV1
	handle, err := l.CodeHandle()
	if err != nil {
		return err
	}
	if handle == runtime.CodeV2.Handle() {
		code = runtime.CodeV2
	}

	rt, err := runtime.New(l, code, eventDB)
	if err != nil {
		return err
	}
	healthStatus := health.New(rt.Ledger())
	if err := rt.Commit(); err != nil {
		return err
	}
	healthStatus.CommitNotify()

	apiHandler := api.New(rt.Ledger(), eventDB, healthStatus, api.Options{
		AllowedOrigins: ctx.String(apiCorsFlag.Name),
	})
	srv := &http.Server{
		Addr:              ctx.String(apiAddrFlag.Name),
		Handler:           apiHandler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.WithField("addr", srv.Addr).Info("API server started")
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.WithError(err).Warn("API server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("API server shutdown failed")
	}
	return rt.Commit()
}
