/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mikeb26/worldcup-teamviewer/dataset"
	"github.com/mikeb26/worldcup-teamviewer/internal"
	"github.com/mikeb26/worldcup-teamviewer/web"
)

func main() {
	tz := flag.String("tz", "UTC", "Time zone kickoff times are shown in")
	flag.Parse()

	cfg, err := internal.LoadConfig()
	if err != nil {
		log.Fatalf("wcweb.main: failed to load configuration: %v", err)
	}
	loc, err := time.LoadLocation(*tz)
	if err != nil {
		log.Fatalf("wcweb.main: invalid time zone %q: %v", *tz, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt,
		syscall.SIGTERM)
	defer stop()

	// all three documents load or the server does not start
	catalog, err := dataset.CatalogFromConfig(ctx, cfg)
	if err != nil {
		log.Fatalf("wcweb.main: failed to load datasets: %v", err)
	}

	srv := &http.Server{
		Addr: cfg.ListenAddr,
		Handler: web.NewRouter(catalog, web.Options{
			AllowedOrigins: cfg.AllowedOrigins,
			RateLimit:      cfg.RateLimit,
			Location:       loc,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("wcweb.main: shutdown failed: %v", err)
		}
	}()

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "localhost"
	}
	log.Printf("wcweb.main: serving %v teams on %v%v", catalog.Index().Len(),
		hostname, cfg.ListenAddr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("wcweb.main: Serve failed: %v", err)
	}

	log.Printf("wcweb.main: exiting")
}
