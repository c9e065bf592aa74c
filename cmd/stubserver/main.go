// Command stubserver runs the in-memory stand-in for the Bookshelf
// backend. It is a development tool: data lives in memory and is lost
// on restart.
//
// Flags:
//
//	-a string   address to listen on (default ":8080")
//	-d int      artificial response delay in milliseconds (default 0)
//	-l string   log level: debug, info, warn, error (default "info")
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/bookshelf/internal/flagx"
	"github.com/dmitrijs2005/bookshelf/internal/logging"
	"github.com/dmitrijs2005/bookshelf/internal/stub"
)

func main() {

	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-l"})
	fs := flag.NewFlagSet("stubserver", flag.ContinueOnError)
	addr := fs.String("a", ":8080", "address to listen on")
	delay := fs.Int("d", 0, "artificial response delay (in milliseconds)")
	level := fs.String("l", "info", "log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		log.Fatalf("%v", err)
	}

	logger := logging.New(*level, os.Stderr)
	ctx := context.Background()

	srv := &http.Server{
		Addr: *addr,
		Handler: stub.NewServer(stub.Options{
			Delay:  time.Duration(*delay) * time.Millisecond,
			Logger: logger,
		}).Router(),
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		logger.Info(ctx, "stub backend listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error(ctx, "server listen error", "error", err.Error())
		}
	}()

	<-stop
	logger.Info(ctx, "shutting down stub backend")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("shutdown failed: %v", err)
	}
}
