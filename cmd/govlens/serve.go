package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	govhttp "github.com/fwojciec/govlens/http"
	"golang.org/x/sync/errgroup"
)

// Run executes the serve command. It blocks until the server fails or
// the process receives SIGINT/SIGTERM.
func (c *ServeCmd) Run(deps *Dependencies) error {
	server := govhttp.NewServer()
	server.Addr = deps.Config.Addr
	server.Reviews = deps.Reviews
	server.Logger = deps.Logger

	if err := server.Open(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "govlens listening on %s\n", server.URL())

	ctx, stop := signal.NotifyContext(deps.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(server.Serve)
	g.Go(func() error {
		<-ctx.Done()
		return server.Close()
	})

	return g.Wait()
}
