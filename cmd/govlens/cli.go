package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/govlens"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Config  *govlens.Config
	Reviews govlens.ReviewService
	Logger  *slog.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	JS      bool          `help:"Render pages in a headless browser before extraction."`
	Timeout time.Duration `default:"10s" help:"Page fetch timeout."`

	OpenAIKey     string `name:"openai-key" env:"OPENAI_API_KEY" help:"OpenAI API key (env OPENAI_API_KEY)."`
	PerplexityKey string `name:"pplx-key" env:"PPLX_API_KEY" help:"Perplexity API key (env PPLX_API_KEY)."`

	Serve   ServeCmd   `cmd:"" help:"Start the review web UI"`
	Analyze AnalyzeCmd `cmd:"" help:"Analyze a proposal URL and print the report"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:":8080" env:"GOVLENS_ADDR" help:"Listen address."`
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	URL string `arg:"" help:"Proposal URL"`
	Out string `short:"o" placeholder:"DIR" help:"Also save report files (markdown and JSON) to DIR"`
}
