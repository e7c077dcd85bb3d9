package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/botica"
	"github.com/fwojciec/botica/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Discoverer *crawl.Discoverer
	Harvester  *crawl.Harvester

	// OpenReport creates the report sink. It is only called once there is
	// something to write, so empty runs leave no file behind.
	OpenReport func() (botica.ReportWriter, func() error, error)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Names  string `short:"n" default:"lista_minsa.txt" env:"BOTICA_NAMES" help:"File with one reference medicine name per line"`
	Home   string `default:"https://www.hogarysalud.com.pe" env:"BOTICA_HOME" help:"Storefront home page"`
	Output string `short:"o" default:"catalogo_minsa_completo.xlsx" env:"BOTICA_OUTPUT" help:"Report path (.xlsx, .csv, .db or .sqlite)"`

	Concurrency   int           `short:"c" default:"5" help:"Concurrent detail fetches per listing page"`
	Timeout       time.Duration `short:"t" default:"25s" help:"Per-request timeout"`
	MaxPages      int           `default:"100" help:"Maximum listing pages per category"`
	PaceMin       time.Duration `default:"100ms" help:"Minimum delay before each detail fetch"`
	PaceMax       time.Duration `default:"500ms" help:"Maximum delay before each detail fetch"`
	CategoryPause time.Duration `default:"2s" help:"Pause between categories"`
	RPS           float64       `name:"rps" default:"0" help:"Requests per second per host (0 disables)"`

	UserAgent      string `default:"${user_agent}" help:"User-Agent header"`
	AcceptLanguage string `default:"${accept_language}" help:"Accept-Language header"`

	Verbose bool `short:"v" help:"Log every request to stderr"`
	Preview bool `short:"p" help:"List discovered categories and exit"`
}
