package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/ldraw"
	"github.com/fwojciec/ldraw/fs"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Parser  ldraw.ModelParser
	Encoder ldraw.Encoder
	Models  ldraw.ModelService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Library     string           `arg:"" help:"LDraw library directory"`
	File        string           `arg:"" help:"Model file to parse"`
	Skip        []string         `short:"s" help:"Line types to leave out: comment, subpart, line, tri, quad, optline (comma-separated)"`
	LogLevel    int              `short:"l" default:"0" help:"Log verbosity from 0 (errors only) to 5 (trace)"`
	Output      string           `short:"o" enum:"json,yaml,xml" default:"json" help:"Output format (${enum})"`
	Minify      bool             `short:"m" help:"Write compact output"`
	Concurrency int              `short:"c" default:"1" help:"Parts parsed at once"`
	Out         string           `short:"O" name:"out" help:"Write output to this file instead of stdout"`
	DB          string           `name:"db" help:"Also store the parsed model in this SQLite database"`
	Profile     string           `name:"profile" help:"Write a runtime profile: cpu, mem, allocs, heap, block, mutex, goroutine, thread, trace, clock"`
	ProfilePath string           `name:"profile-path" help:"Directory for profile output"`
	Version     kong.VersionFlag `help:"Show version and exit"`
}

// Run parses the model, stores it when a database is configured and writes
// the encoded document.
func (c *CLI) Run(deps *Dependencies) error {
	doc, err := deps.Parser.ParseModel(deps.Ctx, c.File)
	if err != nil {
		return err
	}

	if deps.Models != nil {
		m := &ldraw.Model{Name: c.File}
		if err := deps.Models.CreateModel(deps.Ctx, m, doc); err != nil {
			return err
		}
		deps.Logger.InfoContext(deps.Ctx, "stored model", "id", m.ID, "parts", m.PartCount)
	}

	if c.Out != "" {
		return fs.NewWriter(deps.Encoder).WriteFile(deps.Ctx, c.Out, doc)
	}
	return deps.Encoder.Encode(deps.Stdout, doc)
}
