package main

import (
	"context"
	"io"

	"github.com/fwojciec/docscope"
	"github.com/fwojciec/docscope/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	DB         *sqlite.DB
	Ecosystems docscope.EcosystemService
	Sources    docscope.DocSourceService
	Detector   docscope.Detector
	Embedder   docscope.Embedder
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable verbose logging"`

	Detect     DetectCmd     `cmd:"" help:"Detect the documentation ecosystem for a query"`
	Ecosystems EcosystemsCmd `cmd:"" help:"List configured ecosystems"`
	Sources    SourcesCmd    `cmd:"" help:"List documentation sources"`
	Seed       SeedCmd       `cmd:"" help:"Load a YAML catalog into the database"`
	Eval       EvalCmd       `cmd:"" help:"Run detection cases from a YAML file"`
}

// DetectCmd is the "detect" subcommand.
type DetectCmd struct {
	Query string `arg:"" help:"Query to classify"`
	JSON  bool   `help:"Print the result as JSON"`
}

// EcosystemsCmd is the "ecosystems" subcommand.
type EcosystemsCmd struct {
	All bool `help:"Include inactive ecosystems"`
}

// SourcesCmd is the "sources" subcommand.
type SourcesCmd struct {
	Ecosystem  string `short:"e" help:"Filter by ecosystem ID"`
	Unassigned bool   `help:"Show only unassigned sources"`
}

// SeedCmd is the "seed" subcommand.
type SeedCmd struct {
	File  string `arg:"" help:"YAML catalog file"`
	Embed bool   `help:"Compute description embeddings for semantic matching"`
}

// EvalCmd is the "eval" subcommand.
type EvalCmd struct {
	File string `arg:"" help:"YAML file with detection cases"`
}
