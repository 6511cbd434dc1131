package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/cvparse"
	"github.com/fwojciec/cvparse/batch"
	"github.com/fwojciec/cvparse/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	DB      *sqlite.DB
	Records cvparse.RecordService
	Runner  *batch.Runner
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log debug output to stderr"`

	Parse  ParseCmd  `cmd:"" help:"Parse profile PDFs into records"`
	List   ListCmd   `cmd:"" help:"List stored records"`
	Show   ShowCmd   `cmd:"" help:"Show a stored record"`
	Delete DeleteCmd `cmd:"" help:"Delete a stored record"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	Paths       []string `arg:"" help:"PDF files or directories to parse"`
	Out         string   `short:"o" default:"records" help:"Directory for JSON records"`
	XLSX        string   `name:"xlsx" help:"Also write records to this workbook"`
	Store       bool     `short:"s" help:"Also insert records into the database"`
	Layout      string   `short:"l" type:"path" help:"YAML file overriding layout tunables"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent document limit"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Name  string `help:"Only records with this exact name"`
	Limit int    `short:"n" help:"Maximum number of records"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID   string `arg:"" help:"Record ID"`
	JSON bool   `name:"json" help:"Print the record as JSON"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Record ID"`
	Force bool   `help:"Confirm deletion"`
}
