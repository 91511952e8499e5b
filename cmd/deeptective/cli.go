package main

import (
	"context"
	"io"
	"time"

	"github.com/alecthomas/kong"
	"github.com/deeptective/deeptective"
	"github.com/deeptective/deeptective/scrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Pipeline *scrape.Pipeline
	Provider deeptective.MysteryProvider
	Cases    deeptective.CaseService
	Asker    deeptective.Asker
	Tokens   deeptective.TokenCounter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config kong.ConfigFlag `help:"Load flag defaults from a YAML file"`

	Provider      string        `enum:"web,reddit" default:"web" env:"DEEPTECTIVE_PROVIDER" help:"Evidence provider (web, reddit)"`
	SearchURL     string        `name:"search-url" default:"${search_url}" env:"DEEPTECTIVE_SEARCH_URL" help:"Search endpoint returning DuckDuckGo Lite markup"`
	UserAgent     string        `default:"${user_agent}" help:"User agent sent with search requests"`
	SearchTimeout time.Duration `default:"10s" help:"Search request timeout"`
	Timeout       time.Duration `short:"t" default:"5s" help:"Page fetch timeout"`
	Concurrency   int           `short:"c" default:"1" help:"Concurrent page fetches (1 is sequential)"`
	Rate          float64       `default:"0" help:"Max page requests per second per host (0 disables)"`
	Metadata      string        `enum:"goquery,trafilatura,readability" default:"goquery" help:"Title extractor (goquery, trafilatura, readability)"`
	DB            string        `name:"db" default:"${db_path}" help:"Case registry database path"`
	Allow         []string      `help:"Only trust sources on these domains (repeatable)"`
	Deny          []string      `help:"Never trust sources on these domains (repeatable)"`
	Model         string        `default:"${model}" env:"DEEPTECTIVE_MODEL" help:"Gemini model for ask and token counting"`
	Verbose       bool          `short:"v" help:"Log every request at debug level"`

	Search   SearchCmd   `cmd:"" help:"Print clean text from the top search results"`
	Evidence EvidenceCmd `cmd:"" help:"Search for evidence cases"`
	Case     CaseCmd     `cmd:"" help:"Show a discovered evidence case"`
	Cases    CasesCmd    `cmd:"" help:"List recorded evidence cases"`
	Verify   VerifyCmd   `cmd:"" help:"Check whether a source URL is trusted"`
	Ask      AskCmd      `cmd:"" help:"Answer a question from the top search results"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query  string `arg:"" help:"Search query"`
	Tokens bool   `help:"Print a token estimate of the results to stderr"`
}

// EvidenceCmd is the "evidence" subcommand.
type EvidenceCmd struct {
	Query string `arg:"" help:"Search query"`
	JSON  bool   `name:"json" help:"Print cases as JSON"`
}

// CaseCmd is the "case" subcommand.
type CaseCmd struct {
	ID   string `arg:"" help:"Case ID"`
	JSON bool   `name:"json" help:"Print the case as JSON"`
}

// CasesCmd is the "cases" subcommand.
type CasesCmd struct {
	Source string `help:"Only cases from this source URL"`
	Media  string `help:"Only cases of this media type (audio, video, text, image)"`
	Limit  int    `default:"20" help:"Maximum cases to list"`
	Offset int    `help:"Cases to skip"`
	JSON   bool   `name:"json" help:"Print cases as JSON"`
}

// VerifyCmd is the "verify" subcommand.
type VerifyCmd struct {
	URL string `arg:"" help:"Source URL"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Query    string `arg:"" help:"Search query"`
	Question string `arg:"" optional:"" help:"Question to answer (defaults to the query)"`
}
