package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/pagescope"
)

// PageCache is the maintenance side of the page cache.
type PageCache interface {
	PrunePages(ctx context.Context, cutoff time.Time) (int, error)
	CountPages(ctx context.Context) (int, error)
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Format is one of text, json or yaml. Encoder is set for the latter
	// two.
	Format  string
	Encoder pagescope.Encoder

	Parser    pagescope.Parser
	Fetcher   pagescope.Fetcher
	Extractor pagescope.Extractor
	Detector  pagescope.ContentDetector
	Retriever pagescope.Retriever
	Tokens    pagescope.TokenCounter
	Scraper   pagescope.Scraper
	Sitemaps  pagescope.SitemapService
	Cache     PageCache

	// NewConverter returns a Markdown converter resolving relative links
	// against domain. An empty domain leaves them relative.
	NewConverter func(domain string) pagescope.Converter

	// NewStore returns the store that writes scrape reports to dir.
	NewStore func(dir string) pagescope.ReportStore

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Format      string        `short:"f" enum:"text,json,yaml" default:"text" help:"Output format (text, json, yaml)"`
	Render      string        `enum:"none,browser,auto" default:"none" help:"JavaScript rendering for URL sources (none, browser, auto)"`
	Extractor   string        `short:"x" enum:"none,trafilatura,readability" default:"none" help:"Narrow pages to their main content first (none, trafilatura, readability)"`
	Auto        bool          `short:"a" help:"Start at the content region of the detected documentation framework when no selector is given"`
	Timeout     time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	NoCache     bool          `help:"Do not read or write the page cache"`
	CacheMaxAge time.Duration `default:"24h" help:"Refetch cached pages older than this (0 keeps them forever)"`
	Verbose     bool          `short:"v" help:"Log fetches and timings to stderr"`

	Report   ReportCmd   `cmd:"" help:"Print the full report of a page"`
	Headings HeadingsCmd `cmd:"" help:"List headings"`
	Links    LinksCmd    `cmd:"" help:"List links"`
	Media    MediaCmd    `cmd:"" help:"List images, svgs, headings and texts in document order"`
	Paths    PathsCmd    `cmd:"" help:"Print the structural fingerprint of the start node"`
	Texts    TextsCmd    `cmd:"" help:"List texts, bounded in length"`
	Count    CountCmd    `cmd:"" help:"Count nodes below the start node"`
	Markdown MarkdownCmd `cmd:"" help:"Convert the start node to Markdown"`
	Scrape   ScrapeCmd   `cmd:"" help:"Build reports for many pages"`
	Rank     RankCmd     `cmd:"" help:"Rank texts by similarity to a query"`
	Sitemap  SitemapCmd  `cmd:"" help:"Print an LLM-readable site map of the page's links"`
	Cache    CacheCmd    `cmd:"" help:"Manage the page cache"`
}

// ScopeFlags select the part of a page a command works on.
type ScopeFlags struct {
	Select       string `short:"s" help:"CSS selector of the start node (default: body)"`
	Until        string `short:"u" help:"CSS selector of the node where the walk stops, exclusive"`
	ChildrenOnly bool   `help:"Only visit direct children of the start node"`
	ExcludeSelf  bool   `help:"Do not report the start node itself"`
}

func (f ScopeFlags) options() pagescope.ReportOptions {
	return pagescope.ReportOptions{
		Selector:     f.Select,
		Until:        f.Until,
		ChildrenOnly: f.ChildrenOnly,
		ExcludeSelf:  f.ExcludeSelf,
	}
}

// LengthFlags bound the length of reported texts.
type LengthFlags struct {
	MaxLen   int  `short:"m" help:"Maximum text length in characters (0 for unbounded)"`
	Truncate bool `help:"Cut long texts instead of replacing them with their length"`
}

// ReportCmd is the "report" subcommand.
type ReportCmd struct {
	Source string `arg:"" help:"URL, file path, or - for stdin"`

	ScopeFlags  `embed:""`
	LengthFlags `embed:""`

	KeepFragments  bool `help:"Keep same-page #fragment links"`
	HeadingsAsText bool `help:"Report headings as plain text"`
	Paths          bool `help:"Include the structural fingerprint"`
}

// HeadingsCmd is the "headings" subcommand.
type HeadingsCmd struct {
	Source string `arg:"" help:"URL, file path, or - for stdin"`

	ScopeFlags `embed:""`
}

// LinksCmd is the "links" subcommand.
type LinksCmd struct {
	Source string `arg:"" help:"URL, file path, or - for stdin"`

	ScopeFlags `embed:""`

	KeepFragments bool `help:"Keep same-page #fragment links"`
}

// MediaCmd is the "media" subcommand.
type MediaCmd struct {
	Source string `arg:"" help:"URL, file path, or - for stdin"`

	ScopeFlags  `embed:""`
	LengthFlags `embed:""`

	HeadingsAsText bool `help:"Report headings as plain text"`
}

// PathsCmd is the "paths" subcommand.
type PathsCmd struct {
	Source  string `arg:"" help:"URL, file path, or - for stdin"`
	Select  string `short:"s" help:"CSS selector of the start node (default: body)"`
	Prefix  string `help:"Label prefix for every path"`
	NoText  bool   `help:"Leave out text paths"`
	NoMedia bool   `help:"Leave out media paths"`
}

// TextsCmd is the "texts" subcommand.
type TextsCmd struct {
	Source string `arg:"" help:"URL, file path, or - for stdin"`

	ScopeFlags  `embed:""`
	LengthFlags `embed:""`

	MaxTokens int `help:"Maximum text length in Gemini tokens, instead of --max-len"`
}

// CountCmd is the "count" subcommand.
type CountCmd struct {
	Source   string `arg:"" help:"URL, file path, or - for stdin"`
	Select   string `short:"s" help:"CSS selector of the start node (default: body)"`
	Children bool   `help:"Count direct children only"`
}

// MarkdownCmd is the "markdown" subcommand.
type MarkdownCmd struct {
	Source string `arg:"" help:"URL, file path, or - for stdin"`
	Select string `short:"s" help:"CSS selector of the node to convert (default: body)"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URLs []string `arg:"" help:"Page URLs, or site URLs with --sitemap"`

	ScopeFlags  `embed:""`
	LengthFlags `embed:""`

	Sitemap     bool     `help:"Scrape the pages listed in the sitemaps of the given sites"`
	Filter      []string `short:"F" help:"Keep only sitemap URLs matching a regex (repeatable)"`
	Exclude     []string `short:"E" help:"Drop sitemap URLs matching a regex (repeatable)"`
	UniqueLinks bool     `help:"Drop links already reported for an earlier page"`
	Out         string   `short:"o" help:"Write one report file per page into this directory"`
	Concurrency int      `short:"c" default:"10" help:"Concurrent fetch limit"`
	RPS         float64  `default:"2" help:"Requests per second per domain (0 for unlimited)"`
}

// RankCmd is the "rank" subcommand.
type RankCmd struct {
	Query  string `arg:"" help:"Text to rank against"`
	Source string `arg:"" help:"URL, file path, or - for stdin"`

	ScopeFlags `embed:""`

	Limit int `short:"n" default:"5" help:"Number of texts to return (0 for all)"`
}

// SitemapCmd is the "sitemap" subcommand.
type SitemapCmd struct {
	Source string `arg:"" help:"URL, file path, or - for stdin"`

	ScopeFlags `embed:""`

	URL           string `help:"Page URL for file and stdin sources"`
	IgnoreURLInfo bool   `help:"Leave out the fields derived from the site URL"`
	Description   string `help:"Site description for the header"`
}

// CacheCmd groups the page cache subcommands.
type CacheCmd struct {
	Stats CacheStatsCmd `cmd:"" help:"Show the number of cached pages"`
	Prune CachePruneCmd `cmd:"" help:"Delete cached pages older than a given age"`
}

// CacheStatsCmd is the "cache stats" subcommand.
type CacheStatsCmd struct{}

// CachePruneCmd is the "cache prune" subcommand.
type CachePruneCmd struct {
	OlderThan time.Duration `default:"168h" help:"Age of the pages to delete"`
}
