package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/sitescan"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Verbose bool

	// Backends overrides the backends a scan would build from its flags.
	Backends []sitescan.Backend
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  kong.ConfigFlag `help:"YAML file with flag values" env:"SITESCAN_CONFIG"`
	Verbose bool            `short:"v" help:"Log debug output and crawl progress to stderr" env:"SITESCAN_VERBOSE"`

	Scan   ScanCmd   `cmd:"" help:"Explore a site and print its summary"`
	Render RenderCmd `cmd:"" help:"Render a saved site summary"`
}

// Output formats.
const (
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

// ScanCmd is the "scan" subcommand.
type ScanCmd struct {
	URL string `arg:"" help:"Start URL (http or https)"`

	MaxPages        int  `default:"5" help:"Maximum number of URLs to dequeue" env:"SITESCAN_MAX_PAGES"`
	MaxLinksPerPage int  `default:"30" help:"Maximum new links a page adds to the queue" env:"SITESCAN_MAX_LINKS_PER_PAGE"`
	CrossOrigin     bool `help:"Follow links to other origins" env:"SITESCAN_CROSS_ORIGIN"`

	ArtifactsDir string `type:"path" help:"Directory for page screenshots; screenshots are off when unset" env:"SITESCAN_ARTIFACTS_DIR"`
	NoScreenshot bool   `help:"Do not capture screenshots even with an artifacts directory" env:"SITESCAN_NO_SCREENSHOT"`

	Static     bool          `help:"Use the static engine only, never start a browser" env:"SITESCAN_STATIC"`
	Headed     bool          `help:"Show the browser window" env:"SITESCAN_HEADED"`
	Stealth    bool          `help:"Hide common headless browser fingerprints" env:"SITESCAN_STEALTH"`
	Chrome     string        `help:"Chrome or Chromium binary; looked up on the system when unset" env:"SITESCAN_CHROME"`
	ControlURL string        `name:"control-url" help:"DevTools URL of a running browser to attach to" env:"SITESCAN_CONTROL_URL"`
	NoSandbox  bool          `help:"Disable the Chrome sandbox" env:"SITESCAN_NO_SANDBOX"`
	Timeout    time.Duration `default:"20s" help:"Navigation timeout per page (rendered engine)" env:"SITESCAN_TIMEOUT"`

	FetchTimeout time.Duration `default:"15s" help:"HTTP request timeout per page (static engine)" env:"SITESCAN_FETCH_TIMEOUT"`
	Rate       float64       `default:"0" help:"Requests per second per host; 0 disables limiting" env:"SITESCAN_RATE"`

	Trim    bool   `help:"Print a trimmed summary suitable for prompts" env:"SITESCAN_TRIM"`
	SiteOut string `type:"path" help:"Also write the full summary as JSON to this file" env:"SITESCAN_SITE_OUT"`
	Format  string `default:"json" enum:"json,markdown" help:"Output format (json, markdown)" env:"SITESCAN_FORMAT"`
}

// RenderCmd is the "render" subcommand.
type RenderCmd struct {
	File   string `arg:"" type:"existingfile" help:"Summary JSON written by scan --site-out"`
	Format string `default:"markdown" enum:"json,markdown" help:"Output format (markdown, json)" env:"SITESCAN_RENDER_FORMAT"`
	Trim   bool   `help:"Trim the summary before rendering" env:"SITESCAN_TRIM"`
}
