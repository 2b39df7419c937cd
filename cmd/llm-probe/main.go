package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	// Packages
	kong "github.com/alecthomas/kong"
	config "github.com/mutablelogic/go-llm-probe/pkg/config"
	version "github.com/mutablelogic/go-llm-probe/pkg/version"
	logrus "github.com/sirupsen/logrus"
	otel "go.opentelemetry.io/otel"
	trace "go.opentelemetry.io/otel/trace"
	term "golang.org/x/term"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	// Debugging
	Debug   bool `name:"debug" help:"Enable debug output"`
	Verbose bool `name:"verbose" help:"Enable verbose output"`

	// Configuration
	Config string `name:"config" type:"path" help:"Configuration file (YAML)" optional:""`
	Data   string `name:"data" type:"path" help:"Directory for model catalogs" optional:""`

	// API
	OpenRouter `embed:"" help:"OpenRouter configuration"`

	// Private
	ctx      context.Context
	logger   *logrus.Logger
	tracer   trace.Tracer
	config   config.Config
	execName string
}

type OpenRouter struct {
	APIKey   string        `name:"api-key" env:"OPENROUTER_API_KEY" help:"OpenRouter API key"`
	Endpoint string        `name:"endpoint" env:"OPENROUTER_BASE_URL" help:"OpenRouter API endpoint" optional:""`
	Timeout  time.Duration `name:"timeout" help:"Timeout for each request" optional:""`
}

type CLI struct {
	Globals

	// Probing
	Probe ProbeCommand `cmd:"" help:"Probe models and save those which work on each surface" group:"PROBE"`

	// Models
	ModelCommands

	// Requests
	Complete CompleteCommand `cmd:"" help:"Send a text completion request" group:"REQUEST"`
	Chat     ChatCommand     `cmd:"" help:"Send a chat completion request" group:"REQUEST"`
	Credits  CreditsCommand  `cmd:"" help:"Show the credit balance" group:"REQUEST"`

	// Other
	Version VersionCommand `cmd:"" help:"Print the version"`
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	scope = "github.com/mutablelogic/go-llm-probe"
)

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(execName()),
		kong.Description("Find the models which accept completion and chat completion requests"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{
			"version": version.Version(),
		},
	)
	cli.Globals.execName = execName()

	// Create a context
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	cli.Globals.ctx = ctx

	// Logging and tracing
	cli.Globals.logger = newLogger(cli.Debug)
	cli.Globals.tracer = otel.Tracer(scope)

	// Configuration file, then flags
	cfg, err := config.Load(cli.Config)
	cmd.FatalIfErrorf(err)
	if cli.Data != "" {
		cfg.Data = cli.Data
	}
	if cli.Endpoint == "" {
		cli.Endpoint = cfg.Endpoint
	}
	if cli.Timeout == 0 {
		cli.Timeout = cfg.Timeout
	}
	cli.Globals.config = cfg

	// Run the command
	if err := cmd.Run(&cli.Globals); err != nil {
		cmd.FatalIfErrorf(err)
		return
	}
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func execName() string {
	// The name of the executable
	name, err := os.Executable()
	if err != nil {
		panic(err)
	} else {
		return filepath.Base(name)
	}
}

// newLogger writes text to a terminal and JSON otherwise
func newLogger(debug bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if term.IsTerminal(int(os.Stderr.Fd())) {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	if debug {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}
