package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/systemstart/macship/pkg/api"
	"github.com/systemstart/macship/pkg/logging"
	"github.com/systemstart/macship/pkg/processing"
	"github.com/systemstart/macship/pkg/steps"
)

var version = "dev"

const defaultConfigName = "macship.conf"

const (
	_ = iota
	exitConfigError
	exitUnknownStep
	exitConfirmationDeclined
	exitCredentialError
	exitToolError
	exitPipelineError
	exitDotenvError
)

var (
	nonInteractive bool
	loggingType    string
	logLevel       string
	showVersion    bool
)

func init() {
	flag.BoolVar(
		&nonInteractive,
		"yes",
		false,
		"skip all confirmation prompts")
	flag.StringVar(
		&loggingType,
		"logging-type",
		"tint",
		"logging type: json, text or tint")
	flag.StringVar(
		&logLevel,
		"log-level",
		"info",
		"logging level: debug, info, warn, error")
	flag.BoolVar(
		&showVersion,
		"version",
		false,
		"print version and exit")
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if showVersion {
		fmt.Println(version)
		os.Exit(0)
	}

	_ = logging.Initialize(loggingType, logLevel)

	includeEnv()

	cfg := loadConfiguration()

	runner := steps.ExecRunner{}
	opts := processing.Options{
		Runner:      runner,
		Confirmer:   confirmer(),
		Credentials: steps.KeychainStore{Runner: runner},
		Reporter: &processing.Reporter{
			Out:   os.Stdout,
			Err:   os.Stderr,
			Steps: cfg.Steps,
		},
	}

	if err := processing.Run(cfg, opts); err != nil {
		slog.Error("release failed", "error", err)
		os.Exit(exitCodeFor(err))
	}

	slog.Info("done")
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(),
		"Usage: %s [flags] [config-file]\n\n"+
			"Runs the configured release steps (cleanup, dmg, notarize, staple,\n"+
			"appcast) in order. The config file defaults to %s next to\n"+
			"the executable.\n\nFlags:\n",
		os.Args[0], defaultConfigName)
	flag.PrintDefaults()
}

func loadConfiguration() *api.Config {
	cfg, err := api.Load(configPath())
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(exitConfigError)
	}
	return cfg
}

// configPath returns the positional config file argument, or the
// default file name resolved next to the executable.
func configPath() string {
	if flag.NArg() > 0 {
		return flag.Arg(0)
	}

	executable, err := os.Executable()
	if err != nil {
		return defaultConfigName
	}
	return filepath.Join(filepath.Dir(executable), defaultConfigName)
}

func confirmer() steps.Confirmer {
	if nonInteractive {
		return steps.AutoConfirmer{}
	}
	return steps.NewTerminalConfirmer(os.Stdin, os.Stdout)
}

func includeEnv() {
	err := godotenv.Load()
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Error("failed to load .env", "error", err)
			os.Exit(exitDotenvError)
		}
		slog.Debug("no .env file found")
	} else {
		slog.Info("using .env file")
	}
}

func exitCodeFor(err error) int {
	var configErr *api.ConfigError
	var unknownErr *api.UnknownStepError
	var declinedErr *api.ConfirmationDeclinedError
	var credErr *api.CredentialError
	var toolErr *api.ToolError

	switch {
	case errors.As(err, &configErr):
		return exitConfigError
	case errors.As(err, &unknownErr):
		return exitUnknownStep
	case errors.As(err, &declinedErr):
		return exitConfirmationDeclined
	case errors.As(err, &credErr):
		return exitCredentialError
	case errors.As(err, &toolErr):
		return exitToolError
	default:
		return exitPipelineError
	}
}
