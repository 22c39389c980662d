package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/jimezsa/findyourhome/internal/cmd"
	"github.com/jimezsa/findyourhome/internal/config"
	"github.com/jimezsa/findyourhome/internal/ui"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	cli := cmd.NewCLI()
	if err := run(cli, os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

// run parses args and executes the selected command. Errors are printed
// before they are returned.
func run(cli *cmd.CLI, args []string) error {
	// Variables already set in the environment win over .env.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	applyEnvDefaults(cli)
	versionString := buildVersion()

	parser, err := kong.New(cli,
		kong.Name("findyourhome"),
		kong.Description("Find, compare and post rental homes."),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{"version": versionString},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		ui.New(os.Stdout, os.Stderr, ui.NormalizeColorMode(os.Getenv("FINDYOURHOME_COLOR")), false).Errorf("%v", err)
		return err
	}

	runCtx, err := newContext(cli, kctx.Command(), versionString)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	if err := kctx.Run(runCtx); err != nil {
		runCtx.UI.Errorf("%v", err)
		return err
	}
	return nil
}

func newContext(cli *cmd.CLI, command, versionString string) (*cmd.Context, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	configDir, err := config.ConfigDir()
	if err != nil {
		return nil, err
	}

	colorMode := ui.NormalizeColorMode(cli.Color)
	level := zerolog.InfoLevel
	if cli.Verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	return &cmd.Context{
		Out:        os.Stdout,
		Err:        os.Stderr,
		UI:         ui.New(os.Stdout, os.Stderr, colorMode, cli.JSON || cli.Plain),
		Config:     cfg,
		ConfigDir:  configDir,
		Logger:     zerolog.New(os.Stderr).With().Timestamp().Str("command", command).Logger(),
		Verbose:    cli.Verbose,
		JSONOutput: cli.JSON,
		PlainText:  cli.Plain,
		Version:    versionString,
		ColorMode:  colorMode,
		Catalog:    cli.Catalog,
	}, nil
}

func buildVersion() string {
	if commit == "" && date == "" {
		return version
	}
	if commit == "" {
		return fmt.Sprintf("%s (%s)", version, date)
	}
	if date == "" {
		return fmt.Sprintf("%s (%s)", version, commit)
	}
	return fmt.Sprintf("%s (%s, %s)", version, commit, date)
}

func applyEnvDefaults(cli *cmd.CLI) {
	if envBool("FINDYOURHOME_JSON") {
		cli.JSON = true
	}
	if envBool("FINDYOURHOME_PLAIN") {
		cli.Plain = true
	}
	if envBool("FINDYOURHOME_VERBOSE") {
		cli.Verbose = true
	}
	if value := os.Getenv("FINDYOURHOME_COLOR"); value != "" {
		cli.Color = value
	}
}

func envBool(key string) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return false
	}
	switch strings.ToLower(value) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
