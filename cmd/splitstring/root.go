package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dshills/splitstring/internal/config"
	"github.com/dshills/splitstring/internal/grammar"
	"github.com/dshills/splitstring/internal/host"
	"github.com/dshills/splitstring/internal/logging"
	"github.com/dshills/splitstring/internal/scope"
)

// errInvalidPosition is returned for a malformed --at value.
var errInvalidPosition = errors.New("position must be ROW:COL with 1-based numbers")

// globalOptions holds the persistent flags.
type globalOptions struct {
	configPath  string
	logLevel    string
	preset      string
	connector   string
	grammarName string
	noEnv       bool
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "splitstring",
		Short: "Split quoted string literals at a cursor",
		Long: `splitstring decides whether a position sits inside a quoted string literal
that can be split in two, and performs the split: the literal is closed,
a concatenation token is added, and a new literal opens on the next line
with the same indentation.

Positions are ROW:COL, both 1-based, with columns counted in characters.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	f := cmd.PersistentFlags()
	f.StringVarP(&opts.configPath, "config", "c", "", "config file (.toml, .yaml, .yml or .json)")
	f.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	f.StringVar(&opts.preset, "preset", "", "settings preset ("+strings.Join(config.PresetNames(), ", ")+")")
	f.StringVar(&opts.connector, "connector", "", "concatenation token inserted after the closing quote")
	f.StringVarP(&opts.grammarName, "grammar", "g", "", "grammar name or scope; default chosen from the file name")
	f.BoolVar(&opts.noEnv, "no-env", false, "ignore SPLITSTRING_* environment variables")

	cmd.AddCommand(
		newDecideCmd(opts),
		newSplitCmd(opts),
		newScopesCmd(opts),
		newConfigCmd(opts),
		newKeysCmd(),
		newEditCmd(opts),
		newLuaCmd(opts),
	)
	return cmd
}

// flagLayer converts the flags the user set into a config document.
func (o *globalOptions) flagLayer(flags *pflag.FlagSet) map[string]any {
	section := map[string]any{}
	if flags.Changed("preset") {
		section["preset"] = o.preset
	}
	if flags.Changed("connector") {
		section["connector"] = o.connector
	}

	doc := map[string]any{}
	if len(section) > 0 {
		doc[config.Section] = section
	}
	if flags.Changed("log-level") {
		doc["logging"] = map[string]any{"level": o.logLevel}
	}
	return doc
}

// resolvedConfigPath returns --config, or the user config file when unset.
func (o *globalOptions) resolvedConfigPath() string {
	if o.configPath != "" {
		return o.configPath
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "splitstring", "config.toml")
}

// store loads the settings from every source.
func (o *globalOptions) store(cmd *cobra.Command) (*config.Store, error) {
	store := config.NewStore()
	err := store.LoadSources(config.Sources{
		Path:  o.resolvedConfigPath(),
		Env:   !o.noEnv,
		Flags: o.flagLayer(cmd.Flags()),
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// logger builds a logger at the configured level writing to w.
func (o *globalOptions) logger(store *config.Store, w io.Writer) *logging.Logger {
	cfg := logging.DefaultConfig()
	cfg.Output = w
	if level, ok := logging.ParseLevel(store.LogLevel()); ok {
		cfg.Level = level
	}
	return logging.New(cfg)
}

// grammarFor returns the --grammar grammar, or the one matching path.
func (o *globalOptions) grammarFor(path string) (*grammar.Grammar, error) {
	reg := grammar.DefaultRegistry()
	if o.grammarName != "" {
		return reg.Get(o.grammarName)
	}
	return reg.ForPath(path)
}

// openDocument reads path into a document with the cursor at pos.
func (o *globalOptions) openDocument(path string, pos scope.Position) (*host.Document, error) {
	g, err := o.grammarFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc := host.NewDocument(path, string(data), g)
	if err := doc.SetCursor(pos); err != nil {
		return nil, fmt.Errorf("cursor %d:%d: %w", pos.Row+1, pos.Column+1, err)
	}
	return doc, nil
}

// parsePosition parses a 1-based ROW:COL into a 0-based position.
func parsePosition(s string) (scope.Position, error) {
	pos, err := scope.ParsePosition(s)
	if err != nil || pos.Row < 1 || pos.Column < 1 {
		return scope.Position{}, fmt.Errorf("%w: %q", errInvalidPosition, s)
	}
	return scope.Position{Row: pos.Row - 1, Column: pos.Column - 1}, nil
}

// addFormatFlag registers --format on cmd.
func addFormatFlag(cmd *cobra.Command, format *string) {
	cmd.Flags().StringVarP(format, "format", "o", "text", "output format (text or json)")
}

func checkFormat(format string) error {
	switch format {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("unknown format %q (want text or json)", format)
	}
}
