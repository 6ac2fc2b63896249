package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/splitstring/internal/scope"
	"github.com/dshills/splitstring/internal/splitter"
)

func newScopesCmd(opts *globalOptions) *cobra.Command {
	var at, format string

	cmd := &cobra.Command{
		Use:   "scopes FILE",
		Short: "Print the scope stack at a position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			pos, err := parsePosition(at)
			if err != nil {
				return err
			}
			doc, err := opts.openDocument(args[0], pos)
			if err != nil {
				return err
			}

			stack := doc.ScopesAt(pos)
			out := cmd.OutOrStdout()
			if format == "json" {
				j := newJSONDoc()
				j.set("scopes", []string(stack))
				j.set("kind", splitter.Classify(stack).String())
				js, err := j.String()
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, js)
				return err
			}
			for _, s := range stack {
				if _, err := fmt.Fprintln(out, s); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "cursor position ROW:COL (1-based)")
	_ = cmd.MarkFlagRequired("at")
	addFormatFlag(cmd, &format)
	return cmd
}

func newConfigCmd(opts *globalOptions) *cobra.Command {
	var scopes, format string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective settings for a scope stack",
		Long: `config prints the settings after layering the config file, the
SPLITSTRING_* environment variables and the flags. --scopes takes a space
separated stack, outermost first, and applies the matching scoped entries.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			store, err := opts.store(cmd)
			if err != nil {
				return err
			}

			stack := scope.Stack(strings.Fields(scopes))
			cfg := store.Resolve(stack)
			jsx := len(cfg.Rules) > 0
			out := cmd.OutOrStdout()

			if format == "json" {
				j := newJSONDoc()
				j.set("path", store.Path())
				j.set("connector", cfg.Connector)
				j.set("scopesToIgnore", cfg.ScopesToIgnore)
				j.set("jsxHeuristics", jsx)
				j.set("logLevel", store.LogLevel())
				js, err := j.String()
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, js)
				return err
			}

			fmt.Fprintf(out, "%-15s %s\n", "path", store.Path())
			fmt.Fprintf(out, "%-15s %q\n", "connector", cfg.Connector)
			fmt.Fprintf(out, "%-15s %s\n", "scopesToIgnore", strings.Join(cfg.ScopesToIgnore, " "))
			fmt.Fprintf(out, "%-15s %t\n", "jsxHeuristics", jsx)
			_, err = fmt.Fprintf(out, "%-15s %s\n", "logLevel", store.LogLevel())
			return err
		},
	}
	cmd.Flags().StringVar(&scopes, "scopes", "", "scope stack to resolve for")
	addFormatFlag(cmd, &format)
	return cmd
}
