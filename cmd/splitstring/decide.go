package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/tidwall/sjson"

	"github.com/dshills/splitstring/internal/dispatcher/handlers/split"
	"github.com/dshills/splitstring/internal/scope"
	"github.com/dshills/splitstring/internal/splitter"
)

func newDecideCmd(opts *globalOptions) *cobra.Command {
	var at, format string

	cmd := &cobra.Command{
		Use:   "decide FILE",
		Short: "Report whether the string at a position can be split",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			pos, err := parsePosition(at)
			if err != nil {
				return err
			}
			store, err := opts.store(cmd)
			if err != nil {
				return err
			}
			doc, err := opts.openDocument(args[0], pos)
			if err != nil {
				return err
			}

			d := split.Evaluate(doc, store)
			opts.logger(store, cmd.ErrOrStderr()).
				WithComponent("decide").
				Debug("%s at %s: %s", args[0], at, d.Reason)
			return writeDecision(cmd.OutOrStdout(), format, d, doc.ScopesAt(pos))
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "cursor position ROW:COL (1-based)")
	_ = cmd.MarkFlagRequired("at")
	addFormatFlag(cmd, &format)
	return cmd
}

func writeDecision(w io.Writer, format string, d splitter.Decision, scopes scope.Stack) error {
	if format == "json" {
		js, err := decisionJSON(d, scopes)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, js)
		return err
	}

	fmt.Fprintf(w, "%-12s %t\n", "eligible", d.Eligible)
	fmt.Fprintf(w, "%-12s %s\n", "reason", d.Reason)
	fmt.Fprintf(w, "%-12s %s\n", "kind", d.Kind)
	if d.Eligible {
		fmt.Fprintf(w, "%-12s %c\n", "quote", d.Quote)
		fmt.Fprintf(w, "%-12s %q\n", "connector", d.Connector)
		fmt.Fprintf(w, "%-12s %q\n", "replacement", d.Replacement())
	}
	_, err := fmt.Fprintf(w, "%-12s %s\n", "scopes", scopes)
	return err
}

// jsonDoc builds a JSON object with sjson, keeping the first error.
type jsonDoc struct {
	js  string
	err error
}

func newJSONDoc() *jsonDoc {
	return &jsonDoc{js: "{}"}
}

func (j *jsonDoc) set(path string, value any) {
	if j.err != nil {
		return
	}
	j.js, j.err = sjson.Set(j.js, path, value)
}

func (j *jsonDoc) String() (string, error) {
	return j.js, j.err
}

func decisionJSON(d splitter.Decision, scopes scope.Stack) (string, error) {
	j := newJSONDoc()
	j.set("eligible", d.Eligible)
	j.set("reason", d.Reason.String())
	j.set("kind", d.Kind.String())
	if d.Eligible {
		j.set("quote", string(d.Quote))
		j.set("connector", d.Connector)
		j.set("leadingWhitespace", d.LeadingWhitespace)
		j.set("replacement", d.Replacement())
	}
	j.set("scopes", []string(scopes))
	return j.String()
}
