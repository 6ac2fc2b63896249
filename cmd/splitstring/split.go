package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/splitstring/internal/dispatcher"
	"github.com/dshills/splitstring/internal/dispatcher/handlers/split"
	"github.com/dshills/splitstring/internal/host"
	"github.com/dshills/splitstring/internal/input"
)

func newSplitCmd(opts *globalOptions) *cobra.Command {
	var at string
	var write bool

	cmd := &cobra.Command{
		Use:   "split FILE",
		Short: "Split the string at a position and print the result",
		Long: `split applies the split at --at and prints the new file contents, or
rewrites the file in place with -w. It fails when the position is not
inside a splittable string.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			pos, err := parsePosition(at)
			if err != nil {
				return err
			}
			store, err := opts.store(cmd)
			if err != nil {
				return err
			}
			doc, err := opts.openDocument(path, pos)
			if err != nil {
				return err
			}

			d := dispatcher.NewWithDefaults()
			d.SetWorkspace(host.NewMemoryWorkspace(doc))
			d.SetSettings(store)
			d.SetLogger(opts.logger(store, cmd.ErrOrStderr()))
			d.RegisterHandler(split.ActionName, split.New())

			result := d.Dispatch(input.Action{Name: split.ActionName, Source: input.SourceCLI})
			switch {
			case result.IsAborted():
				return fmt.Errorf("cannot split %s at %s: %s", path, at, result.Message)
			case result.IsError():
				return result.Error
			}

			if !write {
				_, err := fmt.Fprint(cmd.OutOrStdout(), doc.Text())
				return err
			}

			info, err := os.Stat(path)
			if err != nil {
				return err
			}
			if err := os.WriteFile(path, []byte(doc.Text()), info.Mode().Perm()); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
			doc.MarkSaved()
			return nil
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "cursor position ROW:COL (1-based)")
	_ = cmd.MarkFlagRequired("at")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "rewrite the file in place")
	return cmd
}
