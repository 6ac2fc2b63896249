package main

import (
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dshills/splitstring/internal/app"
	"github.com/dshills/splitstring/internal/grammar"
)

func newEditCmd(opts *globalOptions) *cobra.Command {
	var logFile string

	cmd := &cobra.Command{
		Use:   "edit [FILE]",
		Short: "Open a file in the terminal editor",
		Long: `edit opens FILE in a minimal terminal editor. Enter inside a quoted
string splits it; elsewhere it inserts a newline. ctrl+s saves and ctrl+q
quits. The config file is reloaded when it changes.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := opts.store(cmd)
			if err != nil {
				return err
			}

			// The terminal belongs to the editor, so logs go to a file or nowhere.
			var w io.Writer = io.Discard
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}

			var path string
			if len(args) == 1 {
				path = args[0]
			}
			var g *grammar.Grammar
			if opts.grammarName != "" {
				if g, err = grammar.DefaultRegistry().Get(opts.grammarName); err != nil {
					return err
				}
			}

			a, err := app.New(app.Options{
				Path:        path,
				Grammar:     g,
				Store:       store,
				Logger:      opts.logger(store, w),
				WatchConfig: true,
			})
			if err != nil {
				return err
			}

			sigs := make(chan os.Signal, 1)
			signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sigs)
			go func() {
				if _, ok := <-sigs; ok {
					a.Shutdown()
				}
			}()

			return a.Run()
		},
	}
	cmd.Flags().StringVar(&logFile, "log-file", "", "append logs to this file")
	return cmd
}
