package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/splitstring/internal/input"
)

func newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List the key bindings of the editor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, b := range input.DefaultKeymap().Bindings() {
				line := fmt.Sprintf("%-12s %s", b.Key, b.Action)
				if b.Fallback != "" {
					line += " (else " + b.Fallback + ")"
				}
				if _, err := fmt.Fprintln(out, line); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
