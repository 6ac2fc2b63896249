package main

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/dshills/splitstring/internal/plugin/lua"
)

func newLuaCmd(opts *globalOptions) *cobra.Command {
	var eval string
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "lua [SCRIPT]",
		Short: "Run a Lua script with the splitstring module",
		Long: `lua runs SCRIPT, or the code given with -e, in a sandboxed Lua state.
The script reaches the decider through require("splitstring"); settings
come from the same config sources as the other commands. print writes to
standard output.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if (eval == "") == (len(args) == 0) {
				return errors.New("give either a script or -e code")
			}
			store, err := opts.store(cmd)
			if err != nil {
				return err
			}

			state := lua.NewState(
				lua.WithOutput(cmd.OutOrStdout()),
				lua.WithExecutionTimeout(timeout),
			)
			defer state.Close()
			if err := lua.NewModule(store, nil).Open(state); err != nil {
				return err
			}

			opts.logger(store, cmd.ErrOrStderr()).WithComponent("lua").Debug("running script")
			if eval != "" {
				return state.DoString(cmd.Context(), eval)
			}
			return state.DoFile(cmd.Context(), args[0])
		},
	}
	cmd.Flags().StringVarP(&eval, "eval", "e", "", "run this code instead of a script")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "maximum run time, 0 for none")
	return cmd
}
