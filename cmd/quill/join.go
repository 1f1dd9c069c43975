package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/quill-lang/quill/pkg/types"
)

func joinCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "join <type> <type>",
		Short: "Show the union and common supertype of two declared types",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(cfg.Debug)
			reg, err := loadUniverse(cfg)
			if err != nil {
				return err
			}
			a, ok := reg.Lookup(args[0])
			if !ok {
				return errors.Errorf("unknown type %q", args[0])
			}
			b, ok := reg.Lookup(args[1])
			if !ok {
				return errors.Errorf("unknown type %q", args[1])
			}
			out := cmd.OutOrStdout()
			// Joining types from disconnected roots trips an internal
			// error; surface it as an ordinary failure here.
			return types.CatchInternal(func() {
				joined := reg.UnionOf(a, b)
				_, _ = fmt.Fprintf(out, "union:     %s\n", joined)
				_, _ = fmt.Fprintf(out, "supertype: %s\n", types.CommonSupertype(a, b))
				_, _ = fmt.Fprintf(out, "mangled:   %s\n", joined.MangledName())
			})
		},
	}
}
