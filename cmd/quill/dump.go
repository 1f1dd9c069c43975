package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quill-lang/quill/pkg/types"
)

func dumpCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print every declared type with its generated-code names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(cfg.Debug)
			reg, err := loadUniverse(cfg)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, name := range reg.Names() {
				typ, _ := reg.Lookup(name)
				_, _ = fmt.Fprintf(out, "%-20s %-24s %s\n", name, typ.MangledName(), generatedOrDash(typ))
			}
			return nil
		},
	}
}

func checkCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "check <manifest>",
		Short: "Validate a universe manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(cfg.Debug)
			reg, err := types.LoadUniverse(args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %d names declared\n", args[0], len(reg.Names()))
			return nil
		},
	}
}

func generatedOrDash(t types.Type) string {
	if g := t.GeneratedTypeName(); g != "" {
		return g
	}
	return "-"
}
