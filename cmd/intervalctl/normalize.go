package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newNormalizeCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:     "normalize INTERVAL...",
		Short:   "Print the canonical form of intervals",
		Example: `  intervalctl normalize -k int "[1,3]" "(1,2)"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := o.getKind()
			if err != nil {
				return err
			}
			out := make([]string, 0, len(args))
			for _, arg := range args {
				s, err := k.Normalize(arg)
				if err != nil {
					return err
				}
				o.log.Debug("normalized", zap.String("in", arg), zap.String("out", s))
				out = append(out, s)
			}
			return o.print(cmd.OutOrStdout(), out)
		},
	}
}
