package main

import (
	"fmt"

	"github.com/henderiw/interval/pkg/registry"
	"github.com/spf13/cobra"
)

func newCombineCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:     fmt.Sprintf("combine %v A B", registry.Operations),
		Short:   "Apply a set operation to two intervals",
		Example: `  intervalctl combine union -k int "[1,2)" "[2,3)"`,
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := o.getKind()
			if err != nil {
				return err
			}
			out, err := k.Combine(registry.Operation(args[0]), args[1], args[2])
			if err != nil {
				return err
			}
			return o.print(cmd.OutOrStdout(), out)
		},
	}
}
