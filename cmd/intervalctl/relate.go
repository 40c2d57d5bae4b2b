package main

import (
	"fmt"

	"github.com/henderiw/interval/pkg/registry"
	"github.com/spf13/cobra"
)

func newRelateCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:       fmt.Sprintf("relate %v A B", registry.Predicates),
		Short:     "Evaluate a predicate on two intervals",
		Example:   `  intervalctl relate overlaps -k float "[1,3)" "[2,4)"`,
		Args:      cobra.ExactArgs(3),
		ValidArgs: predicateNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := o.getKind()
			if err != nil {
				return err
			}
			ok, err := k.Relate(registry.Predicate(args[0]), args[1], args[2])
			if err != nil {
				return err
			}
			return o.print(cmd.OutOrStdout(), ok)
		},
	}
}

func predicateNames() []string {
	names := make([]string, 0, len(registry.Predicates))
	for _, p := range registry.Predicates {
		names = append(names, string(p))
	}
	return names
}
