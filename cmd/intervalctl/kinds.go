package main

import (
	"github.com/spf13/cobra"
	"k8s.io/apimachinery/pkg/labels"
)

func newKindsCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "kinds",
		Short:   "List the registered point kinds",
		Example: `  intervalctl kinds -l discrete=true,family!=network`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			selector, err := labels.Parse(o.selector)
			if err != nil {
				return err
			}
			names := []string{}
			for _, k := range o.reg.Select(selector) {
				names = append(names, k.Name())
			}
			return o.print(cmd.OutOrStdout(), names)
		},
	}
	cmd.Flags().StringVarP(&o.selector, "selector", "l", "", "label selector to filter kinds")
	return cmd
}
