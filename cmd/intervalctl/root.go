package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/henderiw/interval/pkg/registry"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

type options struct {
	kind     string
	selector string
	output   string
	verbose  bool

	reg registry.Registry
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:          "intervalctl",
		Short:        "Normalize, compare and combine intervals",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.complete()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = o.log.Sync()
		},
	}
	o.addFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		newNormalizeCmd(o),
		newRelateCmd(o),
		newCombineCmd(o),
		newKindsCmd(o),
	)
	return cmd
}

func (o *options) addFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&o.kind, "kind", "k", "int", "point kind of the intervals")
	fs.StringVarP(&o.output, "output", "o", "text", "output format: text or json")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "enable debug logging")
}

func (o *options) complete() error {
	var err error
	if o.verbose {
		o.log, err = zap.NewDevelopment()
	} else {
		o.log, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}
	if o.output != "text" && o.output != "json" {
		return fmt.Errorf("unsupported output format %q", o.output)
	}
	o.reg, err = registry.Default(registry.WithLogger(o.logger()))
	return err
}

// logger bridges the zap logger into the registry's logr interface.
func (o *options) logger() logr.Logger {
	verbosity := 0
	if o.verbose {
		verbosity = 1
	}
	return funcr.New(func(prefix, args string) {
		o.log.Debug(args, zap.String("logger", prefix))
	}, funcr.Options{Verbosity: verbosity})
}

func (o *options) getKind() (registry.Kind, error) {
	return o.reg.Get(o.kind)
}

func (o *options) print(w io.Writer, v any) error {
	if o.output == "json" {
		enc := json.NewEncoder(w)
		return enc.Encode(map[string]any{"kind": o.kind, "result": v})
	}
	switch v := v.(type) {
	case []string:
		_, err := fmt.Fprintln(w, strings.Join(v, " "))
		return err
	default:
		_, err := fmt.Fprintln(w, v)
		return err
	}
}
