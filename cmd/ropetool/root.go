package main

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/spf13/cobra"
)

// tracer writes to trace with key 'rope'
func tracer() tracing.Trace {
	return tracing.Select("rope")
}

// options shared by all sub-commands
type rootOptions struct {
	configFile string
	traceLevel string
	conf       *config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:          "ropetool",
		Short:        "Inspect and edit ropes",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup()
		},
	}
	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "YAML configuration file")
	cmd.PersistentFlags().StringVar(&opts.traceLevel, "trace", "", "trace level for ropes (Debug, Info, Error)")
	cmd.AddCommand(newShowCmd(opts))
	cmd.AddCommand(newEditCmd(opts))
	cmd.AddCommand(newStatsCmd(opts))
	cmd.AddCommand(newHTMLCmd(opts))
	return cmd
}

// setup reads the configuration and configures tracing from it.
func (opts *rootOptions) setup() error {
	conf, err := loadConfig(opts.configFile)
	if err != nil {
		return err
	}
	if opts.traceLevel != "" {
		conf.Set("tracelevel.rope", opts.traceLevel)
	}
	opts.conf = conf
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracer().Debugf("configured tracing with adapter %q", conf.GetString("tracing.adapter"))
	return nil
}
