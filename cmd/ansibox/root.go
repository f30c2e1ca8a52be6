package main

import (
	"fmt"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

// Version is set by the linker for release builds.
var Version = "dev"

var (
	verbosity int
	cfgFile   string

	rootCmd = &cobra.Command{
		Use:   "ansibox",
		Short: "Render markup text as boxes on the terminal",
		Long: `ansibox reads text with inline style markup like "@|bold,red alert|@"
and prints it as aligned and bordered boxes, using ANSI escape sequences
where the output device supports them.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupTracing(verbosity)
			tracer().Debugf("ansibox: command %s started", cmd.Name())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG)")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/ansibox/config.toml)")
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(bordersCmd)
	rootCmd.AddCommand(renderCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "ansibox %s\n", Version)
	},
}

func tracer() tracing.Trace {
	return tracing.Select("ansibox")
}

// setupTracing routes all tracing to the Go logger. Errors are always
// reported, more detail is added with every -v.
func setupTracing(verbosity int) {
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	gtrace.CoreTracer = tracing.Select("termtext")
	level := tracing.LevelError
	switch {
	case verbosity >= 2:
		level = tracing.LevelDebug
	case verbosity == 1:
		level = tracing.LevelInfo
	}
	tracer().SetTraceLevel(level)
	gtrace.CoreTracer.SetTraceLevel(level)
}
