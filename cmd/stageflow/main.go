package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/stageflow/stageflow/events"
	"github.com/stageflow/stageflow/log"

	_ "github.com/stageflow/stageflow/adaptor/all"
	_ "github.com/stageflow/stageflow/function/gojajs"
)

const metricsInterval = 10 * time.Second

var version = "0.1.0"

// environment holds the settings every command reads from STAGEFLOW_*
// variables. Flags override them.
type environment struct {
	Delay     string `default:"500ms" desc:"pause between generated records"`
	LogLevel  string `split_words:"true" default:"info" desc:"verbosity level (debug, info, error)"`
	EventsURI string `envconfig:"EVENTS_URI" desc:"http endpoint lifecycle events are posted to"`
}

var env environment

func main() {
	usage := func() {
		fmt.Fprintf(os.Stderr, "USAGE\n")
		fmt.Fprintf(os.Stderr, "  %s <command> [flags]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nCOMMANDS\n")
		fmt.Fprintf(os.Stderr, "  generator     emit the built-in dataset as newline delimited records\n")
		fmt.Fprintf(os.Stderr, "  transformer   rewrite records read from stdin and print them to stdout\n")
		fmt.Fprintf(os.Stderr, "  consumer      total records read from stdin and print a summary\n")
		fmt.Fprintf(os.Stderr, "  run-pipeline  run all three stages as one pipeline\n")
		fmt.Fprintf(os.Stderr, "  list          list registered adaptors and functions\n")
		fmt.Fprintf(os.Stderr, "\nVERSION\n")
		fmt.Fprintf(os.Stderr, "  %s\n", version)
		fmt.Fprintf(os.Stderr, "\n")
	}

	if err := envconfig.Process("stageflow", &env); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if len(os.Args) < 2 {
		usage()
		os.Exit(0)
	}

	var run func([]string) error
	switch strings.ToLower(os.Args[1]) {
	case "generator":
		run = runGenerator
	case "transformer":
		run = runTransformer
	case "consumer":
		run = runConsumer
	case "run-pipeline":
		run = runPipeline
	case "list":
		run = runList
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", os.Args[1])
		usage()
		os.Exit(0)
	}

	if err := run(os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func baseFlagSet(setName string) *flag.FlagSet {
	fs := flag.NewFlagSet(setName, flag.ExitOnError)
	fs.StringVar(&env.LogLevel, "log.level", env.LogLevel, "verbosity level (debug, info, error)")
	return fs
}

func usageFor(fs *flag.FlagSet, short string) func() {
	return func() {
		fmt.Fprintf(os.Stderr, "USAGE\n")
		fmt.Fprintf(os.Stderr, "  %s\n", short)
		fmt.Fprintf(os.Stderr, "\nFLAGS\n")
		w := tabwriter.NewWriter(os.Stderr, 0, 2, 2, ' ', 0)
		fs.VisitAll(func(f *flag.Flag) {
			fmt.Fprintf(w, "\t-%s %s\t%s\n", f.Name, f.DefValue, f.Usage)
		})
		w.Flush()
		fmt.Fprintf(os.Stderr, "\n")
	}
}

func setupLog() {
	log.SetLevel(env.LogLevel)
}

func emitFunc() events.EmitFunc {
	if env.EventsURI == "" {
		return events.LogEmitter()
	}
	return events.HTTPPostEmitter(env.EventsURI, "", fmt.Sprintf("%d", os.Getpid()))
}
