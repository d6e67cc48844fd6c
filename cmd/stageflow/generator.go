package main

import (
	"github.com/stageflow/stageflow/adaptor"
	"github.com/stageflow/stageflow/pipeline"
)

func runGenerator(args []string) error {
	flagset := baseFlagSet("generator")
	delay := flagset.String("delay", env.Delay, "pause between generated records")
	sink := flagset.String("sink", "stdout://", "uri the records are written to")
	flagset.Usage = usageFor(flagset, "stageflow generator [flags]")
	if err := flagset.Parse(args); err != nil {
		return err
	}
	setupLog()

	source := pipeline.NewNode("generator", "generator", adaptor.Config{"delay": *delay})
	source.Add(pipeline.NewNode("out", "stdio", adaptor.Config{"uri": *sink}))

	p, err := pipeline.NewPipeline(version, source, emitFunc(), metricsInterval)
	if err != nil {
		return err
	}
	defer p.Stop()
	return p.Run()
}
