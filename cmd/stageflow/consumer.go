package main

import (
	"github.com/stageflow/stageflow/adaptor"
	"github.com/stageflow/stageflow/pipeline"
)

func runConsumer(args []string) error {
	flagset := baseFlagSet("consumer")
	sink := flagset.String("sink", "stdout://", "uri the summary is written to")
	flagset.Usage = usageFor(flagset, "stageflow consumer [flags]")
	if err := flagset.Parse(args); err != nil {
		return err
	}
	setupLog()

	source := pipeline.NewNode("in", "stdio", adaptor.Config{"uri": "stdin://"})
	source.Add(pipeline.NewNode("consumer", "consumer", adaptor.Config{"uri": *sink}))

	p, err := pipeline.NewPipeline(version, source, emitFunc(), metricsInterval)
	if err != nil {
		return err
	}
	defer p.Stop()
	return p.Run()
}
