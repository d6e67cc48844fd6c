package main

import (
	"github.com/stageflow/stageflow/adaptor"
	"github.com/stageflow/stageflow/pipeline"
)

func runTransformer(args []string) error {
	flagset := baseFlagSet("transformer")
	fn := flagset.String("fn", "", "path to a javascript transform applied to each record")
	flagset.Usage = usageFor(flagset, "stageflow transformer [flags]")
	if err := flagset.Parse(args); err != nil {
		return err
	}
	setupLog()

	extra := adaptor.Config{}
	if *fn != "" {
		extra["functions"] = []map[string]interface{}{
			{"name": "goja", "config": map[string]interface{}{"filename": *fn}},
		}
	}

	source := pipeline.NewNode("in", "stdio", adaptor.Config{"uri": "stdin://"})
	xform := pipeline.NewNode("transformer", "transformer", extra)
	xform.Add(pipeline.NewNode("out", "stdio", adaptor.Config{"uri": "stdout://"}))
	source.Add(xform)

	p, err := pipeline.NewPipeline(version, source, emitFunc(), metricsInterval)
	if err != nil {
		return err
	}
	defer p.Stop()
	return p.Run()
}
