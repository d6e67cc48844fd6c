package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/stageflow/stageflow/adaptor"
	"github.com/stageflow/stageflow/log"
	"github.com/stageflow/stageflow/orchestrator"
	"github.com/stageflow/stageflow/pipeline"
)

func runPipeline(args []string) error {
	flagset := baseFlagSet("run-pipeline")
	delay := flagset.String("delay", env.Delay, "pause between generated records")
	inProcess := flagset.Bool("in-process", false, "run all stages inside this process instead of spawning children")
	flagset.StringVar(&env.EventsURI, "events-uri", env.EventsURI, "http endpoint lifecycle events are posted to")
	flagset.Usage = usageFor(flagset, "stageflow run-pipeline [flags]")
	if err := flagset.Parse(args); err != nil {
		return err
	}
	setupLog()

	if *inProcess {
		return runInProcess(*delay)
	}

	d, err := time.ParseDuration(*delay)
	if err != nil {
		return err
	}

	o, err := orchestrator.New(version,
		orchestrator.WithDelay(d),
		orchestrator.WithEmitter(emitFunc()),
	)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		log.Infof("received %s, shutting pipeline down", sig)
		cancel()
	}()

	return o.Run(ctx)
}

func runInProcess(delay string) error {
	source := pipeline.NewNode("generator", "generator", adaptor.Config{"delay": delay})
	xform := pipeline.NewNode("transformer", "transformer", adaptor.Config{})
	xform.Add(pipeline.NewNode("consumer", "consumer", adaptor.Config{"uri": "stdout://"}))
	source.Add(xform)

	p, err := pipeline.NewPipeline(version, source, emitFunc(), metricsInterval)
	if err != nil {
		return err
	}
	defer p.Stop()
	return p.Run()
}
