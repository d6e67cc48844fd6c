package pipeline

import (
	"sync"
	"time"

	"github.com/stageflow/stageflow/adaptor"
	"github.com/stageflow/stageflow/events"
	"github.com/stageflow/stageflow/log"
)

// A Pipeline is the end to end description of a stageflow data flow,
// including the source, sink, and all the transformers along the way
type Pipeline struct {
	source        *Node
	emitter       events.Emitter
	metricsTicker *time.Ticker
	version       string

	// Err is the fatal error that was sent from the adaptor
	// that caused us to stop this process.  If this is nil, then
	// the pipeline is running
	Err error

	done     chan struct{}
	stopOnce sync.Once
}

// NewDefaultPipeline returns a new Pipeline with the given node tree, and
// uses the events.LogEmitter to deliver lifecycle events.
// eg.
//   source := pipeline.NewNode("source", "generator", adaptor.Config{"delay": "0s"})
//   source.Add(pipeline.NewNode("out", "stdio", adaptor.Config{"uri": "stdout://"}))
//   p, err := pipeline.NewDefaultPipeline(source, "0.1.0", 5*time.Second)
//   if err != nil {
//     fmt.Println(err)
//     os.Exit(1)
//   }
//   p.Run()
func NewDefaultPipeline(source *Node, version string, interval time.Duration) (*Pipeline, error) {
	return NewPipeline(version, source, events.LogEmitter(), interval)
}

// NewPipeline creates a new Pipeline using the given tree of nodes and event EmitFunc
// eg.
//   source := pipeline.NewNode("source", "generator", adaptor.Config{"delay": "0s"})
//   source.Add(pipeline.NewNode("out", "consumer", adaptor.Config{"uri": "stdout://"}))
//   p, err := pipeline.NewPipeline("0.1.0", source, events.NewNoopEmitter(), 5*time.Second)
//   if err != nil {
//     fmt.Println(err)
//     os.Exit(1)
//   }
//   p.Run()
func NewPipeline(version string, source *Node, emit events.EmitFunc, interval time.Duration) (*Pipeline, error) {

	pipeline := &Pipeline{
		source:        source,
		version:       version,
		metricsTicker: time.NewTicker(interval),
		done:          make(chan struct{}),
	}

	// init the pipeline
	err := pipeline.source.Init()
	if err != nil {
		return pipeline, err
	}

	// init the emitter with the right chan
	pipeline.emitter = events.NewEmitter(source.pipe.Event, emit)

	// start the emitters
	go pipeline.startErrorListener(source.pipe.Err)
	go pipeline.startMetricsGatherer()

	pipeline.emitter.Start()

	return pipeline, nil
}

func (pipeline *Pipeline) String() string {
	return pipeline.source.String()
}

// Stop sends a stop signal to all the nodes, whether they are running or not.
// The node's adaptors are expected to clean up after themselves, and stop will
// block until all nodes have stopped successfully
func (pipeline *Pipeline) Stop() {
	pipeline.stopOnce.Do(func() {
		endpoints := pipeline.source.Endpoints()
		pipeline.source.Stop()

		// pipeline has stopped, emit one last round of metrics and send the exit event
		close(pipeline.done)
		pipeline.metricsTicker.Stop()
		pipeline.emitMetrics()
		pipeline.source.pipe.Event <- events.NewExitEvent(time.Now().UnixNano(), pipeline.version, endpoints)
		pipeline.emitter.Stop()
	})
}

// Run the pipeline
func (pipeline *Pipeline) Run() error {
	endpoints := pipeline.source.Endpoints()
	// send a boot event
	pipeline.source.pipe.Event <- events.NewBootEvent(time.Now().UnixNano(), pipeline.version, endpoints)

	// start the source
	err := pipeline.source.Start()
	if err != nil && pipeline.Err == nil {
		pipeline.Err = err // only set it if it hasn't been set already.
	}

	return pipeline.Err
}

// start error listener consumes all the events on the pipe's Err channel, and stops the pipeline
// when it receives a fatal one
func (pipeline *Pipeline) startErrorListener(cherr chan error) {
	for {
		select {
		case err, ok := <-cherr:
			if !ok {
				return
			}
			if aerr, ok := err.(adaptor.Error); ok {
				pipeline.source.pipe.Event <- events.NewErrorEvent(time.Now().UnixNano(), aerr.Path, aerr.Record, aerr.Error())
				if aerr.Lvl == adaptor.ERROR || aerr.Lvl == adaptor.CRITICAL {
					log.With("path", aerr.Path).Errorln(aerr)
				}
			} else {
				if pipeline.Err == nil {
					pipeline.Err = err
				}
				go pipeline.Stop()
			}
		case <-pipeline.done:
			return
		}
	}
}

func (pipeline *Pipeline) startMetricsGatherer() {
	for {
		select {
		case <-pipeline.metricsTicker.C:
			pipeline.emitMetrics()
		case <-pipeline.done:
			return
		}
	}
}

// emit the metrics
func (pipeline *Pipeline) emitMetrics() {
	pipeline.apply(func(node *Node) {
		pipeline.source.pipe.Event <- events.NewMetricsEvent(time.Now().UnixNano(), node.Path(), node.pipe.MessageCount)
	})
}

// apply maps a function f across all nodes of a pipeline
func (pipeline *Pipeline) apply(f func(*Node)) {
	if pipeline.source == nil {
		return
	}
	head := pipeline.source
	nodes := []*Node{head}
	for len(nodes) > 0 {
		head, nodes = nodes[0], nodes[1:]
		f(head)
		nodes = append(nodes, head.Children...)
	}
}
