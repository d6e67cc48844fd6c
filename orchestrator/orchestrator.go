// Package orchestrator spawns the transformer and consumer stages as child
// processes and drives generated records through them over their standard
// streams.
package orchestrator

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"

	uuid "github.com/nu7hatch/gouuid"
	"github.com/oklog/run"
	"github.com/stageflow/stageflow/adaptor/generator"
	"github.com/stageflow/stageflow/events"
	"github.com/stageflow/stageflow/log"
)

// An Orchestrator owns one pipeline run. It spawns the downstream stages,
// generates records at a fixed pace, and relays the transformer's output
// into the consumer.
type Orchestrator struct {
	id      string
	version string
	binary  string
	records []string
	delay   time.Duration
	emit    events.EmitFunc
	l       log.Logger

	generated int64
	relayed   int64
}

// OptionFunc is a function that configures an Orchestrator.
type OptionFunc func(*Orchestrator) error

// New creates a new Orchestrator for the given executable. By default the
// built-in dataset is generated at the default pace and downstream stages
// are spawned from the same binary.
func New(version string, options ...OptionFunc) (*Orchestrator, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	binary, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("unable to locate executable (%s)", err)
	}
	o := &Orchestrator{
		id:      id.String(),
		version: version,
		binary:  binary,
		records: generator.DefaultDataset(),
		delay:   generator.DefaultDelay,
		emit:    events.LogEmitter(),
	}
	for _, option := range options {
		if err := option(o); err != nil {
			return nil, err
		}
	}
	o.l = log.With("run_id", o.id)
	return o, nil
}

// WithBinary overrides the executable the child stages are spawned from.
func WithBinary(path string) OptionFunc {
	return func(o *Orchestrator) error {
		o.binary = path
		return nil
	}
}

// WithRecords overrides the records fed into the pipeline.
func WithRecords(records []string) OptionFunc {
	return func(o *Orchestrator) error {
		o.records = records
		return nil
	}
}

// WithDelay sets the pause between generated records.
func WithDelay(d time.Duration) OptionFunc {
	return func(o *Orchestrator) error {
		if d < 0 {
			return fmt.Errorf("invalid delay (%s)", d)
		}
		o.delay = d
		return nil
	}
}

// WithEmitter sets the emitter function pipeline events are sent to.
func WithEmitter(emit events.EmitFunc) OptionFunc {
	return func(o *Orchestrator) error {
		o.emit = emit
		return nil
	}
}

// ID returns the unique id of this pipeline run.
func (o *Orchestrator) ID() string {
	return o.id
}

// Run executes one full pipeline run and blocks until every stage has
// exited. Cancelling the context kills the child stages.
func (o *Orchestrator) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eventChan := make(chan events.Event, 10)
	emitter := events.NewEmitter(eventChan, o.emit)
	emitter.Start()
	defer emitter.Stop()

	eventChan <- events.NewBootEvent(time.Now().Unix(), o.version, map[string]string{
		"transformer": "process",
		"consumer":    "process",
	})

	consumer := NewProcess(ctx, o.binary, "consumer")
	consumerIn, err := consumer.StdinPipe()
	if err != nil {
		return err
	}
	consumer.InheritStdout(os.Stdout)
	consumer.InheritStderr(os.Stderr)

	transformer := NewProcess(ctx, o.binary, "transformer")
	transformerIn, err := transformer.StdinPipe()
	if err != nil {
		return err
	}
	transformerOut, err := transformer.StdoutPipe()
	if err != nil {
		return err
	}
	transformer.InheritStderr(os.Stderr)

	if err := consumer.Start(); err != nil {
		return err
	}
	if err := transformer.Start(); err != nil {
		consumer.CloseStdin()
		consumer.Wait()
		return err
	}

	o.l.With("delay", o.delay.String()).Infoln("pipeline starting")

	var group run.Group
	group.Add(func() error {
		return o.feed(ctx, transformerIn, transformer)
	}, func(error) {
		transformer.CloseStdin()
	})
	group.Add(func() error {
		return o.relay(transformerOut, consumerIn, transformer, consumer)
	}, func(error) {
		// the relay unwinds on its own once the transformer's output
		// stream reaches EOF
	})
	runErr := group.Run()

	eventChan <- events.NewMetricsEvent(time.Now().Unix(), "generator", int(atomic.LoadInt64(&o.generated)))
	eventChan <- events.NewMetricsEvent(time.Now().Unix(), "relay", int(atomic.LoadInt64(&o.relayed)))
	if runErr != nil {
		eventChan <- events.NewErrorEvent(time.Now().Unix(), "orchestrator", nil, runErr.Error())
		o.l.Errorf("pipeline failed (%s)", runErr)
		return runErr
	}
	eventChan <- events.NewExitEvent(time.Now().Unix(), o.version, map[string]string{
		"transformer": transformer.State(),
		"consumer":    consumer.State(),
	})
	o.l.Infoln("pipeline finished")
	return nil
}

// feed writes each record to the transformer's input stream at the
// configured pace, then closes the stream to signal end-of-data. The
// transformer is not waited here, Wait closes its stdout pipe and must not
// run until the relay has read it to EOF.
func (o *Orchestrator) feed(ctx context.Context, in io.WriteCloser, transformer *Process) error {
	defer transformer.CloseStdin()
	for i, record := range o.records {
		if _, err := fmt.Fprintln(in, record); err != nil {
			return fmt.Errorf("writing record to transformer (%s)", err)
		}
		atomic.AddInt64(&o.generated, 1)
		o.l.Infof("Generated: %s", record)
		if o.delay > 0 && i < len(o.records)-1 {
			select {
			case <-time.After(o.delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	return nil
}

// relay copies the transformer's output stream into the consumer's input
// stream line by line. The transformer is waited only after its output
// reaches EOF, and the consumer's input closes only after that, so every
// transformed line reaches the consumer before its stream ends. The relay
// then waits for the consumer to exit so its summary is complete before
// Run returns.
func (o *Orchestrator) relay(out io.Reader, in io.WriteCloser, transformer, consumer *Process) error {
	scanner := bufio.NewScanner(out)
	var relayErr error
	for scanner.Scan() {
		if _, err := fmt.Fprintln(in, scanner.Text()); err != nil {
			relayErr = fmt.Errorf("writing record to consumer (%s)", err)
			break
		}
		atomic.AddInt64(&o.relayed, 1)
	}
	if relayErr != nil {
		// keep consuming stdout so the transformer can exit and be reaped
		io.Copy(io.Discard, out)
	} else if err := scanner.Err(); err != nil {
		relayErr = fmt.Errorf("reading transformer output (%s)", err)
	}

	terr := transformer.Wait()
	consumer.CloseStdin()
	werr := consumer.Wait()
	if relayErr != nil {
		return relayErr
	}
	if terr != nil {
		return terr
	}
	return werr
}
