package events

import (
	"bytes"
	"fmt"
	"net/http"
	"sync"

	"github.com/stageflow/stageflow/log"
)

// EmitFunc is a function that takes an Event and delivers it somewhere.
type EmitFunc func(Event) error

// Emitter consumes events from a channel in the background and hands each
// one to the configured EmitFunc.
type Emitter interface {
	Start()
	Stop()
}

// NewEmitter creates a new Emitter that reads from the given channel.
func NewEmitter(events chan Event, emit EmitFunc) Emitter {
	return &emitter{
		ch:     events,
		emit:   emit,
		chstop: make(chan struct{}),
	}
}

type emitter struct {
	ch     chan Event
	emit   EmitFunc
	chstop chan struct{}
	wg     sync.WaitGroup
}

// Start the emitter loop.
func (e *emitter) Start() {
	e.wg.Add(1)
	go e.startEventListener()
}

// Stop drains any buffered events and shuts the emitter down.
func (e *emitter) Stop() {
	close(e.chstop)
	e.wg.Wait()
}

func (e *emitter) startEventListener() {
	defer e.wg.Done()
	for {
		select {
		case <-e.chstop:
			// drain whatever is still buffered before exiting
			for {
				select {
				case event := <-e.ch:
					e.deliver(event)
				default:
					return
				}
			}
		case event, ok := <-e.ch:
			if !ok {
				return
			}
			e.deliver(event)
		}
	}
}

func (e *emitter) deliver(event Event) {
	if err := e.emit(event); err != nil {
		log.With("event", event.String()).Errorf("unable to emit event (%s)", err)
	}
}

// NoopEmitter consumes the events and does nothing with them.
func NoopEmitter() EmitFunc {
	return func(Event) error { return nil }
}

// LogEmitter writes each event to the diagnostic log.
func LogEmitter() EmitFunc {
	return func(event Event) error {
		log.With("event", fmt.Sprintf("%v", event)).Infoln("event received")
		return nil
	}
}

// HTTPPostEmitter posts each event as JSON to the given uri, authenticating
// with key/pid when a key is configured.
func HTTPPostEmitter(uri, key, pid string) EmitFunc {
	return func(event Event) error {
		ba, err := event.Emit()
		if err != nil {
			return err
		}

		req, err := http.NewRequest(http.MethodPost, uri, bytes.NewBuffer(ba))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")
		if len(key) > 0 {
			req.SetBasicAuth(key, pid)
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
			return fmt.Errorf("event post failed, status %d", resp.StatusCode)
		}
		return nil
	}
}
