// Copyright 2026 The Stageflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pipe provides the in-memory transport joining stageflow nodes, a
// channel-backed stream of wire lines with shared error and event channels.
package pipe

import (
	"errors"
	"sync"
	"time"

	"github.com/stageflow/stageflow/events"
	"github.com/stageflow/stageflow/log"
)

var (
	// ErrUnableToListen is returned in cases where Listen is called before the In chan has been
	// established.
	ErrUnableToListen = errors.New("Listen called with a nil In chan")
)

type lineChan chan string

func newLineChan() lineChan {
	return make(lineChan, 10)
}

// Pipe provides a set of methods to let stageflow nodes communicate with each other.
//
// Pipes contain In, Out, Err, and Event channels. Lines are consumed by a node through the
// 'in' chan and emitted from the node by the 'out' chan. Pipes come in three flavours, a
// sourcePipe, which only emits lines and has no listening loop, a sinkPipe which has a
// listening loop but doesn't emit any lines, and a joinPipe which has a listening loop that
// also emits lines.
type Pipe struct {
	In      lineChan
	Out     []lineChan
	Err     chan error
	Event   chan events.Event
	Stopped bool // has the pipe been stopped?

	MessageCount int

	path      string // the path of this pipe (for events and errors)
	chStop    chan struct{}
	listening bool
	wg        sync.WaitGroup
}

// NewPipe creates a new Pipe. If the pipe that is passed in is nil, then this pipe will be
// treated as a source pipe that just serves to emit lines. Otherwise, the pipe returned
// will be created and chained from the last member of the Out slice of the parent. This
// function has side effects, and will add an Out channel to the pipe that is passed in.
func NewPipe(pipe *Pipe, path string) *Pipe {

	p := &Pipe{
		Out:    make([]lineChan, 0),
		path:   path,
		chStop: make(chan struct{}),
	}

	if pipe != nil {
		pipe.Out = append(pipe.Out, newLineChan())
		p.In = pipe.Out[len(pipe.Out)-1] // use the last out channel
		p.Err = pipe.Err
		p.Event = pipe.Event
	} else {
		p.Err = make(chan error)
		p.Event = make(chan events.Event, 10) // buffer the event channel
	}

	return p
}

// Listen starts a listening loop that pulls lines from the In chan, applies fn(line), a
// `func(string) (string, error)`, and emits the result on the Out channels. An empty
// result drops the line, nothing propagates downstream. Errors will be emitted to the
// Pipe's Err chan and terminate the loop. The listening loop can be interrupted by calls
// to Stop().
func (p *Pipe) Listen(fn func(string) (string, error)) error {
	if p.In == nil {
		return ErrUnableToListen
	}
	p.listening = true
	p.wg.Add(1)
	for {
		select {
		case <-p.chStop:
			if len(p.In) > 0 {
				log.With("path", p.path).With("buffer_length", len(p.In)).Infoln("received stop, line buffer not empty, continuing...")
				continue
			}
			log.With("path", p.path).Debugln("received stop, line buffer is empty, closing...")
			p.wg.Done()
			return nil
		case line := <-p.In:
			out, err := fn(line)
			if err != nil {
				p.Stopped = true
				p.Err <- err
				p.wg.Done()
				return err
			}
			if out == "" {
				break
			}
			if len(p.Out) > 0 {
				p.Send(out)
			} else {
				p.MessageCount++ // update the count anyway
			}
		}
	}
}

// Stop terminates the listening loop and allows the node to exit cleanly. For pipes that
// are not listening, Stop blocks until every Out channel has been drained by its reader.
func (p *Pipe) Stop() {
	if !p.Stopped {
		p.Stopped = true

		// we only worry about the stop channel if we're in a listening loop
		if p.listening {
			close(p.chStop)
			p.wg.Wait()
			return
		}

		timeout := time.After(10 * time.Second)
		for {
			select {
			case <-timeout:
				log.With("path", p.path).Errorln("timeout reached waiting for Out channels to clear")
				return
			default:
			}
			if p.empty() {
				return
			}
			time.Sleep(100 * time.Millisecond)
		}
	}
}

func (p *Pipe) empty() bool {
	for _, ch := range p.Out {
		if len(ch) > 0 {
			return false
		}
	}
	return true
}

// Send emits the given line on every 'Out' channel.
func (p *Pipe) Send(line string) {
	p.MessageCount++
	for _, ch := range p.Out {
		ch <- line
	}
}
