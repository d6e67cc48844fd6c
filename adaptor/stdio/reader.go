package stdio

import (
	"bufio"
	"sync"

	"github.com/stageflow/stageflow/client"
	"github.com/stageflow/stageflow/log"
)

var (
	_ client.Reader        = &Reader{}
	_ client.ErrorReporter = &Reader{}
)

// Reader implements the behavior defined by client.Reader for interfacing with the stream.
type Reader struct {
	mu  sync.Mutex
	err error
}

func newReader() client.Reader {
	return &Reader{}
}

// Err returns the first error hit while scanning the stream, or nil if the
// stream ended cleanly.  Only valid once the line chan has closed.
func (r *Reader) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

func (r *Reader) Read() client.MessageChanFunc {
	return func(s client.Session, done chan struct{}) (chan string, error) {
		session := s.(*Session)
		if session.reader == nil {
			return nil, client.ConnectError{Reason: "stream is not readable"}
		}
		out := make(chan string)
		go func() {
			defer close(out)
			scanner := bufio.NewScanner(session.reader)
			for scanner.Scan() {
				select {
				case <-done:
					return
				case out <- scanner.Text():
				}
			}
			if err := scanner.Err(); err != nil {
				r.mu.Lock()
				r.err = err
				r.mu.Unlock()
				log.With("stream", session.label).Errorf("read failed (%v)", err)
				return
			}
			log.With("stream", session.label).Infoln("Read completed")
		}()

		return out, nil
	}
}
