package generator

import (
	"time"

	"github.com/stageflow/stageflow/client"
	"github.com/stageflow/stageflow/log"
)

var (
	_ client.Reader = &Reader{}
)

// Reader implements client.Reader by walking the configured dataset with the
// configured pacing.
type Reader struct{}

func newReader() client.Reader {
	return &Reader{}
}

func (r *Reader) Read() client.MessageChanFunc {
	return func(s client.Session, done chan struct{}) (chan string, error) {
		session := s.(*Session)
		out := make(chan string)
		go func() {
			defer close(out)
			for _, line := range session.records {
				select {
				case <-done:
					return
				case out <- line:
				}
				log.With("stage", "generator").Infof("Generated: %s", line)
				if session.delay > 0 {
					select {
					case <-done:
						return
					case <-time.After(session.delay):
					}
				}
			}
			log.With("stage", "generator").Infoln("Read completed")
		}()
		return out, nil
	}
}
