package stdio

import (
	"fmt"

	"github.com/stageflow/stageflow/client"
)

var _ client.Writer = &Writer{}

// Writer implements client.Writer for use with byte streams.
type Writer struct{}

func newWriter() *Writer {
	return &Writer{}
}

func (w *Writer) Write(line string) func(client.Session) (string, error) {
	return func(s client.Session) (string, error) {
		session := s.(*Session)
		if session.writer == nil {
			return "", client.ConnectError{Reason: "stream is not writable"}
		}
		if _, err := fmt.Fprintln(session.writer, line); err != nil {
			return "", err
		}
		return line, nil
	}
}
