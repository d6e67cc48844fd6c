package client

import "errors"

var (
	ErrMockConnect = errors.New("connect failed")
	ErrMockWrite   = errors.New("write failed")
)

// Mock can be used for mocking tests that need no actual client or Session.
type Mock struct {
	Closed bool
}

// Connect satisfies the Client interface.
func (c *Mock) Connect() (Session, error) {
	return &MockSession{}, nil
}

// Close satisfies the Closer interface.
func (c *Mock) Close() { c.Closed = true }

// MockErr can be used for mocking tests that need a failing client.
type MockErr struct {
}

// Connect satisfies the Client interface.
func (c *MockErr) Connect() (Session, error) {
	return nil, ErrMockConnect
}

// MockSession can be used for mocking tests that do not need to use anything in the Session.
type MockSession struct {
}

// MockReader can be used for mocking tests that need a source of lines.
// A non-nil ReadErr simulates a stream that breaks after the lines are sent.
type MockReader struct {
	Lines   []string
	ReadErr error
}

// Err satisfies the ErrorReporter interface.
func (r *MockReader) Err() error { return r.ReadErr }

// Read satisfies the Reader interface.
func (r *MockReader) Read() MessageChanFunc {
	return func(s Session, done chan struct{}) (chan string, error) {
		out := make(chan string)
		go func() {
			defer close(out)
			for _, line := range r.Lines {
				select {
				case <-done:
					return
				case out <- line:
				}
			}
		}()
		return out, nil
	}
}

// MockWriter can be used to count the lines sent to a sink.
type MockWriter struct {
	LineCount int
}

// Write satisfies the Writer interface.
func (w *MockWriter) Write(line string) func(Session) (string, error) {
	return func(Session) (string, error) {
		w.LineCount++
		return line, nil
	}
}

// MockErrWriter fails every write.
type MockErrWriter struct {
}

// Write satisfies the Writer interface.
func (w *MockErrWriter) Write(line string) func(Session) (string, error) {
	return func(Session) (string, error) {
		return "", ErrMockWrite
	}
}
