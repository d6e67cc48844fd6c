package adaptor

import (
	"errors"
	"sync"

	"github.com/stageflow/stageflow/client"
)

var (
	_ Adaptor = &Mock{}
	_ Adaptor = &UnsupportedMock{}
)

// Mock can be used for mocking tests that need no functional client interfaces.
// A non-empty ReadErr makes the reader report a broken stream once its lines
// have been sent.
type Mock struct {
	BaseConfig
	Lines   []string `json:"lines"`
	ReadErr string   `json:"read_err"`
}

// Client satisfies the Adaptor interface for providing a client.Client.
func (m *Mock) Client() (client.Client, error) {
	return &client.Mock{}, nil
}

// Reader satisfies the Adaptor interface for providing a client.Reader.
func (m *Mock) Reader() (client.Reader, error) {
	r := &client.MockReader{Lines: m.Lines}
	if m.ReadErr != "" {
		r.ReadErr = errors.New(m.ReadErr)
	}
	return r, nil
}

// Writer satisfies the Adaptor interface for providing a client.Writer.
func (m *Mock) Writer(chan struct{}, *sync.WaitGroup) (client.Writer, error) {
	return &client.MockWriter{}, nil
}

// UnsupportedMock can be used for mocking tests that need failing client interfaces.
type UnsupportedMock struct {
	BaseConfig
}

// Client satisfies the Adaptor interface for providing a client.Client.
func (m *UnsupportedMock) Client() (client.Client, error) {
	return nil, ErrFuncNotSupported{"unsupported", "Client()"}
}

// Reader satisfies the Adaptor interface for providing a client.Reader.
func (m *UnsupportedMock) Reader() (client.Reader, error) {
	return nil, ErrFuncNotSupported{"unsupported", "Reader()"}
}

// Writer satisfies the Adaptor interface for providing a client.Writer.
func (m *UnsupportedMock) Writer(chan struct{}, *sync.WaitGroup) (client.Writer, error) {
	return nil, ErrFuncNotSupported{"unsupported", "Writer()"}
}
