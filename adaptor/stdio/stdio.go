package stdio

import (
	"sync"

	"github.com/stageflow/stageflow/adaptor"
	"github.com/stageflow/stageflow/client"
)

const (
	sampleConfig = `{
  "uri": "stdin://" // or stdout://, stderr://, file:///path/to/file
}`

	description = "an adaptor that reads / writes newline delimited records on standard streams and files"
)

var (
	_ adaptor.Adaptor = &Stdio{}
)

// Stdio is an adaptor that can be used as a source or sink for
// newline-delimited records on the process standard streams, or on a file.
type Stdio struct {
	adaptor.BaseConfig
}

func init() {
	adaptor.Add(
		"stdio",
		func() adaptor.Adaptor {
			return &Stdio{BaseConfig: adaptor.BaseConfig{URI: DefaultURI}}
		},
	)
}

// Client creates an instance of Client to be used for reading/writing the stream.
func (s *Stdio) Client() (client.Client, error) {
	return NewClient(WithURI(s.URI))
}

// Reader instantiates a line Reader for the stream.
func (s *Stdio) Reader() (client.Reader, error) {
	return newReader(), nil
}

// Writer instantiates a line Writer for the stream.
func (s *Stdio) Writer(done chan struct{}, wg *sync.WaitGroup) (client.Writer, error) {
	return newWriter(), nil
}

// Description for stdio adaptor
func (s *Stdio) Description() string {
	return description
}

// SampleConfig for stdio adaptor
func (s *Stdio) SampleConfig() string {
	return sampleConfig
}
