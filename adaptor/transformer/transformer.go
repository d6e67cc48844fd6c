package transformer

import (
	"sync"

	"github.com/stageflow/stageflow/adaptor"
	"github.com/stageflow/stageflow/client"
	"github.com/stageflow/stageflow/function"

	// default transformer chain
	_ "github.com/stageflow/stageflow/function/double"
	_ "github.com/stageflow/stageflow/function/upper"
)

const (
	sampleConfig = `{
  "functions": [{"name": "upper"}, {"name": "double"}]
}`

	description = "an adaptor that applies a chain of transform functions to every record"
)

var (
	_ adaptor.Adaptor = &Transformer{}
)

// FunctionConfig names a registered transform function and carries its
// configuration.
type FunctionConfig struct {
	Name   string                 `json:"name"`
	Config map[string]interface{} `json:"config"`
}

// Transformer is an intermediate adaptor that maps each record through a
// configurable chain of transform functions. Structurally malformed records
// are skipped with a diagnostic and never propagate, an unparseable quantity
// defaults to 0 and always propagates.
type Transformer struct {
	Functions []FunctionConfig `json:"functions"`
}

func init() {
	adaptor.Add(
		"transformer",
		func() adaptor.Adaptor {
			return &Transformer{}
		},
	)
}

// Client returns a no-op client, the transformer holds no external stream.
func (t *Transformer) Client() (client.Client, error) {
	return &noopClient{}, nil
}

// Reader is not supported, transformer is never a source.
func (t *Transformer) Reader() (client.Reader, error) {
	return nil, adaptor.ErrFuncNotSupported{Name: "transformer", Func: "Reader()"}
}

// Writer resolves the configured function chain, defaulting to upper then
// double when none is configured.
func (t *Transformer) Writer(done chan struct{}, wg *sync.WaitGroup) (client.Writer, error) {
	configs := t.Functions
	if len(configs) == 0 {
		configs = []FunctionConfig{{Name: "upper"}, {Name: "double"}}
	}
	fns := make([]function.Function, 0, len(configs))
	for _, fc := range configs {
		fn, err := function.GetFunction(fc.Name, fc.Config)
		if err != nil {
			return nil, err
		}
		fns = append(fns, fn)
	}
	return &Writer{fns: fns}, nil
}

// Description for transformer adaptor
func (t *Transformer) Description() string {
	return description
}

// SampleConfig for transformer adaptor
func (t *Transformer) SampleConfig() string {
	return sampleConfig
}

type noopClient struct{}

var _ client.Client = &noopClient{}

func (c *noopClient) Connect() (client.Session, error) {
	return &noopSession{}, nil
}

type noopSession struct{}
