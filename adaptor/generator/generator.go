package generator

import (
	"sync"
	"time"

	"github.com/stageflow/stageflow/adaptor"
	"github.com/stageflow/stageflow/client"
)

const (
	sampleConfig = `{
  "delay": "500ms" // pacing between emitted records, use "0s" for no pacing
}`

	description = "an adaptor that emits the built-in fruit dataset with fixed pacing"

	// DefaultDelay is the pacing between emitted records. It simulates
	// production latency and is not a backpressure mechanism.
	DefaultDelay = 500 * time.Millisecond
)

var (
	_ adaptor.Adaptor = &Generator{}
)

// Generator is a source-only adaptor emitting a bounded, ordered sequence of
// records.
type Generator struct {
	Delay   string   `json:"delay"`
	Records []string `json:"records"`
}

func init() {
	adaptor.Add(
		"generator",
		func() adaptor.Adaptor {
			return &Generator{}
		},
	)
}

func (g *Generator) delay() (time.Duration, error) {
	if g.Delay == "" {
		return DefaultDelay, nil
	}
	return time.ParseDuration(g.Delay)
}

// Client creates an instance of Client holding the dataset to emit.
func (g *Generator) Client() (client.Client, error) {
	delay, err := g.delay()
	if err != nil {
		return nil, adaptor.Error{Lvl: adaptor.CRITICAL, Err: err.Error()}
	}
	records := g.Records
	if records == nil {
		records = DefaultDataset()
	}
	return &Client{records: records, delay: delay}, nil
}

// Reader instantiates a Reader to walk the dataset.
func (g *Generator) Reader() (client.Reader, error) {
	return newReader(), nil
}

// Writer is not supported, generator is source-only.
func (g *Generator) Writer(done chan struct{}, wg *sync.WaitGroup) (client.Writer, error) {
	return nil, adaptor.ErrFuncNotSupported{Name: "generator", Func: "Writer()"}
}

// Description for generator adaptor
func (g *Generator) Description() string {
	return description
}

// SampleConfig for generator adaptor
func (g *Generator) SampleConfig() string {
	return sampleConfig
}
