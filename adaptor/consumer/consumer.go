package consumer

import (
	"sync"

	"github.com/stageflow/stageflow/adaptor"
	"github.com/stageflow/stageflow/client"
)

const (
	sampleConfig = `{
  "uri": "stdout://" // where the final summary is printed
}`

	description = "a sink adaptor that totals record quantities and prints a summary at end-of-stream"
)

var (
	_ adaptor.Adaptor = &Consumer{}
)

// Consumer is a sink-only adaptor accumulating a running total of record
// quantities. Structurally malformed lines are silently discarded, an
// unparseable quantity is fatal and aborts the stage.
type Consumer struct {
	adaptor.BaseConfig
}

func init() {
	adaptor.Add(
		"consumer",
		func() adaptor.Adaptor {
			return &Consumer{BaseConfig: adaptor.BaseConfig{URI: DefaultURI}}
		},
	)
}

// Client creates an instance of Client for the summary stream.
func (c *Consumer) Client() (client.Client, error) {
	return NewClient(WithURI(c.URI))
}

// Reader is not supported, consumer is sink-only.
func (c *Consumer) Reader() (client.Reader, error) {
	return nil, adaptor.ErrFuncNotSupported{Name: "consumer", Func: "Reader()"}
}

// Writer instantiates the aggregating Writer. The summary is printed when
// done closes, the caller's WaitGroup guards the flush.
func (c *Consumer) Writer(done chan struct{}, wg *sync.WaitGroup) (client.Writer, error) {
	return newWriter(done, wg), nil
}

// Description for consumer adaptor
func (c *Consumer) Description() string {
	return description
}

// SampleConfig for consumer adaptor
func (c *Consumer) SampleConfig() string {
	return sampleConfig
}
