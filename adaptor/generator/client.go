package generator

import (
	"time"

	"github.com/stageflow/stageflow/client"
)

var (
	_ client.Client = &Client{}
)

// Client holds the dataset and pacing configuration for a run.
type Client struct {
	records []string
	delay   time.Duration
}

// Connect satisfies the client.Client interface.
func (c *Client) Connect() (client.Session, error) {
	return &Session{records: c.records, delay: c.delay}, nil
}

// Session carries the dataset for one read.
type Session struct {
	records []string
	delay   time.Duration
}

var _ client.Session = &Session{}
