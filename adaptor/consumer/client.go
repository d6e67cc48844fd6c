package consumer

import (
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/stageflow/stageflow/client"
)

const (
	// DefaultURI is where the summary is printed when no URI is configured.
	DefaultURI = "stdout://"
)

var (
	_ client.Client = &Client{}
	_ client.Closer = &Client{}
)

// ClientOptionFunc is a function that configures a Client.
// It is used in NewClient.
type ClientOptionFunc func(*Client) error

// Client wraps the stream the summary is printed to.
type Client struct {
	uri    string
	writer io.Writer
	file   *os.File
}

// NewClient creates a new client for the summary stream.
func NewClient(options ...ClientOptionFunc) (*Client, error) {
	c := &Client{
		uri: DefaultURI,
	}
	for _, option := range options {
		if err := option(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// WithURI defines the summary stream, one of stdout://, stderr://, or
// file:///path.
func WithURI(uri string) ClientOptionFunc {
	return func(c *Client) error {
		u, err := url.Parse(uri)
		if err != nil {
			return client.InvalidURIError{URI: uri, Err: err.Error()}
		}
		switch u.Scheme {
		case "stdout", "stderr", "file":
		default:
			return client.InvalidURIError{URI: uri, Err: "unsupported scheme"}
		}
		c.uri = uri
		return nil
	}
}

// WithWriter attaches an explicit writer, bypassing the URI. Used to keep
// the stage testable in isolation.
func WithWriter(w io.Writer) ClientOptionFunc {
	return func(c *Client) error {
		c.writer = w
		return nil
	}
}

// Connect resolves the configured URI into a Session.
func (c *Client) Connect() (client.Session, error) {
	if c.writer != nil {
		return &Session{writer: c.writer}, nil
	}
	switch {
	case strings.HasPrefix(c.uri, "stdout://"):
		return &Session{writer: os.Stdout}, nil
	case strings.HasPrefix(c.uri, "stderr://"):
		return &Session{writer: os.Stderr}, nil
	case strings.HasPrefix(c.uri, "file://"):
		if c.file == nil {
			f, err := os.OpenFile(strings.Replace(c.uri, "file://", "", 1), os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
			if err != nil {
				return nil, client.ConnectError{Reason: err.Error()}
			}
			c.file = f
		}
		return &Session{writer: c.file}, nil
	}
	return nil, client.InvalidURIError{URI: c.uri, Err: "unsupported scheme"}
}

// Close closes the underlying file, if any.
func (c *Client) Close() {
	if c.file != nil {
		c.file.Close()
	}
}

// Session serves as a wrapper for the summary stream.
type Session struct {
	writer io.Writer
}

var _ client.Session = &Session{}
