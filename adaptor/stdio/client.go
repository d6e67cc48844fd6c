package stdio

import (
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/stageflow/stageflow/client"
)

const (
	// DefaultURI is the default stream, primarily used when initializing a new
	// Client without a specific URI.
	DefaultURI = "stdout://"
)

var (
	_ client.Client = &Client{}
	_ client.Closer = &Client{}
)

// ClientOptionFunc is a function that configures a Client.
// It is used in NewClient.
type ClientOptionFunc func(*Client) error

// Client wraps the underlying byte stream.
type Client struct {
	uri    string
	reader io.Reader
	writer io.Writer
	file   *os.File
}

// NewClient creates a new client for a standard stream or file.
//
// The caller can configure the new client by passing configuration options
// to the func.
//
// Example:
//
//   client, err := NewClient(
//     WithURI("stdin://"))
//
// If no URI is configured, it uses DefaultURI.
//
// An error is also returned when a configuration option is invalid.
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

// WithURI defines the stream to connect to, one of stdin://, stdout://,
// stderr://, or file:///path.
func WithURI(uri string) ClientOptionFunc {
	return func(c *Client) error {
		u, err := url.Parse(uri)
		if err != nil {
			return client.InvalidURIError{URI: uri, Err: err.Error()}
		}
		switch u.Scheme {
		case "stdin", "stdout", "stderr", "file":
		default:
			return client.InvalidURIError{URI: uri, Err: "unsupported scheme"}
		}
		c.uri = uri
		return nil
	}
}

// WithReader attaches an explicit reader, bypassing the URI. Used to keep
// stages testable in isolation.
func WithReader(r io.Reader) ClientOptionFunc {
	return func(c *Client) error {
		c.reader = r
		return nil
	}
}

// WithWriter attaches an explicit writer, bypassing the URI. Used to keep
// stages testable in isolation.
func WithWriter(w io.Writer) ClientOptionFunc {
	return func(c *Client) error {
		c.writer = w
		return nil
	}
}

// Connect resolves the configured URI into a Session.
func (c *Client) Connect() (client.Session, error) {
	if c.reader != nil || c.writer != nil {
		return &Session{reader: c.reader, writer: c.writer}, nil
	}
	switch {
	case strings.HasPrefix(c.uri, "stdin://"):
		return &Session{reader: os.Stdin, label: "stdin"}, nil
	case strings.HasPrefix(c.uri, "stdout://"):
		return &Session{writer: os.Stdout, label: "stdout"}, nil
	case strings.HasPrefix(c.uri, "stderr://"):
		return &Session{writer: os.Stderr, label: "stderr"}, nil
	case strings.HasPrefix(c.uri, "file://"):
		if c.file == nil {
			f, err := os.OpenFile(strings.Replace(c.uri, "file://", "", 1), os.O_RDWR|os.O_CREATE, 0666)
			if err != nil {
				return nil, client.ConnectError{Reason: err.Error()}
			}
			c.file = f
		}
		return &Session{reader: c.file, writer: c.file, label: c.file.Name()}, nil
	}
	return nil, client.InvalidURIError{URI: c.uri, Err: "unsupported scheme"}
}

// Close closes the underlying file, if any.
func (c *Client) Close() {
	if c.file != nil {
		c.file.Close()
	}
}
