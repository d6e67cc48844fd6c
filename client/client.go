// Package client defines the interfaces stage adaptors implement to read
// lines from and write lines to their underlying transport.
package client

// MessageChanFunc represents the func signature needed to send lines to downstream nodes.
type MessageChanFunc func(Session, chan struct{}) (chan string, error)

// Client provides a standard interface for interacting with the underlying sources/sinks.
type Client interface {
	Connect() (Session, error)
}

// Session represents the connection to the underlying stream.
type Session interface {
}

// Closer provides a standard interface for closing a client or session.
type Closer interface {
	Close()
}

// Reader represents the ability to send lines down the pipe and is only needed for
// adaptors acting as a source node.
type Reader interface {
	Read() MessageChanFunc
}

// ErrorReporter can be implemented by a Reader whose line chan may close because
// the underlying stream failed rather than reaching its end.  In the manner of
// bufio.Scanner, Err returns the first error encountered, or nil after a clean end.
type ErrorReporter interface {
	Err() error
}

// Writer represents all possible functions needing to be implemented to handle lines.
// The returned line is what propagates to any downstream nodes, an empty line drops
// the record.
type Writer interface {
	Write(string) func(Session) (string, error)
}

// Write wraps the Writer function call with a Session from the given client.
func Write(client Client, writer Writer, line string) (string, error) {
	return sessionFunc(client, writer.Write(line))
}

func sessionFunc(client Client, op func(Session) (string, error)) (string, error) {
	sess, err := client.Connect()
	if err != nil {
		return "", err
	}
	if s, ok := sess.(Closer); ok {
		defer s.Close()
	}
	return op(sess)
}
