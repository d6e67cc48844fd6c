package client

import "fmt"

// InvalidURIError wraps the underlying error when the provided URI is not usable.
type InvalidURIError struct {
	URI string
	Err string
}

func (e InvalidURIError) Error() string {
	return fmt.Sprintf("Invalid URI (%s), %s", e.URI, e.Err)
}

// ConnectError wraps the underlying error when a failure occurs opening the stream.
type ConnectError struct {
	Reason string
}

func (e ConnectError) Error() string {
	return fmt.Sprintf("connection error, %s", e.Reason)
}
