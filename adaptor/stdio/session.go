package stdio

import (
	"io"

	"github.com/stageflow/stageflow/client"
)

// Session serves as a wrapper for the underlying streams.
type Session struct {
	reader io.Reader
	writer io.Writer
	label  string
}

var _ client.Session = &Session{}
