package transformer

import (
	"github.com/stageflow/stageflow/client"
	"github.com/stageflow/stageflow/function"
	"github.com/stageflow/stageflow/log"
	"github.com/stageflow/stageflow/record"
)

var _ client.Writer = &Writer{}

// Writer applies the function chain to each incoming line.
type Writer struct {
	fns []function.Function
}

func (w *Writer) Write(line string) func(client.Session) (string, error) {
	return func(client.Session) (string, error) {
		r, err := record.ParseLenient(line)
		if err != nil {
			// structural defects drop the record and processing continues
			log.With("stage", "transformer").Infof("skipping malformed record %q (%s)", line, err)
			return "", nil
		}
		for _, fn := range w.fns {
			if r, err = fn.Apply(r); err != nil {
				return "", err
			}
		}
		out := r.Encode()
		log.With("stage", "transformer").Infof("Transformed: %s -> %s", line, out)
		return out, nil
	}
}
