package function

import (
	"github.com/stageflow/stageflow/log"
	"github.com/stageflow/stageflow/record"
)

var (
	_ Function = &Mock{}
)

// Mock counts its applications, used in transformer tests.
type Mock struct {
	ApplyCount int
	Err        error
}

func (m *Mock) Apply(r record.Record) (record.Record, error) {
	m.ApplyCount++
	log.With("apply_count", m.ApplyCount).With("err", m.Err).Debugln("applying...")
	return r, m.Err
}
