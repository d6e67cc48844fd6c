// Package function defines the transform functions a transformer node
// chains over every record, along with their registry.
package function

import "github.com/stageflow/stageflow/record"

// Function implements a single per-record transformation. Apply is expected
// to be pure, the same record in always produces the same record out.
type Function interface {
	Apply(record.Record) (record.Record, error)
}
