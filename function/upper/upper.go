package upper

import (
	"strings"

	"github.com/stageflow/stageflow/function"
	"github.com/stageflow/stageflow/record"
)

var (
	_ function.Function = &Upper{}
)

func init() {
	function.Add(
		"upper",
		func() function.Function {
			return &Upper{}
		},
	)
}

// Upper upper-cases the name field of every record.
type Upper struct{}

func (u *Upper) Apply(r record.Record) (record.Record, error) {
	r.Name = strings.ToUpper(r.Name)
	return r, nil
}
