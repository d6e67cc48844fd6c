package double

import (
	"github.com/stageflow/stageflow/function"
	"github.com/stageflow/stageflow/record"
)

var (
	_ function.Function = &Doubler{}
)

func init() {
	function.Add(
		"double",
		func() function.Function {
			return &Doubler{}
		},
	)
}

// Doubler multiplies the quantity field of every record by Factor,
// defaulting to 2 when unconfigured.
type Doubler struct {
	Factor int `json:"factor"`
}

func (d *Doubler) Apply(r record.Record) (record.Record, error) {
	factor := d.Factor
	if factor == 0 {
		factor = 2
	}
	r.Quantity *= factor
	return r, nil
}
