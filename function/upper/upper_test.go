package upper

import (
	"reflect"
	"testing"

	"github.com/stageflow/stageflow/function"
	"github.com/stageflow/stageflow/record"
)

var upperTests = []struct {
	name string
	in   record.Record
	out  record.Record
}{
	{
		"lower case name",
		record.Record{Name: "apple", Quantity: 5, Attribute: "red"},
		record.Record{Name: "APPLE", Quantity: 5, Attribute: "red"},
	},
	{
		"already upper",
		record.Record{Name: "KIWI", Quantity: 8, Attribute: "green"},
		record.Record{Name: "KIWI", Quantity: 8, Attribute: "green"},
	},
	{
		"empty name",
		record.Record{Quantity: 1, Attribute: "x"},
		record.Record{Quantity: 1, Attribute: "x"},
	},
}

func TestApply(t *testing.T) {
	for _, ut := range upperTests {
		fn, err := function.GetFunction("upper", map[string]interface{}{})
		if err != nil {
			t.Fatalf("unexpected GetFunction() error, %s", err)
		}
		got, err := fn.Apply(ut.in)
		if err != nil {
			t.Fatalf("[%s] unexpected Apply() error, %s", ut.name, err)
		}
		if !reflect.DeepEqual(got, ut.out) {
			t.Errorf("[%s] wrong record, expected %+v, got %+v", ut.name, ut.out, got)
		}
	}
}
