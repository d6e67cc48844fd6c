package double

import (
	"reflect"
	"testing"

	"github.com/stageflow/stageflow/function"
	"github.com/stageflow/stageflow/record"
)

var initTests = []struct {
	in     map[string]interface{}
	expect *Doubler
}{
	{map[string]interface{}{}, &Doubler{}},
	{map[string]interface{}{"factor": 3}, &Doubler{Factor: 3}},
}

func TestInit(t *testing.T) {
	for _, it := range initTests {
		a, err := function.GetFunction("double", it.in)
		if err != nil {
			t.Fatalf("unexpected GetFunction() error, %s", err)
		}
		if !reflect.DeepEqual(a, it.expect) {
			t.Errorf("misconfigured Function, expected %+v, got %+v", it.expect, a)
		}
	}
}

var doubleTests = []struct {
	name   string
	factor int
	in     record.Record
	out    record.Record
}{
	{
		"default factor",
		0,
		record.Record{Name: "apple", Quantity: 5, Attribute: "red"},
		record.Record{Name: "apple", Quantity: 10, Attribute: "red"},
	},
	{
		"zero quantity stays zero",
		0,
		record.Record{Name: "apple", Quantity: 0, Attribute: "red"},
		record.Record{Name: "apple", Quantity: 0, Attribute: "red"},
	},
	{
		"explicit factor",
		3,
		record.Record{Name: "mango", Quantity: 4, Attribute: "orange"},
		record.Record{Name: "mango", Quantity: 12, Attribute: "orange"},
	},
}

func TestApply(t *testing.T) {
	for _, dt := range doubleTests {
		d := &Doubler{Factor: dt.factor}
		got, err := d.Apply(dt.in)
		if err != nil {
			t.Fatalf("[%s] unexpected Apply() error, %s", dt.name, err)
		}
		if !reflect.DeepEqual(got, dt.out) {
			t.Errorf("[%s] wrong record, expected %+v, got %+v", dt.name, dt.out, got)
		}
	}
}
