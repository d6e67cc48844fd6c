package events

import (
	"reflect"
	"testing"
)

var eventTests = []struct {
	in         Event
	want       []byte
	wantString string
}{
	{
		NewBootEvent(12345, "0.1.0", nil),
		[]byte(`{"ts":12345,"name":"boot","version":"0.1.0"}`),
		`boot map[]`,
	},
	{
		NewBootEvent(12345, "0.1.0", map[string]string{"generator": "generator", "out": "stdio"}),
		[]byte(`{"ts":12345,"name":"boot","version":"0.1.0","endpoints":{"generator":"generator","out":"stdio"}}`),
		`boot map[generator:generator out:stdio]`,
	},
	{
		NewMetricsEvent(12345, "generator/transformer", 7),
		[]byte(`{"ts":12345,"name":"metrics","path":"generator/transformer","records":7}`),
		`metrics generator/transformer records: 7`,
	},
	{
		NewExitEvent(12345, "0.1.0", nil),
		[]byte(`{"ts":12345,"name":"exit","version":"0.1.0"}`),
		`exit map[]`,
	},
	{
		NewErrorEvent(12345, "generator/consumer", "apple,notanumber,red", "quantity is not numeric"),
		[]byte(`{"ts":12345,"name":"error","path":"generator/consumer","record":"apple,notanumber,red","message":"quantity is not numeric"}`),
		`error record: apple,notanumber,red, message: quantity is not numeric`,
	},
}

func TestEvent(t *testing.T) {
	for _, et := range eventTests {
		ba, err := et.in.Emit()
		if err != nil {
			t.Fatalf("got error: %s", err)
		}

		if !reflect.DeepEqual(ba, et.want) {
			t.Errorf("Emit() failed, wanted: %s, got: %s", et.want, ba)
		}

		if et.in.String() != et.wantString {
			t.Errorf("String() failed, wanted: %s, got: %s", et.wantString, et.in.String())
		}
	}
}
