package record

import (
	"reflect"
	"testing"
)

var parseTests = []struct {
	name    string
	in      string
	want    Record
	wantErr error
}{
	{
		"well formed",
		"apple,5,red",
		Record{Name: "apple", Quantity: 5, Attribute: "red"},
		nil,
	},
	{
		"extra fields dropped",
		"apple,5,red,juicy",
		Record{Name: "apple", Quantity: 5, Attribute: "red"},
		nil,
	},
	{
		"too few fields",
		"apple,5",
		Record{},
		FieldCountError{Line: "apple,5", Count: 2},
	},
	{
		"empty line",
		"",
		Record{},
		FieldCountError{Line: "", Count: 1},
	},
}

func TestParse(t *testing.T) {
	for _, pt := range parseTests {
		got, err := Parse(pt.in)
		if !reflect.DeepEqual(err, pt.wantErr) {
			t.Fatalf("[%s] wrong Parse() error, expected %v, got %v", pt.name, pt.wantErr, err)
		}
		if !reflect.DeepEqual(got, pt.want) {
			t.Errorf("[%s] wrong Record, expected %+v, got %+v", pt.name, pt.want, got)
		}
	}
}

func TestParseBadQuantity(t *testing.T) {
	_, err := Parse("apple,many,red")
	if _, ok := err.(QuantityError); !ok {
		t.Fatalf("expected QuantityError, got %v", err)
	}
}

var lenientTests = []struct {
	name string
	in   string
	want Record
}{
	{"well formed", "banana,7,yellow", Record{Name: "banana", Quantity: 7, Attribute: "yellow"}},
	{"non numeric quantity defaults", "banana,ripe,yellow", Record{Name: "banana", Quantity: 0, Attribute: "yellow"}},
	{"whitespace quantity", "banana, 7 ,yellow", Record{Name: "banana", Quantity: 7, Attribute: "yellow"}},
}

func TestParseLenient(t *testing.T) {
	for _, lt := range lenientTests {
		got, err := ParseLenient(lt.in)
		if err != nil {
			t.Fatalf("[%s] unexpected ParseLenient() error, %s", lt.name, err)
		}
		if !reflect.DeepEqual(got, lt.want) {
			t.Errorf("[%s] wrong Record, expected %+v, got %+v", lt.name, lt.want, got)
		}
	}
}

func TestParseLenientStructural(t *testing.T) {
	_, err := ParseLenient("banana,7")
	if _, ok := err.(FieldCountError); !ok {
		t.Fatalf("expected FieldCountError, got %v", err)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	r := Record{Name: "CHERRY", Quantity: 8, Attribute: "red"}
	if r.Encode() != "CHERRY,8,red" {
		t.Errorf("wrong Encode(), got %s", r.Encode())
	}
	back, err := Parse(r.Encode())
	if err != nil {
		t.Fatalf("unexpected Parse() error, %s", err)
	}
	if !reflect.DeepEqual(back, r) {
		t.Errorf("round trip mismatch, expected %+v, got %+v", r, back)
	}
}

func TestMapRoundTrip(t *testing.T) {
	r := Record{Name: "kiwi", Quantity: 8, Attribute: "green"}
	if got := FromMap(r.AsMap()); !reflect.DeepEqual(got, r) {
		t.Errorf("map round trip mismatch, expected %+v, got %+v", r, got)
	}
}
