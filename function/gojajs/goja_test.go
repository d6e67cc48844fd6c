package gojajs

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/stageflow/stageflow/function"
	"github.com/stageflow/stageflow/record"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	dir, err := ioutil.TempDir("", "gojajs")
	if err != nil {
		t.Fatalf("unable to create temp dir, %s", err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })
	name := filepath.Join(dir, "transform.js")
	if err := ioutil.WriteFile(name, []byte(body), 0644); err != nil {
		t.Fatalf("unable to write script, %s", err)
	}
	return name
}

func TestInit(t *testing.T) {
	fn, err := function.GetFunction("goja", map[string]interface{}{"filename": "transform.js"})
	if err != nil {
		t.Fatalf("unexpected GetFunction() error, %s", err)
	}
	if !reflect.DeepEqual(fn, &Goja{Filename: "transform.js"}) {
		t.Errorf("misconfigured Function, got %+v", fn)
	}
}

func TestApply(t *testing.T) {
	script := writeScript(t, `function transform(doc) {
  doc["name"] = doc["name"].toUpperCase();
  doc["quantity"] = doc["quantity"] * 2;
  return doc;
}`)
	g := &Goja{Filename: script}
	out, err := g.Apply(record.Record{Name: "apple", Quantity: 5, Attribute: "red"})
	if err != nil {
		t.Fatalf("unexpected Apply() error, %s", err)
	}
	want := record.Record{Name: "APPLE", Quantity: 10, Attribute: "red"}
	if !reflect.DeepEqual(out, want) {
		t.Errorf("wrong record, expected %+v, got %+v", want, out)
	}
}

func TestApplyNoFilename(t *testing.T) {
	g := &Goja{}
	if _, err := g.Apply(record.Record{Name: "apple"}); err != ErrEmptyFilename {
		t.Errorf("wrong error, expected %v, got %v", ErrEmptyFilename, err)
	}
}
