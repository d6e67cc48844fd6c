package gojajs

import (
	"errors"
	"io/ioutil"

	"github.com/dop251/goja"
	"github.com/stageflow/stageflow/function"
	"github.com/stageflow/stageflow/log"
	"github.com/stageflow/stageflow/record"
)

var (
	_ function.Function = &Goja{}

	// ErrInvalidDocumentType is a generic error returned when the document returned from
	// the JS function was not a map.
	ErrInvalidDocumentType = errors.New("returned document was not a map")

	// ErrEmptyFilename will be returned when the provided filename is empty.
	ErrEmptyFilename = errors.New("no filename specified")
)

func init() {
	function.Add(
		"goja",
		func() function.Function {
			return &Goja{}
		},
	)
	function.Add(
		"js",
		func() function.Function {
			return &Goja{}
		},
	)
}

// Goja runs a user supplied JavaScript `transform` function over the map
// form of each record.
type Goja struct {
	Filename string `json:"filename"`
	vm       *goja.Runtime
}

// JSFunc defines the structure of a transformer function.
type JSFunc func(map[string]interface{}) *goja.Object

// Apply fulfills the function.Function interface by transforming the incoming record with
// the configured JavaScript function.
func (g *Goja) Apply(r record.Record) (record.Record, error) {
	if g.vm == nil {
		if err := g.initVM(); err != nil {
			return r, err
		}
	}
	return g.transformOne(r)
}

func (g *Goja) initVM() error {
	g.vm = goja.New()

	fn, err := extractFunction(g.Filename)
	if err != nil {
		return err
	}
	_, err = g.vm.RunString(fn)
	return err
}

func extractFunction(filename string) (string, error) {
	if filename == "" {
		return "", ErrEmptyFilename
	}

	ba, err := ioutil.ReadFile(filename)
	if err != nil {
		return "", err
	}

	return string(ba), nil
}

func (g *Goja) transformOne(r record.Record) (record.Record, error) {
	var jsf JSFunc
	if err := g.vm.ExportTo(g.vm.Get("transform"), &jsf); err != nil {
		return r, err
	}

	outDoc := jsf(r.AsMap())

	var res map[string]interface{}
	if err := g.vm.ExportTo(outDoc, &res); err != nil {
		return r, ErrInvalidDocumentType
	}
	out := record.FromMap(res)
	log.With("in", r.String()).With("out", out.String()).Debugln("document transformed")
	return out, nil
}
