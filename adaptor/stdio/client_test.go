package stdio

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/stageflow/stageflow/client"
)

var clientTests = []struct {
	name        string
	options     []ClientOptionFunc
	expectedErr error
}{
	{
		"default",
		[]ClientOptionFunc{},
		nil,
	},
	{
		"with_uri_stdin",
		[]ClientOptionFunc{WithURI("stdin://")},
		nil,
	},
	{
		"with_uri_file",
		[]ClientOptionFunc{WithURI("file:///tmp/records")},
		nil,
	},
	{
		"with_bad_scheme",
		[]ClientOptionFunc{WithURI("http://localhost")},
		client.InvalidURIError{URI: "http://localhost", Err: "unsupported scheme"},
	},
}

func TestNewClient(t *testing.T) {
	for _, ct := range clientTests {
		_, err := NewClient(ct.options...)
		if !reflect.DeepEqual(err, ct.expectedErr) {
			t.Errorf("[%s] unexpected error, expected %+v, got %+v", ct.name, ct.expectedErr, err)
		}
	}
}

func TestConnectFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "stdio")
	if err != nil {
		t.Fatalf("unable to create tempdir, %s", err)
	}
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "records")

	c, err := NewClient(WithURI("file://" + path))
	if err != nil {
		t.Fatalf("unexpected NewClient error, %s", err)
	}
	defer c.Close()

	s, err := c.Connect()
	if err != nil {
		t.Fatalf("unexpected Connect error, %s", err)
	}
	session := s.(*Session)
	if session.reader == nil || session.writer == nil {
		t.Error("file sessions should be readable and writable")
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("backing file was not created, %s", err)
	}
}

func TestConnectStreams(t *testing.T) {
	var connectTests = []struct {
		uri      string
		readable bool
		writable bool
	}{
		{"stdin://", true, false},
		{"stdout://", false, true},
		{"stderr://", false, true},
	}
	for _, ct := range connectTests {
		c, err := NewClient(WithURI(ct.uri))
		if err != nil {
			t.Fatalf("[%s] unexpected NewClient error, %s", ct.uri, err)
		}
		s, err := c.Connect()
		if err != nil {
			t.Fatalf("[%s] unexpected Connect error, %s", ct.uri, err)
		}
		session := s.(*Session)
		if (session.reader != nil) != ct.readable {
			t.Errorf("[%s] wrong readability, expected %v", ct.uri, ct.readable)
		}
		if (session.writer != nil) != ct.writable {
			t.Errorf("[%s] wrong writability, expected %v", ct.uri, ct.writable)
		}
	}
}
