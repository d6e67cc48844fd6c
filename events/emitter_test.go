package events

import (
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestEmitterDeliversAll(t *testing.T) {
	var delivered int32
	ch := make(chan Event, 10)
	e := NewEmitter(ch, func(Event) error {
		atomic.AddInt32(&delivered, 1)
		return nil
	})
	e.Start()
	ch <- NewBootEvent(1, "test", nil)
	ch <- NewMetricsEvent(2, "source/sink", 7)
	ch <- NewExitEvent(3, "test", nil)
	e.Stop()
	if got := atomic.LoadInt32(&delivered); got != 3 {
		t.Errorf("wrong delivered count, expected 3, got %d", got)
	}
}

func TestHTTPPostEmitter(t *testing.T) {
	var body []byte
	var auth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ = ioutil.ReadAll(r.Body)
		auth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	emit := HTTPPostEmitter(ts.URL, "akey", "apid")
	if err := emit(NewMetricsEvent(12345, "source/sink", 1)); err != nil {
		t.Fatalf("unexpected emit error, %s", err)
	}
	want := `{"ts":12345,"name":"metrics","path":"source/sink","records":1}`
	if string(body) != want {
		t.Errorf("wrong posted body, expected %s, got %s", want, body)
	}
	if auth == "" {
		t.Errorf("expected basic auth header to be set")
	}
}
