package consumer

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stageflow/stageflow/client"
	"github.com/stageflow/stageflow/record"
)

func TestWriteAndFlush(t *testing.T) {
	var buf bytes.Buffer
	c, err := NewClient(WithWriter(&buf))
	if err != nil {
		t.Fatalf("unexpected NewClient error, %s", err)
	}

	done := make(chan struct{})
	var wg sync.WaitGroup
	w := newWriter(done, &wg)

	for _, line := range []string{"APPLE,10,red", "BANANA,14,yellow"} {
		if _, err := client.Write(c, w, line); err != nil {
			t.Fatalf("unexpected Write error, %s", err)
		}
	}
	if w.Total() != 24 {
		t.Errorf("wrong total, expected 24, got %d", w.Total())
	}

	close(done)
	wg.Wait()

	out := buf.String()
	if !strings.Contains(out, "Total quantity: 24") {
		t.Errorf("summary missing total, got %q", out)
	}
	if !strings.Contains(out, "Consumer finished") {
		t.Errorf("summary missing completion notice, got %q", out)
	}
	apple := strings.Index(out, "APPLE")
	banana := strings.Index(out, "BANANA")
	if apple < 0 || banana < 0 || apple > banana {
		t.Errorf("records missing or out of arrival order, got %q", out)
	}
}

func TestWriteStructuralDefectDiscarded(t *testing.T) {
	var buf bytes.Buffer
	c, err := NewClient(WithWriter(&buf))
	if err != nil {
		t.Fatalf("unexpected NewClient error, %s", err)
	}
	w := newWriter(nil, nil)

	out, err := w.Write("too,short")(mustConnect(t, c))
	if err != nil {
		t.Fatalf("unexpected Write error, %s", err)
	}
	if out != "" {
		t.Errorf("expected the record to be discarded, got %q", out)
	}
	if w.Total() != 0 {
		t.Errorf("discarded record changed the total, got %d", w.Total())
	}
}

func TestWriteQuantityDefectFatal(t *testing.T) {
	var buf bytes.Buffer
	c, err := NewClient(WithWriter(&buf))
	if err != nil {
		t.Fatalf("unexpected NewClient error, %s", err)
	}
	w := newWriter(nil, nil)

	_, err = w.Write("apple,notanumber,red")(mustConnect(t, c))
	if err == nil {
		t.Fatal("expected an unparseable quantity to be fatal")
	}
	if _, ok := err.(record.QuantityError); !ok {
		t.Errorf("wrong error type, got %T", err)
	}
}

func TestFatalSuppressesSummary(t *testing.T) {
	var buf bytes.Buffer
	c, err := NewClient(WithWriter(&buf))
	if err != nil {
		t.Fatalf("unexpected NewClient error, %s", err)
	}

	done := make(chan struct{})
	var wg sync.WaitGroup
	w := newWriter(done, &wg)

	if _, err := client.Write(c, w, "APPLE,10,red"); err != nil {
		t.Fatalf("unexpected Write error, %s", err)
	}
	if _, err := client.Write(c, w, "banana,notanumber,yellow"); err == nil {
		t.Fatal("expected an unparseable quantity to be fatal")
	}

	close(done)
	wg.Wait()

	if buf.Len() != 0 {
		t.Errorf("aborted stage printed a summary, got %q", buf.String())
	}
}

func TestFlushIdempotent(t *testing.T) {
	var buf bytes.Buffer
	c, err := NewClient(WithWriter(&buf))
	if err != nil {
		t.Fatalf("unexpected NewClient error, %s", err)
	}
	w := newWriter(nil, nil)
	if _, err := client.Write(c, w, "APPLE,10,red"); err != nil {
		t.Fatalf("unexpected Write error, %s", err)
	}

	w.Flush()
	first := buf.String()
	w.Flush()
	if buf.String() != first {
		t.Error("second Flush printed again")
	}
}

func mustConnect(t *testing.T, c *Client) client.Session {
	t.Helper()
	s, err := c.Connect()
	if err != nil {
		t.Fatalf("unexpected Connect error, %s", err)
	}
	return s
}
