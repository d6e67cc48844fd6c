package stdio

import (
	"bytes"
	"testing"

	"github.com/stageflow/stageflow/client"
)

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	c, err := NewClient(WithWriter(&buf))
	if err != nil {
		t.Fatalf("unexpected NewClient error, %s", err)
	}

	for _, line := range []string{"APPLE,10,red", "BANANA,14,yellow"} {
		confirmed, err := client.Write(c, newWriter(), line)
		if err != nil {
			t.Fatalf("unexpected Write error, %s", err)
		}
		if confirmed != line {
			t.Errorf("wrong line confirmed, expected %q, got %q", line, confirmed)
		}
	}

	if buf.String() != "APPLE,10,red\nBANANA,14,yellow\n" {
		t.Errorf("wrong output, got %q", buf.String())
	}
}

func TestWriteNotWritable(t *testing.T) {
	c, err := NewClient(WithURI("stdin://"))
	if err != nil {
		t.Fatalf("unexpected NewClient error, %s", err)
	}
	if _, err := client.Write(c, newWriter(), "apple,5,red"); err == nil {
		t.Error("expected an error writing a read only stream")
	}
}
