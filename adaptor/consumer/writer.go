package consumer

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"

	"github.com/olekukonko/tablewriter"
	"github.com/stageflow/stageflow/client"
	"github.com/stageflow/stageflow/record"
)

var _ client.Writer = &Writer{}

// Writer accumulates records and their quantity total, printing the summary
// once the done channel closes. Records are retained in arrival order, the
// total itself is order independent.
type Writer struct {
	mu      sync.Mutex
	records []record.Record
	total   int
	out     io.Writer
	flushed bool
	failed  bool
}

func newWriter(done chan struct{}, wg *sync.WaitGroup) *Writer {
	w := &Writer{}
	if done != nil && wg != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-done
			w.Flush()
		}()
	}
	return w
}

func (w *Writer) Write(line string) func(client.Session) (string, error) {
	return func(s client.Session) (string, error) {
		w.mu.Lock()
		defer w.mu.Unlock()
		if w.out == nil {
			w.out = s.(*Session).writer
		}
		fields := record.Fields(line)
		if len(fields) < record.MinFields {
			// silently discarded, unlike the transformer no diagnostic is printed
			return "", nil
		}
		r, err := record.Parse(line)
		if err != nil {
			// the quantity parse here is unchecked upstream, a failure
			// aborts the stage and suppresses the summary
			w.failed = true
			return "", err
		}
		w.records = append(w.records, r)
		w.total += r.Quantity
		return line, nil
	}
}

// Flush prints every retained record in arrival order, the accumulated
// total, and a completion notice. It is safe to call more than once, only
// the first call prints. Nothing prints after a fatal record error, an
// aborted stage must not report completion.
func (w *Writer) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.flushed || w.failed {
		return
	}
	w.flushed = true
	out := w.out
	if out == nil {
		out = os.Stdout
	}
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Name", "Quantity", "Attribute"})
	for _, r := range w.records {
		table.Append([]string{r.Name, strconv.Itoa(r.Quantity), r.Attribute})
	}
	table.Render()
	fmt.Fprintf(out, "Total quantity: %d\n", w.total)
	fmt.Fprintln(out, "Consumer finished")
}

// Total returns the accumulated quantity total.
func (w *Writer) Total() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.total
}
