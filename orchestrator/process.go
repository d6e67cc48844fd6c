package orchestrator

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"sync"

	"github.com/stageflow/stageflow/log"
)

// Process represents a spawned child stage with independently addressable
// input, output, and diagnostic streams, and a Running/Exited lifecycle.
type Process struct {
	name string
	cmd  *exec.Cmd
	l    log.Logger

	stdin     io.WriteCloser
	closeOnce sync.Once
	exited    bool
	exitCode  int
}

// NewProcess builds a child process running the given binary with the given
// stage argument. The process is not started yet. Cancelling the context
// kills the child.
func NewProcess(ctx context.Context, binary, stage string) *Process {
	return &Process{
		name: stage,
		cmd:  exec.CommandContext(ctx, binary, stage),
		l:    log.With("process", stage),
	}
}

// StdinPipe redirects the child's input stream and returns its write end.
func (p *Process) StdinPipe() (io.WriteCloser, error) {
	w, err := p.cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("unable to redirect %s input (%s)", p.name, err)
	}
	p.stdin = w
	return w, nil
}

// StdoutPipe redirects the child's output stream and returns its read end.
func (p *Process) StdoutPipe() (io.ReadCloser, error) {
	r, err := p.cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("unable to redirect %s output (%s)", p.name, err)
	}
	return r, nil
}

// InheritStdout leaves the child's output stream attached to the given writer.
func (p *Process) InheritStdout(w io.Writer) {
	p.cmd.Stdout = w
}

// InheritStderr leaves the child's diagnostic stream attached to the given writer.
func (p *Process) InheritStderr(w io.Writer) {
	p.cmd.Stderr = w
}

// Start the child process.
func (p *Process) Start() error {
	p.l.Infoln("process Starting...")
	if err := p.cmd.Start(); err != nil {
		return fmt.Errorf("unable to start %s (%s)", p.name, err)
	}
	return nil
}

// CloseStdin closes the write end of the child's input stream, signalling
// end-of-stream. Safe to call more than once.
func (p *Process) CloseStdin() {
	if p.stdin == nil {
		return
	}
	p.closeOnce.Do(func() {
		p.stdin.Close()
	})
}

// Wait blocks until the child exits. The wait is unbounded, a hung child
// hangs the caller.
func (p *Process) Wait() error {
	err := p.cmd.Wait()
	p.exited = true
	if p.cmd.ProcessState != nil {
		p.exitCode = p.cmd.ProcessState.ExitCode()
	}
	p.l.With("exit_code", p.exitCode).Infoln("process Exited")
	if err != nil {
		return fmt.Errorf("%s exited abnormally (%s)", p.name, err)
	}
	return nil
}

// State reports the child's lifecycle as a string, Running or Exited(code).
func (p *Process) State() string {
	if !p.exited {
		return "Running"
	}
	return fmt.Sprintf("Exited(%d)", p.exitCode)
}
