// Package linear renders pipeline progress as plain, chronological status lines.
package linear

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/hdrgen/internal/ui/output"
	"go.trai.ch/hdrgen/internal/ui/style"
)

// Renderer implements ports.Renderer.
// Stage starts and completions go to stdout, failures to stderr.
type Renderer struct {
	stdout io.Writer
	stderr io.Writer
	output *termenv.Output

	mu    sync.Mutex
	tasks map[string]*taskState // spanID -> task state
}

type taskState struct {
	name      string
	depth     int
	startTime time.Time
}

// NewRenderer creates a new Renderer. Nil writers mean the process streams.
func NewRenderer(stdout, stderr io.Writer) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	return &Renderer{
		stdout: stdout,
		stderr: stderr,
		output: output.NewWithProfile(stderr, output.ColorProfileANSI),
		tasks:  make(map[string]*taskState),
	}
}

// OnTaskStart prints the stage name.
func (r *Renderer) OnTaskStart(spanID, parentID, name string, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	depth := 0
	if parent, ok := r.tasks[parentID]; ok {
		depth = parent.depth + 1
	}
	r.tasks[spanID] = &taskState{name: name, depth: depth, startTime: startTime}

	_, _ = fmt.Fprintf(r.stdout, "%sstatus: %s...\n", indent(depth), name)
}

// OnTaskComplete prints the outcome of a stage.
func (r *Renderer) OnTaskComplete(spanID string, endTime time.Time, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[spanID]
	if !ok {
		return
	}
	delete(r.tasks, spanID)

	duration := endTime.Sub(task.startTime).Round(time.Millisecond)

	if err != nil {
		symbol := r.output.String(style.Cross).Foreground(r.output.Color(string(style.Failure))).String()
		_, _ = fmt.Fprintf(r.stderr, "%s%s %s failed after %v: %v\n",
			indent(task.depth), symbol, task.name, duration, err)
		return
	}

	_, _ = fmt.Fprintf(r.stdout, "%sstatus: done %s (%v)\n", indent(task.depth), task.name, duration)
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}
