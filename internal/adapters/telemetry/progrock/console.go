package progrock

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/vito/progrock"
)

// ConsoleWriter is a minimal non-interactive consumer of progrock status
// updates. It buffers each vertex's error stream and replays it when the
// vertex completes with an error, so renderer diagnostics reach the
// terminal instead of dying in an unread tape.
type ConsoleWriter struct {
	out io.Writer

	mu     sync.Mutex
	stderr map[string]*bytes.Buffer
}

// NewConsoleWriter creates a ConsoleWriter emitting to out.
func NewConsoleWriter(out io.Writer) *ConsoleWriter {
	return &ConsoleWriter{
		out:    out,
		stderr: make(map[string]*bytes.Buffer),
	}
}

// WriteStatus consumes one status update. Error-stream log data is buffered
// per vertex; a vertex completing with an error has its buffer flushed to
// the output, a vertex completing cleanly has it discarded.
func (c *ConsoleWriter) WriteStatus(update *progrock.StatusUpdate) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Logs first: a vertex may carry its final output and its completion
	// in the same update.
	for _, l := range update.Logs {
		if l.Stream != progrock.LogStream_STDERR {
			continue
		}
		buf := c.stderr[l.Vertex]
		if buf == nil {
			buf = &bytes.Buffer{}
			c.stderr[l.Vertex] = buf
		}
		_, _ = buf.Write(l.Data)
	}

	for _, v := range update.Vertexes {
		if v.Completed == nil {
			continue
		}
		buf := c.stderr[v.Id]
		delete(c.stderr, v.Id)

		if v.Error == nil || buf == nil || buf.Len() == 0 {
			continue
		}

		_, _ = fmt.Fprintf(c.out, "--- %s\n", v.Name)
		_, _ = c.out.Write(buf.Bytes())
		if !bytes.HasSuffix(buf.Bytes(), []byte("\n")) {
			_, _ = io.WriteString(c.out, "\n")
		}
	}

	return nil
}

// Close releases the per-vertex buffers.
func (c *ConsoleWriter) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stderr = make(map[string]*bytes.Buffer)
	return nil
}
