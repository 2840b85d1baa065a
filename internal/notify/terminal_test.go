package notify

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerminalWritesOneLinePerMessage(t *testing.T) {
	var buf bytes.Buffer
	n := NewTerminal(&buf)

	n.Success("'Widget' added to cart!")
	n.Error("Failed to update cart.")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "'Widget' added to cart!")
	assert.Contains(t, lines[0], "✔")
	assert.Contains(t, lines[1], "Failed to update cart.")
	assert.Contains(t, lines[1], "✖")
}

func TestTerminalConcurrentWrites(t *testing.T) {
	var buf bytes.Buffer
	n := NewTerminal(&buf)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n.Success("ok")
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, strings.Count(buf.String(), "\n"))
}
