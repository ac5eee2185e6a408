package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut, prevNoColor := Out, color.NoColor
	Out, color.NoColor = &buf, true
	t.Cleanup(func() { Out, color.NoColor = prevOut, prevNoColor })
	return &buf
}

func TestTable_Render(t *testing.T) {
	buf := captureOutput(t)

	table := NewTable([]string{"ID", "NAME"})
	table.AddRow([]string{"1", "Alice Johnson"})
	table.AddRow([]string{"10", "Bob"})
	table.Render()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "ID  NAME           ", lines[0])
	assert.Equal(t, "--  -------------  ", lines[1])
	assert.Equal(t, "1   Alice Johnson  ", lines[2])
	assert.Equal(t, "10  Bob            ", lines[3])
}

func TestPrintJSON(t *testing.T) {
	buf := captureOutput(t)

	require.NoError(t, PrintJSON(map[string]int{"id": 3}))
	assert.Equal(t, "{\n  \"id\": 3\n}\n", buf.String())
}

func TestMessages(t *testing.T) {
	buf := captureOutput(t)

	Success("created %d", 11)
	Error("failed: %s", "boom")
	assert.Contains(t, buf.String(), "✅ created 11")
	assert.Contains(t, buf.String(), "❌ failed: boom")
}
