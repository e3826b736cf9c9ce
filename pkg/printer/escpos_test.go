package printer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDocumentDefaultsTo80mm(t *testing.T) {
	doc := NewDocument(0)
	assert.Equal(t, 48, doc.width)

	narrow := NewDocument(32)
	assert.Equal(t, 32, narrow.width)
}

func TestDocumentStartsWithInit(t *testing.T) {
	doc := NewDocument(0)
	assert.True(t, bytes.HasPrefix(doc.Bytes(), []byte{ESC, '@'}))
}

func TestKeyValueAlignment(t *testing.T) {
	doc := NewDocument(20)
	doc.Reset()
	doc.KeyValue("Total:", "42.00")

	line := strings.TrimSuffix(string(doc.Bytes()[2:]), "\n") // skip ESC @
	assert.Len(t, line, 20)
	assert.True(t, strings.HasPrefix(line, "Total:"))
	assert.True(t, strings.HasSuffix(line, " 42.00"))
}

func TestKeyValueOverflowKeepsOneSpace(t *testing.T) {
	doc := NewDocument(10)
	doc.Reset()
	doc.KeyValue("Grand Total:", "12500.00")

	line := string(doc.Bytes()[2:])
	assert.Equal(t, "Grand Total: 12500.00\n", line)
}

func TestColumnsLayout(t *testing.T) {
	doc := NewDocument(24)
	doc.Reset()
	doc.Columns("CH-0001", "10", "5", "100.00")

	line := strings.TrimSuffix(string(doc.Bytes()[2:]), "\n")
	// 4 cells on width 24: first cell takes 12, the rest 4 each
	assert.Len(t, line, 24)
	assert.True(t, strings.HasPrefix(line, "CH-0001     "))
	assert.True(t, strings.HasSuffix(line, "100.")) // truncated to column width
	assert.Contains(t, line, "  10")
}

func TestColumnsTruncatesFirstCell(t *testing.T) {
	doc := NewDocument(12)
	doc.Reset()
	doc.Columns("a-very-long-challan-number", "9")

	line := strings.TrimSuffix(string(doc.Bytes()[2:]), "\n")
	assert.Len(t, line, 12)
	assert.Equal(t, "a-very-l", line[:8])
}

func TestSeparatorFillsWidth(t *testing.T) {
	doc := NewDocument(16)
	doc.Reset()
	doc.Separator('-')

	line := strings.TrimSuffix(string(doc.Bytes()[2:]), "\n")
	assert.Equal(t, strings.Repeat("-", 16), line)
}

func TestCutCommands(t *testing.T) {
	doc := NewDocument(0)
	doc.Reset()
	doc.Cut()
	assert.True(t, bytes.HasSuffix(doc.Bytes(), []byte{GS, 'V', 0x00}))

	doc.Reset()
	doc.PartialCut()
	assert.True(t, bytes.HasSuffix(doc.Bytes(), []byte{GS, 'V', 0x01}))
}

func TestResetClearsBuffer(t *testing.T) {
	doc := NewDocument(0)
	doc.Text("hello")
	doc.Reset()

	assert.Equal(t, []byte{ESC, '@'}, doc.Bytes())
}
