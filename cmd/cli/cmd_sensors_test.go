package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/berfenger/homedash/internal/core/domain"

	"github.com/stretchr/testify/assert"
)

func TestPrintSensors(t *testing.T) {

	var buf bytes.Buffer
	printSensors(&buf, domain.MockSensors())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 7)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.Contains(t, lines[1], "temp-1")
	assert.Contains(t, lines[1], "72 °F")
	assert.Contains(t, lines[6], "critical")
}

func TestPrintRooms(t *testing.T) {

	var buf bytes.Buffer
	printRooms(&buf, domain.MockRooms())

	out := buf.String()
	assert.Contains(t, out, "Living Room")
	assert.Equal(t, 5, strings.Count(out, "\n"))
}
