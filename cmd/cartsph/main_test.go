package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRoot_PrintsFamily runs the command against a buffer and checks the
// block structure and a few pinned entries.
func TestRoot_PrintsFamily(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"2", "--zero-small"})

	require.NoError(t, cmd.Execute())
	text := out.String()

	assert.Contains(t, text, "l=0")
	assert.Contains(t, text, "l=1")
	assert.Contains(t, text, "l=2")
	assert.Contains(t, text, "s: ")
	assert.Contains(t, text, "xx: ")
	assert.Contains(t, text, "zz: ")

	// d-shell x² row: m=-2 entry √3/2, m=0 entry -0.5.
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "xx: ") {
			assert.Contains(t, line, "0.8660")
			assert.Contains(t, line, "-0.5000")
		}
	}
}

// TestRoot_BadArgs: a non-integer l_max and a negative l_max both fail.
func TestRoot_BadArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"three"})
	assert.Error(t, cmd.Execute())

	cmd = newRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--", "-1"})
	assert.Error(t, cmd.Execute())
}
