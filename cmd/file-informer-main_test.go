package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jamesrr39/goutil/logpkg"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_run(t *testing.T) {
	fs := afero.NewMemMapFs()
	err := afero.WriteFile(fs, "/docs/a.txt", []byte("my file a"), 0644)
	require.Nil(t, err)

	logger := logpkg.NewLogger(bytes.NewBuffer(nil), logpkg.LogLevelInfo)

	out := bytes.NewBuffer(nil)
	runErr := run(fs, out, logger, []string{"/docs/a.txt"})
	require.Nil(t, runErr)

	assert.Contains(t, out.String(), "a.txt")
	assert.Contains(t, out.String(), "Type: Regular")
}

func Test_run_ContinuesPastUnreadablePaths(t *testing.T) {
	fs := afero.NewMemMapFs()
	err := afero.WriteFile(fs, "/docs/a.txt", []byte("my file a"), 0644)
	require.Nil(t, err)

	logBuffer := bytes.NewBuffer(nil)
	logger := logpkg.NewLogger(logBuffer, logpkg.LogLevelInfo)

	out := bytes.NewBuffer(nil)
	runErr := run(fs, out, logger, []string{"/missing.txt", "/docs/a.txt"})
	require.NotNil(t, runErr)

	// the bad path is reported and the good path still renders
	assert.Contains(t, logBuffer.String(), "/missing.txt")
	assert.Contains(t, out.String(), "a.txt")
	assert.Equal(t, 1, strings.Count(out.String(), "╭"))
}
