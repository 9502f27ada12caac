package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_AllFlags(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	args := []string{
		"-grid", "maps/sample.txt",
		"-log-format", "JSON",
		"-log-level", "debug",
		"-workers", "3",
		"-exhaustive",
		"-healthcheck-port", "8080",
		"-publish-url", "http://localhost:3000",
	}
	out := &bytes.Buffer{}

	// --- Act ---
	cfg, shouldExit, err := Parse(args, out)

	// --- Assert ---
	require.NoError(t, err)
	require.False(t, shouldExit)
	require.Equal(t, "maps/sample.txt", cfg.GridPath)
	require.Equal(t, "json", cfg.LogFormat)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, 3, cfg.WorkerCount)
	require.True(t, cfg.Exhaustive)
	require.Equal(t, 8080, cfg.HealthcheckPort)
	require.Equal(t, "http://localhost:3000", cfg.PublishURL)
}

func TestParse_PathSources(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		args []string
		want string
	}{
		{name: "long flag", args: []string{"-grid", "a.txt"}, want: "a.txt"},
		{name: "shorthand", args: []string{"-g", "b.hcl"}, want: "b.hcl"},
		{name: "positional", args: []string{"dir"}, want: "dir"},
		{name: "long flag wins over positional", args: []string{"-grid", "a.txt", "dir"}, want: "a.txt"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg, shouldExit, err := Parse(tc.args, &bytes.Buffer{})
			require.NoError(t, err)
			require.False(t, shouldExit)
			require.Equal(t, tc.want, cfg.GridPath)
			require.Equal(t, "text", cfg.LogFormat)
			require.Equal(t, 0, cfg.WorkerCount)
		})
	}
}

func TestParse_HelpAndMissingPath(t *testing.T) {
	t.Parallel()

	for _, args := range [][]string{{"-h"}, {}} {
		out := &bytes.Buffer{}
		cfg, shouldExit, err := Parse(args, out)
		require.NoError(t, err)
		require.True(t, shouldExit)
		require.Nil(t, cfg)
		require.Contains(t, out.String(), "Usage:")
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{name: "unknown flag", args: []string{"-nope"}, wantMsg: "flag provided but not defined"},
		{name: "bad log format", args: []string{"-log-format", "xml", "a.txt"}, wantMsg: "invalid log-format"},
		{name: "bad log level", args: []string{"-log-level", "trace", "a.txt"}, wantMsg: "invalid log-level"},
		{name: "negative workers", args: []string{"-workers", "-1", "a.txt"}, wantMsg: "WorkerCount must not be negative"},
		{name: "port out of range", args: []string{"-healthcheck-port", "70000", "a.txt"}, wantMsg: "HealthcheckPort"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, _, err := Parse(tc.args, &bytes.Buffer{})

			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			require.Equal(t, 2, exitErr.Code)
			require.Contains(t, exitErr.Message, tc.wantMsg)
		})
	}
}
