package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stereos/internal/config"
)

func writeContent(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		p := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	}
	return dir
}

func runCheck(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&config.AppConfig{}, zerolog.Nop())
	cmd.SetOut(&out)
	cmd.SetArgs(append([]string{"check"}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCheck(t *testing.T) {
	clean := writeContent(t, map[string]string{
		"guides/a.md": "---\ntitle: A\nrelatedConcepts: [b]\n---\n",
		"guides/b.md": "---\ntitle: B\n---\n",
	})
	warned := writeContent(t, map[string]string{
		"guides/a.md": "---\ntitle: A\nrelatedConcepts: [ghost]\n---\n",
	})
	broken := writeContent(t, map[string]string{
		"guides/a.md": "no title here\n",
	})

	t.Run("clean tree", func(t *testing.T) {
		out, err := runCheck(t, "--content", clean)
		assert.NoError(t, err)
		assert.Contains(t, out, "2 items checked, 0 errors, 0 warnings")
	})

	t.Run("warnings pass by default", func(t *testing.T) {
		out, err := runCheck(t, "--content", warned)
		assert.NoError(t, err)
		assert.Contains(t, out, `unknown slug "ghost"`)
	})

	t.Run("warnings fail with flag", func(t *testing.T) {
		_, err := runCheck(t, "--content", warned, "--fail-on-warn")
		assert.ErrorIs(t, err, errFindings)
	})

	t.Run("errors fail", func(t *testing.T) {
		out, err := runCheck(t, "--content", broken)
		assert.ErrorIs(t, err, errFindings)
		assert.Contains(t, out, "missing title")
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := runCheck(t, "--content", filepath.Join(clean, "nope"))
		require.Error(t, err)
		assert.NotErrorIs(t, err, errFindings)
	})
}
