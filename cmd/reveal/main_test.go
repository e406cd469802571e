package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func executeCommand(t *testing.T, env map[string]string, args ...string) (string, error) {
	t.Helper()
	original := environment
	t.Cleanup(func() { environment = original })
	environment = func() map[string]string { return env }

	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

func writeContent(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

const sampleContent = `site:
  brand:
    name: Laut
    accent: Biru
  footer:
    notice: Dibuat untuk pengujian.
hero:
  title: Jaga Laut Kita
  cta:
    label: Mulai
    target: "#pantai"
nav:
  - id: pantai
    label: Pantai
  - id: sungai
    label: Sungai
sections:
  - id: pantai
    title: Pantai Bersih
    body: Pantai yang bersih dimulai dari kita.
    image: pantai.png
    alt: Pantai berpasir putih
  - id: terumbu
    title: Terumbu Karang
    body: Karang rusak karena plastik.
    image: https://example.com/karang.jpg
`
