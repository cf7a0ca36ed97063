package clipboard

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTools puts executables with the given names on an isolated PATH
func fakeTools(t *testing.T, names ...string) {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\ncat > /dev/null\n"), 0755))
	}
	t.Setenv("PATH", dir)
}

func TestWriteImage_Empty(t *testing.T) {
	s := NewSystem()

	err := s.WriteImage(nil)

	assert.EqualError(t, err, "empty image")
}

func TestWriteImage_UsesFirstAvailableTool(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("tool selection is linux specific")
	}
	fakeTools(t, "xclip")
	t.Setenv("WAYLAND_DISPLAY", "")

	var got []string
	var payload []byte
	s := &System{run: func(name string, args []string, data []byte) error {
		got = append([]string{name}, args...)
		payload = data
		return nil
	}}

	require.NoError(t, s.WriteImage([]byte("png")))
	assert.Equal(t, []string{"xclip", "-selection", "clipboard", "-t", "image/png", "-i"}, got)
	assert.Equal(t, []byte("png"), payload)
}

func TestWriteImage_FallsBackAfterFailure(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("tool selection is linux specific")
	}
	fakeTools(t, "xclip", "wl-copy")
	t.Setenv("WAYLAND_DISPLAY", "wayland-0")

	var tried []string
	s := &System{run: func(name string, args []string, data []byte) error {
		tried = append(tried, name)
		if name == "wl-copy" {
			return errors.New("no compositor")
		}
		return nil
	}}

	require.NoError(t, s.WriteImage([]byte("png")))
	assert.Equal(t, []string{"wl-copy", "xclip"}, tried)
}

func TestWriteImage_NoTools(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	s := &System{run: func(string, []string, []byte) error {
		t.Fatal("no tool should run")
		return nil
	}}

	err := s.WriteImage([]byte("png"))

	assert.EqualError(t, err, "no clipboard tool available for images")
}

func TestWriteImage_AllToolsFail(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("tool selection is linux specific")
	}
	fakeTools(t, "xclip")
	s := &System{run: func(string, []string, []byte) error {
		return errors.New("boom")
	}}

	err := s.WriteImage([]byte("png"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to copy image: boom")
}

func TestRunWithStdin(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("needs a posix shell")
	}
	out := filepath.Join(t.TempDir(), "out")

	require.NoError(t, runWithStdin("sh", []string{"-c", "cat > " + out}, []byte("data")))
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "data", string(data))

	err = runWithStdin("sh", []string{"-c", "echo nope >&2; exit 3"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope")
}
