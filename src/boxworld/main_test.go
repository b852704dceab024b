package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ysk5201/generate-desired-path-in-gazebo-world/src/config"
	"github.com/ysk5201/generate-desired-path-in-gazebo-world/src/pathworld"
)

func newFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/cfg", 0755))
	return fs
}

func TestRun_DefaultPaths(t *testing.T) {
	fs := newFs(t)
	require.NoError(t, afero.WriteFile(fs, "bezier_curve_x_y_th.csv", []byte("x,y,th\n0,0,0\n1,0,0\n"), 0644))

	var stdout, stderr bytes.Buffer
	require.NoError(t, run(fs, "/cfg", &stdout, &stderr))

	assert.Equal(t, "World file generated: bezier_box.world\n", stdout.String())
	exists, err := afero.Exists(fs, "bezier_box.world")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestRun_ConfiguredOutput(t *testing.T) {
	fs := newFs(t)
	require.NoError(t, afero.WriteFile(fs, "/cfg/"+config.FileName, []byte(`{"box": {"input": "in.csv", "output": "out.world"}}`), 0644))
	require.NoError(t, afero.WriteFile(fs, "in.csv", []byte("x,y,th\n0,0,0\n"), 0644))

	var stdout, stderr bytes.Buffer
	require.NoError(t, run(fs, "/cfg", &stdout, &stderr))

	assert.Equal(t, "World file generated: out.world\n", stdout.String())
	data, err := afero.ReadFile(fs, "out.world")
	require.NoError(t, err)
	assert.Contains(t, string(data), "unit_box_0")
}

func TestRun_MissingInput(t *testing.T) {
	fs := newFs(t)

	var stdout, stderr bytes.Buffer
	err := run(fs, "/cfg", &stdout, &stderr)
	require.ErrorIs(t, err, os.ErrNotExist)

	assert.Empty(t, stdout.String(), "no confirmation on failure")
	exists, err := afero.Exists(fs, "bezier_box.world")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRun_MalformedInput(t *testing.T) {
	fs := newFs(t)
	require.NoError(t, afero.WriteFile(fs, "bezier_curve_x_y_th.csv", []byte("x,y,th\n1\n"), 0644))

	var stdout, stderr bytes.Buffer
	err := run(fs, "/cfg", &stdout, &stderr)
	require.ErrorIs(t, err, pathworld.ErrMalformedRow)
	assert.Empty(t, stdout.String())
}

func TestRun_BadConfig(t *testing.T) {
	fs := newFs(t)
	require.NoError(t, afero.WriteFile(fs, "/cfg/"+config.FileName, []byte(`{`), 0644))

	var stdout, stderr bytes.Buffer
	assert.Error(t, run(fs, "/cfg", &stdout, &stderr))
	assert.Empty(t, stdout.String())
}
