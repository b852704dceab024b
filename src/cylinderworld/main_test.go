package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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
	require.NoError(t, afero.WriteFile(fs, "bezier_curve_x_y.csv", []byte("x,y\n0,0\n1,0.5\n"), 0644))

	var stdout, stderr bytes.Buffer
	require.NoError(t, run(fs, "/cfg", &stdout, &stderr))

	assert.Equal(t, "World file generated: bezier_cylinder.world\n", stdout.String())
	data, err := afero.ReadFile(fs, "bezier_cylinder.world")
	require.NoError(t, err)
	assert.Contains(t, string(data), "unit_cylinder_1")
	assert.NotContains(t, string(data), "user_camera")
}

func TestRun_MissingInput(t *testing.T) {
	fs := newFs(t)

	var stdout, stderr bytes.Buffer
	err := run(fs, "/cfg", &stdout, &stderr)
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Empty(t, stdout.String())
}

func TestRun_BlankLineRejected(t *testing.T) {
	fs := newFs(t)
	require.NoError(t, afero.WriteFile(fs, "bezier_curve_x_y.csv", []byte("x,y\n1,2\n\n3,4\n"), 0644))

	var stdout, stderr bytes.Buffer
	err := run(fs, "/cfg", &stdout, &stderr)
	require.ErrorIs(t, err, pathworld.ErrMalformedRow)

	exists, err := afero.Exists(fs, "bezier_cylinder.world")
	require.NoError(t, err)
	assert.False(t, exists)
}
