package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/on-the-ground/noisefn/noise"
	"github.com/on-the-ground/noisefn/sampler"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestVersion(t *testing.T) {
	assert.Equal(t, version+"\n", run(t, "version"))
}

func TestSample_ASCII(t *testing.T) {
	out := run(t, "sample", "--format", "ascii", "--width", "5", "--height", "3", "--log-level", "error")
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.Len(t, lines, 3)
	for _, line := range lines {
		assert.Len(t, line, 5)
	}
}

func TestSample_YAMLMatchesBuilder(t *testing.T) {
	out := run(t, "sample", "--width", "4", "--height", "4", "--scale", "0.2", "--seed", "9", "--octaves", "3", "--log-level", "error")

	var report map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))

	params := treeParams{
		Seed:        9,
		Octaves:     3,
		Frequency:   noise.DefaultFrequency,
		Lacunarity:  noise.DefaultLacunarity,
		Persistence: noise.DefaultPersistence,
	}
	cfg := sampler.NewConfig(4, 4, 0.2, 1)
	want := sampler.FormatDigest(noise.Digest(params.builder()(), sampler.Points(cfg)))
	assert.Equal(t, want, report["digest"])
}

func TestSample_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "noisefn.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sampler:\n  width: 7\n  height: 2\nlog:\n  level: error\n"), 0o644))

	out := run(t, "--config", path, "sample")

	var report map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))
	assert.Equal(t, 7, report["width"])
	assert.Equal(t, 2, report["height"])
}

func TestSample_UnknownFormat(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"sample", "--format", "png", "--log-level", "error"})
	assert.Error(t, cmd.Execute())
}

func TestBuilder_ForwardsFractalParams(t *testing.T) {
	params := treeParams{Seed: 1, Octaves: 2, Frequency: 3, Lacunarity: 2.5, Persistence: 0.4}
	top := params.build()

	fbm := top.Source().Source1.Source()
	assert.Equal(t, 2, fbm.Octaves())
	assert.Equal(t, 3.0, fbm.Frequency())
	assert.Equal(t, 2.5, fbm.Lacunarity())
	assert.Equal(t, 0.4, fbm.Persistence())
	assert.Equal(t, uint32(1), fbm.Seed())
	assert.Equal(t, uint32(2), top.Source().Source2.Seed())
}
