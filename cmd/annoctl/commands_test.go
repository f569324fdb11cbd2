package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sigs.k8s.io/yaml"

	"github.com/joshuapare/annoindex/pkg/types"
)

func TestInfoCommand(t *testing.T) {
	legacy, current := fixturePaths(t)

	tests := []struct {
		name        string
		json        bool
		wantContain []string
	}{
		{
			name:        "text",
			wantContain: []string{legacy, current, "Version: 2", "Version: 6", "Codec:   none", "Classes: 2", "sha256:"},
		},
		{
			name:        "json",
			json:        true,
			wantContain: []string{`"version": 6`, `"classes": 2`},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			jsonOut = tt.json
			out, err := run(t, func(w *bytes.Buffer) error {
				return runInfo(context.Background(), w, []string{legacy, current})
			})
			require.NoError(t, err)
			for _, want := range tt.wantContain {
				assert.Contains(t, out, want)
			}
			if tt.json {
				var infos []fileInfo
				require.NoError(t, json.Unmarshal([]byte(out), &infos))
				require.Len(t, infos, 2)
				assert.Equal(t, legacy, infos[0].Path)
			}
		})
	}
}

func TestClassesCommand(t *testing.T) {
	legacy, current := fixturePaths(t)

	tests := []struct {
		name       string
		path       string
		extends    string
		implements string
		want       []string
	}{
		{name: "all legacy", path: legacy, want: []string{"a.b.Base", "a.b.Bean"}},
		{name: "all current", path: current, want: []string{"a.b.C", "a.b.D"}},
		{name: "extends", path: legacy, extends: "a.b.Base", want: []string{"a.b.Bean"}},
		{name: "implements", path: current, implements: "a.b.Base", want: []string{"a.b.C"}},
		{name: "no match", path: current, extends: "a.b.Nothing", want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			jsonOut = true
			classesExtends = tt.extends
			classesImplements = tt.implements
			out, err := run(t, func(w *bytes.Buffer) error {
				return runClasses(w, []string{tt.path})
			})
			require.NoError(t, err)

			var got struct {
				Classes []string `json:"classes"`
				Count   int      `json:"count"`
			}
			require.NoError(t, json.Unmarshal([]byte(out), &got))
			assert.Equal(t, tt.want, got.Classes)
			assert.Equal(t, len(tt.want), got.Count)
		})
	}
}

func TestAnnotatedCommand(t *testing.T) {
	legacy, current := fixturePaths(t)
	resetFlags()

	out, err := run(t, func(w *bytes.Buffer) error {
		return runAnnotated(w, []string{current, "a.b.Ann"})
	})
	require.NoError(t, err)
	assert.Equal(t, "a.b.C\na.b.D\n", out)

	out, err = run(t, func(w *bytes.Buffer) error {
		return runAnnotated(w, []string{legacy, "a.b.Inject"})
	})
	require.NoError(t, err)
	assert.Empty(t, out, "field annotations are not class-level")
}

func TestShowCommand(t *testing.T) {
	legacy, _ := fixturePaths(t)

	t.Run("text", func(t *testing.T) {
		resetFlags()
		out, err := run(t, func(w *bytes.Buffer) error {
			return runShow(w, []string{legacy, "a.b.Bean"})
		})
		require.NoError(t, err)
		assert.Contains(t, out, "Extends:    a.b.Base")
		assert.Contains(t, out, "Implements: a.Api")
		assert.Contains(t, out, "Class:      a.b.Named, a.b.Entity")
		assert.Contains(t, out, "Field:      a.b.Inject")
		assert.Contains(t, out, "Method:     a.b.Get")
	})

	t.Run("yaml", func(t *testing.T) {
		resetFlags()
		yamlOut = true
		out, err := run(t, func(w *bytes.Buffer) error {
			return runShow(w, []string{legacy, "a.b.Base"})
		})
		require.NoError(t, err)

		var v types.ClassView
		require.NoError(t, yaml.Unmarshal([]byte(out), &v))
		assert.Equal(t, "a.b.Base", v.Name)
		assert.Equal(t, uint16(0x0401), v.Flags)
		assert.Empty(t, v.ClassAnnotations)
	})

	t.Run("abstract flag words", func(t *testing.T) {
		resetFlags()
		out, err := run(t, func(w *bytes.Buffer) error {
			return runShow(w, []string{legacy, "a.b.Base"})
		})
		require.NoError(t, err)
		assert.Contains(t, out, "0x0401 (abstract)")
	})

	t.Run("missing class", func(t *testing.T) {
		resetFlags()
		_, err := run(t, func(w *bytes.Buffer) error {
			return runShow(w, []string{legacy, "a.b.Missing"})
		})
		require.ErrorContains(t, err, "not found")
	})
}

func TestQuiet(t *testing.T) {
	_, current := fixturePaths(t)
	resetFlags()
	quiet = true
	out, err := run(t, func(w *bytes.Buffer) error {
		return runClasses(w, []string{current})
	})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestOpenFailure(t *testing.T) {
	resetFlags()
	strict = true
	_, err := run(t, func(w *bytes.Buffer) error {
		return runClasses(w, []string{"/nonexistent/index.idx"})
	})
	require.ErrorContains(t, err, "failed to open index")
}

func TestRootCommand(t *testing.T) {
	resetFlags()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "annoctl dev")
}
