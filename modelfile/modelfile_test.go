package modelfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/viterbi/hmm"
	"github.com/katalvlaran/viterbi/modelfile"
	"github.com/katalvlaran/viterbi/viterbi"
)

// TestLoad_YAMLAndJSONAgree verifies both fixtures describe the same model
// and decode to the reference tagging.
func TestLoad_YAMLAndJSONAgree(t *testing.T) {
	y, err := modelfile.Load(filepath.Join("..", "testdata", "tagger.yaml"))
	require.NoError(t, err)
	j, err := modelfile.Load(filepath.Join("..", "testdata", "tagger.json"))
	require.NoError(t, err)
	assert.Equal(t, y, j)

	assert.Equal(t, []hmm.State{"verb", "noun", "adj"}, y.States, "state order must be preserved")
	assert.Equal(t, 5.0, y.Transition["adj"]["noun"])

	res, err := viterbi.DecodeModel(y, []hmm.Observation{"iron", "shaped", "cloth"}, viterbi.WithStrict())
	require.NoError(t, err)
	assert.Equal(t, []hmm.State{"noun", "verb", "noun"}, res.Path)
}

// TestLoad_Invalid verifies validation failures are wrapped.
func TestLoad_Invalid(t *testing.T) {
	_, err := modelfile.Load(filepath.Join("..", "testdata", "invalid.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, modelfile.ErrInvalidModel)
	assert.ErrorIs(t, err, hmm.ErrDuplicateState)
	assert.ErrorIs(t, err, hmm.ErrNegativeWeight)
	assert.ErrorIs(t, err, hmm.ErrUnknownState)
	assert.Contains(t, err.Error(), "invalid.yaml")
}

// TestLoad_MissingFile verifies the OS error is preserved.
func TestLoad_MissingFile(t *testing.T) {
	_, err := modelfile.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// TestParse_UnknownField verifies typos in top-level keys are caught.
func TestParse_UnknownField(t *testing.T) {
	_, err := modelfile.Parse([]byte("states: [a]\ntransitions: {}\n"), modelfile.YAML)
	assert.Error(t, err)

	_, err = modelfile.Parse([]byte(`{"states": ["a"], "transitions": {}}`), modelfile.JSON)
	assert.Error(t, err)
}

// TestParse_MultipleDocuments verifies trailing documents are rejected.
func TestParse_MultipleDocuments(t *testing.T) {
	cases := []struct {
		name   string
		data   string
		format modelfile.Format
	}{
		{"yaml", "states: [a]\n---\nstates: [b]\n", modelfile.YAML},
		{"auto", "states: [a]\n---\nstates: [b]\n", modelfile.Auto},
		{"json", `{"states": ["a"]} {"states": ["b"]}`, modelfile.JSON},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := modelfile.Parse([]byte(tc.data), tc.format)
			assert.ErrorIs(t, err, modelfile.ErrMultipleDocuments)
		})
	}

	m, err := modelfile.Parse([]byte("---\nstates: [a]\n"), modelfile.YAML)
	require.NoError(t, err, "a leading document marker is a single document")
	assert.Equal(t, []hmm.State{"a"}, m.States)
}

// TestParse_Auto verifies auto-detection accepts both syntaxes.
func TestParse_Auto(t *testing.T) {
	m, err := modelfile.Parse([]byte("states: [a, b]\ninitial: {a: 1}\n"), modelfile.Auto)
	require.NoError(t, err)
	assert.Equal(t, []hmm.State{"a", "b"}, m.States)

	m, err = modelfile.Parse([]byte(`{"states": ["x"], "emission": {"o": {"x": 0.5}}}`), modelfile.Auto)
	require.NoError(t, err)
	assert.Equal(t, 0.5, m.Emission["o"]["x"])
}

// TestParse_Empty verifies an empty document is reported as such.
func TestParse_Empty(t *testing.T) {
	for _, f := range []modelfile.Format{modelfile.Auto, modelfile.YAML, modelfile.JSON} {
		_, err := modelfile.Parse([]byte("  \n"), f)
		assert.ErrorIs(t, err, modelfile.ErrEmptyDocument, "format %s", f)
	}
}

// TestParse_UnknownFormat verifies out-of-range formats fail.
func TestParse_UnknownFormat(t *testing.T) {
	_, err := modelfile.Parse([]byte("states: [a]"), modelfile.Format(9))
	assert.ErrorIs(t, err, modelfile.ErrUnknownFormat)
}

// TestFormatFromPath checks extension mapping.
func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, modelfile.YAML, modelfile.FormatFromPath("m.YML"))
	assert.Equal(t, modelfile.YAML, modelfile.FormatFromPath("dir/m.yaml"))
	assert.Equal(t, modelfile.JSON, modelfile.FormatFromPath("m.json"))
	assert.Equal(t, modelfile.Auto, modelfile.FormatFromPath("model"))
}
