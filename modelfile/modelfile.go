package modelfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/viterbi/hmm"
)

var (
	// ErrUnknownFormat indicates a Format value Parse does not understand.
	ErrUnknownFormat = errors.New("modelfile: unknown format")

	// ErrEmptyDocument indicates the input holds no document at all.
	ErrEmptyDocument = errors.New("modelfile: empty document")

	// ErrMultipleDocuments indicates data after the first document, such as a
	// second YAML document after "---".
	ErrMultipleDocuments = errors.New("modelfile: more than one document")

	// ErrInvalidModel wraps the hmm.Model.Validate failure of a parsed model.
	ErrInvalidModel = errors.New("modelfile: invalid model")
)

// Format selects the document syntax.
type Format int

const (
	// Auto tries YAML first, then JSON.
	Auto Format = iota
	// YAML parses with gopkg.in/yaml.v3.
	YAML
	// JSON parses with encoding/json.
	JSON
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case Auto:
		return "auto"
	case YAML:
		return "yaml"
	case JSON:
		return "json"
	}

	return fmt.Sprintf("Format(%d)", int(f))
}

// FormatFromPath picks the format from the file extension:
// .yaml/.yml → YAML, .json → JSON, anything else → Auto.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	case ".json":
		return JSON
	}

	return Auto
}

// Load reads and parses the model file at path.
func Load(path string) (*hmm.Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model %s: %w", path, err)
	}
	m, err := Parse(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// Parse decodes a model from data and validates it.
//
// Unknown top-level keys are rejected in both syntaxes so that a typo such
// as "transitions" does not silently produce an empty table. Anything after
// the first document fails with ErrMultipleDocuments.
func Parse(data []byte, format Format) (*hmm.Model, error) {
	var (
		m   *hmm.Model
		err error
	)
	switch format {
	case YAML:
		m, err = parseYAML(data)
	case JSON:
		m, err = parseJSON(data)
	case Auto:
		m, err = parseYAML(data)
		if err != nil && !errors.Is(err, ErrEmptyDocument) {
			if jm, jerr := parseJSON(data); jerr == nil {
				m, err = jm, nil
			} else {
				err = fmt.Errorf("failed to parse model (tried YAML and JSON): %w", err)
			}
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, int(format))
	}
	if err != nil {
		return nil, err
	}

	if verr := m.Validate(); verr != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidModel, verr)
	}

	return m, nil
}

func parseYAML(data []byte) (*hmm.Model, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var m hmm.Model
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", ErrMultipleDocuments)
	}

	return &m, nil
}

func parseJSON(data []byte) (*hmm.Model, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyDocument
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var m hmm.Model
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("failed to parse JSON: %w", ErrMultipleDocuments)
	}

	return &m, nil
}
