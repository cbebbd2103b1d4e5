package params

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a parameter file (YAML or JSON) laid over Defaults().
// Keys absent from the file keep their default; an "opex" list replaces the
// default list entirely. The result is not validated.
func Load(path string) (ParameterSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ParameterSet{}, fmt.Errorf("reading parameter file: %w", err)
	}
	p, err := Decode(bytes.NewReader(data))
	if err != nil {
		return ParameterSet{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return p, nil
}

// Decode parses YAML (or JSON) from r over Defaults(). Unknown keys are an
// error so typos don't silently fall back to defaults. The input must hold a
// single document; empty trailing documents are ignored.
func Decode(r io.Reader) (ParameterSet, error) {
	p := Defaults()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return p, nil
		}
		return ParameterSet{}, err
	}
	for {
		var extra yaml.Node
		err := dec.Decode(&extra)
		if errors.Is(err, io.EOF) {
			return p, nil
		}
		if err != nil {
			return ParameterSet{}, err
		}
		if !isEmptyDocument(&extra) {
			return ParameterSet{}, ErrMultipleDocuments
		}
	}
}

func isEmptyDocument(n *yaml.Node) bool {
	if n.Kind == yaml.DocumentNode && len(n.Content) == 1 {
		n = n.Content[0]
	}
	return n.Kind == 0 || (n.Kind == yaml.ScalarNode && n.Tag == "!!null")
}

// Encode writes p as YAML.
func Encode(w io.Writer, p ParameterSet) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return err
	}
	return enc.Close()
}
