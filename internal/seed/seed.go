/*
Package seed reads an inventory from a file, so that a session can
start with registered components instead of prompting for them.

A seed file is either YAML:

	components:
	  - name: Chip
	    type: Controle
	    priority: 5

or TOML:

	[[components]]
	name = "Chip"
	type = "Controle"
	priority = 5

The format is chosen by the file extension.
*/
package seed

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/exascience/torre/component"
)

// A File is the decoded contents of a seed file.
type File struct {
	Components []component.Component `yaml:"components" toml:"components"`
}

// Load reads and decodes the seed file at path. The components are not
// validated; registering them does that.
func Load(path string) ([]component.Component, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f File
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = DecodeYAML(data, &f)
	case ".toml":
		err = DecodeTOML(data, &f)
	default:
		return nil, fmt.Errorf("seed file %s: unsupported extension %q", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("seed file %s: %w", path, err)
	}
	return f.Components, nil
}

// DecodeYAML decodes a YAML seed file. Unknown fields are rejected.
func DecodeYAML(data []byte, f *File) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(f); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// DecodeTOML decodes a TOML seed file. Unknown fields are rejected.
func DecodeTOML(data []byte, f *File) error {
	md, err := toml.Decode(string(data), f)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown field %q", undecoded[0].String())
	}
	return nil
}
