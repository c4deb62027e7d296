package preset

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Codec encodes and decodes documents in one file format.
type Codec struct {
	// Name is the lower-case format name, such as "json".
	Name string

	// Extensions lists the file extensions of the format, with the dot.
	Extensions []string

	Marshal   func(v any) ([]byte, error)
	Unmarshal func(data []byte, v any) error
}

// Built-in codecs.
var (
	JSON = Codec{
		Name:       "json",
		Extensions: []string{".json"},
		Marshal:    marshalJSON,
		Unmarshal:  json.Unmarshal,
	}
	TOML = Codec{
		Name:       "toml",
		Extensions: []string{".toml"},
		Marshal:    toml.Marshal,
		Unmarshal:  toml.Unmarshal,
	}
	YAML = Codec{
		Name:       "yaml",
		Extensions: []string{".yaml", ".yml"},
		Marshal:    yaml.Marshal,
		Unmarshal:  yaml.Unmarshal,
	}
)

var codecs = []Codec{JSON, TOML, YAML}

// Codecs returns the built-in codecs.
func Codecs() []Codec {
	out := make([]Codec, len(codecs))
	copy(out, codecs)
	return out
}

// CodecFor returns the codec for the extension of path.
func CodecFor(path string) (Codec, error) {
	ext := strings.ToLower(filepath.Ext(path))
	for _, c := range codecs {
		for _, e := range c.Extensions {
			if e == ext {
				return c, nil
			}
		}
	}
	return Codec{}, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
}

// CodecByName returns the codec with the given name, ignoring case.
func CodecByName(name string) (Codec, error) {
	for _, c := range codecs {
		if strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	return Codec{}, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

func marshalJSON(v any) ([]byte, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}
