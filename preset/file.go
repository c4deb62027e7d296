package preset

import (
	"errors"
	"io"
	"os"
)

// Read imports a document from r using c.
func Read(r io.Reader, c Codec, fallback string) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Import(data, c, fallback)
}

// Open imports the document at path. The codec is chosen from the file
// extension.
func Open(path, fallback string) (*Config, error) {
	c, err := CodecFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := Import(data, c, fallback)
	var de *DecodeError
	if errors.As(err, &de) {
		de.Path = path
	}
	return cfg, err
}

// Save writes d to path, encoded with the codec for the file extension.
func Save(path string, d Document) error {
	c, err := CodecFor(path)
	if err != nil {
		return err
	}
	data, err := d.Encode(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
