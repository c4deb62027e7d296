package text

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
)

// DefaultFamily is the family used when none is configured.
const DefaultFamily = "Go"

type builtinFace struct {
	name string
	data []byte
}

// builtinFamilies maps lower-cased family names to faces ordered by the
// minimum CSS weight at which they apply.
var builtinFamilies = map[string][]struct {
	minWeight int
	face      builtinFace
}{
	"go": {
		{0, builtinFace{"Go Regular", goregular.TTF}},
		{500, builtinFace{"Go Medium", gomedium.TTF}},
		{600, builtinFace{"Go Bold", gobold.TTF}},
	},
	"go mono": {
		{0, builtinFace{"Go Mono", gomono.TTF}},
		{600, builtinFace{"Go Mono Bold", gomonobold.TTF}},
	},
	"go smallcaps": {
		{0, builtinFace{"Go Smallcaps", gosmallcaps.TTF}},
	},
}

var (
	builtinMu    sync.Mutex
	builtinCache = map[string]*Font{}
)

// Families returns the names of the built-in families.
func Families() []string {
	return []string{"Go", "Go Mono", "Go Smallcaps"}
}

// Lookup returns the built-in font closest to family and CSS weight.
// Parsed fonts are cached for the life of the process.
func Lookup(family string, weight int) (*Font, error) {
	faces, ok := builtinFamilies[strings.ToLower(strings.TrimSpace(family))]
	if !ok {
		return nil, &FontError{Name: family, Err: ErrUnknownFamily}
	}

	chosen := faces[0].face
	for _, f := range faces {
		if weight >= f.minWeight {
			chosen = f.face
		}
	}

	builtinMu.Lock()
	defer builtinMu.Unlock()

	if f, ok := builtinCache[chosen.name]; ok {
		return f, nil
	}
	f, err := ParseFont(chosen.name, chosen.data)
	if err != nil {
		return nil, fmt.Errorf("parse built-in font: %w", err)
	}
	builtinCache[chosen.name] = f
	return f, nil
}
