// Package codec centralizes payload encoding for persisted corpora.
//
// Snapshots store the codec name in their header, so a snapshot written with
// one codec can always be read back by selecting the codec by name.
package codec

import (
	"encoding/json"
	"slices"

	gojson "github.com/goccy/go-json"
)

// Codec converts snapshot payloads to and from bytes.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	// Name is written into snapshot headers and must never change.
	Name() string
}

// Default is the codec used for new snapshots.
var Default Codec = GoJSON{}

var builtins = map[string]Codec{
	JSON{}.Name():   JSON{},
	GoJSON{}.Name(): GoJSON{},
}

// ByName returns a built-in codec by its header name.
func ByName(name string) (Codec, bool) {
	c, ok := builtins[name]
	return c, ok
}

// Names lists the built-in codec names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// GoJSON encodes with github.com/goccy/go-json. Its output is ordinary JSON,
// so either codec can decode what the other wrote.
type GoJSON struct{}

func (GoJSON) Marshal(v any) ([]byte, error)      { return gojson.Marshal(v) }
func (GoJSON) Unmarshal(data []byte, v any) error { return gojson.Unmarshal(data, v) }
func (GoJSON) Name() string                       { return "go-json" }

// JSON encodes with encoding/json. Kept for readers that pin the standard
// library decoder.
type JSON struct{}

func (JSON) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }
func (JSON) Name() string                       { return "json" }
