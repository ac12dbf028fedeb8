package formz

import (
	"fmt"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Codec defines the deserialization contract for seed documents.
// Implement this interface to use alternative formats like TOML or HCL.
type Codec interface {
	// Unmarshal deserializes bytes into a value.
	Unmarshal(data []byte, v any) error

	// ContentType returns the MIME type for observability and debugging.
	ContentType() string
}

// JSONCodec implements Codec using goccy/go-json.
type JSONCodec struct{}

// Unmarshal deserializes JSON bytes into v.
func (JSONCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// ContentType returns the JSON MIME type.
func (JSONCodec) ContentType() string {
	return "application/json"
}

// Ensure JSONCodec implements Codec.
var _ Codec = JSONCodec{}

// YAMLCodec implements Codec using gopkg.in/yaml.v3.
type YAMLCodec struct{}

// Unmarshal deserializes YAML bytes into v.
func (YAMLCodec) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}

// ContentType returns the YAML MIME type.
func (YAMLCodec) ContentType() string {
	return "application/x-yaml"
}

// Ensure YAMLCodec implements Codec.
var _ Codec = YAMLCodec{}

// Decode parses a seed document into a container usable as initial values
// or defaults for New or SetValues. The document must be a mapping or a
// sequence.
func Decode(codec Codec, data []byte) (any, error) {
	var doc any
	if err := codec.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", codec.ContentType(), err)
	}
	doc = normalize(doc)
	if !isComposite(doc) {
		return nil, fmt.Errorf("decode %s: top level %T: %w", codec.ContentType(), doc, ErrUnsupportedShape)
	}
	return doc, nil
}

// normalize rewrites decoded mappings with non-string keys into string-keyed
// composites so every nested container has one of the two known shapes.
func normalize(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, e := range x {
			x[k] = normalize(e)
		}
		return x
	case map[any]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[fmt.Sprint(k)] = normalize(e)
		}
		return out
	case []any:
		for i, e := range x {
			x[i] = normalize(e)
		}
		return x
	default:
		return v
	}
}
