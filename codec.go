package blenlib

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Vectors serialize as plain sequences of their live elements. Capacity
// and storage mode are properties of the in-memory value, not of the data,
// and are not encoded; decoding more than InlineCapacity elements lands
// the vector in heap mode like any other growth.

// MarshalJSON encodes the live elements as a JSON array.
func (v *Vector[T]) MarshalJSON() ([]byte, error) {
	v.mustBeUsable("MarshalJSON")
	return json.Marshal(v.live())
}

// UnmarshalJSON replaces the vector's contents with the decoded array.
// The vector's previous elements are released first; on a decode error it
// is left untouched.
func (v *Vector[T]) UnmarshalJSON(data []byte) error {
	var elems []T
	if err := json.Unmarshal(data, &elems); err != nil {
		return fmt.Errorf("json unmarshal: %w", err)
	}
	v.replaceWith(elems)
	return nil
}

// MarshalYAML encodes the live elements as a YAML sequence.
func (v *Vector[T]) MarshalYAML() (any, error) {
	v.mustBeUsable("MarshalYAML")
	return v.live(), nil
}

// UnmarshalYAML replaces the vector's contents with the decoded sequence.
// The vector's previous elements are released first; on a decode error it
// is left untouched.
func (v *Vector[T]) UnmarshalYAML(node *yaml.Node) error {
	var elems []T
	if err := node.Decode(&elems); err != nil {
		return fmt.Errorf("yaml unmarshal: %w", err)
	}
	v.replaceWith(elems)
	return nil
}

// replaceWith resets the vector and adopts elems with a single exact
// reservation. Decoding revives a moved-from vector, the same as CopyFrom.
func (v *Vector[T]) replaceWith(elems []T) {
	v.release()
	v.Reserve(len(elems))
	for _, elem := range elems {
		v.Append(elem)
	}
}
