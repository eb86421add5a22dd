package buffers

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/amp-labs/amp-tuples/errors"
	"github.com/amp-labs/amp-tuples/tuple"
	"github.com/amp-labs/amp-tuples/validate"
	"gopkg.in/yaml.v3"
)

// ComponentType names the element type of a layout attribute.
type ComponentType string

const (
	TypeInt8    ComponentType = "int8"
	TypeInt16   ComponentType = "int16"
	TypeUint16  ComponentType = "uint16"
	TypeInt32   ComponentType = "int32"
	TypeInt64   ComponentType = "int64"
	TypeFloat32 ComponentType = "float32"
	TypeFloat64 ComponentType = "float64"
)

// Size returns the encoded size of one component, or 0 for unknown types.
func (c ComponentType) Size() int {
	switch c {
	case TypeInt8:
		return 1
	case TypeInt16, TypeUint16:
		return 2 //nolint:mnd
	case TypeInt32, TypeFloat32:
		return 4 //nolint:mnd
	case TypeInt64, TypeFloat64:
		return 8 //nolint:mnd
	default:
		return 0
	}
}

// Attribute is one named tuple within an interleaved record.
type Attribute struct {
	Name       string        `yaml:"name"`
	Type       ComponentType `yaml:"type"`
	Dimensions int           `yaml:"dimensions"`
}

// Size returns the encoded size of the attribute in bytes.
func (a Attribute) Size() int {
	return a.Type.Size() * a.Dimensions
}

// Layout describes interleaved records made of fixed-size tuple attributes,
// for example:
//
//	order: little
//	codec: zstd
//	attributes:
//	  - name: position
//	    type: float32
//	    dimensions: 3
//	  - name: color
//	    type: int8
//	    dimensions: 4
type Layout struct {
	Order      string      `yaml:"order,omitempty"`
	Codec      Codec       `yaml:"codec,omitempty"`
	Attributes []Attribute `yaml:"attributes"`
}

// Validate reports every problem found in the layout at once.
func (l *Layout) Validate() error {
	var errs errors.Collection

	if len(l.Attributes) == 0 {
		errs.Add(fmt.Errorf("%w: layout has no attributes", errors.ErrValidation))
	}

	if _, err := parseOrder(l.Order); err != nil {
		errs.Add(err)
	}

	if l.Codec != "" {
		errs.Add(l.Codec.Validate())
	}

	seen := make(map[string]struct{}, len(l.Attributes))

	for i, attr := range l.Attributes {
		if attr.Name == "" {
			errs.Add(fmt.Errorf("%w: attribute %d has no name", errors.ErrValidation, i))
		} else if _, dup := seen[attr.Name]; dup {
			errs.Add(fmt.Errorf("%w: duplicate attribute %q", errors.ErrValidation, attr.Name))
		}

		seen[attr.Name] = struct{}{}

		if attr.Type.Size() == 0 {
			errs.Add(fmt.Errorf("%w: attribute %q has unknown type %q", errors.ErrValidation, attr.Name, attr.Type))
		}

		if attr.Dimensions < 2 || attr.Dimensions > tuple.MaxDimensions {
			errs.Add(fmt.Errorf("%w: attribute %q has %d dimensions, want 2 to %d",
				errors.ErrDimensionMismatch, attr.Name, attr.Dimensions, tuple.MaxDimensions))
		}
	}

	return errs.GetError()
}

// Stride returns the size of one record in bytes.
func (l *Layout) Stride() int {
	stride := 0

	for _, attr := range l.Attributes {
		stride += attr.Size()
	}

	return stride
}

// Offset returns the byte offset of the named attribute within a record.
func (l *Layout) Offset(name string) (int, bool) {
	offset := 0

	for _, attr := range l.Attributes {
		if attr.Name == name {
			return offset, true
		}

		offset += attr.Size()
	}

	return 0, false
}

// Attribute looks up an attribute by name.
func (l *Layout) Attribute(name string) (Attribute, bool) {
	for _, attr := range l.Attributes {
		if attr.Name == name {
			return attr, true
		}
	}

	return Attribute{}, false
}

// Options builds Util options from the layout's order and codec.
func (l *Layout) Options(factory Factory) (Options, error) {
	order, err := parseOrder(l.Order)
	if err != nil {
		return Options{}, err
	}

	return Options{Factory: factory, Order: order, Codec: l.Codec}, nil
}

// ParseLayout decodes and validates a YAML layout. Unknown keys are rejected.
func ParseLayout(ctx context.Context, r io.Reader) (*Layout, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var layout Layout

	if err := decoder.Decode(&layout); err != nil {
		return nil, fmt.Errorf("decoding layout: %w", err)
	}

	if err := validate.Validate(ctx, &layout); err != nil {
		return nil, err
	}

	return &layout, nil
}

// LoadLayoutFile reads a YAML layout from path.
func LoadLayoutFile(ctx context.Context, path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return ParseLayout(ctx, bytes.NewReader(data))
}

func parseOrder(name string) (binary.ByteOrder, error) { //nolint:ireturn
	switch strings.ToLower(name) {
	case "", "big", "big-endian", "bigendian":
		return binary.BigEndian, nil
	case "little", "little-endian", "littleendian":
		return binary.LittleEndian, nil
	default:
		return nil, fmt.Errorf("%w: unknown byte order %q", errors.ErrValidation, name)
	}
}
