package buffers

import (
	"encoding/binary"
	"fmt"

	"github.com/amp-labs/amp-tuples/errors"
)

// Options configures a Util.
type Options struct {
	// Factory supplies buffer storage. It is required.
	Factory Factory

	// Order is the byte order of multi-byte values. Defaults to big endian.
	Order binary.ByteOrder

	// Codec is applied by Util.Seal and Util.Open. Defaults to CodecNone.
	Codec Codec
}

func (o Options) withDefaults() Options {
	if o.Order == nil {
		o.Order = binary.BigEndian
	}

	if o.Codec == "" {
		o.Codec = CodecNone
	}

	return o
}

// Validate checks that a factory is present and the codec is known.
func (o Options) Validate() error {
	var errs errors.Collection

	if o.Factory == nil {
		errs.Add(fmt.Errorf("%w: factory is required", errors.ErrNilArgument))
	}

	if o.Codec != "" {
		errs.Add(o.Codec.Validate())
	}

	return errs.GetError()
}
