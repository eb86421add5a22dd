package buffers

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/amp-labs/amp-tuples/closer"
	"github.com/amp-labs/amp-tuples/errors"
	"github.com/amp-labs/amp-tuples/lazy"
	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Codec names a compression format applied to sealed buffers.
type Codec string

const (
	CodecNone   Codec = "none"
	CodecLZ4    Codec = "lz4"
	CodecZstd   Codec = "zstd"
	CodecSnappy Codec = "snappy"
	CodecBrotli Codec = "brotli"
)

type codecImpl struct {
	compress   func([]byte) ([]byte, error)
	decompress func([]byte) ([]byte, error)
}

// Encoders and decoders are safe for concurrent EncodeAll/DecodeAll calls,
// so one of each is shared.
var (
	zstdEncoder = lazy.NewErr(func() (*zstd.Encoder, error) { //nolint:gochecknoglobals
		return zstd.NewWriter(nil)
	})

	zstdDecoder = lazy.NewErr(func() (*zstd.Decoder, error) { //nolint:gochecknoglobals
		return zstd.NewReader(nil)
	})
)

var codecs = map[Codec]codecImpl{ //nolint:gochecknoglobals
	CodecNone: {
		compress:   cloneBytes,
		decompress: cloneBytes,
	},
	CodecLZ4: {
		compress: func(data []byte) ([]byte, error) {
			return compressStream(data, func(w io.Writer) io.WriteCloser { return lz4.NewWriter(w) })
		},
		decompress: func(data []byte) ([]byte, error) {
			return io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
		},
	},
	CodecZstd: {
		compress: func(data []byte) ([]byte, error) {
			enc, err := zstdEncoder.Get()
			if err != nil {
				return nil, err
			}

			return enc.EncodeAll(data, nil), nil
		},
		decompress: func(data []byte) ([]byte, error) {
			dec, err := zstdDecoder.Get()
			if err != nil {
				return nil, err
			}

			return dec.DecodeAll(data, nil)
		},
	},
	CodecSnappy: {
		compress: func(data []byte) ([]byte, error) {
			return snappy.Encode(nil, data), nil
		},
		decompress: func(data []byte) ([]byte, error) {
			return snappy.Decode(nil, data)
		},
	},
	CodecBrotli: {
		compress: func(data []byte) ([]byte, error) {
			return compressStream(data, func(w io.Writer) io.WriteCloser { return brotli.NewWriter(w) })
		},
		decompress: func(data []byte) ([]byte, error) {
			return io.ReadAll(brotli.NewReader(bytes.NewReader(data)))
		},
	},
}

// ParseCodec converts a case-insensitive name into a Codec. The empty string
// means CodecNone.
func ParseCodec(name string) (Codec, error) {
	codec := Codec(strings.ToLower(strings.TrimSpace(name)))
	if codec == "" {
		return CodecNone, nil
	}

	if err := codec.Validate(); err != nil {
		return "", err
	}

	return codec, nil
}

// Validate returns an error wrapping errors.ErrUnknownCodec for unregistered names.
func (c Codec) Validate() error {
	if _, ok := codecs[c]; !ok {
		return fmt.Errorf("%w: %q", errors.ErrUnknownCodec, string(c))
	}

	return nil
}

// Compress encodes data with the given codec. The input is never modified.
func Compress(codec Codec, data []byte) ([]byte, error) {
	impl, ok := codecs[codec]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownCodec, string(codec))
	}

	out, err := impl.compress(data)
	if err != nil {
		return nil, fmt.Errorf("compressing with %s: %w", codec, err)
	}

	codecBytesTotal.WithLabelValues(string(codec), "compress").Add(float64(len(out)))

	return out, nil
}

// Decompress reverses Compress.
func Decompress(codec Codec, data []byte) ([]byte, error) {
	impl, ok := codecs[codec]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownCodec, string(codec))
	}

	out, err := impl.decompress(data)
	if err != nil {
		return nil, fmt.Errorf("decompressing with %s: %w", codec, err)
	}

	codecBytesTotal.WithLabelValues(string(codec), "decompress").Add(float64(len(out)))

	return out, nil
}

func cloneBytes(data []byte) ([]byte, error) {
	return bytes.Clone(data), nil
}

func compressStream(data []byte, newWriter func(io.Writer) io.WriteCloser) ([]byte, error) {
	var sink bytes.Buffer

	stream := newWriter(&sink)

	// Close flushes the last frame and must succeed before sink is complete.
	once := closer.CloseOnce(stream)
	defer once.Close() //nolint:errcheck

	if _, err := stream.Write(data); err != nil {
		return nil, err
	}

	if err := once.Close(); err != nil {
		return nil, err
	}

	return sink.Bytes(), nil
}
