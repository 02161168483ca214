package snapshot

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/hupe1980/lexis/codec"
	"github.com/hupe1980/lexis/lexical"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Version is the current format version.
const Version uint8 = 1

var magic = [4]byte{'L', 'X', 'S', 'N'}

var (
	// ErrBadMagic is returned when the stream is not a snapshot.
	ErrBadMagic = errors.New("snapshot: bad magic")
	// ErrUnsupportedVersion is returned for snapshots written by a newer format.
	ErrUnsupportedVersion = errors.New("snapshot: unsupported version")
	// ErrUnknownCodec is returned when the header names a codec that is not built in.
	ErrUnknownCodec = errors.New("snapshot: unknown codec")
	// ErrUnknownCompression is returned for an unrecognized compression type.
	ErrUnknownCompression = errors.New("snapshot: unknown compression")
)

// IsSnapshot reports whether b starts with the snapshot magic.
func IsSnapshot(b []byte) bool {
	return len(b) >= len(magic) && [4]byte(b[:4]) == magic
}

// Compression defines the compression algorithm applied to the body.
type Compression uint8

const (
	// CompressionNone stores the body as-is.
	CompressionNone Compression = 0
	// CompressionLZ4 uses LZ4 frames (fast).
	CompressionLZ4 Compression = 1
	// CompressionZSTD uses Zstandard (better ratio).
	CompressionZSTD Compression = 2
)

// String returns the name accepted by ParseCompression.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("compression(%d)", uint8(c))
	}
}

// ParseCompression parses "none", "lz4" or "zstd".
func ParseCompression(s string) (Compression, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return CompressionNone, nil
	case "lz4":
		return CompressionLZ4, nil
	case "zstd":
		return CompressionZSTD, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCompression, s)
	}
}

type options struct {
	compression Compression
	codec       codec.Codec
}

// Option configures Write.
type Option func(*options)

// WithCompression sets the body compression. Default is CompressionZSTD.
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithCodec sets the body codec. If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

type payload struct {
	Documents []lexical.Document `json:"documents"`
}

// Write encodes docs to w.
func Write(w io.Writer, docs []lexical.Document, optFns ...Option) error {
	o := options{
		compression: CompressionZSTD,
		codec:       codec.Default,
	}
	for _, fn := range optFns {
		fn(&o)
	}

	name := o.codec.Name()
	if len(name) > 255 {
		return fmt.Errorf("snapshot: codec name too long: %d bytes", len(name))
	}

	body, err := o.codec.Marshal(payload{Documents: docs})
	if err != nil {
		return fmt.Errorf("snapshot: encode: %w", err)
	}

	header := make([]byte, 0, len(magic)+3+len(name))
	header = append(header, magic[:]...)
	header = append(header, Version, byte(o.compression), byte(len(name)))
	header = append(header, name...)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("snapshot: write header: %w", err)
	}

	if err := writeBody(w, o.compression, body); err != nil {
		return fmt.Errorf("snapshot: write body: %w", err)
	}

	return nil
}

func writeBody(w io.Writer, c Compression, body []byte) error {
	switch c {
	case CompressionNone:
		_, err := w.Write(body)
		return err
	case CompressionLZ4:
		zw := lz4.NewWriter(w)
		if _, err := zw.Write(body); err != nil {
			return err
		}
		return zw.Close()
	case CompressionZSTD:
		enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return err
		}
		if _, err := enc.Write(body); err != nil {
			_ = enc.Close()
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %d", ErrUnknownCompression, uint8(c))
	}
}

// Read decodes a snapshot written by Write.
func Read(r io.Reader) ([]lexical.Document, error) {
	var fixed [len(magic) + 3]byte
	if _, err := io.ReadFull(r, fixed[:]); err != nil {
		return nil, fmt.Errorf("snapshot: read header: %w", err)
	}

	if [4]byte(fixed[:4]) != magic {
		return nil, ErrBadMagic
	}
	if v := fixed[4]; v == 0 || v > Version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, v)
	}
	compression := Compression(fixed[5])

	name := make([]byte, fixed[6])
	if _, err := io.ReadFull(r, name); err != nil {
		return nil, fmt.Errorf("snapshot: read codec name: %w", err)
	}
	c, ok := codec.ByName(string(name))
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}

	body, err := readBody(r, compression)
	if err != nil {
		return nil, fmt.Errorf("snapshot: read body: %w", err)
	}

	var p payload
	if err := c.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("snapshot: decode: %w", err)
	}

	return p.Documents, nil
}

func readBody(r io.Reader, c Compression) ([]byte, error) {
	switch c {
	case CompressionNone:
		return io.ReadAll(r)
	case CompressionLZ4:
		return io.ReadAll(lz4.NewReader(r))
	case CompressionZSTD:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		return io.ReadAll(dec)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCompression, uint8(c))
	}
}
