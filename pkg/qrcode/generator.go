package qrcode

import (
	"context"
	"fmt"
)

// Config holds generator settings with environment variable support.
type Config struct {
	RecoveryLevel  string `env:"QR_RECOVERY_LEVEL" envDefault:"medium"`
	QuietZone      int    `env:"QR_QUIET_ZONE" envDefault:"4"`
	JPEGQuality    int    `env:"QR_JPEG_QUALITY" envDefault:"75"`
	FormatFallback bool   `env:"QR_FORMAT_FALLBACK" envDefault:"false"`
}

// DefaultConfig returns a Config with the package defaults.
func DefaultConfig() Config {
	return Config{
		RecoveryLevel: RecoveryMedium.String(),
		QuietZone:     DefaultQuietZone,
		JPEGQuality:   DefaultJPEGQuality,
	}
}

// Generator runs the render pipeline for validated requests.
// It is immutable after construction and safe for concurrent use.
type Generator struct {
	level          RecoveryLevel
	quietZone      int
	jpegQuality    int
	formatFallback bool
}

// Option configures a Generator.
type Option func(*Generator)

// WithRecoveryLevel sets the symbol error correction level.
func WithRecoveryLevel(level RecoveryLevel) Option {
	return func(g *Generator) {
		g.level = level
	}
}

// WithQuietZone sets the border width in modules.
func WithQuietZone(modules int) Option {
	return func(g *Generator) {
		if modules >= 0 {
			g.quietZone = modules
		}
	}
}

// WithJPEGQuality sets the JPEG encoder quality.
func WithJPEGQuality(quality int) Option {
	return func(g *Generator) {
		if quality >= 1 && quality <= 100 {
			g.jpegQuality = quality
		}
	}
}

// WithFormatFallback makes reserved formats render as PNG instead of failing
// with ErrUnsupportedFormat.
func WithFormatFallback(enabled bool) Option {
	return func(g *Generator) {
		g.formatFallback = enabled
	}
}

// New creates a Generator. Defaults: medium recovery, 4-module quiet zone,
// JPEG quality 75, reserved formats rejected.
func New(opts ...Option) *Generator {
	g := &Generator{
		level:       RecoveryMedium,
		quietZone:   DefaultQuietZone,
		jpegQuality: DefaultJPEGQuality,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NewFromConfig creates a Generator from configuration.
// Additional options override config values.
func NewFromConfig(cfg Config, opts ...Option) (*Generator, error) {
	level, err := ParseRecoveryLevel(cfg.RecoveryLevel)
	if err != nil {
		return nil, err
	}

	configOpts := []Option{
		WithRecoveryLevel(level),
		WithQuietZone(cfg.QuietZone),
		WithFormatFallback(cfg.FormatFallback),
	}
	if cfg.JPEGQuality > 0 {
		configOpts = append(configOpts, WithJPEGQuality(cfg.JPEGQuality))
	}

	return New(append(configOpts, opts...)...), nil
}

// Generate renders req into an encoded body.
func (g *Generator) Generate(req Request) (Body, error) {
	format, err := g.outputFormat(req.Format)
	if err != nil {
		return Body{}, err
	}

	m, err := NewMatrix(req.Payload, g.level)
	if err != nil {
		return Body{}, err
	}

	switch img := Render(m, req.Size, format, RenderOptions{QuietZone: g.quietZone}).(type) {
	case VectorDocument:
		return img.Body(), nil
	case PixelBuffer:
		return Encode(img, format, EncodeOptions{JPEGQuality: g.jpegQuality})
	default:
		return Body{}, fmt.Errorf("%w: unexpected image %T", ErrEncodeFailure, img)
	}
}

// Reply renders req and assembles the final reply.
func (g *Generator) Reply(req Request) (Reply, error) {
	body, err := g.Generate(req)
	if err != nil {
		return Reply{}, err
	}
	return Assemble(body, req.Base64), nil
}

// Healthcheck renders a small probe symbol through the whole pipeline.
// It matches the func(context.Context) error signature of readiness checks.
func (g *Generator) Healthcheck(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := g.Generate(Request{Payload: "healthcheck", Size: MinSize, Format: FormatPNG})
	return err
}

// outputFormat applies the reserved-format policy before any rendering work.
func (g *Generator) outputFormat(f Format) (Format, error) {
	if f.Encodable() {
		return f, nil
	}
	if g.formatFallback {
		return FormatPNG, nil
	}
	return f, fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
}
