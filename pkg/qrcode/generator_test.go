package qrcode_test

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrgen/pkg/qrcode"
)

func TestGeneratorRoundTrip(t *testing.T) {
	t.Parallel()

	g := qrcode.New()

	tests := []struct {
		format    qrcode.Format
		mediaType string
	}{
		{qrcode.FormatPNG, "image/png"},
		{qrcode.FormatJPEG, "image/jpeg"},
		{qrcode.FormatBMP, "image/bmp"},
		{qrcode.FormatSVG, "image/svg+xml"},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			t.Parallel()
			body, err := g.Generate(qrcode.Request{Payload: "hello", Size: 120, Format: tt.format})
			require.NoError(t, err)
			assert.Equal(t, tt.mediaType, body.MediaType)

			if tt.format == qrcode.FormatSVG {
				assert.Equal(t, "hello", requireScan(t, rasterizeSVG(t, body.Data)))
				return
			}
			img, _ := decodeImage(t, body.Data)
			assert.GreaterOrEqual(t, img.Bounds().Dx(), 120)
			assert.Equal(t, "hello", requireScan(t, img))
		})
	}
}

func TestGeneratorDefaultSize(t *testing.T) {
	t.Parallel()

	g := qrcode.New()

	absent, err := qrcode.ParseRequest("qr.png", url.Values{"data": {"hello"}})
	require.NoError(t, err)
	empty, err := qrcode.ParseRequest("qr.png", url.Values{"data": {"hello"}, "size": {""}})
	require.NoError(t, err)

	a, err := g.Generate(absent)
	require.NoError(t, err)
	b, err := g.Generate(empty)
	require.NoError(t, err)
	assert.Equal(t, a.Data, b.Data)

	img, _ := decodeImage(t, a.Data)
	assert.Equal(t, 1044, img.Bounds().Dx())
}

func TestGeneratorInvalidPayload(t *testing.T) {
	t.Parallel()

	g := qrcode.New()
	long := strings.Repeat("x", 5000)

	for _, format := range []qrcode.Format{qrcode.FormatPNG, qrcode.FormatSVG} {
		t.Run(format.String(), func(t *testing.T) {
			t.Parallel()
			_, err := g.Generate(qrcode.Request{Payload: long, Size: 100, Format: format})
			assert.ErrorIs(t, err, qrcode.ErrInvalidPayload)
		})
	}

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		_, err := g.Generate(qrcode.Request{Payload: "", Size: 100, Format: qrcode.FormatPNG})
		assert.ErrorIs(t, err, qrcode.ErrInvalidPayload)
	})
}

func TestGeneratorReservedFormats(t *testing.T) {
	t.Parallel()

	reserved := []qrcode.Format{qrcode.FormatGIF, qrcode.FormatTIFF, qrcode.FormatICO, qrcode.FormatWEBP}

	t.Run("rejected_by_default", func(t *testing.T) {
		t.Parallel()
		g := qrcode.New()
		for _, format := range reserved {
			_, err := g.Generate(qrcode.Request{Payload: "hello", Size: 50, Format: format})
			assert.ErrorIs(t, err, qrcode.ErrUnsupportedFormat, format.String())
		}
	})

	t.Run("rejected_before_encoding_payload", func(t *testing.T) {
		t.Parallel()
		g := qrcode.New()
		_, err := g.Generate(qrcode.Request{Payload: strings.Repeat("x", 5000), Size: 50, Format: qrcode.FormatGIF})
		assert.ErrorIs(t, err, qrcode.ErrUnsupportedFormat)
	})

	t.Run("fallback_to_png", func(t *testing.T) {
		t.Parallel()
		g := qrcode.New(qrcode.WithFormatFallback(true))
		for _, format := range reserved {
			body, err := g.Generate(qrcode.Request{Payload: "hello", Size: 50, Format: format})
			require.NoError(t, err, format.String())
			assert.Equal(t, "image/png", body.MediaType)
			_, codec := decodeImage(t, body.Data)
			assert.Equal(t, "png", codec)
		}
	})
}

func TestGeneratorReply(t *testing.T) {
	t.Parallel()

	g := qrcode.New()

	t.Run("raw", func(t *testing.T) {
		t.Parallel()
		reply, err := g.Reply(qrcode.Request{Payload: "hello", Size: 50, Format: qrcode.FormatSVG})
		require.NoError(t, err)
		assert.Equal(t, 200, reply.Status)
		assert.Equal(t, "image/svg+xml", reply.ContentType())
		assert.True(t, strings.HasPrefix(string(reply.Body), "<?xml"))
	})

	t.Run("base64_svg", func(t *testing.T) {
		t.Parallel()
		reply, err := g.Reply(qrcode.Request{Payload: "hello", Size: 50, Format: qrcode.FormatSVG, Base64: true})
		require.NoError(t, err)
		assert.Equal(t, "text/plain", reply.ContentType())
		assert.True(t, strings.HasPrefix(string(reply.Body), "data:image/svg+xml;base64,"))
	})

	t.Run("error", func(t *testing.T) {
		t.Parallel()
		_, err := g.Reply(qrcode.Request{Payload: "", Size: 50, Format: qrcode.FormatPNG})
		assert.ErrorIs(t, err, qrcode.ErrInvalidPayload)
	})
}

func TestGeneratorOptions(t *testing.T) {
	t.Parallel()

	t.Run("quiet_zone", func(t *testing.T) {
		t.Parallel()
		g := qrcode.New(qrcode.WithQuietZone(0))
		body, err := g.Generate(qrcode.Request{Payload: "hello", Size: 21, Format: qrcode.FormatPNG})
		require.NoError(t, err)
		img, _ := decodeImage(t, body.Data)
		assert.Equal(t, 21, img.Bounds().Dx())
	})

	t.Run("negative_quiet_zone_ignored", func(t *testing.T) {
		t.Parallel()
		g := qrcode.New(qrcode.WithQuietZone(-3))
		body, err := g.Generate(qrcode.Request{Payload: "hello", Size: 29, Format: qrcode.FormatPNG})
		require.NoError(t, err)
		img, _ := decodeImage(t, body.Data)
		assert.Equal(t, 29, img.Bounds().Dx())
	})

	t.Run("recovery_level", func(t *testing.T) {
		t.Parallel()
		payload := strings.Repeat("a", 40)
		low, err := qrcode.New(qrcode.WithRecoveryLevel(qrcode.RecoveryLow)).
			Generate(qrcode.Request{Payload: payload, Size: 1, Format: qrcode.FormatSVG})
		require.NoError(t, err)
		highest, err := qrcode.New(qrcode.WithRecoveryLevel(qrcode.RecoveryHighest)).
			Generate(qrcode.Request{Payload: payload, Size: 1, Format: qrcode.FormatSVG})
		require.NoError(t, err)
		assert.NotEqual(t, low.Data, highest.Data)
	})
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		g, err := qrcode.NewFromConfig(qrcode.DefaultConfig())
		require.NoError(t, err)
		body, err := g.Generate(qrcode.Request{Payload: "hello", Size: 1024, Format: qrcode.FormatPNG})
		require.NoError(t, err)
		img, _ := decodeImage(t, body.Data)
		assert.Equal(t, 1044, img.Bounds().Dx())
	})

	t.Run("fallback", func(t *testing.T) {
		t.Parallel()
		cfg := qrcode.DefaultConfig()
		cfg.FormatFallback = true
		g, err := qrcode.NewFromConfig(cfg)
		require.NoError(t, err)
		body, err := g.Generate(qrcode.Request{Payload: "hello", Size: 50, Format: qrcode.FormatWEBP})
		require.NoError(t, err)
		assert.Equal(t, "image/png", body.MediaType)
	})

	t.Run("options_override_config", func(t *testing.T) {
		t.Parallel()
		g, err := qrcode.NewFromConfig(qrcode.DefaultConfig(), qrcode.WithFormatFallback(true))
		require.NoError(t, err)
		_, err = g.Generate(qrcode.Request{Payload: "hello", Size: 50, Format: qrcode.FormatGIF})
		assert.NoError(t, err)
	})

	t.Run("invalid_recovery_level", func(t *testing.T) {
		t.Parallel()
		cfg := qrcode.DefaultConfig()
		cfg.RecoveryLevel = "extreme"
		_, err := qrcode.NewFromConfig(cfg)
		assert.ErrorIs(t, err, qrcode.ErrInvalidRecoveryLevel)
	})
}

func TestGeneratorHealthcheck(t *testing.T) {
	t.Parallel()

	g := qrcode.New()
	assert.NoError(t, g.Healthcheck(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, g.Healthcheck(ctx), context.Canceled)
}
