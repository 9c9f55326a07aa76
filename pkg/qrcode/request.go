package qrcode

import (
	"fmt"
	"net/url"
	"strconv"
)

// Size bounds in pixels. The rendered image is at least Size pixels on each side.
const (
	DefaultSize = 1024
	MinSize     = 1
	MaxSize     = 4096
)

// Query parameter names understood by ParseRequest.
const (
	ParamData   = "data"
	ParamSize   = "size"
	ParamFormat = "format"
	ParamBase64 = "base64"
)

// Request is a validated render request.
type Request struct {
	Payload string
	Size    int
	Format  Format
	Base64  bool
}

// ParseRequest resolves a route filename and query values into a Request.
// The filename suffix is consulted for the format only when the format
// parameter is missing, empty or unrecognized.
func ParseRequest(filename string, query url.Values) (Request, error) {
	payload, ok := lookup(query, ParamData)
	if !ok {
		return Request{}, ErrMissingPayload
	}

	size, err := ParseSize(query.Get(ParamSize))
	if err != nil {
		return Request{}, err
	}

	b64, present := lookup(query, ParamBase64)

	return Request{
		Payload: payload,
		Size:    size,
		Format:  ResolveFormat(query.Get(ParamFormat), filename),
		Base64:  ParseBool(b64, present),
	}, nil
}

// ParseSize parses the size parameter. An empty value selects DefaultSize;
// parsed values are clamped to [MinSize, MaxSize].
func ParseSize(raw string) (int, error) {
	if raw == "" {
		return DefaultSize, nil
	}
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSize, raw)
	}
	return ClampSize(n), nil
}

// ClampSize limits n to [MinSize, MaxSize].
func ClampSize(n uint64) int {
	switch {
	case n < MinSize:
		return MinSize
	case n > MaxSize:
		return MaxSize
	default:
		return int(n)
	}
}

// ParseBool decodes a string-encoded flag. A parameter that is present with an
// empty value is true, while an absent parameter is false:
//
//	"on", "true", ""       -> true
//	"off", "false", other  -> false
//	absent                 -> false
func ParseBool(value string, present bool) bool {
	if !present {
		return false
	}
	switch value {
	case "on", "true", "":
		return true
	default:
		return false
	}
}

func lookup(query url.Values, key string) (string, bool) {
	vs, ok := query[key]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}
