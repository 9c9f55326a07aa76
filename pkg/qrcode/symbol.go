package qrcode

import (
	"fmt"
	"strings"

	goqrcode "github.com/skip2/go-qrcode"
)

// quietZoneModules is the border go-qrcode adds around every bitmap.
const quietZoneModules = 4

// RecoveryLevel is the error correction level of the symbol.
type RecoveryLevel int

const (
	RecoveryLow RecoveryLevel = iota
	RecoveryMedium
	RecoveryHigh
	RecoveryHighest
)

// ParseRecoveryLevel maps "low", "medium", "high" or "highest" to a RecoveryLevel.
// An empty name selects RecoveryMedium.
func ParseRecoveryLevel(name string) (RecoveryLevel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "low":
		return RecoveryLow, nil
	case "", "medium":
		return RecoveryMedium, nil
	case "high":
		return RecoveryHigh, nil
	case "highest":
		return RecoveryHighest, nil
	default:
		return RecoveryMedium, fmt.Errorf("%w: %q", ErrInvalidRecoveryLevel, name)
	}
}

func (l RecoveryLevel) String() string {
	switch l {
	case RecoveryLow:
		return "low"
	case RecoveryHigh:
		return "high"
	case RecoveryHighest:
		return "highest"
	default:
		return "medium"
	}
}

func (l RecoveryLevel) goqrcode() goqrcode.RecoveryLevel {
	switch l {
	case RecoveryLow:
		return goqrcode.Low
	case RecoveryHigh:
		return goqrcode.High
	case RecoveryHighest:
		return goqrcode.Highest
	default:
		return goqrcode.Medium
	}
}

// Matrix is an immutable square grid of QR modules without the quiet zone.
type Matrix struct {
	modules [][]bool
	version int
}

// NewMatrix encodes payload into a QR symbol. It fails with ErrInvalidPayload
// when the payload is empty or exceeds the capacity of the largest version.
func NewMatrix(payload string, level RecoveryLevel) (Matrix, error) {
	code, err := goqrcode.New(payload, level.goqrcode())
	if err != nil {
		return Matrix{}, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	bitmap := code.Bitmap()
	n := len(bitmap) - 2*quietZoneModules
	if n <= 0 {
		return Matrix{}, fmt.Errorf("%w: empty symbol", ErrInvalidPayload)
	}

	modules := make([][]bool, n)
	for y := range modules {
		row := bitmap[y+quietZoneModules]
		modules[y] = row[quietZoneModules : quietZoneModules+n]
	}

	return Matrix{modules: modules, version: code.VersionNumber}, nil
}

// Size returns the number of modules per side.
func (m Matrix) Size() int {
	return len(m.modules)
}

// Version returns the symbol version (1-40).
func (m Matrix) Version() int {
	return m.version
}

// Dark reports whether the module at column x and row y is dark.
// Coordinates outside the symbol are light.
func (m Matrix) Dark(x, y int) bool {
	if y < 0 || y >= len(m.modules) || x < 0 || x >= len(m.modules[y]) {
		return false
	}
	return m.modules[y][x]
}
