package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCPU() Hardware {
	return Hardware{
		ID:    "cpu-001",
		Type:  TypeCPU,
		Name:  "Intel Core i9-14900K",
		Price: 4299,
		Specs: CPUSpecs{Cores: 24, Threads: 32, Socket: "LGA1700", TDP: 253},
	}
}

func TestHardwareValidate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		require.NoError(t, testCPU().Validate())
	})

	t.Run("SpecsMismatch", func(t *testing.T) {
		h := testCPU()
		h.Specs = GPUSpecs{VRAM: 24, Length: 336, Slots: 3.5}
		err := h.Validate()
		require.ErrorIs(t, err, ErrInvalidHardware)
		assert.Contains(t, err.Error(), "do not match")
	})

	t.Run("MissingSpecs", func(t *testing.T) {
		h := testCPU()
		h.Specs = nil
		require.ErrorIs(t, h.Validate(), ErrInvalidHardware)
	})

	t.Run("UnknownType", func(t *testing.T) {
		h := testCPU()
		h.Type = "monitor"
		require.ErrorIs(t, h.Validate(), ErrInvalidHardware)
	})

	t.Run("NonPositivePrice", func(t *testing.T) {
		h := testCPU()
		h.Price = 0
		require.ErrorIs(t, h.Validate(), ErrInvalidHardware)
	})

	t.Run("MissingRequiredField", func(t *testing.T) {
		h := testCPU()
		h.Specs = CPUSpecs{Cores: 24, Threads: 32}
		err := h.Validate()
		require.ErrorIs(t, err, ErrInvalidHardware)
		assert.Contains(t, err.Error(), "socket is required")
	})

	t.Run("BadEnum", func(t *testing.T) {
		h := Hardware{
			ID:    "ssd-009",
			Type:  TypeStorage,
			Price: 100,
			Specs: StorageSpecs{Capacity: 1000, Kind: "Tape"},
		}
		err := h.Validate()
		require.ErrorIs(t, err, ErrInvalidHardware)
		assert.Contains(t, err.Error(), `"Tape"`)
	})
}

func TestHardwareSpecsAccessors(t *testing.T) {
	h := testCPU()

	cpu, ok := h.CPU()
	require.True(t, ok)
	assert.Equal(t, "LGA1700", cpu.Socket)

	_, ok = h.GPU()
	assert.False(t, ok)
	_, ok = h.Case()
	assert.False(t, ok)
}

func TestScalePrice(t *testing.T) {
	factor := decimal.RequireFromString("1.15")

	assert.Equal(t, int64(4944), ScalePrice(4299, factor))
	// 10 * 1.15 is exactly 11.5 and rounds up.
	assert.Equal(t, int64(12), ScalePrice(10, factor))
	assert.Equal(t, int64(4299), ScalePrice(4299, decimal.NewFromInt(1)))
}

func TestJitterPrice(t *testing.T) {
	assert.Equal(t, int64(4084), JitterPrice(4299, -0.05))
	assert.Equal(t, int64(4514), JitterPrice(4299, 0.0499999))
	assert.Equal(t, int64(4299), JitterPrice(4299, 0))
}

func TestNewCompatibilityResult(t *testing.T) {
	warning := CompatibilityIssue{Severity: SeverityWarning, Code: "COOLER_UNDERRATED"}
	issue := CompatibilityIssue{Severity: SeverityError, Code: "SOCKET_MISMATCH"}

	ok := NewCompatibilityResult(nil, []CompatibilityIssue{warning})
	assert.True(t, ok.IsCompatible)
	assert.NotNil(t, ok.Issues)
	require.NoError(t, ok.Validate())

	bad := NewCompatibilityResult([]CompatibilityIssue{issue}, nil)
	assert.False(t, bad.IsCompatible)
	assert.NotNil(t, bad.Warnings)
	require.NoError(t, bad.Validate())
}

func TestCompatibilityResultValidate(t *testing.T) {
	issue := CompatibilityIssue{Severity: SeverityError, Code: "SOCKET_MISMATCH"}

	forged := CompatibilityResult{IsCompatible: true, Issues: []CompatibilityIssue{issue}}
	require.ErrorIs(t, forged.Validate(), ErrInconsistentResult)

	misfiled := NewCompatibilityResult(nil, []CompatibilityIssue{issue})
	require.ErrorIs(t, misfiled.Validate(), ErrInconsistentResult)
}

func TestBuildConfigParts(t *testing.T) {
	cpu := testCPU()
	ssd := Hardware{ID: "ssd-001", Type: TypeStorage}
	b := BuildConfig{CPU: &cpu, Storage: []Hardware{ssd, ssd}}

	parts := b.Parts()
	require.Len(t, parts, 3)
	assert.Equal(t, "cpu-001", parts[0].ID)
	assert.Equal(t, "ssd-001", parts[2].ID)
}
