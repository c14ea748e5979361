package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/colorhelper/internal/color"
	"github.com/alexisbeaulieu97/colorhelper/internal/notation"
)

func TestNewSeedsDefaults(t *testing.T) {
	m := New(notation.Default())

	assert.Equal(t, true, m.Apply("rgb")[notation.OptRGBPercent])
	assert.Equal(t, false, m.Apply("rgb")[notation.OptAlphaPercent])
	assert.Equal(t, notation.UnitNone, m.Apply("hsl")[notation.OptHueUnit])
	assert.Equal(t, true, m.Apply("cmyk")[notation.OptCMYKPercent])
	assert.Equal(t, true, m.Apply("gray")[notation.OptGrayPercent])
	assert.Empty(t, m.Apply("named"))
	assert.Empty(t, m.Apply("unknown"))
}

func TestCaptureMergesOnlyPresentKeys(t *testing.T) {
	m := New(notation.Default())

	m.Capture("hex", notation.Values{notation.OptUppercase: true})
	m.Capture("hex", notation.Values{notation.OptLongForm: false})

	hex := m.Apply("hex")
	assert.Equal(t, true, hex[notation.OptUppercase])
	assert.Equal(t, false, hex[notation.OptLongForm])
	assert.Equal(t, false, hex[notation.OptAlphaAlways])
}

func TestCaptureValidates(t *testing.T) {
	m := New(notation.Default())

	m.Capture("hsl", notation.Values{
		notation.OptHueUnit: "turn",
		"bogus":             true,
	})
	assert.Equal(t, "turn", m.Apply("hsl")[notation.OptHueUnit])
	assert.NotContains(t, m.Apply("hsl"), "bogus")

	m.Capture("hsl", notation.Values{notation.OptHueUnit: "minutes"})
	assert.Equal(t, "turn", m.Apply("hsl")[notation.OptHueUnit])

	m.Capture("rgb", notation.Values{notation.OptRGBPercent: 0})
	assert.Equal(t, false, m.Apply("rgb")[notation.OptRGBPercent])

	m.Capture("nope", notation.Values{notation.OptRGBPercent: true})
	assert.Empty(t, m.Apply("nope"))
}

func TestSetExternalAndSnapshot(t *testing.T) {
	m := New(notation.Default())

	m.SetExternal(Bag{
		"rgb":     {notation.OptRGBPercent: false, notation.OptAlphaAlways: "yes"},
		"hwb":     {notation.OptHueUnit: "grad"},
		"hsb":     {notation.OptHueUnit: 12},
		"unknown": {"x": 1},
	})

	snap := m.Snapshot()
	assert.Equal(t, false, snap["rgb"][notation.OptRGBPercent])
	assert.Equal(t, true, snap["rgb"][notation.OptAlphaAlways])
	assert.Equal(t, "grad", snap["hwb"][notation.OptHueUnit])
	assert.Equal(t, notation.UnitNone, snap["hsb"][notation.OptHueUnit])
	assert.NotContains(t, snap, "unknown")

	snap["rgb"][notation.OptRGBPercent] = true
	assert.Equal(t, false, m.Apply("rgb")[notation.OptRGBPercent], "snapshot must be a copy")

	restored := New(notation.Default())
	restored.SetExternal(m.Snapshot())
	assert.Equal(t, m.Snapshot(), restored.Snapshot())
}

func TestApplyReturnsCopy(t *testing.T) {
	m := New(notation.Default())
	values := m.Apply("rgb")
	values[notation.OptRGBPercent] = false
	assert.Equal(t, true, m.Apply("rgb")[notation.OptRGBPercent])
}

func TestFallbackAndClone(t *testing.T) {
	m := New(notation.Default())
	require.Nil(t, m.Fallback())

	red := color.FromRGB(1, 0, 0)
	m.SetFallback(&notation.Fallback{Token: "red", Color: red})
	require.NotNil(t, m.Fallback())
	assert.Equal(t, "red", m.Fallback().Token)

	clone := m.Clone()
	clone.Capture("rgb", notation.Values{notation.OptRGBPercent: false})
	clone.SetFallback(&notation.Fallback{})
	assert.Nil(t, clone.Fallback())
	assert.Equal(t, "red", m.Fallback().Token)
	assert.Equal(t, true, m.Apply("rgb")[notation.OptRGBPercent])

	m.Capture("hex", notation.Values{notation.OptUppercase: true})
	m.Reset()
	assert.Nil(t, m.Fallback())
	assert.Equal(t, false, m.Apply("hex")[notation.OptUppercase])
	assert.Equal(t, New(m.reg).Snapshot(), m.Snapshot())
}
