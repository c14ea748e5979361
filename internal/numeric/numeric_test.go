package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFix(t *testing.T) {
	tests := []struct {
		name     string
		num      float64
		min, max float64
		digits   int
		want     float64
	}{
		{"below min", -5, 0, 1, 3, 0},
		{"above max", 300, 0, 255, 0, 255},
		{"rounds half up", 0.123456, 0, 1, 4, 0.1235},
		{"integer untouched", 42, 0, 100, 3, 42},
		{"no limits", -12.3456, NoLimit, NoLimit, 2, -12.35},
		{"nan input", math.NaN(), 0, 1, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Fix(tt.num, tt.min, tt.max, tt.digits), 1e-12)
		})
	}
}

func TestRoundNeverReturnsNegativeZero(t *testing.T) {
	got := Round(-0.0001, 2)
	assert.False(t, math.Signbit(got))
	assert.Equal(t, "0", Format(got))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "50", Format(50))
	assert.Equal(t, "0.5", Format(0.5))
	assert.Equal(t, "33.3", Format(33.3))
	assert.Equal(t, "0", Format(math.Copysign(0, -1)))
}

func TestWrap(t *testing.T) {
	assert.Equal(t, 0.0, Wrap(360, 360))
	assert.Equal(t, 90.0, Wrap(450, 360))
	assert.Equal(t, 270.0, Wrap(-90, 360))
	assert.InDelta(t, 0.5, Wrap(-1.5, 1), 1e-12)
	assert.Equal(t, 0.0, Wrap(5, 0))
}

func TestClamp01AndUnit(t *testing.T) {
	assert.Equal(t, 0.0, Clamp01(-1))
	assert.Equal(t, 1.0, Clamp01(2))
	assert.Equal(t, 0.0, Clamp01(math.NaN()))
	assert.Equal(t, 0.50196, Unit(128.0/255))
}
