package digits

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromUint(t *testing.T) {
	tests := []struct {
		name  string
		v     uint64
		width int
		want  []uint8
	}{
		{"pads with zeros", 1234, 6, []uint8{0, 0, 1, 2, 3, 4}},
		{"exact width", 11144477735, 11, []uint8{1, 1, 1, 4, 4, 4, 7, 7, 7, 3, 5}},
		{"keeps least significant digits", 987654321, 4, []uint8{4, 3, 2, 1}},
		{"zero value", 0, 3, []uint8{0, 0, 0}},
		{"zero width", 42, 0, []uint8{}},
		{"negative width", 42, -1, []uint8{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromUint(tt.v, tt.width))
		})
	}
}

func TestToUint(t *testing.T) {
	v, ok := ToUint([]uint8{0, 0, 1, 2, 3})
	assert.True(t, ok)
	assert.Equal(t, uint64(123), v)

	_, ok = ToUint([]uint8{1, 10})
	assert.False(t, ok, "non-decimal element")

	_, ok = ToUint(FromUint(math.MaxUint64, 20))
	assert.True(t, ok, "max uint64 fits")

	_, ok = ToUint([]uint8{1, 8, 4, 4, 6, 7, 4, 4, 0, 7, 3, 7, 0, 9, 5, 5, 1, 6, 1, 6})
	assert.False(t, ok, "max uint64 + 1 overflows")
}

func TestStrip(t *testing.T) {
	assert.Equal(t, "11144477735", Strip("111.444.777-35"))
	assert.Equal(t, "11222333000181", Strip("11.222.333/0001-81"))
	assert.Equal(t, "", Strip("abc./-"))
	assert.Equal(t, "21", Strip("１2٣1"), "only ASCII digits survive")
}

func TestParseUint(t *testing.T) {
	v, ok := ParseUint("111.444.777-35")
	assert.True(t, ok)
	assert.Equal(t, uint64(11144477735), v)

	_, ok = ParseUint("no digits")
	assert.False(t, ok)

	_, ok = ParseUint("99999999999999999999999")
	assert.False(t, ok, "overflow")
}

func TestFromString(t *testing.T) {
	ds, ok := FromString("0123")
	assert.True(t, ok)
	assert.Equal(t, []uint8{0, 1, 2, 3}, ds)

	_, ok = FromString("01a3")
	assert.False(t, ok)
}

func TestExtract(t *testing.T) {
	assert.Equal(t, []uint8{1, 2, 3, 4}, Extract("12.3a4"))
	assert.Equal(t, []uint8{1, 2, 3, 4, 5, 6, 7, 8, 9}, Extract("123.456.789"))
	assert.Empty(t, Extract("abc"))
	assert.Empty(t, Extract(""))
}

func TestPad(t *testing.T) {
	assert.Equal(t, "00000000042", Pad(42, 11))
	assert.Equal(t, "12345", Pad(12345, 3), "never truncates")
	assert.Equal(t, "0", Pad(0, 0))
}
