package money

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromDecimal(t *testing.T) {
	assert.Equal(t, Cents(7050), FromDecimal(70.50))
	assert.Equal(t, Cents(100), FromDecimal(1))
	assert.Equal(t, Cents(1), FromDecimal(0.005))
	assert.Equal(t, Cents(0), FromDecimal(0))
	// 19.99 is not exactly representable as a float; conversion must not
	// truncate to 1998
	assert.Equal(t, Cents(1999), FromDecimal(19.99))
}

func TestDecimal(t *testing.T) {
	assert.Equal(t, 283.50, Cents(28350).Decimal())
	assert.Equal(t, 0.01, Cents(1).Decimal())
}

func TestMul(t *testing.T) {
	assert.Equal(t, Cents(30000), Cents(10000).Mul(3))
	assert.Equal(t, Cents(0), Cents(10000).Mul(0))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, Cents(3000), Cents(30000).Percent(10))
	assert.Equal(t, Cents(1350), Cents(27000).Percent(5))
	// round half up
	assert.Equal(t, Cents(3), Cents(101).Percent(2.5))
	assert.Equal(t, Cents(0), Cents(10000).Percent(0))
	assert.Equal(t, Cents(10000), Cents(10000).Percent(100))
}

func TestString(t *testing.T) {
	assert.Equal(t, "283.50", Cents(28350).String())
	assert.Equal(t, "0.05", Cents(5).String())
	assert.Equal(t, "-1.25", Cents(-125).String())
}

func TestJSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(Cents(28350))
	require.NoError(t, err)
	assert.Equal(t, "283.50", string(data))

	var c Cents
	require.NoError(t, json.Unmarshal([]byte("70.5"), &c))
	assert.Equal(t, Cents(7050), c)

	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &c))
}
