package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecimal(t *testing.T) {
	d, err := ParseDecimal("100.50")
	require.NoError(t, err)
	assert.Equal(t, "100.50", d.String())

	_, err = ParseDecimal("not-a-number")
	assert.Error(t, err)
}

func TestParseDecimalCoercesNonFinite(t *testing.T) {
	for _, input := range []string{"NaN", "nan", "Inf", "-Infinity"} {
		d, err := ParseDecimal(input)
		require.NoError(t, err, input)
		assert.True(t, d.IsZero(), input)
	}
}

func TestDecimalAdd(t *testing.T) {
	a, err := ParseDecimal("0.1")
	require.NoError(t, err)
	b, err := ParseDecimal("0.2")
	require.NoError(t, err)
	assert.Equal(t, "0.3", a.Add(b).String())
}

func TestDecimalJSON(t *testing.T) {
	d, err := ParseDecimal("12.345")
	require.NoError(t, err)
	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, "12.345", string(b))

	var back Decimal
	require.NoError(t, json.Unmarshal([]byte("99.9"), &back))
	assert.Equal(t, "99.9", back.String())
}

func TestDecimalDynamoRoundTrip(t *testing.T) {
	d, err := ParseDecimal("42.01")
	require.NoError(t, err)
	av, err := d.MarshalDynamo()
	require.NoError(t, err)
	require.NotNil(t, av.N)
	assert.Equal(t, "42.01", *av.N)

	var back Decimal
	require.NoError(t, back.UnmarshalDynamo(av))
	assert.Zero(t, d.Cmp(back))
}

func TestDecimalZeroValue(t *testing.T) {
	var d Decimal
	assert.Equal(t, "0", d.String())
	assert.True(t, d.IsZero())
}
