package money

import (
	"encoding/json"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeInt(t *testing.T) {
	cases := []struct {
		in   any
		want int64
	}{
		{nil, 0},
		{"", 0},
		{"0", 0},
		{"1,234,567", 1234567},
		{"  42", 42},
		{"12abc", 12},
		{"abc", 0},
		{"-300", -300},
		{"3.99", 3},
		{1500, 1500},
		{int64(-7), -7},
		{2.9, 2},
		{-2.9, -2},
		{math.NaN(), 0},
		{true, 0},
		{json.Number("8000"), 8000},
		{Amount(250), 250},
		{[]int{1}, 0},
	}
	for _, c := range cases {
		assert.Equalf(t, c.want, SafeInt(c.in), "SafeInt(%#v)", c.in)
	}
}

func TestSafeIntSaturates(t *testing.T) {
	assert.Equal(t, int64(math.MaxInt64), SafeInt("99999999999999999999999"))
	assert.Equal(t, int64(math.MaxInt64), SafeInt(uint64(math.MaxUint64)))
}

func TestSafeIntIdempotent(t *testing.T) {
	inputs := []any{nil, "", "1,000", "12abc", "-5", 3.7, "x", "99999999999999999999999", 0, "+9"}
	for _, in := range inputs {
		first := SafeInt(in)
		again := SafeInt(strconv.FormatInt(first, 10))
		assert.Equalf(t, first, again, "SafeInt not idempotent for %#v", in)
	}
}

func TestFormat(t *testing.T) {
	require.NoError(t, SetLocale("en"))

	assert.Equal(t, "1,234,567", Format(1234567))
	assert.Equal(t, "1,000", Format("1,000"))
	assert.Equal(t, "-2,500", Format(-2500))
	assert.Equal(t, "12", Format(12.9))
	assert.Equal(t, "0", Format(nil))
	assert.Equal(t, "0", Format("12abc"))
	assert.Equal(t, "0", Format("not a number"))
	assert.Equal(t, "0", Format(math.NaN()))
	assert.Equal(t, "0", Format(""))
	assert.Equal(t, "8,000", Format(Amount(8000)))
}

func TestSetLocaleRejectsGarbage(t *testing.T) {
	assert.Error(t, SetLocale("not a ~ locale"))
	assert.Equal(t, "1,000", Format(1000))
}

func TestAmountUnmarshalLenient(t *testing.T) {
	var v struct {
		A Amount `json:"a"`
		B Amount `json:"b"`
		C Amount `json:"c"`
		D Amount `json:"d"`
		E Amount `json:"e"`
	}
	err := json.Unmarshal([]byte(`{"a": 300000, "b": "240,000", "c": null, "d": "oops", "e": 12.75}`), &v)
	require.NoError(t, err)

	assert.Equal(t, Amount(300000), v.A)
	assert.Equal(t, Amount(240000), v.B)
	assert.Equal(t, Amount(0), v.C)
	assert.Equal(t, Amount(0), v.D)
	assert.Equal(t, Amount(12), v.E)

	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":300000,"b":240000,"c":0,"d":0,"e":12}`, string(out))
}
