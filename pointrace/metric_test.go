package pointrace

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestParseMetric(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Reading
	}{
		{name: "plain digits", text: "12345", want: Reading{Value: 12345, OK: true}},
		{name: "ten-thousand suffix", text: "23万", want: Reading{Value: 230000, OK: true}},
		{name: "single digit suffix", text: "5万", want: Reading{Value: 50000, OK: true}},
		{name: "zero", text: "0", want: Reading{Value: 0, OK: true}},
		{name: "leading zeros", text: "007", want: Reading{Value: 7, OK: true}},
		{name: "empty", text: "", want: Unreadable},
		{name: "bare suffix", text: "万", want: Unreadable},
		{name: "letters", text: "abc", want: Unreadable},
		{name: "decimal with suffix", text: "1.5万", want: Unreadable},
		{name: "negative", text: "-300", want: Unreadable},
		{name: "thousands separator", text: "1,000", want: Unreadable},
		{name: "inner space", text: "12 345", want: Unreadable},
		{name: "suffix not trailing", text: "万23", want: Unreadable},
		{name: "double suffix", text: "2万万", want: Unreadable},
		{name: "fullwidth digits", text: "１２", want: Unreadable},
		{name: "overflow", text: "99999999999999999999", want: Unreadable},
		{name: "overflow after suffix", text: "9999999999999999万", want: Unreadable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseMetric(tt.text))
		})
	}
}

func TestProperty_ParseMetric_Suffix(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		d := rapid.Int64Range(1, 1e12).Draw(rt, "digits")
		got := ParseMetric(strconv.FormatInt(d, 10) + TenThousandSuffix)
		assert.True(rt, got.OK)
		assert.Equal(rt, d*10000, got.Value)
	})
}

func TestProperty_ParseMetric_PlainDigits(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		v := rapid.Int64Min(0).Draw(rt, "value")
		assert.Equal(rt, Reading{Value: v, OK: true}, ParseMetric(strconv.FormatInt(v, 10)))
	})
}

func TestProperty_ParseMetric_NonDigitIsUnreadable(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		prefix := rapid.StringMatching(`[0-9]{0,6}`).Draw(rt, "prefix")
		bad := rapid.SampledFrom([]string{".", ",", "-", "+", " ", "a", "O", "万"}).Draw(rt, "bad")
		suffix := rapid.StringMatching(`[0-9]{1,6}`).Draw(rt, "suffix")
		assert.False(rt, ParseMetric(prefix+bad+suffix).OK)
	})
}

func TestProperty_ParseMetric_Deterministic(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		text := rapid.String().Draw(rt, "text")
		assert.Equal(rt, ParseMetric(text), ParseMetric(text))
	})
}

func TestInWan(t *testing.T) {
	assert.Equal(t, "23万", inWan(230000))
	assert.Equal(t, "0万", inWan(9999))
}
