package annuity_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meenmo/tvm/annuity"
)

func TestParsePaymentTiming(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]annuity.PaymentTiming{
		"":       annuity.End,
		"end":    annuity.End,
		"END":    annuity.End,
		"0":      annuity.End,
		"begin":  annuity.Begin,
		" Start": annuity.Begin,
		"1":      annuity.Begin,
	} {
		got, err := annuity.ParsePaymentTiming(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}

	_, err := annuity.ParsePaymentTiming("middle")
	assert.ErrorIs(t, err, annuity.ErrUnknownTiming)
}

func TestPaymentTiming_Adjustment(t *testing.T) {
	t.Parallel()

	var zero annuity.PaymentTiming
	assert.Equal(t, annuity.End, zero)
	assert.Equal(t, 0.0, annuity.End.Adjustment())
	assert.Equal(t, 1.0, annuity.Begin.Adjustment())
}

func TestPaymentTiming_JSON(t *testing.T) {
	t.Parallel()

	var in struct {
		When annuity.PaymentTiming `json:"when"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"when": "begin"}`), &in))
	assert.Equal(t, annuity.Begin, in.When)

	b, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"when": "begin"}`, string(b))

	err = json.Unmarshal([]byte(`{"when": "later"}`), &in)
	assert.ErrorIs(t, err, annuity.ErrUnknownTiming)
}

func TestPaymentTiming_JSONNumber(t *testing.T) {
	t.Parallel()

	var in struct {
		When annuity.PaymentTiming `json:"when"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"when": 1}`), &in))
	assert.Equal(t, annuity.Begin, in.When)

	require.NoError(t, json.Unmarshal([]byte(`{"when": 0}`), &in))
	assert.Equal(t, annuity.End, in.When)

	in.When = annuity.Begin
	require.NoError(t, json.Unmarshal([]byte(`{"when": null}`), &in))
	assert.Equal(t, annuity.Begin, in.When)

	err := json.Unmarshal([]byte(`{"when": 2}`), &in)
	assert.ErrorIs(t, err, annuity.ErrUnknownTiming)
}
