package ledgerv1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONCodec_UnmarshalErrorsNameFields(t *testing.T) {
	var c jsonCodec

	var req CreateExpenseRequest
	err := c.Unmarshal([]byte(`{"amount_cents":"lots"}`), &req)
	require.Error(t, err)
	assert.Equal(t, "field amount_cents: unexpected string", err.Error())

	err = c.Unmarshal([]byte(`{"amount_cents":`), &req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed JSON")

	require.NoError(t, c.Unmarshal(nil, &req))
	require.NoError(t, c.Unmarshal([]byte(`{"amount_cents":1250.5}`), &req))
	assert.Equal(t, 1250.5, req.AmountCents)
}
