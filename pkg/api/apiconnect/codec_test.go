package apiconnect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/debtbook/pkg/api"
)

func TestCodec(t *testing.T) {
	var c Codec
	assert.Equal(t, "json", c.Name())

	data, err := c.Marshal(&api.AddPersonRequest{Name: "Anna"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Anna"}`, string(data))

	var req api.AddTransactionRequest
	require.NoError(t, c.Unmarshal([]byte(`{"kind":"lent","amount":"12,50"}`), &req))
	assert.Equal(t, "lent", req.Kind)
	assert.Equal(t, "12,50", req.Amount)

	var empty api.GetSummaryRequest
	assert.NoError(t, c.Unmarshal(nil, &empty))

	assert.Error(t, c.Unmarshal([]byte(`{"name":`), &api.AddPersonRequest{}))
}
