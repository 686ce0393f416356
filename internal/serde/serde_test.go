package serde

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Name  string  `json:"apnName"`
	Proxy *string `json:"proxy,omitempty"`
}

func TestMarshalJson(t *testing.T) {
	data, err := MarshalJson(record{Name: "cmnet"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"apnName":"cmnet"}`, string(data))

	other, err := MarshalJson(record{Name: "cmwap"})
	require.NoError(t, err)

	assert.JSONEq(t, `{"apnName":"cmnet"}`, string(data), "earlier results must not be overwritten")
	assert.JSONEq(t, `{"apnName":"cmwap"}`, string(other))
}

func TestUnmarshalJson(t *testing.T) {
	var r record
	require.NoError(t, UnmarshalJson([]byte(`{"apnName":"cmwap","proxy":"10.0.0.172"}`), &r))

	assert.Equal(t, "cmwap", r.Name)
	require.NotNil(t, r.Proxy)
	assert.Equal(t, "10.0.0.172", *r.Proxy)

	assert.Error(t, UnmarshalJson([]byte(`{"apnName":`), &r))
}
