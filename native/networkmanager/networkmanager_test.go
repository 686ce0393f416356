//go:build linux

package networkmanager

import (
	"testing"

	nm "github.com/Wifx/gonetworkmanager"
	"github.com/stretchr/testify/assert"

	"github.com/darkhz/celldata/api/cellular"
)

func TestConnectionState(t *testing.T) {
	tests := []struct {
		device nm.NmDeviceState
		state  cellular.ConnectionState
	}{
		{nm.NmDeviceStateActivated, cellular.StateConnected},
		{nm.NmDeviceStateDisconnected, cellular.StateDisconnected},
		{nm.NmDeviceStateUnavailable, cellular.StateDisconnected},
		{nm.NmDeviceStateDeactivating, cellular.StateDisconnected},
		{nm.NmDeviceStateFailed, cellular.StateDisconnected},
		{nm.NmDeviceStateUnknown, cellular.StateUnknown},
		{nm.NmDeviceStateUnmanaged, cellular.StateUnknown},
		{nm.NmDeviceStatePrepare, cellular.StateConnecting},
		{nm.NmDeviceStateNeedAuth, cellular.StateConnecting},
		{nm.NmDeviceStateIpConfig, cellular.StateConnecting},
	}

	for _, test := range tests {
		assert.Equal(t, test.state, connectionState(test.device), test.device.String())
	}
}

func TestProfileApn(t *testing.T) {
	p := profile{settings: nm.ConnectionSettings{
		"connection": {"id": "China Mobile"},
		gsmSetting: {
			"apn":        "cmnet",
			"username":   "guest",
			"network-id": "46000",
		},
	}}

	assert.Equal(t, cellular.NativeApnInfo{
		ApnName: "China Mobile",
		Apn:     "cmnet",
		Mcc:     "460",
		Mnc:     "00",
		User:    "guest",
		Type:    "default",
	}, p.apn())
}

func TestProfileApnWithoutNetworkID(t *testing.T) {
	for _, settings := range []nm.ConnectionSettings{
		{gsmSetting: {"apn": "internet"}},
		{gsmSetting: {"apn": "internet", "network-id": "460"}},
		{gsmSetting: {"apn": "internet", "network-id": 46000}},
	} {
		info := profile{settings: settings}.apn()

		assert.Equal(t, "internet", info.Apn)
		assert.Empty(t, info.ApnName)
		assert.Empty(t, info.Mcc)
		assert.Empty(t, info.Mnc)
	}
}

func TestMatches(t *testing.T) {
	record := cellular.NativeApnInfo{
		ApnName: "cmnet",
		Apn:     "cmnet",
		Mcc:     "460",
		Mnc:     "00",
		Type:    "default",
	}

	assert.True(t, matches(cellular.NativeApnInfo{}, record))
	assert.True(t, matches(cellular.NativeApnInfo{Apn: "cmnet", Mcc: "460"}, record))
	assert.True(t, matches(record, record))

	assert.False(t, matches(cellular.NativeApnInfo{Mnc: "01"}, record))
	assert.False(t, matches(cellular.NativeApnInfo{Apn: "cmnet", User: "guest"}, record))
	assert.False(t, matches(cellular.NativeApnInfo{MmsProxy: "10.0.0.172"}, record))
}
