package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darkhz/celldata/api/cellular"
	"github.com/darkhz/celldata/api/errorkinds"
	ep "github.com/darkhz/celldata/entrypoint"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	m.Run()
}

func TestPrintResult(t *testing.T) {
	tests := []struct {
		entry  ep.Entry
		result any
		want   string
	}{
		{ep.Entry{Name: "EnableData", Returns: ep.KindVoid}, nil, "[+] EnableData: done\n"},
		{ep.Entry{Returns: ep.KindBool}, true, "true\n"},
		{ep.Entry{Returns: ep.KindConnectionState}, cellular.StateConnected, "Connected\n"},
		{ep.Entry{Returns: ep.KindFlowType}, cellular.FlowUpDown, "Up Down\n"},
		{ep.Entry{Returns: ep.KindUint32List}, []uint32{1, 2}, "[1, 2]\n"},
		{ep.Entry{Returns: ep.KindString}, "", "(none)\n"},
		{ep.Entry{Returns: ep.KindInt32}, int32(7), "7\n"},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		printResult(&out, tt.entry, tt.result)
		assert.Equal(t, tt.want, out.String())
	}
}

func TestPrintApns(t *testing.T) {
	var out bytes.Buffer
	printApns(&out, []cellular.ApnInfo{
		{ApnName: "cmnet", Apn: "cmnet", Mcc: "460", Mnc: "00", Type: cellular.Optional("default")},
		{ApnName: "中国移动", Apn: "cmwap", Mcc: "460", Mnc: "00"},
	})

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "NAME      APN"))
	assert.True(t, strings.HasPrefix(lines[1], "cmnet     cmnet"))
	assert.True(t, strings.HasPrefix(lines[2], "中国移动  cmwap"))
	assert.Contains(t, lines[1], "default")
	assert.Contains(t, lines[2], "-")
}

func TestPrintError(t *testing.T) {
	var out bytes.Buffer
	printError(&out, &errorkinds.NativeFailure{Code: 8300002, Message: "down"})
	assert.Equal(t, "[!] 8300002: down (Operation failed. Cannot connect to service)\n", out.String())

	out.Reset()
	printError(&out, errors.New("plain"))
	assert.Equal(t, "[!] plain\n", out.String())
}

func TestPrintJSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printJSON(&out, "GetConnectionState", cellular.StateConnected, nil))
	assert.JSONEq(t, `{"op":"GetConnectionState","result":{"name":"connected","code":2}}`, out.String())

	out.Reset()
	require.NoError(t, printJSON(&out, "GetFlowType", cellular.FlowUpDown, nil))
	assert.JSONEq(t, `{"op":"GetFlowType","result":{"name":"up-down","code":3}}`, out.String())

	out.Reset()
	require.NoError(t, printJSON(&out, "EnableData", nil, &errorkinds.NativeFailure{Code: 8300001, Message: "RADIO_NOT_AVAILABLE"}))
	assert.JSONEq(t, `{"op":"EnableData","error":{"code":8300001,"message":"RADIO_NOT_AVAILABLE"}}`, out.String())

	out.Reset()
	require.NoError(t, printJSON(&out, "QueryAllApns", []cellular.ApnInfo{{ApnName: "cmnet", Apn: "cmnet", Mcc: "460", Mnc: "00"}}, nil))
	assert.JSONEq(t, `{"op":"QueryAllApns","result":[{"apnName":"cmnet","apn":"cmnet","mcc":"460","mnc":"00"}]}`, out.String())
}

func TestPrintEntries(t *testing.T) {
	var out bytes.Buffer
	printEntries(&out, []ep.Entry{
		{Name: "EnableData", Doc: "Enable cellular data.", Returns: ep.KindVoid},
		{Name: "GetFlowType", Doc: "Get the flow type.", Params: []ep.ParamSpec{{Name: "slotId", Kind: ep.KindInt32}}, Returns: ep.KindFlowType},
	})

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "EnableData   ()                       Enable cellular data.", lines[0])
	assert.Equal(t, "GetFlowType  (slotId int32) FlowType  Get the flow type.", lines[1])
}
