//go:build linux

package networkmanager

import (
	"slices"

	nm "github.com/Wifx/gonetworkmanager"

	"github.com/darkhz/celldata/api/cellular"
)

// profile holds a gsm connection profile and its settings.
type profile struct {
	conn     nm.Connection
	settings nm.ConnectionSettings
}

// gsmProfiles returns the connections that carry gsm settings, ordered by their object path.
func gsmProfiles(conns []nm.Connection) ([]profile, error) {
	profiles := make([]profile, 0, len(conns))

	for _, conn := range conns {
		settings, err := conn.GetSettings()
		if err != nil {
			return nil, err
		}

		if _, ok := settings[gsmSetting]; !ok {
			continue
		}

		profiles = append(profiles, profile{conn: conn, settings: settings})
	}

	slices.SortFunc(profiles, func(a, b profile) int {
		return comparePaths(a.conn.GetPath(), b.conn.GetPath())
	})

	return profiles, nil
}

// apn converts the profile to a native access point record.
// The mcc and mnc are split from the gsm network id.
func (p profile) apn() cellular.NativeApnInfo {
	str := func(group, key string) string {
		v, _ := p.settings[group][key].(string)
		return v
	}

	info := cellular.NativeApnInfo{
		ApnName: str("connection", "id"),
		Apn:     str(gsmSetting, "apn"),
		User:    str(gsmSetting, "username"),
		Type:    "default",
	}

	if networkID := str(gsmSetting, "network-id"); len(networkID) > 3 {
		info.Mcc, info.Mnc = networkID[:3], networkID[3:]
	}

	return info
}

// matches returns whether every non-empty field of the filter equals the record's field.
func matches(filter, record cellular.NativeApnInfo) bool {
	return !slices.ContainsFunc([][2]string{
		{filter.ApnName, record.ApnName},
		{filter.Apn, record.Apn},
		{filter.Mcc, record.Mcc},
		{filter.Mnc, record.Mnc},
		{filter.User, record.User},
		{filter.Type, record.Type},
		{filter.Proxy, record.Proxy},
		{filter.MmsProxy, record.MmsProxy},
	}, func(pair [2]string) bool {
		return pair[0] != "" && pair[0] != pair[1]
	})
}
