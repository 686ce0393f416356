package marshal

import "github.com/darkhz/celldata/api/cellular"

// DecodeApn converts a native access point record to its managed form.
// Every optional field is populated, even when the native value is empty.
func DecodeApn(n cellular.NativeApnInfo) cellular.ApnInfo {
	return cellular.ApnInfo{
		ApnName:  n.ApnName,
		Apn:      n.Apn,
		Mcc:      n.Mcc,
		Mnc:      n.Mnc,
		User:     cellular.Optional(n.User),
		Type:     cellular.Optional(n.Type),
		Proxy:    cellular.Optional(n.Proxy),
		MmsProxy: cellular.Optional(n.MmsProxy),
	}
}

// EncodeApn converts a managed access point record to its native form.
// Absent optional fields are encoded as empty strings.
func EncodeApn(a cellular.ApnInfo) cellular.NativeApnInfo {
	return cellular.NativeApnInfo{
		ApnName:  a.ApnName,
		Apn:      a.Apn,
		Mcc:      a.Mcc,
		Mnc:      a.Mnc,
		User:     valueOrEmpty(a.User),
		Type:     valueOrEmpty(a.Type),
		Proxy:    valueOrEmpty(a.Proxy),
		MmsProxy: valueOrEmpty(a.MmsProxy),
	}
}

// DecodeApns converts a list of native records, preserving order.
// The returned slice is never nil.
func DecodeApns(records []cellular.NativeApnInfo) []cellular.ApnInfo {
	apns := make([]cellular.ApnInfo, 0, len(records))
	for _, record := range records {
		apns = append(apns, DecodeApn(record))
	}

	return apns
}

// CopyIDs returns a copy of the identifier list.
// The returned slice is never nil.
func CopyIDs(ids []uint32) []uint32 {
	copied := make([]uint32, len(ids))
	copy(copied, ids)

	return copied
}

func valueOrEmpty(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
