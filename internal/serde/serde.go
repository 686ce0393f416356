package serde

import (
	"sync"

	"github.com/ugorji/go/codec"
)

// resolver holds an encoder and decoder.
type resolver struct {
	jsonEncoder *codec.Encoder
	jsonDecoder *codec.Decoder
	jsonHandle  codec.JsonHandle

	jsonData []byte

	jsonMu sync.Mutex
}

var gendecoder resolver

func init() {
	gendecoder.jsonHandle = codec.JsonHandle{}
	gendecoder.jsonHandle.TypeInfos = codec.NewTypeInfos([]string{"json"})
	gendecoder.jsonData = make([]byte, 0, 8192)
	gendecoder.jsonEncoder = codec.NewEncoderBytes(&gendecoder.jsonData, &gendecoder.jsonHandle)
	gendecoder.jsonDecoder = codec.NewDecoderBytes(nil, &gendecoder.jsonHandle)
}

// MarshalJson marshals a value of a specific type to UTF-8 bytes.
// The returned slice is owned by the caller.
func MarshalJson[T any](v T) ([]byte, error) {
	gendecoder.jsonMu.Lock()
	defer gendecoder.jsonMu.Unlock()

	gendecoder.jsonData = gendecoder.jsonData[:0]
	gendecoder.jsonEncoder.ResetBytes(&gendecoder.jsonData)

	if err := gendecoder.jsonEncoder.Encode(v); err != nil {
		return nil, err
	}

	data := make([]byte, len(gendecoder.jsonData))
	copy(data, gendecoder.jsonData)

	return data, nil
}

// UnmarshalJson unmarshals the provided JSON as bytes to the value of a specific type.
func UnmarshalJson[T any](data []byte, marshalTo T) error {
	gendecoder.jsonMu.Lock()
	defer gendecoder.jsonMu.Unlock()

	gendecoder.jsonDecoder.ResetBytes(data)

	return gendecoder.jsonDecoder.Decode(marshalTo)
}
