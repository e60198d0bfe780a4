package format

import (
	"bytes"
	"encoding/gob"
)

// NewGOBFormat creates a new format using Go's binary gob encoding
func NewGOBFormat() IFormat {
	return &gobFormatImpl{}
}

// gobFormatImpl implements the IFormat interface using gob encoding
type gobFormatImpl struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see format.IFormat)
// --------------------------------------------------------------------------

func (g gobFormatImpl) Name() string { return "gob" }

func (g gobFormatImpl) Serialize(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g gobFormatImpl) Deserialize(b []byte, v any) error {
	buf := bytes.NewBuffer(b)
	dec := gob.NewDecoder(buf)
	return dec.Decode(v)
}
