package packer

import (
	"bytes"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"
)

// ParseAndPack decodes a JSON value and packs it into the current
// field. A malformed document sets the parse error flag and consumes
// no output; a well-formed document that does not fit the schema sets
// the pack or range flags through the normal PackValue path. Numbers
// are decoded as tokens so integer precision survives the trip.
func (p *Packer) ParseAndPack(text []byte) {
	p.mustPackMode("ParseAndPack")
	dec := json.NewDecoder(bytes.NewReader(text))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		p.parseErr = true
		Logger().Debug("parse error", zap.Error(err))
		return
	}
	p.PackValue(v)
}

// UnpackToJSON unpacks the current field generically and renders it as
// JSON. Returns nil when the unpacked value could not be produced.
func (p *Packer) UnpackToJSON() []byte {
	v := p.UnpackValue()
	if p.HadError() {
		return nil
	}
	out, err := json.Marshal(v)
	if err != nil {
		p.parseErr = true
		return nil
	}
	return out
}
