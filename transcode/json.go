package transcode

import (
	"bytes"

	json "github.com/goccy/go-json"

	"github.com/fieldstream/netpack/errors"
	"github.com/fieldstream/netpack/schema"
)

// PackJSON packs a JSON document into wire bytes for the schema.
// Malformed JSON is a parse error; a well-formed document that does
// not fit the schema reports the pack session's error.
func PackJSON(root schema.Node, doc []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(doc))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, errors.Parse(errors.PhaseTranscode, err)
	}
	return packDoc(root, v)
}

// UnpackJSON unpacks wire bytes for the schema into a JSON document.
func UnpackJSON(root schema.Node, data []byte) ([]byte, error) {
	v, err := unpackDoc(root, data)
	if err != nil {
		return nil, err
	}
	out, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseTranscode, errors.KindParse, err,
			"encoding unpacked value as JSON")
	}
	return out, nil
}
