package transcode

import (
	"reflect"

	"github.com/fxamacker/cbor/v2"

	"github.com/fieldstream/netpack/errors"
	"github.com/fieldstream/netpack/schema"
)

// encMode is the CBOR encoder configured with Core Deterministic
// Encoding (RFC 8949 4.2): sorted map keys, smallest integer
// encoding, no indefinite-length items.
var encMode cbor.EncMode

// decMode is the CBOR decoder configured to accept standard CBOR.
var decMode cbor.DecMode

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("transcode: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		// Schema field names are always text strings, but the CBOR
		// default for any-typed targets is map[interface{}]interface{}.
		// The engine's value path consumes map[string]any.
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("transcode: CBOR decoder initialization failed: " + err.Error())
	}
}

// PackCBOR packs a CBOR document into wire bytes for the schema.
func PackCBOR(root schema.Node, doc []byte) ([]byte, error) {
	var v any
	if err := decMode.Unmarshal(doc, &v); err != nil {
		return nil, errors.Parse(errors.PhaseTranscode, err)
	}
	return packDoc(root, v)
}

// UnpackCBOR unpacks wire bytes for the schema into a CBOR document
// with deterministic encoding.
func UnpackCBOR(root schema.Node, data []byte) ([]byte, error) {
	v, err := unpackDoc(root, data)
	if err != nil {
		return nil, err
	}
	out, err := encMode.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseTranscode, errors.KindParse, err,
			"encoding unpacked value as CBOR")
	}
	return out, nil
}
