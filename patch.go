package sjson

import (
	jsonpatch "github.com/evanphx/json-patch/v5"
)

// MergePatch applies an RFC 7386 merge patch to doc and returns the result
// as a new Document; doc itself is not modified. Patching is routed through
// the canonical text form, so non-JSON-representable content (strings that
// would need escaping) is a patch error rather than silent corruption.
func MergePatch(doc, patch *Document) (*Document, error) {
	docText, err := doc.Text()
	if err != nil {
		return nil, err
	}
	patchText, err := patch.Text()
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch([]byte(docText), []byte(patchText))
	if err != nil {
		return nil, err
	}
	return ParseBytes(out)
}

// Patch applies an RFC 6902 patch (an array of operations) to doc and
// returns the result as a new Document.
func Patch(doc, ops *Document) (*Document, error) {
	docText, err := doc.Text()
	if err != nil {
		return nil, err
	}
	opsText, err := ops.Text()
	if err != nil {
		return nil, err
	}
	p, err := jsonpatch.DecodePatch([]byte(opsText))
	if err != nil {
		return nil, err
	}
	out, err := p.Apply([]byte(docText))
	if err != nil {
		return nil, err
	}
	return ParseBytes(out)
}
