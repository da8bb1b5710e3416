package stream

import (
	"encoding/json"

	"github.com/matt-g-everett/styletx/tween"
)

// StylePatch is one batch of style values sent to subscribers of an element.
type StylePatch struct {
	Element string            `json:"element"`
	Seq     uint64            `json:"seq"`
	Style   map[string]string `json:"style"`
}

// NewStylePatch renders every value of style to its string form.
func NewStylePatch(element string, seq uint64, style tween.StyleMap) *StylePatch {
	p := new(StylePatch)
	p.Element = element
	p.Seq = seq
	p.Style = make(map[string]string, len(style))
	for k, v := range style {
		p.Style[k] = tween.FormatValue(v)
	}
	return p
}

// MarshalBinary converts a StylePatch into its JSON wire form.
func (p *StylePatch) MarshalBinary() (data []byte, err error) {
	return json.Marshal(p)
}
