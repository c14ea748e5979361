package codec

import (
	"strings"

	"github.com/alexisbeaulieu97/colorhelper/internal/color"
)

// Conversion is the outcome of converting one input text.
type Conversion struct {
	Input  string      `json:"input"`
	Output string      `json:"output"`
	OK     bool        `json:"ok"`
	Color  color.Color `json:"-"`
	Err    error       `json:"-"`
}

// Convert renders every text in notationID with the session's current
// options. Inputs are read without being remembered, so neither the option
// memory nor the device-cmyk fallback changes. Empty, unparseable and
// unrepresentable inputs yield OK == false.
func (s *Session) Convert(texts []string, notationID string) []Conversion {
	out := make([]Conversion, len(texts))
	for i, text := range texts {
		out[i] = Conversion{Input: text}
		if strings.TrimSpace(text) == "" {
			continue
		}
		res, err := s.read(text)
		if err != nil {
			out[i].Err = err
			continue
		}
		out[i].Color = res.Color
		out[i].Output, out[i].OK = s.Generate(res.Color, notationID)
	}
	return out
}
