// Package codec parses and generates color text across all registered
// notations, remembering stylistic options between calls.
package codec

import (
	"strings"

	"github.com/alexisbeaulieu97/colorhelper/internal/color"
	"github.com/alexisbeaulieu97/colorhelper/internal/logger"
	"github.com/alexisbeaulieu97/colorhelper/internal/notation"
	"github.com/alexisbeaulieu97/colorhelper/internal/options"
	colorerrors "github.com/alexisbeaulieu97/colorhelper/pkg/errors"
)

// Parsed is a successfully parsed color text.
type Parsed struct {
	Notation string          `json:"notation"`
	Text     string          `json:"text"`
	Color    color.Color     `json:"-"`
	Options  notation.Values `json:"options"`
}

// Options configures a Session.
type Options struct {
	// Registry defaults to the built-in notations.
	Registry *notation.Registry
	Logger   *logger.Logger
}

// Session is one editing session: the current color plus the option memory.
// It is not safe for concurrent use.
type Session struct {
	reg    *notation.Registry
	memory *options.Memory
	color  color.Color
	log    *logger.Logger
}

// NewSession creates a session with default options and a black color.
func NewSession(opts Options) *Session {
	reg := opts.Registry
	if reg == nil {
		reg = notation.Default()
	}
	return &Session{
		reg:    reg,
		memory: options.New(reg),
		color:  color.Black,
		log:    opts.Logger,
	}
}

// Registry exposes the notations known to the session.
func (s *Session) Registry() *notation.Registry {
	return s.reg
}

// Color returns the color of the last successful Parse.
func (s *Session) Color() color.Color {
	return s.color
}

// SetColor replaces the current color.
func (s *Session) SetColor(c color.Color) {
	s.color = c
}

// Parse interprets text, updating the current color and the remembered
// options of the matched notation. Errors wrap ErrUnrecognized or
// ErrMalformed.
func (s *Session) Parse(text string) (Parsed, error) {
	res, err := s.read(text)
	if err != nil {
		return Parsed{}, err
	}

	s.memory.Capture(res.Notation, res.Options)
	if res.Fallback != nil {
		s.memory.SetFallback(res.Fallback)
	}
	s.color = res.Color
	return Parsed{
		Notation: res.Notation,
		Text:     res.Text,
		Color:    res.Color,
		Options:  res.Options,
	}, nil
}

// read dispatches text to the registry without touching the session state.
func (s *Session) read(text string) (notation.Result, error) {
	res := s.reg.ParseText(text)
	switch res.Outcome {
	case notation.Malformed:
		s.log.Debug("malformed color text", "text", text, "notation", res.Notation, "reason", res.Reason)
		return res, colorerrors.NewMalformedError(res.Notation, strings.TrimSpace(text), res.Reason)
	case notation.NotThis:
		return res, colorerrors.NewUnrecognizedError(strings.TrimSpace(text))
	}
	return res, nil
}

// ParseColor interprets text without touching the session state.
func (s *Session) ParseColor(text string) (color.Color, bool) {
	res := s.reg.ParseText(text)
	if res.Outcome != notation.Matched {
		return color.Color{}, false
	}
	return res.Color, true
}

// Generate renders c in a notation using the remembered options. The second
// result is false when the notation is unknown or cannot express c.
func (s *Session) Generate(c color.Color, notationID string) (string, bool) {
	return s.generate(c, notationID, s.memory)
}

// GenerateWithOptions renders c with bag merged over the remembered options
// for this call only.
func (s *Session) GenerateWithOptions(c color.Color, notationID string, bag options.Bag) (string, bool) {
	memory := s.memory.Clone()
	memory.SetExternal(bag)
	return s.generate(c, notationID, memory)
}

func (s *Session) generate(c color.Color, notationID string, memory *options.Memory) (string, bool) {
	d, ok := s.reg.Lookup(notationID)
	if !ok {
		return "", false
	}
	return d.Generate(c, &generateContext{session: s, memory: memory})
}

// GetOptions returns the current options of a notation.
func (s *Session) GetOptions(notationID string) notation.Values {
	return s.memory.Apply(notationID)
}

// SetOptions merges a bag of options, ignoring unknown ids and invalid
// enum values.
func (s *Session) SetOptions(bag options.Bag) {
	s.memory.SetExternal(bag)
}

// Snapshot exports every remembered option.
func (s *Session) Snapshot() options.Bag {
	return s.memory.Snapshot()
}

// generateContext binds a memory to notation generators.
type generateContext struct {
	session *Session
	memory  *options.Memory
}

func (g *generateContext) Options(notationID string) notation.Values {
	return g.memory.Apply(notationID)
}

func (g *generateContext) Fallback() *notation.Fallback {
	return g.memory.Fallback()
}

func (g *generateContext) Generate(c color.Color, notationID string) (string, bool) {
	return g.session.generate(c, notationID, g.memory)
}
