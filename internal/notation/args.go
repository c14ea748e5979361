package notation

import (
	"errors"
	"regexp"
	"strings"
)

var (
	// ErrUnbalanced is returned for a function-shaped text whose parentheses
	// do not pair up.
	ErrUnbalanced = errors.New("unbalanced parentheses")

	reFuncShape = regexp.MustCompile(`(?s)^([A-Za-z_-][A-Za-z0-9_-]*)\s*\((.*)\)$`)
	reComment   = regexp.MustCompile(`(?s)/\*.*?\*/`)
)

// Call is a tokenized function call: a lower-cased name and its top-level
// arguments, each trimmed.
type Call struct {
	Name string
	Args []string
}

// Arg returns the i-th argument or "" when absent.
func (c Call) Arg(i int) string {
	if i < 0 || i >= len(c.Args) {
		return ""
	}
	return c.Args[i]
}

// StripComments removes /* ... */ comments.
func StripComments(text string) string {
	return reComment.ReplaceAllString(text, "")
}

// SplitFunc splits text of the shape name(args...) into its name and
// top-level arguments. Commas nested inside parentheses never split. The
// second result is false when text is not function-shaped at all; a non-nil
// error means it is shaped like a call but malformed, and only Name is set.
func SplitFunc(text string) (Call, bool, error) {
	matches := reFuncShape.FindStringSubmatch(strings.TrimSpace(text))
	if matches == nil {
		return Call{}, false, nil
	}

	call := Call{Name: strings.ToLower(matches[1])}
	body := matches[2]
	if strings.TrimSpace(body) == "" {
		return call, true, nil
	}

	args, err := splitArgs(body)
	if err != nil {
		return call, true, err
	}
	call.Args = args
	return call, true, nil
}

// splitArgs cuts body at commas of depth zero.
func splitArgs(body string) ([]string, error) {
	var (
		args  []string
		depth int
		start int
	)
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return nil, ErrUnbalanced
			}
		case ',':
			if depth == 0 {
				args = append(args, strings.TrimSpace(body[start:i]))
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, ErrUnbalanced
	}
	return append(args, strings.TrimSpace(body[start:])), nil
}
