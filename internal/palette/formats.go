package palette

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format ids keyed by file extension.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatCSV  = "csv"
)

var extFormats = map[string]string{
	"json": FormatJSON,
	"yml":  FormatYAML,
	"yaml": FormatYAML,
	"csv":  FormatCSV,
	"tsv":  FormatCSV,
}

var (
	reFileName  = regexp.MustCompile(`(?i)^(@)?(.+?)\.palette\.(json|yml|yaml|csv|tsv)$`)
	reYAMLLine  = regexp.MustCompile(`line (\d+)`)
	errNotAList = errors.New("palette document is not a list")
)

// fileName is a parsed palette file name.
type fileName struct {
	noLabel bool
	base    string
	ext     string
	format  string
}

func parseFileName(name string) (fileName, bool) {
	matches := reFileName.FindStringSubmatch(name)
	if matches == nil {
		return fileName{}, false
	}
	ext := strings.ToLower(matches[3])
	return fileName{
		noLabel: matches[1] != "",
		base:    matches[2],
		ext:     ext,
		format:  extFormats[ext],
	}, true
}

// decode turns file content into raw records. The second result is the line
// of a syntax error, 0 when unknown.
func decode(data []byte, name fileName) ([]any, int, error) {
	switch name.format {
	case FormatJSON:
		var doc any
		if err := json.Unmarshal(data, &doc); err != nil {
			var syntaxErr *json.SyntaxError
			if errors.As(err, &syntaxErr) {
				return nil, lineAt(data, syntaxErr.Offset), err
			}
			return nil, 0, err
		}
		return asList(doc)
	case FormatYAML:
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, yamlLine(err), err
		}
		return asList(doc)
	case FormatCSV:
		records, err := ReadDelimited(bytes.NewReader(data), delimiterFor(name.ext), RecordWidth)
		if err != nil {
			var csvErr *csv.ParseError
			if errors.As(err, &csvErr) {
				return nil, csvErr.Line, err
			}
			return nil, 0, err
		}
		return records, 0, nil
	}
	return nil, 0, fmt.Errorf("unsupported palette format %q", name.ext)
}

func asList(doc any) ([]any, int, error) {
	list, ok := doc.([]any)
	if !ok || len(list) == 0 {
		return nil, 0, errNotAList
	}
	return list, 0, nil
}

func lineAt(data []byte, offset int64) int {
	if offset <= 0 || offset > int64(len(data)) {
		return 0
	}
	return bytes.Count(data[:offset], []byte("\n")) + 1
}

func yamlLine(err error) int {
	matches := reYAMLLine.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
}

var reSpaces = regexp.MustCompile(`\s+`)

// splitLabel detects a leading "@label" record. It returns the label, the
// remaining records and whether a label record was present.
func splitLabel(records []any) (string, []any, bool) {
	if len(records) == 0 {
		return "", records, false
	}
	first := records[0]
	if row, ok := first.([]any); ok && len(row) > 0 {
		first = row[0]
	}
	text, ok := first.(string)
	if !ok || !strings.HasPrefix(text, "@") {
		return "", records, false
	}
	label := strings.TrimSpace(reSpaces.ReplaceAllString(text[1:], " "))
	return label, records[1:], true
}
