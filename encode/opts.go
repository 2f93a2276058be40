package encode

import (
	"fmt"
	"strings"
)

type Doc int

const (
	YAMLDoc Doc = iota
	JSONDoc
)

func ParseDoc(v string) (Doc, error) {
	d, ok := map[string]Doc{
		"y":    YAMLDoc,
		"yaml": YAMLDoc,
		"j":    JSONDoc,
		"json": JSONDoc,
	}[strings.ToLower(v)]
	if ok {
		return d, nil
	}
	return 0, fmt.Errorf("bad document format: %q", v)
}

func (d Doc) String() string {
	if d == JSONDoc {
		return "json"
	}
	return "yaml"
}

type EncState struct {
	doc    Doc
	indent int
	wire   bool
}

type EncodeOption func(*EncState)

func EncodeDoc(d Doc) EncodeOption {
	return func(es *EncState) { es.doc = d }
}
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// EncodeWire selects compact single line output for JSON documents and
// flow style for YAML documents.
func EncodeWire(v bool) EncodeOption {
	return func(es *EncState) { es.wire = v }
}
