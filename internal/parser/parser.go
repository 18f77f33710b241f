// Package parser implements format detection and key/value extraction for
// raw sensor lines, turning them into canonical record.Record values.
//
// Parsing is pure: no parser holds shared state and CanParse/Parse may be
// invoked concurrently from any number of goroutines.
package parser

import (
	"strings"

	"nrgchamp/sensormon/internal/record"
)

// Parser detects and decodes one raw line format.
type Parser interface {
	// CanParse reports whether raw matches this parser's format.
	CanParse(raw string) bool
	// Parse decodes raw into a canonical Record. Parse is only ever called
	// after CanParse has returned true for the same line.
	Parse(raw string) record.Record
}

// StandardParser recognizes lines beginning with "serial:".
type StandardParser struct{}

func (StandardParser) CanParse(raw string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(raw)), "serial:")
}

func (StandardParser) Parse(raw string) record.Record {
	return populate(tokenize(raw))
}

// ManufacturerFirstParser recognizes lines beginning with "manufac:" or
// "manu:". The body may also contain a "serial:" token; first-occurrence
// key/value extraction (tokenize) disambiguates that per spec §9.
type ManufacturerFirstParser struct{}

func (ManufacturerFirstParser) CanParse(raw string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	return strings.HasPrefix(trimmed, "manufac:") || strings.HasPrefix(trimmed, "manu:")
}

func (ManufacturerFirstParser) Parse(raw string) record.Record {
	return populate(tokenize(raw))
}

// DefaultSet returns the parsers in the registration order the coordinator
// must try them: Standard before ManufacturerFirst, per spec §4.1.
func DefaultSet() []Parser {
	return []Parser{
		StandardParser{},
		ManufacturerFirstParser{},
	}
}

// Select returns the first parser in set whose CanParse accepts raw, or
// false if none does — the line is then dropped by the caller (spec §4.1,
// §7 ParseUnrecognized).
func Select(set []Parser, raw string) (Parser, bool) {
	for _, p := range set {
		if p.CanParse(raw) {
			return p, true
		}
	}
	return nil, false
}
