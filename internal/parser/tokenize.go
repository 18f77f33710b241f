package parser

import (
	"regexp"
	"sort"
	"strings"
)

// genericKeyPattern finds every maximal run of letters/underscores
// immediately followed by ':' — a candidate token boundary, whether or not
// that run turns out to name a known key.
var genericKeyPattern = regexp.MustCompile(`[A-Za-z_]+:`)

// knownAliasesByLengthDesc lists every keyField alias, longest first, so
// that when more than one alias is a suffix of an ambiguous run, the longest
// of them is the one peeled off as the key.
var knownAliasesByLengthDesc = buildKnownAliases()

func buildKnownAliases() []string {
	keys := make([]string, 0, len(keyField))
	for k := range keyField {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return len(keys[i]) > len(keys[j]) })
	return keys
}

// resolvedToken is one candidate boundary found by genericKeyPattern, after
// resolving it against the known key aliases.
type resolvedToken struct {
	key      string // canonical alias, or "" if the run names no known key
	keyStart int    // start of the resolved key text within the raw line
	valStart int    // start of this token's value (just after ':')
}

// resolveKey maps a raw, glued-together letter run to the known key it
// actually names. The wire format concatenates tokens with no delimiter, so
// an alphabetic value can run straight into the next key's letters (e.g.
// "type:tempbat:80" is "type:" + "temp" + "bat:" + "80", not a key literally
// named "tempbat"). Since a key always sits immediately before its colon,
// any such value-prefix piles up at the FRONT of the run: the real key, if
// any, is always the run's longest known-alias SUFFIX, never a match in the
// middle. A run with no such suffix (e.g. "foo") names no known key at all,
// but it still marks a boundary so it doesn't get folded into a neighbor's
// value.
func resolveKey(run string) (key string, keyOffset int) {
	lower := strings.ToLower(run)
	if _, ok := keyField[lower]; ok {
		return lower, 0
	}
	for _, alias := range knownAliasesByLengthDesc {
		if len(alias) < len(lower) && strings.HasSuffix(lower, alias) {
			return alias, len(lower) - len(alias)
		}
	}
	return "", 0
}

// tokenize extracts key/value pairs from a raw line (spec §4.1). A value
// extends from just after its key's ':' up to the start of the next
// resolved key (recognized or not), or end of line; surrounding whitespace
// is trimmed. First occurrence wins on duplicate keys.
func tokenize(raw string) map[string]string {
	locs := genericKeyPattern.FindAllStringIndex(raw, -1)

	tokens := make([]resolvedToken, 0, len(locs))
	for _, loc := range locs {
		run := raw[loc[0] : loc[1]-1] // strip trailing ':'
		key, offset := resolveKey(run)
		tokens = append(tokens, resolvedToken{
			key:      key,
			keyStart: loc[0] + offset,
			valStart: loc[1],
		})
	}

	out := make(map[string]string, len(tokens))
	for i, tok := range tokens {
		if tok.key == "" {
			continue
		}
		valEnd := len(raw)
		if i+1 < len(tokens) {
			valEnd = tokens[i+1].keyStart
		}
		val := strings.TrimSpace(raw[tok.valStart:valEnd])
		if _, exists := out[tok.key]; !exists {
			out[tok.key] = val
		}
	}
	return out
}
