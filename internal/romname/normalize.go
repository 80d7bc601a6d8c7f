package romname

import (
	"path/filepath"
	"regexp"
	"strings"
)

var (
	// taggedPattern matches bracketed release tags such as "(USA)", "[!]",
	// or "{beta}", non-greedily so repeated groups are removed one by one.
	taggedPattern = regexp.MustCompile(`\(.*?\)|\{.*?\}|\[.*?\]`)
	// listPrefixPattern matches leading numeric list prefixes like "001 - ".
	listPrefixPattern = regexp.MustCompile(`^[0-9\s\-]+`)
	// separatorPattern matches runs of separator characters collapsed to a
	// single space.
	separatorPattern = regexp.MustCompile(`[\s_\-:]+`)
	// strayPattern matches every character that does not survive
	// normalization: anything but letters, digits, apostrophes, and spaces.
	strayPattern = regexp.MustCompile(`[^a-zA-Z0-9\s']`)
)

// Normalize reduces a filename stem to its canonical comparison form.
//
// The steps apply strictly in order: bracketed tags are removed, a leading
// numeric list prefix is removed, separator runs collapse into one space,
// remaining punctuation is stripped, and the result is lowercased and
// trimmed. Any input, including the empty string, normalizes
// deterministically; the output may be empty.
func Normalize(stem string) string {
	name := strings.TrimSpace(taggedPattern.ReplaceAllString(stem, ""))
	name = strings.TrimSpace(listPrefixPattern.ReplaceAllString(name, ""))
	name = separatorPattern.ReplaceAllString(name, " ")
	name = strayPattern.ReplaceAllString(name, "")
	return strings.TrimSpace(strings.ToLower(name))
}

// Key is the grouping identity for a ROM file: the normalized title plus the
// original extension. The extension stays distinct so identical titles on
// different platforms or formats never merge into one group.
type Key struct {
	Name string
	Ext  string
}

// KeyFor derives the grouping key for a file path.
func KeyFor(path string) Key {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return Key{Name: Normalize(stem), Ext: ext}
}

// String renders the key the way log lines and listings refer to a group.
func (k Key) String() string {
	return k.Name + k.Ext
}
