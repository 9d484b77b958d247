package render

import (
	"strings"
	"unicode"
)

// glyphs maps visual tags to runes; a tag also matches by its prefix before '_'
var glyphs = map[string]rune{
	"sack":   '§',
	"mug":    'u',
	"dough":  'o',
	"bread":  'B',
	"bucket": 'U',
	"butter": '■',
	"seed":   '·',
	"sprout": '♣',
	"sheaf":  '¥',
	"can":    'Ü',
	"log":    '=',
	"torch":  '¡',
	"flame":  '▲',
}

// Glyph resolves the rune for a visual tag, falling back to the template initial
func Glyph(visual, template string) rune {
	if r, ok := glyphs[visual]; ok {
		return r
	}
	if prefix, _, found := strings.Cut(visual, "_"); found {
		if r, ok := glyphs[prefix]; ok {
			return r
		}
	}
	for _, r := range template {
		return unicode.ToUpper(r)
	}
	return '?'
}

// Zone markers
const (
	zoneRune     = '○'
	zoneFullRune = '●'
)
