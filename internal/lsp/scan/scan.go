// Package scan implements the tolerant lexical tag scanner shared by cursor
// context resolution and validation. It never builds a tree: it finds tag
// tokens with plain string scanning and replays them against a name stack
// that tolerates stray and mismatched closing tags.
package scan

import "unicode/utf8"

// Token is a tag token: '<', an optional '/', a name, then everything up to
// the next '>'.
type Token struct {
	Name        string
	Start       int // offset of '<'
	End         int // offset just past '>'
	Closing     bool
	SelfClosing bool
}

// Opening reports whether the token pushes onto the tag stack.
func (t Token) Opening() bool {
	return !t.Closing && !t.SelfClosing
}

// IsNameChar reports whether c may appear in an element or attribute name.
func IsNameChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_'
}

// nameEnd returns the end of the name starting at i (i when there is none).
func nameEnd(s string, i int) int {
	for i < len(s) && IsNameChar(s[i]) {
		i++
	}
	return i
}

// Tokens returns every tag token in text, left to right.
func Tokens(text string) []Token {
	var tokens []Token
	i := 0
	for i < len(text) {
		if text[i] != '<' {
			i++
			continue
		}
		tok, ok := tokenAt(text, i)
		if !ok {
			i++
			continue
		}
		tokens = append(tokens, tok)
		i = tok.End
	}
	return tokens
}

// tokenAt matches a token starting at the '<' at offset start.
func tokenAt(text string, start int) (Token, bool) {
	i := start + 1
	closing := false
	if i < len(text) && text[i] == '/' {
		closing = true
		i++
	}
	end := nameEnd(text, i)
	if end == i {
		return Token{}, false
	}
	gt := -1
	for j := end; j < len(text); j++ {
		if text[j] == '>' {
			gt = j
			break
		}
	}
	if gt < 0 {
		return Token{}, false
	}
	return Token{
		Name:        text[i:end],
		Start:       start,
		End:         gt + 1,
		Closing:     closing,
		SelfClosing: text[gt-1] == '/',
	}, true
}

// Replay runs the tag-stack rule over text. Opening tokens push their name;
// a closing token removes the rightmost entry with the same name, which need
// not be the top. Closing tokens that match nothing are returned as strays.
// The returned stack is outermost first.
func Replay(text string) (stack []string, strays []Token) {
	for _, tok := range Tokens(text) {
		switch {
		case tok.Closing:
			var ok bool
			if stack, ok = removeLast(stack, tok.Name); !ok {
				strays = append(strays, tok)
			}
		case tok.Opening():
			stack = append(stack, tok.Name)
		}
	}
	return stack, strays
}

// Stack returns the open element names after scanning text, outermost first.
func Stack(text string) []string {
	stack, _ := Replay(text)
	return stack
}

// Innermost returns the open element names innermost first.
func Innermost(text string) []string {
	stack := Stack(text)
	for i, j := 0, len(stack)-1; i < j; i, j = i+1, j-1 {
		stack[i], stack[j] = stack[j], stack[i]
	}
	return stack
}

func removeLast(stack []string, name string) ([]string, bool) {
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i] == name {
			return append(stack[:i], stack[i+1:]...), true
		}
	}
	return stack, false
}

// NameRef is an element name following '<' or '</' on a line.
type NameRef struct {
	Name    string
	Lt      int // offset of '<'
	Start   int // offset of the first name byte
	Closing bool
}

// End returns the offset just past the name.
func (r NameRef) End() int {
	return r.Start + len(r.Name)
}

// NameRefs returns every '<name' and '</name' occurrence in s. Unlike Tokens
// it does not require a closing '>'.
func NameRefs(s string) []NameRef {
	var refs []NameRef
	for i := 0; i < len(s); i++ {
		if s[i] != '<' {
			continue
		}
		j := i + 1
		closing := false
		if j < len(s) && s[j] == '/' {
			closing = true
			j++
		}
		end := nameEnd(s, j)
		if end == j {
			continue
		}
		refs = append(refs, NameRef{Name: s[j:end], Lt: i, Start: j, Closing: closing})
		i = end - 1
	}
	return refs
}

// UTF16Len returns the length of s in UTF-16 code units.
func UTF16Len(s string) int {
	n := 0
	for _, r := range s {
		if r >= 0x10000 {
			n += 2
		} else {
			n++
		}
	}
	return n
}

// ByteOffset returns the byte offset in s after units UTF-16 code units,
// clamped to len(s).
func ByteOffset(s string, units int) int {
	i := 0
	for i < len(s) && units > 0 {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r >= 0x10000 {
			units -= 2
		} else {
			units--
		}
		i += size
	}
	return i
}
