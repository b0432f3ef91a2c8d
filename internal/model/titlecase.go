package model

import "unicode/utf8"

// Titlecase upper-cases the first character of s and leaves the rest as is.
// Only ASCII letters are changed, matching PokeAPI's ASCII names.
// "pikachu" becomes "Pikachu"; "mr-mime" becomes "Mr-mime".
func Titlecase(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	if r >= 'a' && r <= 'z' {
		return string(r-'a'+'A') + s[size:]
	}
	return s
}

// TitlecaseAll applies Titlecase to every element of names.
func TitlecaseAll(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = Titlecase(n)
	}
	return out
}
