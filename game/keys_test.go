package game

import "testing"

func TestKeyFromRune(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want Key
	}{
		{"lowercase", 'q', Key{Kind: KeyLetter, Char: 'q'}},
		{"uppercase folds", 'Q', Key{Kind: KeyLetter, Char: 'q'}},
		{"space", ' ', Key{Kind: KeySpace}},
		{"digit", '7', Key{}},
		{"punctuation", '!', Key{}},
		{"non-ascii", 'ß', Key{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KeyFromRune(tt.r); got != tt.want {
				t.Errorf("KeyFromRune(%q) = %+v, want %+v", tt.r, got, tt.want)
			}
		})
	}
}

func TestFullAlphabetIsTypeable(t *testing.T) {
	for c := byte('a'); c <= 'z'; c++ {
		if k := Letter(c); k.Kind != KeyLetter || k.Char != c {
			t.Errorf("Letter(%q) = %+v", c, k)
		}
	}
}
