package game

// KeyKind classifies a normalized keystroke
type KeyKind uint8

const (
	KeyIgnored KeyKind = iota
	KeyLetter
	KeySpace
	KeyRestart
	KeyPause
	KeyQuit
)

// Key is a front-end independent keystroke
// Char is set only for KeyLetter and is always in 'a'..'z'
type Key struct {
	Kind KeyKind
	Char byte
}

// Letter builds a letter key, folding ASCII uppercase
// Non-letters yield an ignored key
func Letter(c byte) Key {
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	if c < 'a' || c > 'z' {
		return Key{}
	}
	return Key{Kind: KeyLetter, Char: c}
}

// Space is the abandon key
func Space() Key {
	return Key{Kind: KeySpace}
}

// KeyFromRune maps a typed rune to a key; only ASCII letters and space are meaningful
func KeyFromRune(r rune) Key {
	if r == ' ' {
		return Space()
	}
	if r > 0x7f {
		return Key{}
	}
	return Letter(byte(r))
}
