// Package alphabet defines closed character alphabets for biological
// sequences (DNA, RNA, amino acids) together with their dense integer
// encodings and per-character complements.  An Alphabet is an immutable
// translation table between single-byte ASCII symbols and indices
// 0..Len()-1; all conversions are O(1) table lookups.
package alphabet

import (
	"fmt"

	"github.com/pkg/errors"
)

// Char is the dense index of a symbol within an alphabet, in [0, Len()).
// A Char is only meaningful together with the Alphabet that produced it;
// mixing Chars from different alphabets is a caller error.  Chars compare
// and sort by index.
type Char uint8

// invalidChar marks unmapped ASCII bytes in the lookup table.
const invalidChar = Char(0xff)

// MaxSize is the maximum number of characters in an alphabet.
const MaxSize = 255

// NotInAlphabetError is returned when an ASCII byte has no mapping in the
// alphabet.  Untrusted input can trigger it, so callers may want to skip
// and continue rather than abort.
type NotInAlphabetError struct {
	Ascii byte
}

func (e *NotInAlphabetError) Error() string {
	return fmt.Sprintf("ascii character %q (0x%02x) is not part of the alphabet", e.Ascii, e.Ascii)
}

// IndexError is returned when an index is out of the alphabet's range.
type IndexError struct {
	Index int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d is not part of the alphabet", e.Index)
}

// Alphabet is a fixed set of ASCII symbols with dense indices and a
// complement mapping.  Alphabets are immutable once constructed; the
// package-level singletons (DNA, RNA, ...) live for the whole process.
type Alphabet struct {
	name string
	// chars[i] is the ASCII form of Char(i).
	chars []byte
	// complement[i] is the complement of Char(i).
	complement []Char
	// asciiToChar maps every byte value to a Char, or invalidChar.
	asciiToChar [256]Char
	// bitWidth is the number of bits needed to store one Char.
	bitWidth int
}

// New builds an alphabet from the ordered list of its ASCII characters and
// the ordered list of their complements: complements[i] is the complement
// of chars[i].  It rejects duplicate characters, complements outside the
// declared character set, and mismatched lengths.
func New(name, chars, complements string) (*Alphabet, error) {
	if len(chars) == 0 {
		return nil, errors.Errorf("alphabet %s: empty character set", name)
	}
	if len(chars) > MaxSize {
		return nil, errors.Errorf("alphabet %s: %d characters exceeds the maximum of %d", name, len(chars), MaxSize)
	}
	if len(chars) != len(complements) {
		return nil, errors.Errorf("alphabet %s: %d characters but %d complements", name, len(chars), len(complements))
	}
	a := &Alphabet{
		name:       name,
		chars:      []byte(chars),
		complement: make([]Char, len(chars)),
		bitWidth:   bitWidth(len(chars)),
	}
	for i := range a.asciiToChar {
		a.asciiToChar[i] = invalidChar
	}
	for i, ascii := range a.chars {
		if a.asciiToChar[ascii] != invalidChar {
			return nil, errors.Errorf("alphabet %s: duplicate character %q", name, ascii)
		}
		a.asciiToChar[ascii] = Char(i)
	}
	for i := 0; i < len(complements); i++ {
		comp := a.asciiToChar[complements[i]]
		if comp == invalidChar {
			return nil, errors.Errorf("alphabet %s: complement %q of character %q is not part of the alphabet",
				name, complements[i], chars[i])
		}
		a.complement[i] = comp
	}
	return a, nil
}

// MustNew is like New but panics on error.  It backs the shipped
// package-level alphabets.
func MustNew(name, chars, complements string) *Alphabet {
	a, err := New(name, chars, complements)
	if err != nil {
		panic(err)
	}
	return a
}

// Name returns the alphabet's name.
func (a *Alphabet) Name() string { return a.name }

// Len returns the number of characters in the alphabet.
func (a *Alphabet) Len() int { return len(a.chars) }

// BitWidth returns the number of bits needed to store one character,
// i.e. ceil(log2(Len())).
func (a *Alphabet) BitWidth() int { return a.bitWidth }

// Char converts an ASCII byte into an alphabet character.  It returns a
// *NotInAlphabetError if the byte is not part of the alphabet.
func (a *Alphabet) Char(ascii byte) (Char, error) {
	c := a.asciiToChar[ascii]
	if c == invalidChar {
		return 0, &NotInAlphabetError{Ascii: ascii}
	}
	return c, nil
}

// Valid reports whether the ASCII byte is part of the alphabet.
func (a *Alphabet) Valid(ascii byte) bool {
	return a.asciiToChar[ascii] != invalidChar
}

// CharFromIndex converts a dense index into an alphabet character.  It
// returns an *IndexError if the index is >= Len().
func (a *Alphabet) CharFromIndex(index int) (Char, error) {
	if index < 0 || index >= len(a.chars) {
		return 0, &IndexError{Index: index}
	}
	return Char(index), nil
}

// ASCII converts an alphabet character back into its ASCII form.  A Char
// is proof that the value is in range, so the lookup is unchecked.
func (a *Alphabet) ASCII(c Char) byte {
	return a.chars[c]
}

// Complement returns the complement of c as defined by the alphabet's
// complement table.  For alphabets without a biological complement notion
// (amino acids) this is the identity.
func (a *Alphabet) Complement(c Char) Char {
	return a.complement[c]
}

// bitWidth returns the number of bits needed to represent values 0..n-1.
func bitWidth(n int) int {
	w := 0
	for v := n - 1; v > 0; v >>= 1 {
		w++
	}
	if w == 0 {
		w = 1
	}
	return w
}
