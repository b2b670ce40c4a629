package card

import "fmt"

// SuffixWidth is the number of trailing identifier characters replaced by
// the zero-padded slot number when deriving per-slot card IDs.
const SuffixWidth = 4

// Template is a catalog entry that generated cards are derived from.
type Template struct {
	Name  string // Display name (e.g., "Abrupt Decay")
	Query string // Lowercase search query (e.g., "abrupt decay")
	ID    string // Base drive identifier, longer than SuffixWidth characters
}

// Entry is a single card block within a generated order document.
type Entry struct {
	ID    string // Template ID with its last SuffixWidth characters replaced by the slot
	Slot  int    // Zero-based position within the order
	Name  string // Template name with an " (n).jpg" suffix, numbered from 1
	Query string // Copied verbatim from the template
}

// ForSlot derives the card entry occupying the given zero-based slot from a
// template. Image names are numbered from 1, so slot 0 yields "Name (1).jpg".
func ForSlot(t Template, slot int) Entry {
	return Entry{
		ID:    UniqueID(t.ID, slot),
		Slot:  slot,
		Name:  fmt.Sprintf("%s (%d).jpg", t.Name, slot+1),
		Query: t.Query,
	}
}

// UniqueID replaces the last SuffixWidth characters of a base identifier
// with the zero-padded decimal slot number. The characters are replaced, not
// appended, so the derived ID keeps the base identifier's length for all
// slots below 10000. Five-digit slots widen the ID by the extra digits
// rather than truncating the slot number.
func UniqueID(id string, slot int) string {
	return fmt.Sprintf("%s%04d", id[:len(id)-SuffixWidth], slot)
}
