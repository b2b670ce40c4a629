package fixture

import (
	"errors"
	"fmt"
	"strings"

	"github.com/proxyforge/mpcgen/internal/card"
	"github.com/proxyforge/mpcgen/internal/catalog"
)

// ErrNegativeCount is returned when a negative card count is requested.
var ErrNegativeCount = errors.New("card count must not be negative")

// Details is the fixed <details> header of an order document. The values
// describe print options of the order, not the number of card entries, so
// they stay constant regardless of the requested count.
type Details struct {
	Quantity int
	Bracket  int
	Stock    string
	Foil     bool
}

// DefaultDetails returns the header values the reference fixtures carry.
func DefaultDetails() Details {
	return Details{
		Quantity: 10,
		Bracket:  18,
		Stock:    "(S30) Standard Smooth",
		Foil:     false,
	}
}

// Generator produces synthetic MPC order documents of arbitrary size by
// cycling through a card catalog. Generation is pure: a generator holds no
// mutable state, so one instance can serve concurrent calls.
type Generator struct {
	Catalog *catalog.Catalog
	Details Details
}

// New returns a generator over the given catalog with the reference header.
func New(cat *catalog.Catalog) *Generator {
	return &Generator{
		Catalog: cat,
		Details: DefaultDetails(),
	}
}

// Generate builds the serialized order document containing numCards card
// entries. The output is deterministic, byte for byte, for a given catalog,
// header and count. The document always ends with a single trailing newline.
//
// Field values are written verbatim, without XML escaping. The reference
// documents carry names like "Ashnod's Altar" unescaped, so escaping here
// would break byte compatibility with them.
func (g *Generator) Generate(numCards int) (string, error) {
	if numCards < 0 {
		return "", fmt.Errorf("%w: %d", ErrNegativeCount, numCards)
	}

	var b strings.Builder

	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	b.WriteString("<order>\n")
	b.WriteString("    <details>\n")
	fmt.Fprintf(&b, "        <quantity>%d</quantity>\n", g.Details.Quantity)
	fmt.Fprintf(&b, "        <bracket>%d</bracket>\n", g.Details.Bracket)
	fmt.Fprintf(&b, "        <stock>%s</stock>\n", g.Details.Stock)
	fmt.Fprintf(&b, "        <foil>%t</foil>\n", g.Details.Foil)
	b.WriteString("    </details>\n")
	b.WriteString("    <fronts>\n")

	for i := 0; i < numCards; i++ {
		entry := card.ForSlot(g.Catalog.Template(i), i)

		b.WriteString("        <card>\n")
		fmt.Fprintf(&b, "            <id>%s</id>\n", entry.ID)
		fmt.Fprintf(&b, "            <slots>%d</slots>\n", entry.Slot)
		fmt.Fprintf(&b, "            <name>%s</name>\n", entry.Name)
		fmt.Fprintf(&b, "            <query>%s</query>\n", entry.Query)
		b.WriteString("        </card>\n")
	}

	b.WriteString("    </fronts>\n")
	fmt.Fprintf(&b, "    <cardback>%s</cardback>\n", g.Catalog.Cardback())
	b.WriteString("</order>\n")

	return b.String(), nil
}

// Filename returns the conventional output name for a fixture of the given
// card count, e.g. "mpc-150-cards.xml".
func Filename(numCards int) string {
	return fmt.Sprintf("mpc-%d-cards.xml", numCards)
}
