package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/proxyforge/mpcgen/internal/card"
)

// DefaultCardback is the drive identifier emitted as the order cardback when
// a catalog does not override it.
const DefaultCardback = "1LrVX0pUcye9n_0RtaDNVl2xPrQgn7CYf"

// BuiltinName is the name of the catalog used when none is configured.
const BuiltinName = "standard"

// Catalog is an ordered set of card templates that fixture generation cycles
// through. Slot i always maps onto template i mod Len, so the same catalog
// and count reproduce the same document.
type Catalog struct {
	Name        string
	Description string
	Path        string // Empty for the builtin catalog

	templates []card.Template
	cardback  string
}

// builtinTemplates is the reference card set. Order matters: generated slots
// cycle through these entries by index.
var builtinTemplates = []card.Template{
	{Name: "Abrupt Decay", Query: "abrupt decay", ID: "1L56-vQ08leCTGu7orNMlWYKiXqWAnTiO"},
	{Name: "Ashnod's Altar", Query: "ashnods altar", ID: "1CFKGITXtJgJt47dEKTfJLrvAq6Ghi3JK"},
	{Name: "Birds of Paradise", Query: "birds of paradise", ID: "1ABC123XYZ456DEF789GHI012JKL345MN"},
	{Name: "Lightning Bolt", Query: "lightning bolt", ID: "1MNO678PQR901STU234VWX567YZA890BC"},
	{Name: "Sol Ring", Query: "sol ring", ID: "1DEF234GHI567JKL890MNO123PQR456ST"},
	{Name: "Llanowar Elves", Query: "llanowar elves", ID: "1UVW789XYZ012ABC345DEF678GHI901JK"},
	{Name: "Counterspell", Query: "counterspell", ID: "1LMN234OPQ567RST890UVW123XYZ456AB"},
	{Name: "Dark Ritual", Query: "dark ritual", ID: "1CDE789FGH012IJK345LMN678OPQ901RS"},
	{Name: "Swords to Plowshares", Query: "swords to plowshares", ID: "1TUV234WXY567ZAB890CDE123FGH456IJ"},
	{Name: "Path to Exile", Query: "path to exile", ID: "1KLM789NOP012QRS345TUV678WXY901ZA"},
}

// Builtin returns the fixed reference catalog that generation uses when no
// custom catalog is configured.
func Builtin() *Catalog {
	return &Catalog{
		Name:        BuiltinName,
		Description: "Reference card set baked into the generator",
		templates:   builtinTemplates,
		cardback:    DefaultCardback,
	}
}

// Load reads a card catalog from a TOML file
func Load(path string) (*Catalog, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("catalog file not found: %s", path)
	}

	var file CatalogFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("error parsing catalog file: %v", err)
	}

	if len(file.Cards) == 0 {
		return nil, fmt.Errorf("catalog has no [[cards]] entries: %s", path)
	}

	templates := make([]card.Template, 0, len(file.Cards))
	for i, c := range file.Cards {
		if c.Name == "" || c.Query == "" || c.ID == "" {
			return nil, fmt.Errorf("catalog card %d is missing name, query or id: %s", i, path)
		}
		if len(c.ID) <= card.SuffixWidth {
			return nil, fmt.Errorf("catalog card %d id %q is too short for slot numbering: %s", i, c.ID, path)
		}
		templates = append(templates, card.Template{
			Name:  c.Name,
			Query: c.Query,
			ID:    c.ID,
		})
	}

	cardback := file.Cardback
	if cardback == "" {
		cardback = DefaultCardback
	}

	name := file.Catalog.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), ".toml")
	}

	return &Catalog{
		Name:        name,
		Description: file.Catalog.Description,
		Path:        path,
		templates:   templates,
		cardback:    cardback,
	}, nil
}

// Save writes the catalog as a TOML file that Load can read back
func (c *Catalog) Save(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating catalog file: %v", err)
	}
	defer file.Close()

	repr := CatalogFile{
		Cardback: c.cardback,
		Catalog: CatalogSection{
			Name:        c.Name,
			Description: c.Description,
		},
		Cards: make([]CardSection, 0, len(c.templates)),
	}
	for _, t := range c.templates {
		repr.Cards = append(repr.Cards, CardSection{
			Name:  t.Name,
			Query: t.Query,
			ID:    t.ID,
		})
	}

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(repr); err != nil {
		return fmt.Errorf("error encoding catalog: %v", err)
	}

	return nil
}

// Len returns the number of templates in the catalog.
func (c *Catalog) Len() int {
	return len(c.templates)
}

// Template returns the template that the given zero-based slot cycles onto.
func (c *Catalog) Template(slot int) card.Template {
	return c.templates[slot%len(c.templates)]
}

// Templates returns the templates in catalog order.
func (c *Catalog) Templates() []card.Template {
	templates := make([]card.Template, len(c.templates))
	copy(templates, c.templates)
	return templates
}

// Cardback returns the cardback identifier for orders built from this catalog.
func (c *Catalog) Cardback() string {
	return c.cardback
}

// Catalog file structures
type CatalogFile struct {
	Cardback string         `toml:"cardback"`
	Catalog  CatalogSection `toml:"catalog"`
	Cards    []CardSection  `toml:"cards"`
}

type CatalogSection struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`
}

type CardSection struct {
	Name  string `toml:"name"`
	Query string `toml:"query"`
	ID    string `toml:"id"`
}
