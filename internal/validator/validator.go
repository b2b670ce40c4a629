package validator

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/proxyforge/mpcgen/internal/card"
)

// driveIDWidth is the identifier length used throughout the reference
// catalog. Other widths still generate, so mismatches only warn.
const driveIDWidth = 33

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	CatalogPath string
	Results     ValidationResults
}

func NewValidator(catalogPath string) *Validator {
	return &Validator{
		CatalogPath: catalogPath,
		Results:     ValidationResults{},
	}
}

// Validate checks that the catalog file can drive fixture generation.
// Errors mark conditions the loader rejects, warnings mark entries that
// load fine but produce fixtures unlike the reference documents.
func (v *Validator) Validate() (ValidationResults, error) {
	file, err := v.decodeCatalogToml()
	if err != nil {
		return v.Results, err
	}

	v.validateMetadata(file)
	v.validateCards(file)
	v.validateCardback(file)

	return v.Results, nil
}

func (v *Validator) decodeCatalogToml() (*CatalogFile, error) {
	if _, err := os.Stat(v.CatalogPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("catalog file not found: %s", v.CatalogPath)
	}

	var file CatalogFile
	if _, err := toml.DecodeFile(v.CatalogPath, &file); err != nil {
		return nil, fmt.Errorf("error parsing catalog file: %v", err)
	}

	return &file, nil
}

// validateMetadata checks the [catalog] section
func (v *Validator) validateMetadata(file *CatalogFile) {
	if file.Catalog.Name == "" {
		v.Results.Warnings = append(v.Results.Warnings,
			"catalog.name is not set, the file name will be used instead")
	}
}

// validateCards checks the [[cards]] entries
func (v *Validator) validateCards(file *CatalogFile) {
	if len(file.Cards) == 0 {
		v.Results.Errors = append(v.Results.Errors, "at least one [[cards]] entry is required")
		return
	}

	seen := make(map[string]int)
	for i, c := range file.Cards {
		if c.Name == "" {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("cards[%d].name is required", i))
		}

		if c.Query == "" {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("cards[%d].query is required", i))
		} else if c.Query != strings.ToLower(c.Query) {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("cards[%d].query %q is not lowercase", i, c.Query))
		}

		if c.ID == "" {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("cards[%d].id is required", i))
			continue
		}

		if len(c.ID) <= card.SuffixWidth {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("cards[%d].id %q must be longer than %d characters for slot numbering",
					i, c.ID, card.SuffixWidth))
		} else if len(c.ID) != driveIDWidth {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("cards[%d].id %q is %d characters, reference identifiers are %d",
					i, c.ID, len(c.ID), driveIDWidth))
		}

		if prev, ok := seen[c.ID]; ok {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("cards[%d].id duplicates cards[%d].id", i, prev))
		} else {
			seen[c.ID] = i
		}
	}
}

// validateCardback checks the optional cardback override
func (v *Validator) validateCardback(file *CatalogFile) {
	if file.Cardback == "" {
		return // The builtin cardback is used
	}

	if len(file.Cardback) != driveIDWidth {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("cardback %q is %d characters, reference identifiers are %d",
				file.Cardback, len(file.Cardback), driveIDWidth))
	}
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
