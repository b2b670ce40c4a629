package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/proxyforge/mpcgen/internal/catalog"
	"github.com/proxyforge/mpcgen/internal/config"
	"github.com/proxyforge/mpcgen/internal/validator"
)

// catalogCmd represents the catalog command group
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage card catalogs in your catalog library",
	Long:  `Commands for managing the card catalogs that fixtures are generated from.`,
}

// catalogListCmd represents the catalog ls command
var catalogListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List available catalogs in your catalog library",
	Run: func(cmd *cobra.Command, args []string) {
		libraryPath := config.GetCatalogLibraryPath()

		// Get default catalog
		defaultCatalog, err := config.GetDefaultCatalog()
		if err != nil {
			fmt.Printf("Error getting default catalog: %v\n", err)
			return
		}

		// The builtin catalog is always available, even without a library.
		builtin := catalog.Builtin()
		if defaultCatalog == "" || defaultCatalog == builtin.Name {
			fmt.Printf("* %s (%d cards, builtin) [DEFAULT]\n", builtin.Name, builtin.Len())
		} else {
			fmt.Printf("  %s (%d cards, builtin)\n", builtin.Name, builtin.Len())
		}

		// Check if catalog library exists
		if _, err := os.Stat(libraryPath); os.IsNotExist(err) {
			fmt.Printf("Catalog library at %s does not exist.\n", libraryPath)
			fmt.Println("Run 'mpcgen catalog init' to create it.")
			return
		}

		// Read the catalog library directory
		entries, err := os.ReadDir(libraryPath)
		if err != nil {
			fmt.Printf("Error reading catalog library: %v\n", err)
			return
		}

		for _, entry := range entries {
			if entry.IsDir() || filepath.Ext(entry.Name()) != ".toml" {
				continue
			}

			c, err := catalog.Load(filepath.Join(libraryPath, entry.Name()))
			if err != nil {
				// Not a valid catalog, skip
				continue
			}

			name := strings.TrimSuffix(entry.Name(), ".toml")
			if name == defaultCatalog {
				fmt.Printf("* %s (%d cards) [DEFAULT]\n", name, c.Len())
			} else {
				fmt.Printf("  %s (%d cards)\n", name, c.Len())
			}
		}
	},
}

// catalogShowCmd represents the catalog show command
var catalogShowCmd = &cobra.Command{
	Use:   "show [catalog]",
	Short: "Display the card templates of a catalog",
	Long: `Show prints the cards of a catalog in generation order along with the base
identifiers that per-slot IDs are derived from.

You can name a catalog from your catalog library (XDG_DATA_HOME/mpcgen/catalogs)
or give a path to a catalog file. With no argument the default catalog from
your config is shown.

Examples:
  mpcgen catalog show
  mpcgen catalog show pauper
  mpcgen catalog show ./custom-catalog.toml`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var ref string
		if len(args) == 1 {
			ref = args[0]
		} else {
			defaultCatalog, err := config.GetDefaultCatalog()
			if err != nil {
				return fmt.Errorf("error getting default catalog: %v", err)
			}
			ref = defaultCatalog
		}

		c, err := loadCatalog(ref)
		if err != nil {
			return err
		}

		displayCatalog(c)
		return nil
	},
}

// catalogValidateCmd represents the catalog validate command
var catalogValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a catalog file",
	Long: `Validate checks that a catalog TOML file can drive fixture generation.
It verifies the card entries and the identifier widths that per-slot ID
derivation relies on.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalogPath := args[0]

		// Check if path exists
		if _, err := os.Stat(catalogPath); os.IsNotExist(err) {
			return fmt.Errorf("catalog file not found: %s", catalogPath)
		}

		// Create validator and run validation
		v := validator.NewValidator(catalogPath)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %v", err)
		}

		// Display validation results
		fmt.Println("Validation Results:")
		fmt.Println("-------------------")

		if len(results.Errors) == 0 {
			fmt.Printf("✅ Catalog '%s' can drive fixture generation.\n", catalogPath)
		} else {
			fmt.Printf("❌ Catalog '%s' has %d validation errors:\n", catalogPath, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Printf("%d. %s\n", i+1, err)
			}
			return fmt.Errorf("validation failed")
		}

		if len(results.Warnings) > 0 {
			fmt.Println("\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Printf("%d. %s\n", i+1, warn)
			}
		}

		return nil
	},
}

// catalogInitCmd represents the catalog init command
var catalogInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the catalog library",
	Run: func(cmd *cobra.Command, args []string) {
		libraryPath := config.GetCatalogLibraryPath()

		// Create the catalog library directory if it doesn't exist
		if err := os.MkdirAll(libraryPath, 0755); err != nil {
			fmt.Printf("Error creating catalog library: %v\n", err)
			return
		}

		fmt.Println("Catalog library initialized at:", libraryPath)

		// Export the builtin catalog as a starting point for custom ones
		starterPath := filepath.Join(libraryPath, catalog.BuiltinName+".toml")
		if _, err := os.Stat(starterPath); os.IsNotExist(err) {
			if err := catalog.Builtin().Save(starterPath); err != nil {
				fmt.Printf("Error writing starter catalog: %v\n", err)
				return
			}
			fmt.Println("Starter catalog written to:", starterPath)
		}

		// Initialize config
		_, err := config.LoadConfig()
		if err != nil {
			fmt.Printf("Error initializing config: %v\n", err)
			return
		}

		configPath := config.GetConfigFilePath()
		fmt.Println("Config file initialized at:", configPath)
	},
}

// catalogSetDefaultCmd represents the catalog set-default command
var catalogSetDefaultCmd = &cobra.Command{
	Use:   "set-default [catalog_name]",
	Short: "Set the default catalog",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		catalogName := args[0]

		// Try to load the catalog to make sure it's valid
		if _, err := loadCatalog(catalogName); err != nil {
			fmt.Printf("Error: Not a valid catalog - %v\n", err)
			return
		}

		// Set as default
		if err := config.SetDefaultCatalog(catalogName); err != nil {
			fmt.Printf("Error setting default catalog: %v\n", err)
			return
		}

		fmt.Printf("Default catalog set to: %s\n", catalogName)
	},
}

func init() {
	RootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogShowCmd)
	catalogCmd.AddCommand(catalogValidateCmd)
	catalogCmd.AddCommand(catalogInitCmd)
	catalogCmd.AddCommand(catalogSetDefaultCmd)
}

// displayCatalog prints catalog metadata and one line per card template.
func displayCatalog(c *catalog.Catalog) {
	// Get terminal width
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 80 // Default if we can't get terminal width
	}

	fmt.Println()
	fmt.Println(color.CyanString("Catalog:  ") + color.HiWhiteString(c.Name))
	if c.Description != "" {
		fmt.Println(color.CyanString("About:    ") + color.HiWhiteString(c.Description))
	}
	fmt.Println(color.CyanString("Cards:    ") + color.HiWhiteString("%d", c.Len()))
	fmt.Println(color.CyanString("Cardback: ") + color.HiWhiteString(c.Cardback()))
	fmt.Println()

	for i, t := range c.Templates() {
		line := fmt.Sprintf("  %2d  %-24s %-24s %s", i, t.Name, t.Query, t.ID)
		if len(line) > width {
			line = line[:width]
		}
		fmt.Println(line)
	}
	fmt.Println()
}
