package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/proxyforge/mpcgen/internal/catalog"
	"github.com/proxyforge/mpcgen/internal/config"
	"github.com/proxyforge/mpcgen/internal/fixture"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate [count...]",
	Short: "Generate MPC order fixture files",
	Long: `Generate produces synthetic MPC order XML documents with the requested
number of card entries. Card entries are derived by cycling through a card
catalog, so any count works regardless of catalog size and identical counts
always yield byte-identical files.

Each count argument produces one file named mpc-<count>-cards.xml in the
output directory. With no arguments the default count from your config is
used (150 out of the box).

You can pick a catalog from your catalog library (XDG_DATA_HOME/mpcgen/catalogs)
with --catalog, or point it at a catalog file directly. Without the flag the
default catalog from your config is used.

Examples:
  mpcgen generate
  mpcgen generate 500
  mpcgen generate 150 500 1000
  mpcgen generate --catalog pauper --output-dir /tmp/fixtures 250
  mpcgen generate --stdout 10`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		counts, err := parseCounts(args)
		if err != nil {
			return err
		}

		if len(counts) == 0 {
			count, err := config.GetDefaultCount()
			if err != nil {
				return fmt.Errorf("error reading config: %v", err)
			}
			counts = []int{count}
		}

		catalogFlag, _ := cmd.Flags().GetString("catalog")
		if catalogFlag == "" {
			catalogFlag, err = config.GetDefaultCatalog()
			if err != nil {
				return fmt.Errorf("error getting default catalog: %v", err)
			}
		}

		cat, err := loadCatalog(catalogFlag)
		if err != nil {
			return err
		}

		gen := fixture.New(cat)
		if foil, _ := cmd.Flags().GetBool("foil"); foil {
			gen.Details.Foil = true
		}

		if toStdout, _ := cmd.Flags().GetBool("stdout"); toStdout {
			if len(counts) != 1 {
				return fmt.Errorf("--stdout accepts a single count")
			}
			document, err := gen.Generate(counts[0])
			if err != nil {
				return err
			}
			fmt.Print(document)
			return nil
		}

		outputDir, _ := cmd.Flags().GetString("output-dir")
		if outputDir == "" {
			outputDir, err = config.GetOutputDir()
			if err != nil {
				return fmt.Errorf("error getting output directory: %v", err)
			}
		}
		if outputDir == "" {
			outputDir = "."
		}

		if len(counts) == 1 {
			path, err := writeFixture(gen, counts[0], outputDir)
			if err != nil {
				return err
			}
			fmt.Printf("Generated %s with %d cards\n", color.GreenString(path), counts[0])
			return nil
		}

		// Documents are independent of each other, so batches generate
		// concurrently. Results print in argument order once all are done.
		var wg sync.WaitGroup
		paths := make([]string, len(counts))
		errs := make([]error, len(counts))
		for i, count := range counts {
			wg.Add(1)
			go func(i, count int) {
				defer wg.Done()
				paths[i], errs[i] = writeFixture(gen, count, outputDir)
			}(i, count)
		}
		wg.Wait()

		for i, count := range counts {
			if errs[i] != nil {
				return errs[i]
			}
			fmt.Printf("Generated %s with %d cards\n", color.GreenString(paths[i]), count)
		}

		return nil
	},
}

func init() {
	generateCmd.Flags().StringP("catalog", "c", "", "Catalog from your catalog library or a path to a catalog file")
	generateCmd.Flags().StringP("output-dir", "o", "", "Directory to write fixture files into (default: current directory)")
	generateCmd.Flags().Bool("foil", false, "Mark the order as foil in the details header")
	generateCmd.Flags().Bool("stdout", false, "Print the document to stdout instead of writing a file")
}

// parseCounts converts command line arguments to card counts.
func parseCounts(args []string) ([]int, error) {
	counts := make([]int, 0, len(args))
	for _, arg := range args {
		count, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid card count %q: expected an integer", arg)
		}
		if count < 0 {
			return nil, fmt.Errorf("invalid card count %d: must not be negative", count)
		}
		counts = append(counts, count)
	}
	return counts, nil
}

// loadCatalog resolves a catalog reference. A name is looked up in the
// catalog library first, then treated as a path to a catalog file. An empty
// reference or the builtin name yields the builtin catalog, unless a library
// catalog shadows that name.
func loadCatalog(ref string) (*catalog.Catalog, error) {
	if ref == "" {
		return catalog.Builtin(), nil
	}

	path, err := config.GetCatalogPath(ref)
	if err != nil {
		if ref == catalog.BuiltinName {
			return catalog.Builtin(), nil
		}
		return nil, err
	}

	return catalog.Load(path)
}

// writeFixture generates one order document and writes it into outputDir,
// returning the written path.
func writeFixture(gen *fixture.Generator, count int, outputDir string) (string, error) {
	document, err := gen.Generate(count)
	if err != nil {
		return "", err
	}

	path := filepath.Join(outputDir, fixture.Filename(count))
	if err := os.WriteFile(path, []byte(document), 0644); err != nil {
		return "", fmt.Errorf("error writing fixture file: %v", err)
	}

	return path, nil
}
