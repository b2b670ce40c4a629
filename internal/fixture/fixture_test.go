package fixture

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proxyforge/mpcgen/internal/catalog"
)

// singleCardDocument is the complete expected output for a one-card order.
const singleCardDocument = `<?xml version="1.0" encoding="UTF-8"?>
<order>
    <details>
        <quantity>10</quantity>
        <bracket>18</bracket>
        <stock>(S30) Standard Smooth</stock>
        <foil>false</foil>
    </details>
    <fronts>
        <card>
            <id>1L56-vQ08leCTGu7orNMlWYKiXqWA0000</id>
            <slots>0</slots>
            <name>Abrupt Decay (1).jpg</name>
            <query>abrupt decay</query>
        </card>
    </fronts>
    <cardback>1LrVX0pUcye9n_0RtaDNVl2xPrQgn7CYf</cardback>
</order>
`

// emptyOrderDocument is the complete expected output for a zero-card order.
const emptyOrderDocument = `<?xml version="1.0" encoding="UTF-8"?>
<order>
    <details>
        <quantity>10</quantity>
        <bracket>18</bracket>
        <stock>(S30) Standard Smooth</stock>
        <foil>false</foil>
    </details>
    <fronts>
    </fronts>
    <cardback>1LrVX0pUcye9n_0RtaDNVl2xPrQgn7CYf</cardback>
</order>
`

var slotsPattern = regexp.MustCompile(`<slots>(\d+)</slots>`)

func TestGenerateSingleCard(t *testing.T) {
	document, err := New(catalog.Builtin()).Generate(1)
	require.NoError(t, err)
	assert.Equal(t, singleCardDocument, document)
}

func TestGenerateZeroCards(t *testing.T) {
	document, err := New(catalog.Builtin()).Generate(0)
	require.NoError(t, err)
	assert.Equal(t, emptyOrderDocument, document)
}

func TestGenerateCardCount(t *testing.T) {
	gen := New(catalog.Builtin())

	for _, count := range []int{0, 1, 9, 10, 11, 150, 1000} {
		document, err := gen.Generate(count)
		require.NoError(t, err)
		assert.Equal(t, count, strings.Count(document, "<card>"), "count %d", count)
	}
}

func TestGenerateSlotsAreSequential(t *testing.T) {
	gen := New(catalog.Builtin())

	for _, count := range []int{1, 10, 11, 137} {
		document, err := gen.Generate(count)
		require.NoError(t, err)

		matches := slotsPattern.FindAllStringSubmatch(document, -1)
		require.Len(t, matches, count, "count %d", count)

		for i, m := range matches {
			slot, err := strconv.Atoi(m[1])
			require.NoError(t, err)
			assert.Equal(t, i, slot)
		}
	}
}

// An eleventh card wraps around the ten-entry catalog and reuses the first
// template, with a fresh slot, image number and derived ID.
func TestGenerateWrapsAroundCatalog(t *testing.T) {
	document, err := New(catalog.Builtin()).Generate(11)
	require.NoError(t, err)

	assert.Contains(t, document, `        <card>
            <id>1L56-vQ08leCTGu7orNMlWYKiXqWA0010</id>
            <slots>10</slots>
            <name>Abrupt Decay (11).jpg</name>
            <query>abrupt decay</query>
        </card>`)

	// Both Abrupt Decay entries are present, once per cycle.
	assert.Equal(t, 2, strings.Count(document, "<query>abrupt decay</query>"))
	assert.Contains(t, document, "<name>Abrupt Decay (1).jpg</name>")
}

func TestGenerateDeterministic(t *testing.T) {
	first, err := New(catalog.Builtin()).Generate(150)
	require.NoError(t, err)

	second, err := New(catalog.Builtin()).Generate(150)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateNegativeCount(t *testing.T) {
	document, err := New(catalog.Builtin()).Generate(-1)

	require.ErrorIs(t, err, ErrNegativeCount)
	assert.Empty(t, document)
}

func TestGenerateTrailingNewline(t *testing.T) {
	gen := New(catalog.Builtin())

	for _, count := range []int{0, 1, 150} {
		document, err := gen.Generate(count)
		require.NoError(t, err)

		assert.True(t, strings.HasSuffix(document, "</order>\n"), "count %d", count)
		assert.False(t, strings.HasSuffix(document, "\n\n"), "count %d", count)
	}
}

// The details header describes print options, not order size, so it must not
// vary with the requested count.
func TestGenerateHeaderIndependentOfCount(t *testing.T) {
	gen := New(catalog.Builtin())

	small, err := gen.Generate(1)
	require.NoError(t, err)
	large, err := gen.Generate(5000)
	require.NoError(t, err)

	header := `    <details>
        <quantity>10</quantity>
        <bracket>18</bracket>
        <stock>(S30) Standard Smooth</stock>
        <foil>false</foil>
    </details>`
	assert.Contains(t, small, header)
	assert.Contains(t, large, header)
}

func TestGenerateFoilHeader(t *testing.T) {
	gen := New(catalog.Builtin())
	gen.Details.Foil = true

	document, err := gen.Generate(1)
	require.NoError(t, err)

	assert.Contains(t, document, "<foil>true</foil>")
	assert.NotContains(t, document, "<foil>false</foil>")
}

func TestGenerateCustomCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "two.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
cardback = "1ZZZ999YYY888XXX777WWW666VVV555UU"

[catalog]
name = "two"

[[cards]]
name = "Brainstorm"
query = "brainstorm"
id = "1BBB222CCC333DDD444EEE555FFF666GG"

[[cards]]
name = "Ponder"
query = "ponder"
id = "1PPP111QQQ222RRR333SSS444TTT555UU"
`), 0644))

	cat, err := catalog.Load(path)
	require.NoError(t, err)

	document, err := New(cat).Generate(3)
	require.NoError(t, err)

	assert.Contains(t, document, "    <cardback>1ZZZ999YYY888XXX777WWW666VVV555UU</cardback>\n")
	assert.Contains(t, document, "<name>Brainstorm (1).jpg</name>")
	assert.Contains(t, document, "<name>Ponder (2).jpg</name>")
	// Slot 2 wraps back onto the first of the two templates.
	assert.Contains(t, document, "<name>Brainstorm (3).jpg</name>")
	assert.Contains(t, document, "<id>1BBB222CCC333DDD444EEE555FFF60000</id>")
	assert.Contains(t, document, "<id>1BBB222CCC333DDD444EEE555FFF60002</id>")
}

func TestGenerateConcurrently(t *testing.T) {
	gen := New(catalog.Builtin())

	want, err := gen.Generate(250)
	require.NoError(t, err)

	var wg sync.WaitGroup
	documents := make([]string, 8)
	for i := range documents {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			document, err := gen.Generate(250)
			if err != nil {
				return
			}
			documents[i] = document
		}(i)
	}
	wg.Wait()

	for i, document := range documents {
		assert.Equal(t, want, document, "goroutine %d", i)
	}
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "mpc-150-cards.xml", Filename(150))
	assert.Equal(t, "mpc-0-cards.xml", Filename(0))
	assert.Equal(t, "mpc-100000-cards.xml", Filename(100000))
}

func BenchmarkGenerate(b *testing.B) {
	gen := New(catalog.Builtin())

	for _, count := range []int{150, 5000} {
		b.Run(fmt.Sprintf("cards=%d", count), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := gen.Generate(count); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
