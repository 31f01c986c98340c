package listing

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blockpharm/internal/domain"
)

func TestStaticProvider_DeclaredOrder(t *testing.T) {
	cards, err := NewStaticProvider().Cards(context.Background())
	require.NoError(t, err)
	require.Len(t, cards, 6)

	want := []struct {
		label string
		open  bool
	}{
		{"LDX <-> DXB", true},
		{"LDN <-> LAX", false},
		{"LDN <-> GHA", false},
		{"LDN <-> IRQ", false},
		{"PKS <-> IRK", false},
		{"PKS <-> SEG", false},
	}
	for i, w := range want {
		assert.Equal(t, w.label, cards[i].Title(), "card %d", i)
		assert.Equal(t, w.open, cards[i].Open(), "card %d", i)
	}
}

func TestStaticProvider_ReturnsFreshCopy(t *testing.T) {
	p := NewStaticProvider()
	first, err := p.Cards(context.Background())
	require.NoError(t, err)

	changed := "mutated"
	first[0].Label = &changed

	second, err := p.Cards(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "LDX <-> DXB", second[0].Title())
}

func TestParseCards(t *testing.T) {
	t.Run("optional fields", func(t *testing.T) {
		cards, err := ParseCards([]byte(`
cards:
  - label: "LDX <-> DXB"
    open: true
  - label: "LDN <-> LAX"
  - open: true
  - {}
`))
		require.NoError(t, err)
		require.Len(t, cards, 4)

		assert.Equal(t, "LDX <-> DXB", cards[0].Title())
		assert.True(t, cards[0].Open())

		assert.Equal(t, "LDN <-> LAX", cards[1].Title())
		assert.False(t, cards[1].Open())
		assert.Nil(t, cards[1].IsOpen)

		assert.Nil(t, cards[2].Label)
		assert.Equal(t, "", cards[2].Title())
		assert.True(t, cards[2].Open())

		assert.Equal(t, domain.StatusClosed, cards[3].Status())
	})

	t.Run("duplicates kept", func(t *testing.T) {
		cards, err := ParseCards([]byte("cards:\n  - label: A\n  - label: A\n"))
		require.NoError(t, err)
		require.Len(t, cards, 2)
		assert.Equal(t, cards[0].Title(), cards[1].Title())
	})

	t.Run("empty", func(t *testing.T) {
		_, err := ParseCards([]byte("cards: []\n"))
		require.ErrorIs(t, err, ErrNoCards)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := ParseCards([]byte("cards: [\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse card file")
	})

	t.Run("empty document", func(t *testing.T) {
		_, err := ParseCards([]byte(""))
		require.ErrorIs(t, err, ErrNoCards)
	})

	t.Run("unknown keys rejected", func(t *testing.T) {
		tests := []struct {
			name string
			doc  string
			key  string
		}{
			{"camel case open", "cards:\n  - label: \"LDX <-> DXB\"\n    isOpen: true\n", "isOpen"},
			{"json spelling", "cards:\n  - label: \"LDX <-> DXB\"\n    is_open: true\n", "is_open"},
			{"misspelled label", "cards:\n  - lable: \"LDN <-> LAX\"\n", "lable"},
			{"top level", "card:\n  - label: A\n", "card"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				cards, err := ParseCards([]byte(tt.doc))
				require.Error(t, err)
				assert.Nil(t, cards)
				assert.Contains(t, err.Error(), "parse card file")
				assert.Contains(t, err.Error(), tt.key)
			})
		}
	})

	t.Run("multi-line label", func(t *testing.T) {
		_, err := ParseCards([]byte("cards:\n  - label: \"a\\nb\"\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "card 0")
	})
}

func TestFileProvider(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cards:\n  - label: \"PKS <-> SEG\"\n    open: true\n"), 0o600))

	p := NewFileProvider(path)
	assert.Equal(t, path, p.Path())

	cards, err := p.Cards(context.Background())
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "PKS <-> SEG", cards[0].Title())
	assert.True(t, cards[0].Open())
}

func TestFileProvider_MissingFile(t *testing.T) {
	p := NewFileProvider(filepath.Join(t.TempDir(), "missing.yaml"))
	_, err := p.Cards(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFileProvider_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFileProvider("unused.yaml").Cards(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestNewProvider(t *testing.T) {
	assert.IsType(t, &StaticProvider{}, NewProvider(""))
	assert.IsType(t, &FileProvider{}, NewProvider("cards.yaml"))
}
