package extractor_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/four-bytes/four-template-resolver/pkg/extractor"
)

type album struct {
	title    string
	artist   string
	released time.Time
	genres   []string
	inStock  bool
}

func (a *album) GetTitle() string       { return a.title }
func (a *album) GetArtistName() string  { return a.artist }
func (a *album) GetReleased() time.Time { return a.released }
func (a *album) GetGenres() []string    { return a.genres }
func (a *album) IsInStock() bool        { return a.inStock }
func (a *album) HasGenres() bool        { return len(a.genres) > 0 }

// Not accessors: takes an argument / two results / unexported.
func (a *album) GetTrack(i int) string        { return "" }
func (a *album) GetLabel() (string, error)    { return "", nil }
func (a *album) getInternalCode() string      { return "" }
func (a *album) Title() string                { return a.title }

type panicky struct{}

func (p *panicky) GetName() string { return "fine" }
func (p *panicky) GetPrice() int   { panic("no price set") }

type provided struct{}

func (provided) TemplateFields() []extractor.Field {
	return []extractor.Field{
		{Name: "sku", Value: "FB-001"},
		{Name: "onSale", Value: true},
	}
}

func TestExtractor_SchemaFor(t *testing.T) {
	t.Parallel()

	t.Run("derives field names from accessor methods", func(t *testing.T) {
		t.Parallel()

		x := extractor.New()
		names := x.SchemaFor(&album{})

		// Go enumerates methods alphabetically.
		require.Equal(t, []string{"artistName", "genres", "released", "title", "inStock"}, names)
	})

	t.Run("first discovered accessor wins on duplicate field names", func(t *testing.T) {
		t.Parallel()

		// GetGenres and HasGenres both derive "genres"; GetGenres comes
		// first alphabetically and keeps the slot.
		x := extractor.New()
		a := &album{genres: []string{"jazz"}}

		data, err := x.Extract(a)
		require.NoError(t, err)
		require.Equal(t, "jazz", data["genres"])
	})

	t.Run("memoizes the schema until cleared", func(t *testing.T) {
		t.Parallel()

		x := extractor.New()
		x.SchemaFor(&album{})

		stats := x.Stats()
		require.Equal(t, 1, stats.Types)
		require.Equal(t, 5, stats.TotalProperties)

		x.SchemaFor(&album{title: "another instance"})
		require.Equal(t, 1, x.Stats().Types)

		x.ClearSchemas()
		require.Zero(t, x.Stats().Types)
	})
}

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("reads accessor values with conversion", func(t *testing.T) {
		t.Parallel()

		x := extractor.New()
		a := &album{
			title:    "Kind of Blue",
			artist:   "Miles Davis",
			released: time.Date(1959, 8, 17, 12, 30, 0, 0, time.UTC),
			genres:   []string{"jazz", "", "modal"},
			inStock:  true,
		}

		data, err := x.Extract(a)
		require.NoError(t, err)
		require.Equal(t, "Kind of Blue", data["title"])
		require.Equal(t, "Miles Davis", data["artistName"])
		require.Equal(t, "1959-08-17", data["released"])
		require.Equal(t, "jazz, modal", data["genres"])
		require.Equal(t, "1", data["inStock"])
	})

	t.Run("omits fields whose accessor panics", func(t *testing.T) {
		t.Parallel()

		x := extractor.New()

		data, err := x.Extract(&panicky{})
		require.NoError(t, err)
		require.Equal(t, "fine", data["name"])
		require.NotContains(t, data, "price")
	})

	t.Run("uses the FieldProvider interface when implemented", func(t *testing.T) {
		t.Parallel()

		x := extractor.New()

		data, err := x.Extract(provided{})
		require.NoError(t, err)
		require.Equal(t, "FB-001", data["sku"])
		require.Equal(t, "1", data["onSale"])
	})

	t.Run("registered adapter takes precedence over reflection", func(t *testing.T) {
		t.Parallel()

		x := extractor.New()
		x.RegisterAdapter(&album{}, func(entity any) []extractor.Field {
			a := entity.(*album)
			return []extractor.Field{{Name: "title", Value: "adapted: " + a.title}}
		})

		data, err := x.Extract(&album{title: "Blue Train"})
		require.NoError(t, err)
		require.Equal(t, "adapted: Blue Train", data["title"])
		require.NotContains(t, data, "artistName")
	})

	t.Run("passes map entities through conversion", func(t *testing.T) {
		t.Parallel()

		x := extractor.New()

		data, err := x.Extract(map[string]any{"count": 3, "active": false})
		require.NoError(t, err)
		require.Equal(t, 3, data["count"])
		require.Equal(t, "0", data["active"])
	})

	t.Run("rejects nil", func(t *testing.T) {
		t.Parallel()

		x := extractor.New()

		_, err := x.Extract(nil)
		require.ErrorIs(t, err, extractor.ErrExtraction)
	})
}

func TestExtractor_ExtractMultiple(t *testing.T) {
	t.Parallel()

	t.Run("later entities overwrite earlier fields", func(t *testing.T) {
		t.Parallel()

		x := extractor.New()
		first := map[string]any{"name": "first", "a": 1}
		second := map[string]any{"name": "second", "b": 2}

		data, err := x.ExtractMultiple([]any{first, second})
		require.NoError(t, err)
		require.Equal(t, "second", data["name"])
		require.Equal(t, 1, data["a"])
		require.Equal(t, 2, data["b"])
	})

	t.Run("names the offending index for non-entities", func(t *testing.T) {
		t.Parallel()

		x := extractor.New()

		_, err := x.ExtractMultiple([]any{&album{}, "not an entity"})
		require.ErrorIs(t, err, extractor.ErrExtraction)

		var xerr *extractor.ExtractionError
		require.ErrorAs(t, err, &xerr)
		require.Equal(t, 1, xerr.Index)
	})

	t.Run("empty input yields an empty mapping", func(t *testing.T) {
		t.Parallel()

		x := extractor.New()

		data, err := x.ExtractMultiple(nil)
		require.NoError(t, err)
		require.Empty(t, data)
	})
}
