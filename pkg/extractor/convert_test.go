package extractor_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/four-bytes/four-template-resolver/pkg/extractor"
)

type money struct{ cents int }

func (m money) String() string {
	return fmt.Sprintf("%d.%02d EUR", m.cents/100, m.cents%100)
}

func TestConvert(t *testing.T) {
	t.Parallel()

	t.Run("nil stays nil", func(t *testing.T) {
		t.Parallel()

		require.Nil(t, extractor.Convert(nil))
	})

	t.Run("dates become calendar-date strings", func(t *testing.T) {
		t.Parallel()

		d := time.Date(2024, 3, 9, 23, 59, 59, 0, time.UTC)
		require.Equal(t, "2024-03-09", extractor.Convert(d))
		require.Equal(t, "2024-03-09", extractor.Convert(&d))
	})

	t.Run("booleans become 1 and 0", func(t *testing.T) {
		t.Parallel()

		require.Equal(t, "1", extractor.Convert(true))
		require.Equal(t, "0", extractor.Convert(false))
	})

	t.Run("lists join non-nil non-empty elements", func(t *testing.T) {
		t.Parallel()

		require.Equal(t, "rock, pop", extractor.Convert([]any{"rock", nil, "", "pop"}))
		require.Equal(t, "1, 2, 3", extractor.Convert([]int{1, 2, 3}))
	})

	t.Run("stringers use their textual representation", func(t *testing.T) {
		t.Parallel()

		require.Equal(t, "9.99 EUR", extractor.Convert(money{cents: 999}))
		require.Equal(t, "9.99 EUR", extractor.Convert(&money{cents: 999}))
	})

	t.Run("other complex objects drop to nil", func(t *testing.T) {
		t.Parallel()

		type opaque struct{ X int }
		require.Nil(t, extractor.Convert(opaque{X: 1}))
		require.Nil(t, extractor.Convert(&opaque{X: 1}))
		require.Nil(t, extractor.Convert(map[string]int{"a": 1}))
	})

	t.Run("strings and numbers pass through", func(t *testing.T) {
		t.Parallel()

		require.Equal(t, "as-is", extractor.Convert("as-is"))
		require.Equal(t, 42, extractor.Convert(42))
		require.Equal(t, 9.99, extractor.Convert(9.99))
	})
}
