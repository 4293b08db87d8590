package game

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mitchelldurbincs/minefield/internal/testutil"
)

func TestEncodeBoard(t *testing.T) {
	board := testutil.BoardFromRows(t, "*1", "11")
	expected := map[string][]string{
		"A": {"*", "1"},
		"B": {"1", "1"},
	}

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, EncodeBoard(&buf, board, FormatText))
		assert.Equal(t, board.String(), buf.String())
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, EncodeBoard(&buf, board, FormatJSON))

		var got map[string][]string
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, expected, got)
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, EncodeBoard(&buf, board, FormatYAML))

		var got map[string][]string
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, expected, got)
	})

	t.Run("unknown", func(t *testing.T) {
		var buf bytes.Buffer
		err := EncodeBoard(&buf, board, "csv")
		assert.EqualError(t, err, `unknown output format "csv"`)
	})
}
