package game

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/mitchelldurbincs/minefield/internal/game/core"
)

// Output formats understood by EncodeBoard
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// EncodeBoard writes board to w. Text is the labelled grid; JSON and YAML
// encode the row label to cells mapping.
func EncodeBoard(w io.Writer, board *core.Board, format string) error {
	switch format {
	case FormatText, "":
		_, err := io.WriteString(w, board.String())
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(board.Rows())
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(board.Rows()); err != nil {
			enc.Close()
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
