// Package fixtures loads named board positions used by end-to-end tests
// from a TOML file, so scenario boards read as data rather than a wall of
// WithField calls scattered across test files.
package fixtures

import (
	_ "embed"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/arborchess/sixchego/board"
	"github.com/arborchess/sixchego/enum"
)

//go:embed positions.toml
var positionsTOML []byte

type piece struct {
	Cell  int
	Kind  string
	Color string
}

type position struct {
	Name  string
	Mover int
	Piece []piece
}

type catalogue struct {
	Position []position
}

var kindByName = map[string]enum.Kind{
	"pawn":   enum.KindPawn,
	"bishop": enum.KindBishop,
	"rook":   enum.KindRook,
	"knight": enum.KindKnight,
	"queen":  enum.KindQueen,
	"king":   enum.KindKing,
}

var colorByName = map[string]enum.Color{
	"ours":   enum.ColorOurs,
	"theirs": enum.ColorTheirs,
}

// Load builds the board registered under name in positions.toml. It panics
// if name is not present or the embedded TOML is malformed: both are
// programmer errors caught immediately by any test that exercises the
// fixture.
func Load(name string) board.Board {
	var cat catalogue
	if _, err := toml.Decode(string(positionsTOML), &cat); err != nil {
		panic(fmt.Sprintf("fixtures: decoding positions.toml: %v", err))
	}

	for _, p := range cat.Position {
		if p.Name != name {
			continue
		}
		return build(p)
	}
	panic(fmt.Sprintf("fixtures: no position named %q", name))
}

func build(p position) board.Board {
	var b board.Board
	b.Limbs[0] = uint64(p.Mover)
	for _, pc := range p.Piece {
		kind, ok := kindByName[pc.Kind]
		if !ok {
			panic(fmt.Sprintf("fixtures: unknown kind %q", pc.Kind))
		}
		color, ok := colorByName[pc.Color]
		if !ok {
			panic(fmt.Sprintf("fixtures: unknown color %q", pc.Color))
		}
		nib := uint64(kind) | uint64(color)<<enum.ColorBit
		b.Word256 = b.WithField(uint(4*pc.Cell), 4, nib)
	}
	return b
}
