package game

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed pieces.yaml
var standardPiecesYAML []byte

type pieceDef struct {
	Name  string  `yaml:"name"`
	Cells [][]int `yaml:"cells"`
}

type pieceSetDef struct {
	Pieces []pieceDef `yaml:"pieces"`
}

var (
	standardShapes     []pieceDef
	standardShapesOnce sync.Once
)

// ParsePieceSet decodes a YAML piece-set definition into pieces owned by
// owner. IDs are "<owner>-<name>".
func ParsePieceSet(data []byte, owner Player) ([]Piece, error) {
	var def pieceSetDef
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to decode piece set: %w", err)
	}
	return buildPieces(def.Pieces, owner)
}

func buildPieces(defs []pieceDef, owner Player) ([]Piece, error) {
	pieces := make([]Piece, 0, len(defs))
	for _, d := range defs {
		if len(d.Cells) == 0 {
			return nil, fmt.Errorf("piece %s has no cells", d.Name)
		}
		shape := make([]Coordinate, 0, len(d.Cells))
		for _, cell := range d.Cells {
			if len(cell) != 2 {
				return nil, fmt.Errorf("piece %s: cell %v is not an [x, y] pair", d.Name, cell)
			}
			shape = append(shape, Coordinate{X: cell[0], Y: cell[1]})
		}
		pieces = append(pieces, Piece{
			ID:        PieceID(fmt.Sprintf("%s-%s", owner, d.Name)),
			Owner:     owner,
			BaseShape: shape,
		})
	}
	return pieces, nil
}

// StandardPieces returns a fresh copy of the 21-piece set for owner.
func StandardPieces(owner Player) []Piece {
	standardShapesOnce.Do(func() {
		var def pieceSetDef
		if err := yaml.Unmarshal(standardPiecesYAML, &def); err != nil {
			panic(fmt.Sprintf("embedded piece set is invalid: %v", err))
		}
		standardShapes = def.Pieces
	})
	pieces, err := buildPieces(standardShapes, owner)
	if err != nil {
		panic(fmt.Sprintf("embedded piece set is invalid: %v", err))
	}
	return pieces
}
