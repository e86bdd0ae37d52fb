package server

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/labyrinth/lattice"
)

// MazeRequest asks for a new maze. A nil Seed seeds from the clock.
type MazeRequest struct {
	Width  int      `json:"width" binding:"required,min=3"`
	Height int      `json:"height" binding:"required,min=3"`
	Seed   *int64   `json:"seed"`
	Braid  *float64 `json:"braid" binding:"omitempty,min=0,max=1"`
}

// PointDTO is a cell coordinate on the wire.
type PointDTO struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// MazeResponse is a generated and solved maze.
type MazeResponse struct {
	ID       uuid.UUID            `json:"id"`
	Width    int                  `json:"width"`
	Height   int                  `json:"height"`
	Seed     int64                `json:"seed"`
	Draws    int                  `json:"draws"`
	Merges   int                  `json:"merges"`
	Gates    int                  `json:"gates"`
	Braided  int                  `json:"braided"`
	Matrix   [][]lattice.RegionID `json:"matrix"`
	Start    PointDTO             `json:"start"`
	End      PointDTO             `json:"end"`
	Path     []PointDTO           `json:"path"`
	Cost     int                  `json:"cost"`
	Expanded int                  `json:"expanded"`
}

func toDTO(p lattice.Point) PointDTO {
	return PointDTO{X: p.X, Y: p.Y}
}

func toDTOs(ps []lattice.Point) []PointDTO {
	out := make([]PointDTO, len(ps))
	for i, p := range ps {
		out[i] = toDTO(p)
	}
	return out
}
