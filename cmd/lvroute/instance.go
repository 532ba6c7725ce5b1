package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/katalvlaran/lvroute/matrix"
	"github.com/katalvlaran/lvroute/tsp"
)

// instance is the raw query file format. A null matrix entry is a missing
// edge.
type instance struct {
	DistanceMatrix [][]*float64 `json:"distance_matrix"`
	StartIndex     int          `json:"start_index"`
	EndIndex       int          `json:"end_index"`
}

func loadInstance(path string) (instance, error) {
	var inst instance
	b, err := os.ReadFile(path)
	if err != nil {
		return inst, err
	}
	if err = json.Unmarshal(b, &inst); err != nil {
		return inst, fmt.Errorf("%s: %w", path, err)
	}

	return inst, nil
}

// costMatrix converts the file's table, reporting a non-square table as
// tsp.ErrShape and bad values as tsp.ErrInvalidCost.
func (inst instance) costMatrix() (*matrix.Dense, error) {
	rows := make([][]float64, len(inst.DistanceMatrix))
	for i, row := range inst.DistanceMatrix {
		rows[i] = make([]float64, len(row))
		for j, c := range row {
			if c == nil {
				rows[i][j] = math.Inf(1)
				continue
			}
			rows[i][j] = *c
		}
	}
	if err := matrix.ValidateRows(rows); err != nil {
		return nil, fmt.Errorf("%w: %w", tsp.ErrShape, err)
	}
	m, err := matrix.NewCost(rows, matrix.WithAllowInf())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", tsp.ErrInvalidCost, err)
	}

	return m, nil
}
