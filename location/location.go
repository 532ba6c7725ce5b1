// Package location loads named coordinates (state capitals in the shipped
// data), selects subsets of them and turns a selection into a cost matrix
// for the tsp package.
//
// A Set is an ordered slice: the index of a record in the Set is its vertex
// index in the matrix built by CostMatrix.
package location

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/samber/lo"

	"github.com/katalvlaran/lvroute/geo"
)

var (
	// ErrUnknownLocation is returned when a name matches no record.
	ErrUnknownLocation = errors.New("location: unknown location")

	// ErrInvalidRecord indicates a record with an empty name or a
	// coordinate outside the WGS84 range.
	ErrInvalidRecord = errors.New("location: invalid record")

	// ErrDuplicate indicates two records sharing a capital or a state name.
	ErrDuplicate = errors.New("location: duplicate name")
)

// Record is one named coordinate.
type Record struct {
	State     string  `json:"state"`
	Capital   string  `json:"capital"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Point returns the record's coordinate.
func (r Record) Point() geo.Point { return geo.Point{Lat: r.Latitude, Lng: r.Longitude} }

// Matches reports whether name equals the capital or the state name.
func (r Record) Matches(name string) bool { return r.Capital == name || r.State == name }

func (r Record) validate() error {
	switch {
	case strings.TrimSpace(r.State) == "" || strings.TrimSpace(r.Capital) == "":
		return fmt.Errorf("%w: empty name in %+v", ErrInvalidRecord, r)
	case math.IsNaN(r.Latitude) || r.Latitude < -90 || r.Latitude > 90:
		return fmt.Errorf("%w: %s latitude %g", ErrInvalidRecord, r.Capital, r.Latitude)
	case math.IsNaN(r.Longitude) || r.Longitude < -180 || r.Longitude > 180:
		return fmt.Errorf("%w: %s longitude %g", ErrInvalidRecord, r.Capital, r.Longitude)
	}

	return nil
}

// Set is an ordered collection of records.
type Set []Record

// NewSet validates records and returns them as a Set. Names are compared
// case-sensitively; a capital and a state may share a name only within the
// same record.
func NewSet(records []Record) (Set, error) {
	seen := make(map[string]int, 2*len(records))
	for i, r := range records {
		if err := r.validate(); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		for _, name := range lo.Uniq([]string{r.Capital, r.State}) {
			if j, ok := seen[name]; ok {
				return nil, fmt.Errorf("%w: %q in records %d and %d", ErrDuplicate, name, j, i)
			}
			seen[name] = i
		}
	}

	return Set(records), nil
}

// Decode reads a JSON array of records.
func Decode(r io.Reader) (Set, error) {
	var records []Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("location: decode: %w", err)
	}

	return NewSet(records)
}

// Load reads a JSON array of records from path.
func Load(path string) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("location: %w", err)
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Index returns the position of the record whose capital or state is name.
func (s Set) Index(name string) (int, error) {
	_, idx, ok := lo.FindIndexOf(s, func(r Record) bool { return r.Matches(name) })
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrUnknownLocation, name)
	}

	return idx, nil
}

// Capitals returns the capital names in Set order.
func (s Set) Capitals() []string {
	return lo.Map(s, func(r Record, _ int) string { return r.Capital })
}

// Names maps vertex indices back to capital names. Out-of-range indices
// yield ErrUnknownLocation.
func (s Set) Names(path []int) ([]string, error) {
	out := make([]string, len(path))
	for i, v := range path {
		if v < 0 || v >= len(s) {
			return nil, fmt.Errorf("%w: index %d of %d", ErrUnknownLocation, v, len(s))
		}
		out[i] = s[v].Capital
	}

	return out, nil
}
