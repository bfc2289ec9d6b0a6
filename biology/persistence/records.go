// Package persistence owns the shared JSON record store: saved organisms for
// the plate gallery and score entries for the leaderboard. The files are
// shared with collaborating processes, so the schema here is the external
// contract.
package persistence

import (
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/petri/biology"
)

// OrganismRecord is one built organism: the three visual circuits in their
// flat serialized form.
type OrganismRecord struct {
	ID             string                `json:"id"`
	ShapeCircuit   biology.CircuitRecord `json:"shape_circuit"`
	SurfaceCircuit biology.CircuitRecord `json:"surface_circuit"`
	ColorCircuit   biology.CircuitRecord `json:"color_circuit"`
	CreatedAt      string                `json:"created_at"`
}

// VisualCircuits groups the visual circuit records inside a score entry.
type VisualCircuits struct {
	Shape   biology.CircuitRecord `json:"shape"`
	Surface biology.CircuitRecord `json:"surface"`
	Color   biology.CircuitRecord `json:"color"`
}

// GameplayCircuits groups the gameplay circuit records inside a score entry.
type GameplayCircuits struct {
	Life  biology.CircuitRecord `json:"life"`
	Speed biology.CircuitRecord `json:"speed"`
	Small biology.CircuitRecord `json:"small"`
}

// ScoreRecord is one leaderboard entry.
type ScoreRecord struct {
	Name             string           `json:"name"`
	Score            int              `json:"score"`
	VisualCircuits   VisualCircuits   `json:"visual_circuits"`
	GameplayCircuits GameplayCircuits `json:"gameplay_circuits"`
	Timestamp        string           `json:"timestamp"`
}

// NewOrganismRecord serializes the three visual circuits into a fresh record.
func NewOrganismRecord(shape, surface, color *biology.Circuit, now time.Time) OrganismRecord {
	return OrganismRecord{
		ID:             uuid.NewString(),
		ShapeCircuit:   shape.ToRecord(),
		SurfaceCircuit: surface.ToRecord(),
		ColorCircuit:   color.ToRecord(),
		CreatedAt:      now.UTC().Format(time.RFC3339),
	}
}

// Circuits reconstructs the visual circuits from the record. Corrupt entries
// fail here; the caller decides whether to skip or abort.
func (r OrganismRecord) Circuits() (shape, surface, color *biology.Circuit, err error) {
	if shape, err = biology.CircuitFromRecord(r.ShapeCircuit); err != nil {
		return nil, nil, nil, err
	}
	if surface, err = biology.CircuitFromRecord(r.SurfaceCircuit); err != nil {
		return nil, nil, nil, err
	}
	if color, err = biology.CircuitFromRecord(r.ColorCircuit); err != nil {
		return nil, nil, nil, err
	}
	return shape, surface, color, nil
}

// When returns the parsed timestamp, zero if absent or unparseable.
func (r ScoreRecord) When() time.Time {
	t, err := time.Parse(time.RFC3339, r.Timestamp)
	if err != nil {
		return time.Time{}
	}
	return t
}
