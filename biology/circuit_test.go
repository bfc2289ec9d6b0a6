package biology

import (
	"errors"
	"testing"
)

func mustCDS(t *testing.T, category Category, value string) CodingSequence {
	t.Helper()
	var cds CodingSequence
	var err error
	switch category {
	case CategoryShape:
		cds, err = NewShapeCDS(value)
	case CategorySurface:
		cds, err = NewSurfaceCDS(value)
	case CategoryColor:
		cds, err = NewColorCDS(value)
	default:
		cds, err = NewGameplayCDS(category)
	}
	if err != nil {
		t.Fatalf("Building %s CDS %q failed: %v", category, value, err)
	}
	return cds
}

func mustPromoter(t *testing.T, strength string) Promoter {
	t.Helper()
	p, err := NewPromoter(strength)
	if err != nil {
		t.Fatalf("NewPromoter(%q) failed: %v", strength, err)
	}
	return p
}

// traitValues enumerates every valid discrete value per category.
var traitValues = map[Category][]string{
	CategoryShape:   {"rod", "spherical"},
	CategorySurface: {"smooth", "rough", "spiky"},
	CategoryColor:   {"cyan", "green", "yellow", "red", "blue"},
	CategoryLife:    {""},
	CategorySpeed:   {""},
	CategorySmall:   {""},
}

func TestCircuitRecordRoundTrip(t *testing.T) {
	for _, category := range Categories {
		for _, value := range traitValues[category] {
			for _, strength := range []string{"weak", "medium", "strong"} {
				circuit, err := NewCircuit(mustPromoter(t, strength), mustCDS(t, category, value), category)
				if err != nil {
					t.Fatalf("NewCircuit(%s, %s, %q) failed: %v", strength, category, value, err)
				}

				back, err := CircuitFromRecord(circuit.ToRecord())
				if err != nil {
					t.Fatalf("Round-trip of %s/%s/%q failed: %v", strength, category, value, err)
				}
				if back.Promoter().Strength != Strength(strength) {
					t.Errorf("Expected strength %s, got %s", strength, back.Promoter().Strength)
				}
				if back.Type() != category {
					t.Errorf("Expected type %s, got %s", category, back.Type())
				}
				if back.CDS().TraitValue() != value {
					t.Errorf("Expected trait value %q, got %q", value, back.CDS().TraitValue())
				}
			}
		}
	}
}

func TestCircuitRejectsMismatchedCDS(t *testing.T) {
	// Every (cds category, circuit type) pairing that disagrees must fail.
	for _, cdsCategory := range Categories {
		cds := mustCDS(t, cdsCategory, traitValues[cdsCategory][0])
		for _, circuitType := range Categories {
			if circuitType == cdsCategory {
				continue
			}
			_, err := NewCircuit(mustPromoter(t, "medium"), cds, circuitType)
			if err == nil {
				t.Errorf("Expected error for %s CDS in %s circuit", cdsCategory, circuitType)
				continue
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("Expected ValidationError, got %T", err)
			}
		}
	}
}

func TestCircuitRejectsInvalidType(t *testing.T) {
	cds := mustCDS(t, CategoryShape, "rod")
	if _, err := NewCircuit(mustPromoter(t, "weak"), cds, Category("flavor")); err == nil {
		t.Error("Expected error for unrecognized circuit type")
	}
}

func TestCircuitFromRecordUnknownType(t *testing.T) {
	_, err := CircuitFromRecord(CircuitRecord{
		PromoterStrength: "weak",
		CircuitType:      "texture",
	})
	if err == nil {
		t.Fatal("Expected error for unknown circuit type")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("Expected ValidationError, got %T", err)
	}
}

func TestCircuitFromRecordMissingTraitKey(t *testing.T) {
	tests := []struct {
		circuitType string
		missingKey  string
	}{
		{"shape", "shape"},
		{"surface", "surface"},
		{"color", "color_name"},
	}

	for _, tt := range tests {
		t.Run(tt.circuitType, func(t *testing.T) {
			_, err := CircuitFromRecord(CircuitRecord{
				PromoterStrength: "strong",
				CircuitType:      tt.circuitType,
			})
			if err == nil {
				t.Fatal("Expected error, record must not default the trait")
			}
			var merr *MalformedRecordError
			if !errors.As(err, &merr) {
				t.Fatalf("Expected MalformedRecordError, got %T: %v", err, err)
			}
			if merr.Key != tt.missingKey {
				t.Errorf("Expected missing key %q, got %q", tt.missingKey, merr.Key)
			}
		})
	}
}

func TestCircuitFromRecordMissingStrength(t *testing.T) {
	_, err := CircuitFromRecord(CircuitRecord{CircuitType: "shape", Shape: "rod"})
	var merr *MalformedRecordError
	if !errors.As(err, &merr) {
		t.Fatalf("Expected MalformedRecordError, got %T: %v", err, err)
	}
}

func TestExpressSetsVisualTraits(t *testing.T) {
	b := NewBacteria()

	// Weak promoter with a spherical shape CDS: expression 0.3.
	circuit, err := NewCircuit(mustPromoter(t, "weak"), mustCDS(t, CategoryShape, "spherical"), CategoryShape)
	if err != nil {
		t.Fatalf("NewCircuit failed: %v", err)
	}
	circuit.Express(b)

	visual := b.GetVisualProperties()
	if visual.Shape.Type != "spherical" {
		t.Errorf("Expected shape spherical, got %s", visual.Shape.Type)
	}
	if visual.Shape.Intensity != 0.3 {
		t.Errorf("Expected shape intensity 0.3, got %v", visual.Shape.Intensity)
	}
}

func TestExpressColorStoresHex(t *testing.T) {
	b := NewBacteria()
	circuit, err := NewCircuit(mustPromoter(t, "strong"), mustCDS(t, CategoryColor, "red"), CategoryColor)
	if err != nil {
		t.Fatalf("NewCircuit failed: %v", err)
	}
	circuit.Express(b)

	visual := b.GetVisualProperties()
	if visual.Color.Hex != "#FF0000" {
		t.Errorf("Expected hex #FF0000, got %s", visual.Color.Hex)
	}
	if visual.Color.Intensity != 1.0 {
		t.Errorf("Expected intensity 1.0, got %v", visual.Color.Intensity)
	}
}

func TestGameplayExpressDoesNotTouchOrganism(t *testing.T) {
	b := NewBacteria()
	before := b.GetVisualProperties()

	for _, cat := range GameplayCategories {
		circuit, err := NewCircuit(mustPromoter(t, "strong"), mustCDS(t, cat, ""), cat)
		if err != nil {
			t.Fatalf("NewCircuit(%s) failed: %v", cat, err)
		}
		circuit.Express(b)
	}

	if b.GetVisualProperties() != before {
		t.Error("Gameplay circuits must not mutate visual state")
	}
}
