package biology

import (
	"errors"
	"testing"
)

func TestPromoterExpressionLevels(t *testing.T) {
	tests := []struct {
		strength string
		level    float64
	}{
		{"weak", 0.3},
		{"medium", 0.7},
		{"strong", 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.strength, func(t *testing.T) {
			p, err := NewPromoter(tt.strength)
			if err != nil {
				t.Fatalf("NewPromoter(%q) failed: %v", tt.strength, err)
			}
			if got := p.ExpressionLevel(); got != tt.level {
				t.Errorf("Expected expression level %v, got %v", tt.level, got)
			}
		})
	}
}

func TestPromoterRejectsInvalidStrength(t *testing.T) {
	for _, strength := range []string{"", "Weak", "strongest", "0.7", "mild"} {
		t.Run(strength, func(t *testing.T) {
			_, err := NewPromoter(strength)
			if err == nil {
				t.Fatalf("Expected error for strength %q", strength)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("Expected ValidationError, got %T", err)
			}
		})
	}
}

func TestShapeCDS(t *testing.T) {
	for _, shape := range []string{"rod", "spherical"} {
		cds, err := NewShapeCDS(shape)
		if err != nil {
			t.Fatalf("NewShapeCDS(%q) failed: %v", shape, err)
		}
		if cds.Category != CategoryShape {
			t.Errorf("Expected category shape, got %s", cds.Category)
		}
		if cds.TraitValue() != shape {
			t.Errorf("Expected trait value %q, got %q", shape, cds.TraitValue())
		}
	}

	if _, err := NewShapeCDS("cube"); err == nil {
		t.Error("Expected error for invalid shape")
	}
}

func TestSurfaceCDS(t *testing.T) {
	for _, surface := range []string{"smooth", "rough", "spiky"} {
		cds, err := NewSurfaceCDS(surface)
		if err != nil {
			t.Fatalf("NewSurfaceCDS(%q) failed: %v", surface, err)
		}
		if cds.Category != CategorySurface {
			t.Errorf("Expected category surface, got %s", cds.Category)
		}
	}

	if _, err := NewSurfaceCDS("slimy"); err == nil {
		t.Error("Expected error for invalid surface")
	}
}

func TestColorCDSHexTable(t *testing.T) {
	tests := []struct {
		name string
		hex  string
	}{
		{"cyan", "#00FFFF"},
		{"green", "#00FF00"},
		{"yellow", "#FFFF00"},
		{"red", "#FF0000"},
		{"blue", "#0000FF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cds, err := NewColorCDS(tt.name)
			if err != nil {
				t.Fatalf("NewColorCDS(%q) failed: %v", tt.name, err)
			}
			if got := ColorHex[cds.Color]; got != tt.hex {
				t.Errorf("Expected hex %s, got %s", tt.hex, got)
			}
		})
	}

	if _, err := NewColorCDS("magenta"); err == nil {
		t.Error("Expected error for invalid color")
	}
}

func TestGameplayCDSCarriesNoValue(t *testing.T) {
	for _, cat := range GameplayCategories {
		cds, err := NewGameplayCDS(cat)
		if err != nil {
			t.Fatalf("NewGameplayCDS(%s) failed: %v", cat, err)
		}
		if cds.TraitValue() != "" {
			t.Errorf("Expected empty trait value for %s, got %q", cat, cds.TraitValue())
		}
	}

	if _, err := NewGameplayCDS(CategoryShape); err == nil {
		t.Error("Expected error for non-gameplay category")
	}
}
