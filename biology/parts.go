// Package biology implements the genetic circuit model: the part catalog,
// circuit assembly and validation, organism state, and the trait calculators
// that map promoter expression to gameplay multipliers.
package biology

// Strength is a discrete promoter strength.
type Strength string

const (
	StrengthWeak   Strength = "weak"
	StrengthMedium Strength = "medium"
	StrengthStrong Strength = "strong"
)

// expressionLevels is the fixed strength to expression mapping.
var expressionLevels = map[Strength]float64{
	StrengthWeak:   0.3,
	StrengthMedium: 0.7,
	StrengthStrong: 1.0,
}

// Promoter drives expression of a circuit. Immutable once constructed.
type Promoter struct {
	Strength Strength
}

// NewPromoter validates the strength value.
func NewPromoter(strength string) (Promoter, error) {
	s := Strength(strength)
	if _, ok := expressionLevels[s]; !ok {
		return Promoter{}, validationErrorf("invalid promoter strength: %q", strength)
	}
	return Promoter{Strength: s}, nil
}

// ExpressionLevel converts the discrete strength to its expression level.
func (p Promoter) ExpressionLevel() float64 {
	return expressionLevels[p.Strength]
}

// Info returns a human-readable description.
func (p Promoter) Info() string {
	return "Promoter (Strength: " + string(p.Strength) + ")"
}

// RBS is a ribosome binding site. Fixed for educational simplicity.
type RBS struct{}

func (RBS) Info() string { return "RBS (Efficiency: standard)" }

// Terminator is a transcription terminator. Fixed for educational simplicity.
type Terminator struct{}

func (Terminator) Info() string { return "Terminator (Type: standard)" }

// Category tags a coding sequence with the trait it encodes.
type Category string

const (
	CategoryShape   Category = "shape"
	CategorySurface Category = "surface"
	CategoryColor   Category = "color"
	CategoryLife    Category = "life"
	CategorySpeed   Category = "speed"
	CategorySmall   Category = "small"
)

// Categories lists every valid circuit category.
var Categories = []Category{
	CategoryShape, CategorySurface, CategoryColor,
	CategoryLife, CategorySpeed, CategorySmall,
}

// VisualCategories lists the categories that mutate organism state.
var VisualCategories = []Category{CategoryShape, CategorySurface, CategoryColor}

// GameplayCategories lists the categories consumed by the trait calculators.
var GameplayCategories = []Category{CategoryLife, CategorySpeed, CategorySmall}

func validCategory(c Category) bool {
	switch c {
	case CategoryShape, CategorySurface, CategoryColor,
		CategoryLife, CategorySpeed, CategorySmall:
		return true
	}
	return false
}

// Shape is a discrete body silhouette.
type Shape string

const (
	ShapeRod       Shape = "rod"
	ShapeSpherical Shape = "spherical"
)

// Surface is a discrete surface texture.
type Surface string

const (
	SurfaceSmooth Surface = "smooth"
	SurfaceRough  Surface = "rough"
	SurfaceSpiky  Surface = "spiky"
)

// ColorName is a discrete fluorescent protein color.
type ColorName string

const (
	ColorCyan   ColorName = "cyan"
	ColorGreen  ColorName = "green"
	ColorYellow ColorName = "yellow"
	ColorRed    ColorName = "red"
	ColorBlue   ColorName = "blue"
)

// ColorHex maps color names to their fixed hex values.
var ColorHex = map[ColorName]string{
	ColorCyan:   "#00FFFF",
	ColorGreen:  "#00FF00", // GFP
	ColorYellow: "#FFFF00", // YFP
	ColorRed:    "#FF0000", // RFP
	ColorBlue:   "#0000FF", // BFP
}

// CodingSequence is a closed tagged variant over the six CDS kinds. The
// Category tag selects which trait field is meaningful; gameplay categories
// carry no stored value. Immutable once constructed.
type CodingSequence struct {
	Category Category
	Shape    Shape
	Surface  Surface
	Color    ColorName
}

// NewShapeCDS validates and builds a shape coding sequence.
func NewShapeCDS(shape string) (CodingSequence, error) {
	s := Shape(shape)
	if s != ShapeRod && s != ShapeSpherical {
		return CodingSequence{}, validationErrorf("invalid shape: %q", shape)
	}
	return CodingSequence{Category: CategoryShape, Shape: s}, nil
}

// NewSurfaceCDS validates and builds a surface coding sequence.
func NewSurfaceCDS(surface string) (CodingSequence, error) {
	s := Surface(surface)
	if s != SurfaceSmooth && s != SurfaceRough && s != SurfaceSpiky {
		return CodingSequence{}, validationErrorf("invalid surface: %q", surface)
	}
	return CodingSequence{Category: CategorySurface, Surface: s}, nil
}

// NewColorCDS validates and builds a color coding sequence.
func NewColorCDS(name string) (CodingSequence, error) {
	c := ColorName(name)
	if _, ok := ColorHex[c]; !ok {
		return CodingSequence{}, validationErrorf("invalid color: %q", name)
	}
	return CodingSequence{Category: CategoryColor, Color: c}, nil
}

// NewGameplayCDS builds a life, speed, or small coding sequence. These carry
// no discrete value; their effect is read through the trait calculators.
func NewGameplayCDS(category Category) (CodingSequence, error) {
	switch category {
	case CategoryLife, CategorySpeed, CategorySmall:
		return CodingSequence{Category: category}, nil
	}
	return CodingSequence{}, validationErrorf("invalid gameplay category: %q", category)
}

// applyEffect mutates the organism's visual state for the given expression
// level. Gameplay categories are a no-op on the organism: their multipliers
// are read directly via the calculators.
func (c CodingSequence) applyEffect(b *Bacteria, level float64) {
	switch c.Category {
	case CategoryShape:
		b.updateShape(c.Shape, level)
	case CategorySurface:
		b.updateSurface(c.Surface, level)
	case CategoryColor:
		b.updateColor(ColorHex[c.Color], level)
	}
}

// Info returns a human-readable description of the coding sequence.
func (c CodingSequence) Info() string {
	switch c.Category {
	case CategoryShape:
		return "Shape CDS (Shape: " + string(c.Shape) + ")"
	case CategorySurface:
		return "Surface CDS (Surface: " + string(c.Surface) + ")"
	case CategoryColor:
		return "Color CDS (Color: " + string(c.Color) + ")"
	}
	return string(c.Category) + " CDS"
}

// TraitValue returns the stored discrete value, empty for gameplay kinds.
func (c CodingSequence) TraitValue() string {
	switch c.Category {
	case CategoryShape:
		return string(c.Shape)
	case CategorySurface:
		return string(c.Surface)
	case CategoryColor:
		return string(c.Color)
	}
	return ""
}
