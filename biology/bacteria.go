package biology

// Default phenotype: medium rod, medium smooth surface, strong green color.
const (
	defaultShape             = ShapeRod
	defaultShapeExpression   = 0.7
	defaultSurface           = SurfaceSmooth
	defaultSurfaceExpression = 0.7
	defaultColorHex          = "#00FF00"
	defaultColorExpression   = 1.0
)

// Bacteria holds the organism's current phenotype. It is mutated only by
// Circuit.Express (the mutators are unexported); everything else reads it
// through GetVisualProperties.
type Bacteria struct {
	shape             Shape
	shapeExpression   float64
	surface           Surface
	surfaceExpression float64
	colorHex          string
	colorExpression   float64
}

// NewBacteria returns an organism in the default state.
func NewBacteria() *Bacteria {
	b := &Bacteria{}
	b.Reset()
	return b
}

// Reset returns the organism to the default phenotype.
func (b *Bacteria) Reset() {
	b.shape = defaultShape
	b.shapeExpression = defaultShapeExpression
	b.surface = defaultSurface
	b.surfaceExpression = defaultSurfaceExpression
	b.colorHex = defaultColorHex
	b.colorExpression = defaultColorExpression
}

func (b *Bacteria) updateShape(shape Shape, level float64) {
	b.shape = shape
	b.shapeExpression = level
}

func (b *Bacteria) updateSurface(surface Surface, level float64) {
	b.surface = surface
	b.surfaceExpression = level
}

func (b *Bacteria) updateColor(hex string, level float64) {
	b.colorHex = hex
	b.colorExpression = level
}

// VisualTrait pairs a discrete trait value with its expression intensity.
// Intensity modulates visual prominence; it never changes which variant is
// drawn.
type VisualTrait struct {
	Type      string
	Intensity float64
}

// ColorTrait pairs the color hex value with its expression intensity.
type ColorTrait struct {
	Hex       string
	Intensity float64
}

// VisualProperties is the renderer-facing snapshot of the phenotype.
type VisualProperties struct {
	Shape   VisualTrait
	Surface VisualTrait
	Color   ColorTrait
}

// GetVisualProperties returns the current phenotype formatted for rendering.
func (b *Bacteria) GetVisualProperties() VisualProperties {
	return VisualProperties{
		Shape:   VisualTrait{Type: string(b.shape), Intensity: b.shapeExpression},
		Surface: VisualTrait{Type: string(b.surface), Intensity: b.surfaceExpression},
		Color:   ColorTrait{Hex: b.colorHex, Intensity: b.colorExpression},
	}
}
