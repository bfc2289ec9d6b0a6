package biology

// Circuit is a validated genetic circuit: one Promoter, a fixed RBS, one
// CodingSequence, and a fixed Terminator, tagged with the circuit type.
// Immutable after construction; selection changes produce a new Circuit.
type Circuit struct {
	promoter    Promoter
	rbs         RBS
	cds         CodingSequence
	terminator  Terminator
	circuitType Category
}

// NewCircuit validates the circuit type and that the CDS category matches it.
// RBS and Terminator are attached automatically.
func NewCircuit(promoter Promoter, cds CodingSequence, circuitType Category) (*Circuit, error) {
	if !validCategory(circuitType) {
		return nil, validationErrorf("invalid circuit type: %q", circuitType)
	}
	if cds.Category != circuitType {
		return nil, validationErrorf("CDS category (%s) must match circuit type (%s)", cds.Category, circuitType)
	}
	return &Circuit{
		promoter:    promoter,
		cds:         cds,
		circuitType: circuitType,
	}, nil
}

// Type returns the circuit's trait category.
func (c *Circuit) Type() Category { return c.circuitType }

// Promoter returns the circuit's promoter part.
func (c *Circuit) Promoter() Promoter { return c.promoter }

// CDS returns the circuit's coding sequence part.
func (c *Circuit) CDS() CodingSequence { return c.cds }

// ExpressionLevel returns the promoter-derived expression level.
func (c *Circuit) ExpressionLevel() float64 {
	return c.promoter.ExpressionLevel()
}

// Express applies the circuit's effect to the organism. Visual circuits set
// the trait and its intensity; gameplay circuits leave the organism alone.
func (c *Circuit) Express(b *Bacteria) {
	c.cds.applyEffect(b, c.ExpressionLevel())
}

// Info returns a human-readable summary of the assembled parts.
func (c *Circuit) Info() string {
	return string(c.circuitType) + " circuit: " +
		c.promoter.Info() + " -> " + c.rbs.Info() + " -> " +
		c.cds.Info() + " -> " + c.terminator.Info()
}

// CircuitRecord is the flat persisted form of a circuit. Exactly one of the
// trait keys is present, selected by CircuitType; gameplay circuits carry
// none.
type CircuitRecord struct {
	PromoterStrength string `json:"promoter_strength"`
	CircuitType      string `json:"circuit_type"`
	Shape            string `json:"shape,omitempty"`
	Surface          string `json:"surface,omitempty"`
	ColorName        string `json:"color_name,omitempty"`
}

// ToRecord serializes the circuit to its flat record form.
func (c *Circuit) ToRecord() CircuitRecord {
	rec := CircuitRecord{
		PromoterStrength: string(c.promoter.Strength),
		CircuitType:      string(c.circuitType),
	}
	switch c.circuitType {
	case CategoryShape:
		rec.Shape = string(c.cds.Shape)
	case CategorySurface:
		rec.Surface = string(c.cds.Surface)
	case CategoryColor:
		rec.ColorName = string(c.cds.Color)
	}
	return rec
}

// CircuitFromRecord reconstructs a circuit from its flat record form. Unknown
// circuit types fail with ValidationError; absent required keys fail with
// MalformedRecordError. Round-trip law: CircuitFromRecord(c.ToRecord())
// yields a circuit with identical strength, type, and trait value.
func CircuitFromRecord(rec CircuitRecord) (*Circuit, error) {
	if rec.PromoterStrength == "" {
		return nil, &MalformedRecordError{Key: "promoter_strength", CircuitType: rec.CircuitType}
	}
	if rec.CircuitType == "" {
		return nil, &MalformedRecordError{Key: "circuit_type"}
	}

	promoter, err := NewPromoter(rec.PromoterStrength)
	if err != nil {
		return nil, err
	}

	circuitType := Category(rec.CircuitType)
	var cds CodingSequence
	switch circuitType {
	case CategoryShape:
		if rec.Shape == "" {
			return nil, &MalformedRecordError{Key: "shape", CircuitType: rec.CircuitType}
		}
		cds, err = NewShapeCDS(rec.Shape)
	case CategorySurface:
		if rec.Surface == "" {
			return nil, &MalformedRecordError{Key: "surface", CircuitType: rec.CircuitType}
		}
		cds, err = NewSurfaceCDS(rec.Surface)
	case CategoryColor:
		if rec.ColorName == "" {
			return nil, &MalformedRecordError{Key: "color_name", CircuitType: rec.CircuitType}
		}
		cds, err = NewColorCDS(rec.ColorName)
	case CategoryLife, CategorySpeed, CategorySmall:
		cds, err = NewGameplayCDS(circuitType)
	default:
		return nil, validationErrorf("unknown circuit type: %q", rec.CircuitType)
	}
	if err != nil {
		return nil, err
	}

	return NewCircuit(promoter, cds, circuitType)
}
