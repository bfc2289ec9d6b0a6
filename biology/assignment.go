package biology

// StrengthAssignment is the bijective mapping between promoter strengths and
// gameplay genes: each of weak/medium/strong is assigned to exactly one of
// life/speed/small at all times. Assigning a strength to a gene evicts that
// gene's previous strength and hands it to whichever gene held the new one.
type StrengthAssignment struct {
	byGene     map[Category]Strength
	byStrength map[Strength]Category
}

// NewStrengthAssignment starts with weak->life, medium->speed, strong->small.
func NewStrengthAssignment() *StrengthAssignment {
	a := &StrengthAssignment{
		byGene:     make(map[Category]Strength, 3),
		byStrength: make(map[Strength]Category, 3),
	}
	a.set(CategoryLife, StrengthWeak)
	a.set(CategorySpeed, StrengthMedium)
	a.set(CategorySmall, StrengthStrong)
	return a
}

func (a *StrengthAssignment) set(gene Category, s Strength) {
	a.byGene[gene] = s
	a.byStrength[s] = gene
}

// Assign gives strength s to gene, swapping with the gene that held s. The
// bijection invariant is preserved unconditionally. Returns false if gene is
// not a gameplay category or s is unknown.
func (a *StrengthAssignment) Assign(gene Category, s Strength) bool {
	prev, ok := a.byGene[gene]
	if !ok {
		return false
	}
	holder, ok := a.byStrength[s]
	if !ok {
		return false
	}
	if holder == gene {
		return true
	}
	a.set(holder, prev)
	a.set(gene, s)
	return true
}

// StrengthOf returns the strength currently assigned to gene.
func (a *StrengthAssignment) StrengthOf(gene Category) Strength {
	return a.byGene[gene]
}

// GeneOf returns the gene currently holding strength s.
func (a *StrengthAssignment) GeneOf(s Strength) Category {
	return a.byStrength[s]
}

// Circuits builds the three gameplay circuits for the current assignment.
func (a *StrengthAssignment) Circuits() (map[Category]*Circuit, error) {
	out := make(map[Category]*Circuit, 3)
	for _, gene := range GameplayCategories {
		promoter, err := NewPromoter(string(a.byGene[gene]))
		if err != nil {
			return nil, err
		}
		cds, err := NewGameplayCDS(gene)
		if err != nil {
			return nil, err
		}
		circuit, err := NewCircuit(promoter, cds, gene)
		if err != nil {
			return nil, err
		}
		out[gene] = circuit
	}
	return out, nil
}
