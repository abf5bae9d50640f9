package saju

// Stem is an index into the 10 heavenly stems
type Stem int

// Branch is an index into the 12 earthly branches
type Branch int

var (
	stemLabels   = [10]string{"갑", "을", "병", "정", "무", "기", "경", "신", "임", "계"}
	branchLabels = [12]string{"자", "축", "인", "묘", "진", "사", "오", "미", "신", "유", "술", "해"}

	stemElements = [10]Element{
		Wood, Wood, Fire, Fire, Earth, Earth, Metal, Metal, Water, Water,
	}
	branchElements = [12]Element{
		Water, Earth, Wood, Wood, Earth, Fire, Fire, Earth, Metal, Metal, Earth, Water,
	}

	// directional and partial; pairs not listed contribute 0
	compatibilityMatrix = map[Element]map[Element]int{
		Wood:  {Fire: 10, Metal: -10, Water: 5},
		Fire:  {Earth: 10, Water: -10, Wood: 5},
		Earth: {Metal: 10, Wood: -10, Fire: 5},
		Metal: {Water: 10, Fire: -10, Earth: 5},
		Water: {Wood: 10, Earth: -10, Metal: 5},
	}
)

// String returns the Korean label of the stem
func (s Stem) String() string {
	if s < 0 || int(s) >= len(stemLabels) {
		return ""
	}
	return stemLabels[s]
}

// Element returns the element the stem maps to
func (s Stem) Element() Element {
	return stemElements[s]
}

func (s Stem) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// String returns the Korean label of the branch
func (b Branch) String() string {
	if b < 0 || int(b) >= len(branchLabels) {
		return ""
	}
	return branchLabels[b]
}

// Element returns the element the branch maps to
func (b Branch) Element() Element {
	return branchElements[b]
}

func (b Branch) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// Compatibility returns the directional contribution from x to y.
// Pairs absent from the matrix, same-element pairs included, yield 0.
func Compatibility(x, y Element) int {
	return compatibilityMatrix[x][y]
}

// Tables is a read-only snapshot of the lookup tables
type Tables struct {
	Stems          []string                    `json:"stems"`
	Branches       []string                    `json:"branches"`
	StemElements   []Element                   `json:"stem_elements"`
	BranchElements []Element                   `json:"branch_elements"`
	Matrix         map[Element]map[Element]int `json:"matrix"`
}

// LookupTables returns a copy of the tables so callers cannot mutate them
func LookupTables() Tables {
	matrix := make(map[Element]map[Element]int, len(compatibilityMatrix))
	for from, row := range compatibilityMatrix {
		copied := make(map[Element]int, len(row))
		for to, v := range row {
			copied[to] = v
		}
		matrix[from] = copied
	}

	return Tables{
		Stems:          append([]string(nil), stemLabels[:]...),
		Branches:       append([]string(nil), branchLabels[:]...),
		StemElements:   append([]Element(nil), stemElements[:]...),
		BranchElements: append([]Element(nil), branchElements[:]...),
		Matrix:         matrix,
	}
}
