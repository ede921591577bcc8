package starfall

// FormationID is a stable handle for one formation. Like enemy IDs, formation
// IDs are never reused; zero means "not in a formation".
type FormationID uint64

// Formation cadence and edge margins, in ticks and cells.
const (
	formationDescendEvery = 8
	formationMoveEvery    = 4
	formationLeftMargin   = 5
	formationRightMargin  = 10
)

// Offset is a member slot's position relative to the formation center.
type Offset struct {
	DX int
	DY int
}

var vShapeOffsets = []Offset{
	{0, 0},
	{-8, 4}, {-16, 8}, {-24, 12},
	{8, 4}, {16, 8}, {24, 12},
}

var diamondOffsets = []Offset{
	{0, 0},
	{-8, 4}, {8, 4},
	{-16, 8}, {0, 8}, {16, 8},
	{-8, 12}, {8, 12},
	{0, 16},
}

// Offsets returns the member slot table for this shape.
func (t FormationType) Offsets() []Offset {
	switch t {
	case FormationVShape:
		return vShapeOffsets
	case FormationDiamond:
		return diamondOffsets
	case FormationWall:
		offsets := make([]Offset, 0, 14)
		for _, dy := range []int{0, 4} {
			for dx := -24; dx <= 24; dx += 8 {
				offsets = append(offsets, Offset{dx, dy})
			}
		}
		return offsets
	case FormationBlock:
		offsets := make([]Offset, 0, 16)
		for dy := 0; dy <= 12; dy += 4 {
			for dx := -12; dx <= 12; dx += 8 {
				offsets = append(offsets, Offset{dx, dy})
			}
		}
		return offsets
	default:
		return nil
	}
}

// Formation marches a group of enemies as a single rigid body. Member
// positions are always derived from the center plus their slot offset, so the
// group can never drift apart.
type Formation struct {
	ID      FormationID
	Type    FormationType
	CenterX int
	CenterY int
	DirX    int
	Members []EnemyID
	frame   int
}

// NewFormation creates a formation of the given shape centered at (cx, cy),
// initially marching right.
func NewFormation(id FormationID, t FormationType, cx, cy int) Formation {
	return Formation{ID: id, Type: t, CenterX: cx, CenterY: cy, DirX: 1}
}

// Advance runs one tick of formation movement: descend every eighth tick,
// attempt a horizontal step every fourth. A step that would push any member
// slot past the field margins is not taken; the march direction flips
// instead.
func (f *Formation) Advance(fieldW int) {
	f.frame++
	if f.frame%formationDescendEvery == 0 {
		f.CenterY++
	}
	if f.frame%formationMoveEvery != 0 {
		return
	}
	newX := f.CenterX + f.DirX
	minDX, maxDX := f.offsetSpan()
	if newX+minDX < formationLeftMargin || newX+maxDX > fieldW-formationRightMargin {
		f.DirX = -f.DirX
		return
	}
	f.CenterX = newX
}

// OffBottom reports whether the center has marched past the bottom edge.
func (f *Formation) OffBottom(fieldH int) bool {
	return f.CenterY >= fieldH
}

func (f *Formation) offsetSpan() (minDX, maxDX int) {
	for i, o := range f.Type.Offsets() {
		if i == 0 || o.DX < minDX {
			minDX = o.DX
		}
		if i == 0 || o.DX > maxDX {
			maxDX = o.DX
		}
	}
	return minDX, maxDX
}
