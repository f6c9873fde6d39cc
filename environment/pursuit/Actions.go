package pursuit

// Action is a discrete hunter action
type Action int

// Legal actions. The zero Action keeps a hunter in place.
const (
	Stay Action = iota
	Up
	Down
	Left
	Right
)

const (
	// NumActions is the number of legal actions
	NumActions int = 5

	MinDiscreteAction int = int(Stay)
	MaxDiscreteAction int = int(Right)
)

// displacements maps each Action to a (row, col) displacement
var displacements = [NumActions][2]int{
	Stay:  {0, 0},
	Up:    {-1, 0},
	Down:  {1, 0},
	Left:  {0, -1},
	Right: {0, 1},
}

// Valid returns whether a is in the action table
func (a Action) Valid() bool {
	return int(a) >= MinDiscreteAction && int(a) <= MaxDiscreteAction
}

// Displacement returns the unit (row, col) displacement of a. It panics
// if a is not Valid.
func (a Action) Displacement() (dRow, dCol int) {
	d := displacements[a]
	return d[0], d[1]
}

func (a Action) String() string {
	switch a {
	case Stay:
		return "Stay"
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Invalid"
	}
}
