package interval

// Function is the harmonic role of a pitch class relative to a root.
type Function uint8

const (
	None Function = iota
	Root
	Third
	Fifth
	Seventh
)

func (f Function) String() string {
	switch f {
	case Root:
		return "root"
	case Third:
		return "third"
	case Fifth:
		return "fifth"
	case Seventh:
		return "seventh"
	}
	return "none"
}

func FunctionOf(root, pc uint8) Function {
	switch {
	case root == pc:
		return Root
	case IsThird(root, pc):
		return Third
	case IsFifth(root, pc):
		return Fifth
	case IsSeventh(root, pc):
		return Seventh
	}
	return None
}
