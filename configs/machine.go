package configs

// Machine is the interpreter configuration block:
//
//	machine: {
//		tapeSize: 2048  // 0 means growable in both directions
//		origin:   0     // physical position of logical cell 0
//		strict:   false // reject non-instruction characters at load
//		maxSteps: 0     // instruction budget, 0 means unbounded
//	}
type Machine struct {
	TapeSize int   `json:"tapeSize"`
	Origin   int   `json:"origin"`
	Strict   bool  `json:"strict"`
	MaxSteps int64 `json:"maxSteps"`
}

func (Module) Machine(
	loader Loader,
) Machine {
	return First[Machine](loader, "machine")
}
