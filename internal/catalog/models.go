package catalog

// Hanja is a single-character vocabulary unit.
type Hanja struct {
	Grade     string `json:"grade"`
	Reading   string `json:"reading"`
	Character string `json:"character"`
	Meaning   string `json:"meaning"`
}

// Word is a multi-character vocabulary item (hanja word with its Korean reading).
type Word struct {
	Grade  string `json:"grade"`
	Korean string `json:"korean"`
	Hanja  string `json:"hanja"`
}

// GradeOrder is the fixed proficiency order, easiest first.
var GradeOrder = []string{"준8급", "8급", "준7급", "7급", "준6급", "6급", "준5급", "5급", "준4급", "4급"}

// WordGrades lists the grades that unlock word-level quiz modes.
var WordGrades = []string{"6급", "준5급", "5급", "준4급", "4급"}

// WordGradeAllowed reports whether word-level quizzes exist for grade.
func WordGradeAllowed(grade string) bool {
	for _, g := range WordGrades {
		if g == grade {
			return true
		}
	}
	return false
}
