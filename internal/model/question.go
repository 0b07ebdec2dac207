package model

// QuestionOptions are the four answer choices of a multiple-choice item.
type QuestionOptions struct {
	A string `json:"A"`
	B string `json:"B"`
	C string `json:"C"`
	D string `json:"D"`
}

// ByLetter returns the option text for a given letter, or "" if unknown.
func (o QuestionOptions) ByLetter(letter string) string {
	switch letter {
	case "A":
		return o.A
	case "B":
		return o.B
	case "C":
		return o.C
	case "D":
		return o.D
	}
	return ""
}

// Complete reports whether all four options are non-empty.
func (o QuestionOptions) Complete() bool {
	return o.A != "" && o.B != "" && o.C != "" && o.D != ""
}

// Question is a single multiple-choice exam item, either preset or
// AI-generated.
type Question struct {
	Question      string          `json:"question"`
	Options       QuestionOptions `json:"options"`
	CorrectAnswer string          `json:"correct_answer"`
	Explanation   string          `json:"explanation"`
}
