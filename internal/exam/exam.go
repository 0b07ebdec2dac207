// Package exam holds the static LEPT exam structure: plan limits, the 2026
// PRC component/specialization breakdown, competency tables used to build
// generation prompts, and the preset question bank served to FREE users.
package exam

// Usage limits and plan pricing (PHP).
const (
	FreeQuestionLimit   = 15
	ProQuestionBonus    = 75
	PremiumDurationDays = 30

	// PremiumQuotaSentinel is the display value written to the remaining
	// counter for PREMIUM users; access is governed by the expiry instead.
	PremiumQuotaSentinel = 999999

	ProPrice     = 99
	PremiumPrice = 499

	QuestionsPerBatch = 5
)

// Exam components with their 2026 weight distribution.
const (
	ComponentGeneralEducation      = "general_education"
	ComponentProfessionalEducation = "professional_education"
	ComponentSpecialization        = "specialization"
)

// Component describes one of the three LEPT exam components.
type Component struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Weight      int    `json:"weight"`
	Description string `json:"description"`
}

var Components = []Component{
	{
		Key:         ComponentGeneralEducation,
		Name:        "General Education (GenEd)",
		Weight:      20,
		Description: "Covers English, Filipino, Mathematics, Science, and Social Studies fundamentals",
	},
	{
		Key:         ComponentProfessionalEducation,
		Name:        "Professional Education (ProfEd)",
		Weight:      40,
		Description: "Covers teaching principles, child development, curriculum, and assessment",
	},
	{
		Key:         ComponentSpecialization,
		Name:        "Area of Specialization",
		Weight:      40,
		Description: "Covers your specific major/field of study",
	},
}

// ComponentByKey returns the component for a key, or nil if unknown.
func ComponentByKey(key string) *Component {
	for i := range Components {
		if Components[i].Key == key {
			return &Components[i]
		}
	}
	return nil
}

// Education levels.
const (
	LevelElementary = "elementary"
	LevelSecondary  = "secondary"
)

var EducationLevels = map[string]string{
	LevelElementary: "Elementary Education (BEEd)",
	LevelSecondary:  "Secondary Education (BSEd)",
}

// Elementary Education specializations (BEEd), effective 2026.
var ElementarySpecializations = []string{
	"Early Childhood Education (ECE)",
	"Special Needs Education (SNE)",
	"General Education",
}

// Secondary Education specializations (BSEd).
var SecondarySpecializations = []string{
	"English",
	"Filipino",
	"Mathematics",
	"Science",
	"Social Studies",
	"Values Education",
	"Technology and Livelihood Education (TLE)",
	"Technical-Vocational Teacher Education (TVTE)",
	"Physical Education (PE)",
	"Culture and Arts Education",
}

// Difficulty levels.
var DifficultyLevels = []string{"Easy", "Medium", "Hard"}

// ValidDifficulty reports whether d is a known difficulty level.
func ValidDifficulty(d string) bool {
	for _, level := range DifficultyLevels {
		if level == d {
			return true
		}
	}
	return false
}
