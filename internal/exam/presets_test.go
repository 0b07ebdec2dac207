package exam

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlignedPresetQuestionsExactDifficulty(t *testing.T) {
	questions := AlignedPresetQuestions(ComponentGeneralEducation, "", "Easy", 5)

	require.Len(t, questions, 5)
	for _, question := range questions {
		assert.NotEmpty(t, question.Question)
		assert.True(t, question.Options.Complete())
		assert.Contains(t, []string{"A", "B", "C", "D"}, question.CorrectAnswer)
	}
}

func TestAlignedPresetQuestionsBackfillsAcrossDifficulties(t *testing.T) {
	// Filipino has a single hard question stored, but the combined pool
	// across all difficulties holds five, so a request for five hard
	// questions must still return exactly five.
	questions := AlignedPresetQuestions(ComponentSpecialization, "Filipino", "Hard", 5)

	assert.Len(t, questions, 5)
}

func TestAlignedPresetQuestionsTVTEFallsBackToTLE(t *testing.T) {
	questions := AlignedPresetQuestions(ComponentSpecialization, "Technical-Vocational Teacher Education (TVTE)", "Medium", 1)

	require.Len(t, questions, 1)
}

func TestAlignedPresetQuestionsUnknownSpecialization(t *testing.T) {
	questions := AlignedPresetQuestions(ComponentSpecialization, "Astrophysics", "Medium", 5)

	assert.Empty(t, questions)
}

func TestAlignedPresetQuestionsCapsAtPoolSize(t *testing.T) {
	// Values Education holds four questions total; asking for more than
	// the whole pool returns everything there is, never duplicates.
	questions := AlignedPresetQuestions(ComponentSpecialization, "Values Education", "Medium", 10)

	assert.Len(t, questions, 4)
	seen := map[string]bool{}
	for _, question := range questions {
		assert.False(t, seen[question.Question], "duplicate question in result")
		seen[question.Question] = true
	}
}

func TestMixedPresetQuestionsWeights(t *testing.T) {
	questions := MixedPresetQuestions("Mathematics", "Medium", 5)

	// 20% GenEd (1) + 40% ProfEd (2) + remainder specialization (2).
	assert.Len(t, questions, 5)
}

func TestPresetBankShapes(t *testing.T) {
	for diff, pool := range generalEducationQuestions {
		for _, question := range pool {
			assert.True(t, question.Options.Complete(), "gened %s: %s", diff, question.Question)
			assert.NotEmpty(t, question.Explanation, "gened %s: %s", diff, question.Question)
		}
	}
	for diff, pool := range professionalEducationQuestions {
		for _, question := range pool {
			assert.True(t, question.Options.Complete(), "profed %s: %s", diff, question.Question)
		}
	}
	for spec, byDiff := range specializationQuestions {
		for diff, pool := range byDiff {
			for _, question := range pool {
				assert.True(t, question.Options.Complete(), "%s %s: %s", spec, diff, question.Question)
			}
		}
	}
}
