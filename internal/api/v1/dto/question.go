package dto

import "github.com/lept-reviewer/backend/internal/model"

// GenerateQuestionsDTO configures one question batch.
type GenerateQuestionsDTO struct {
	Component      string `json:"component" validate:"required,oneof=general_education professional_education specialization"`
	Specialization string `json:"specialization" validate:"required_if=Component specialization"`
	Difficulty     string `json:"difficulty" validate:"required,oneof=Easy Medium Hard"`
	EducationLevel string `json:"education_level" validate:"omitempty,oneof=elementary secondary"`
	Source         string `json:"source" validate:"required,oneof=preset ai"`
	// DocumentID optionally seeds AI generation with one of the caller's
	// uploaded reviewers.
	DocumentID *int64 `json:"document_id,omitempty"`
	// AdminDocumentID optionally seeds AI generation with a shared
	// reviewer (PRO/PREMIUM only).
	AdminDocumentID *int64 `json:"admin_document_id,omitempty"`
}

// QuestionDTO is one multiple-choice item.
type QuestionDTO struct {
	Question      string            `json:"question"`
	Options       map[string]string `json:"options"`
	CorrectAnswer string            `json:"correct_answer"`
	Explanation   string            `json:"explanation"`
}

// QuestionBatchDTO is the generated batch plus the caller's refreshed status.
type QuestionBatchDTO struct {
	Questions []QuestionDTO `json:"questions"`
	Source    string        `json:"source"`
	Status    UserStatusDTO `json:"status"`
}

func NewQuestionDTOs(questions []model.Question) []QuestionDTO {
	dtos := make([]QuestionDTO, 0, len(questions))
	for _, q := range questions {
		dtos = append(dtos, QuestionDTO{
			Question: q.Question,
			Options: map[string]string{
				"A": q.Options.A,
				"B": q.Options.B,
				"C": q.Options.C,
				"D": q.Options.D,
			},
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
		})
	}
	return dtos
}

// ExamComponentDTO describes one exam component for the configuration UI.
type ExamComponentDTO struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Weight      int    `json:"weight"`
	Description string `json:"description"`
}

// ExamStructureDTO is the static exam breakdown served to the frontend.
type ExamStructureDTO struct {
	Components                 []ExamComponentDTO `json:"components"`
	EducationLevels            map[string]string  `json:"education_levels"`
	ElementarySpecializations  []string           `json:"elementary_specializations"`
	SecondarySpecializations   []string           `json:"secondary_specializations"`
	DifficultyLevels           []string           `json:"difficulty_levels"`
	QuestionsPerBatch          int                `json:"questions_per_batch"`
}
