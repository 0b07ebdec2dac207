package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/lept-reviewer/backend/internal/api/v1/dto"
	"github.com/lept-reviewer/backend/internal/exam"
	"github.com/lept-reviewer/backend/internal/middleware"
	"github.com/lept-reviewer/backend/internal/model"
	"github.com/lept-reviewer/backend/internal/service"
)

// QuestionHandler serves the exam structure and question batches.
type QuestionHandler struct {
	questionService service.QuestionService
	userService     service.UserService
	documentService service.DocumentService
	validate        *validator.Validate
	logger          zerolog.Logger
}

func NewQuestionHandler(
	questionService service.QuestionService,
	userService service.UserService,
	documentService service.DocumentService,
	validate *validator.Validate,
	logger zerolog.Logger,
) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
		userService:     userService,
		documentService: documentService,
		validate:        validate,
		logger:          logger.With().Str("handler", "QuestionHandler").Logger(),
	}
}

func (h *QuestionHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	mux.HandleFunc("GET /exam/structure", h.examStructure)
	mux.Handle("POST /questions", authMw(http.HandlerFunc(h.generate)))
}

// examStructure serves the static exam breakdown; no auth needed.
func (h *QuestionHandler) examStructure(w http.ResponseWriter, r *http.Request) {
	components := make([]dto.ExamComponentDTO, 0, len(exam.Components))
	for _, c := range exam.Components {
		components = append(components, dto.ExamComponentDTO{
			Key:         c.Key,
			Name:        c.Name,
			Weight:      c.Weight,
			Description: c.Description,
		})
	}

	writeJSON(w, http.StatusOK, dto.ExamStructureDTO{
		Components:                components,
		EducationLevels:           exam.EducationLevels,
		ElementarySpecializations: exam.ElementarySpecializations,
		SecondarySpecializations:  exam.SecondarySpecializations,
		DifficultyLevels:          exam.DifficultyLevels,
		QuestionsPerBatch:         exam.QuestionsPerBatch,
	})
}

func (h *QuestionHandler) generate(w http.ResponseWriter, r *http.Request) {
	email := middleware.EmailFromContext(r.Context())
	if email == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req dto.GenerateQuestionsDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	level := req.EducationLevel
	if level == "" {
		level = exam.LevelSecondary
	}

	genReq := service.GenerationRequest{
		Email:          email,
		IPAddress:      clientIP(r),
		Component:      req.Component,
		Specialization: req.Specialization,
		Difficulty:     req.Difficulty,
		EducationLevel: level,
		NumQuestions:   exam.QuestionsPerBatch,
	}

	if req.Source == "ai" {
		docText, err := h.documentText(r, email, &req)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		genReq.DocumentText = docText
	}

	var (
		questions []model.Question
		err       error
	)
	if req.Source == "ai" {
		questions, err = h.questionService.Generate(r.Context(), genReq)
	} else {
		questions, err = h.questionService.Preset(r.Context(), genReq)
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}
	middleware.CountQuestions(req.Source, len(questions))

	user, err := h.userService.GetUser(r.Context(), email)
	if err != nil || user == nil {
		h.logger.Warn().Err(err).Str("email", email).Msg("Failed to refresh status after batch")
		writeJSON(w, http.StatusOK, dto.QuestionBatchDTO{
			Questions: dto.NewQuestionDTOs(questions),
			Source:    req.Source,
		})
		return
	}

	writeJSON(w, http.StatusOK, dto.QuestionBatchDTO{
		Questions: dto.NewQuestionDTOs(questions),
		Source:    req.Source,
		Status:    dto.NewUserStatusDTO(h.userService.Status(user)),
	})
}

// documentText resolves the optional seed document for AI generation.
func (h *QuestionHandler) documentText(r *http.Request, email string, req *dto.GenerateQuestionsDTO) (string, error) {
	switch {
	case req.DocumentID != nil:
		return h.documentService.UserDocumentText(r.Context(), email, *req.DocumentID)
	case req.AdminDocumentID != nil:
		user, err := h.userService.GetUser(r.Context(), email)
		if err != nil {
			return "", err
		}
		if user == nil {
			return "", service.ErrUserNotFound
		}
		return h.documentService.AdminDocumentText(r.Context(), user, *req.AdminDocumentID)
	}
	return "", nil
}
