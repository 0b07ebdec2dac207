package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/lept-reviewer/backend/internal/cache"
	"github.com/lept-reviewer/backend/internal/exam"
	"github.com/lept-reviewer/backend/internal/extract"
	"github.com/lept-reviewer/backend/internal/model"
	"github.com/lept-reviewer/backend/internal/repository"
	"github.com/lept-reviewer/backend/internal/util"
)

var (
	ErrQuotaExhausted   = errors.New("question quota exhausted")
	ErrInvalidComponent = errors.New("unknown exam component")
	ErrGenerationFailed = errors.New("failed to generate questions")
)

// Source types recorded in usage logs.
const (
	SourcePreset = "preset"
	SourceAI     = "ai"
)

// docTextMaxChars caps how much extracted document text is embedded in the
// generation prompt.
const docTextMaxChars = 6000

// docTextMinChars is the minimum useful document length; anything shorter
// (including extraction placeholders) is ignored for generation.
const docTextMinChars = 200

// GenerationRequest describes one batch of questions to produce.
type GenerationRequest struct {
	Email          string
	IPAddress      string
	Component      string
	Specialization string
	Difficulty     string
	EducationLevel string
	DocumentText   string
	NumQuestions   int
}

// QuestionService serves question batches, charging them against the user's
// plan quota.
type QuestionService interface {
	// Preset returns curated questions matched to the exam configuration.
	Preset(ctx context.Context, req GenerationRequest) ([]model.Question, error)
	// Generate produces questions with the configured LLM.
	Generate(ctx context.Context, req GenerationRequest) ([]model.Question, error)
}

type questionService struct {
	userRepo  repository.UserRepository
	usageRepo repository.UsageRepository
	cache     *cache.Cache
	secrets   SecretService
	openAI    OpenAIClient
	qLogger   zerolog.Logger
}

func NewQuestionService(
	userRepo repository.UserRepository,
	usageRepo repository.UsageRepository,
	c *cache.Cache,
	secrets SecretService,
	openAI OpenAIClient,
	logger zerolog.Logger,
) QuestionService {
	return &questionService{
		userRepo:  userRepo,
		usageRepo: usageRepo,
		cache:     c,
		secrets:   secrets,
		openAI:    openAI,
		qLogger:   logger.With().Str("service", "QuestionService").Logger(),
	}
}

func (s *questionService) Preset(ctx context.Context, req GenerationRequest) ([]model.Question, error) {
	user, err := s.gate(ctx, req)
	if err != nil {
		return nil, err
	}

	questions := exam.AlignedPresetQuestions(req.Component, req.Specialization, req.Difficulty, req.NumQuestions)
	if len(questions) == 0 {
		return nil, fmt.Errorf("no preset questions available for this configuration")
	}

	if err := s.consume(ctx, user, req, len(questions), SourcePreset); err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *questionService) Generate(ctx context.Context, req GenerationRequest) ([]model.Question, error) {
	user, err := s.gate(ctx, req)
	if err != nil {
		return nil, err
	}
	// FREE accounts are served from the preset bank only.
	if user.PlanType == model.PlanFree {
		return nil, ErrPlanRequired
	}

	apiKey, err := s.secrets.GetOpenAIAPIKey(ctx)
	if err != nil {
		return nil, fmt.Errorf("generation is unavailable: %w", err)
	}

	systemPrompt := buildSystemPrompt(req.Component, req.Specialization)
	userPrompt := buildUserPrompt(req)

	raw, err := s.openAI.ChatCompletion(ctx, apiKey, systemPrompt, userPrompt)
	if err != nil {
		s.qLogger.Error().Err(err).Str("email", req.Email).Msg("Completion request failed")
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	questions := validateQuestions(parseQuestionsResponse(raw))
	if len(questions) == 0 {
		s.qLogger.Error().Str("email", req.Email).Msg("Completion produced no usable questions")
		return nil, ErrGenerationFailed
	}
	if len(questions) < req.NumQuestions {
		s.qLogger.Warn().
			Str("email", req.Email).
			Int("requested", req.NumQuestions).
			Int("generated", len(questions)).
			Msg("Completion produced a short batch")
	}

	if err := s.consume(ctx, user, req, len(questions), SourceAI); err != nil {
		return nil, err
	}
	return questions, nil
}

// gate validates the request and checks the caller may spend the batch.
func (s *questionService) gate(ctx context.Context, req GenerationRequest) (*model.User, error) {
	if exam.ComponentByKey(req.Component) == nil {
		return nil, ErrInvalidComponent
	}
	if !exam.ValidDifficulty(req.Difficulty) {
		return nil, fmt.Errorf("unknown difficulty %q", req.Difficulty)
	}
	if req.NumQuestions <= 0 {
		return nil, fmt.Errorf("question count must be positive")
	}

	user, err := s.userRepo.GetByEmail(ctx, util.NormalizeEmail(req.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.IsBlocked {
		return nil, ErrUserBlocked
	}
	if user.PremiumActive(time.Now()) {
		return user, nil
	}
	if user.QuestionsRemaining < req.NumQuestions {
		return nil, ErrQuotaExhausted
	}
	return user, nil
}

// consume charges count questions and records the usage event. The quota
// decrement is guarded in SQL, so concurrent batches cannot overspend.
// Unexpired PREMIUM accounts are exempt from the counter; their usage is
// still logged and counted per IP.
func (s *questionService) consume(ctx context.Context, user *model.User, req GenerationRequest, count int, sourceType string) error {
	if !user.PremiumActive(time.Now()) {
		ok, err := s.userRepo.DecrementQuestions(ctx, user.Email, count)
		if err != nil {
			return err
		}
		if !ok {
			return ErrQuotaExhausted
		}
	}

	category := req.Component
	if req.Component == exam.ComponentSpecialization && req.Specialization != "" {
		category = req.Specialization
	}
	usageLog := &model.UsageLog{
		Email:              user.Email,
		IPAddress:          req.IPAddress,
		QuestionsGenerated: count,
		SourceType:         sourceType,
		Category:           category,
		Difficulty:         req.Difficulty,
	}
	if err := s.usageRepo.LogUsage(ctx, usageLog); err != nil {
		s.qLogger.Warn().Err(err).Str("email", user.Email).Msg("Failed to log usage")
	}
	if err := s.usageRepo.IncrementIPUsage(ctx, req.IPAddress, count); err != nil {
		s.qLogger.Warn().Err(err).Str("ip", req.IPAddress).Msg("Failed to increment IP usage")
	}
	if err := s.cache.InvalidateUser(ctx, user.Email); err != nil {
		s.qLogger.Warn().Err(err).Str("email", user.Email).Msg("Failed to invalidate user cache")
	}

	s.qLogger.Info().
		Str("email", user.Email).
		Str("source", sourceType).
		Int("count", count).
		Msg("Questions served")
	return nil
}

func buildSystemPrompt(component, specialization string) string {
	var expertise string
	switch component {
	case exam.ComponentGeneralEducation:
		expertise = "General Education subjects (English, Filipino, Math, Science, Social Studies)"
	case exam.ComponentProfessionalEducation:
		expertise = "Professional Education (learning theories, curriculum, assessment, education laws)"
	case exam.ComponentSpecialization:
		if specialization != "" {
			expertise = specialization + " content and pedagogy"
		}
	}

	return fmt.Sprintf(`You are an official LEPT board exam question writer for the Philippine PRC.

Your expertise:
- Philippine education system and K-12 curriculum
- LEPT exam format and competencies
- %s

CRITICAL RULES:
1. Generate questions ONLY for the specified exam component
2. For Specialization: Generate ONLY subject-specific content questions
3. Match the exact difficulty level requested
4. Use official LEPT competencies as reference
5. Follow Philippine education context
6. Return ONLY valid JSON`, expertise)
}

func buildUserPrompt(req GenerationRequest) string {
	component := exam.ComponentByKey(req.Component)
	examName := req.Component
	if component != nil {
		examName = component.Name
	}

	config := exam.CompetenciesFor(req.Component, req.Specialization)

	levelName := "Secondary (BSEd)"
	if req.EducationLevel == exam.LevelElementary {
		levelName = "Elementary (BEEd)"
	}

	specDisplay := req.Specialization
	if specDisplay == "" {
		specDisplay = "N/A"
	}

	var b strings.Builder
	fmt.Fprintf(&b, `You are an official question writer for the Philippine Licensure Examination for Professional Teachers (LEPT) administered by the Professional Regulation Commission (PRC).

═══════════════════════════════════════════════════════════
EXAM CONFIGURATION (MUST FOLLOW EXACTLY)
═══════════════════════════════════════════════════════════
• Education Level: %s
• Exam Component: %s
• Specialization: %s
• Difficulty: %s
• Number of Questions: %d

%s
═══════════════════════════════════════════════════════════
%s
═══════════════════════════════════════════════════════════

OFFICIAL LEPT COMPETENCIES AND TOPICS:
%s

%s
═══════════════════════════════════════════════════════════
LEPT BOARD EXAM QUESTION FORMAT
═══════════════════════════════════════════════════════════

Question Format Requirements:
1. Clear, concise question stem (no unnecessary words)
2. Four options (A, B, C, D) - only ONE correct answer
3. Options should be plausible (no obviously wrong answers)
4. Consistent grammatical structure across options
5. Options of similar length
6. Avoid "All of the above" or "None of the above"
7. No negative questions unless necessary (avoid "NOT", "EXCEPT")

Difficulty Guidelines:
• EASY: Direct recall, definitions, basic facts
• MEDIUM: Application, comprehension, comparing concepts
• HARD: Analysis, synthesis, case-based scenarios, problem-solving

═══════════════════════════════════════════════════════════
GENERATE %d QUESTIONS
═══════════════════════════════════════════════════════════

Return ONLY a valid JSON array:
[
  {
    "question": "Question text here?",
    "options": {
      "A": "First option",
      "B": "Second option",
      "C": "Third option",
      "D": "Fourth option"
    },
    "correct_answer": "B",
    "explanation": "Brief explanation of why B is correct."
  }
]

Generate exactly %d questions. Return ONLY valid JSON, no other text.`,
		levelName, examName, specDisplay, req.Difficulty, req.NumQuestions,
		specializationGuardrail(req.Component, req.Specialization),
		config.Instruction,
		config.TopicsList(),
		documentInstruction(req.DocumentText, examName, req.Specialization),
		req.NumQuestions, req.NumQuestions)
	return b.String()
}

// specializationGuardrail is the extra block that keeps specialization
// batches from drifting into pedagogy or other subjects.
func specializationGuardrail(component, specialization string) string {
	if component != exam.ComponentSpecialization || specialization == "" {
		return ""
	}

	subjectHints := map[string]string{
		"Mathematics": "For MATHEMATICS specialization: Generate pure math questions - algebra, calculus, geometry, statistics, number theory, etc.",
		"English":     "For ENGLISH specialization: Generate English language and literature questions - grammar, literature, linguistics, etc.",
		"Science":     "For SCIENCE specialization: Generate science content questions - biology, chemistry, physics, earth science, etc.",
		"Filipino":    "For FILIPINO specialization: Generate Filipino language and literature questions - gramatika, panitikan, retorika, etc.",
	}

	return fmt.Sprintf(`⚠️ STRICT REQUIREMENT FOR SPECIALIZATION:
You are generating questions for %s SPECIALIZATION.
- Generate ONLY %s content questions
- Do NOT include questions about teaching methods (that's Professional Education)
- Do NOT include questions about other subjects
- Focus on %s subject matter expertise

%s
`, specialization, specialization, specialization, subjectHints[specialization])
}

// documentInstruction embeds uploaded document text when it is long enough
// to be useful. Extraction placeholders are never embedded.
func documentInstruction(docText, examName, specialization string) string {
	trimmed := strings.TrimSpace(docText)
	if len(trimmed) <= docTextMinChars || extract.IsPlaceholder(trimmed) {
		return ""
	}

	scope := specialization
	if scope == "" {
		scope = "the selected component"
	}

	return fmt.Sprintf(`UPLOADED DOCUMENT (Use ONLY if directly relevant to %s):
%s

CRITICAL: If this document is NOT about %s or %s,
COMPLETELY IGNORE IT and generate questions using official LEPT competencies instead.
`, examName, extract.TruncateForPrompt(trimmed, docTextMaxChars), examName, scope)
}

// parseQuestionsResponse extracts a question array from model output, which
// may be bare JSON, JSON embedded in prose, or a fenced code block.
func parseQuestionsResponse(responseText string) []model.Question {
	responseText = strings.TrimSpace(responseText)

	var questions []model.Question
	if err := json.Unmarshal([]byte(responseText), &questions); err == nil {
		return questions
	}

	start := strings.Index(responseText, "[")
	end := strings.LastIndex(responseText, "]")
	if start != -1 && end > start {
		if err := json.Unmarshal([]byte(responseText[start:end+1]), &questions); err == nil {
			return questions
		}
	}

	cleaned := strings.ReplaceAll(responseText, "```json", "")
	cleaned = strings.TrimSpace(strings.ReplaceAll(cleaned, "```", ""))
	if err := json.Unmarshal([]byte(cleaned), &questions); err == nil {
		return questions
	}

	return nil
}

// validateQuestions drops malformed items and normalizes the rest.
func validateQuestions(questions []model.Question) []model.Question {
	validated := make([]model.Question, 0, len(questions))
	for _, q := range questions {
		q.Question = strings.TrimSpace(q.Question)
		if q.Question == "" {
			continue
		}

		q.Options.A = strings.TrimSpace(q.Options.A)
		q.Options.B = strings.TrimSpace(q.Options.B)
		q.Options.C = strings.TrimSpace(q.Options.C)
		q.Options.D = strings.TrimSpace(q.Options.D)
		if !q.Options.Complete() {
			continue
		}

		q.CorrectAnswer = strings.ToUpper(strings.TrimSpace(q.CorrectAnswer))
		if q.Options.ByLetter(q.CorrectAnswer) == "" {
			continue
		}

		q.Explanation = strings.TrimSpace(q.Explanation)
		if q.Explanation == "" {
			q.Explanation = "See your reviewer for explanation."
		}
		validated = append(validated, q)
	}
	return validated
}
