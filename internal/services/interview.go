package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/datatypes"

	"recruitment/interview-assistant/internal/models"
	"recruitment/interview-assistant/internal/repositories"
)

const (
	roleQuestionsMaxTokens     int32 = 2000
	personalQuestionsMaxTokens int32 = 1500
	defaultAnalysisMaxTokens   int32 = 4000
)

// InterviewService runs the role -> candidate -> transcript -> analysis flow.
// Every provider call is attempted once; generation and analysis fall back to
// bundled defaults instead of failing.
type InterviewService interface {
	CreateRole(ctx context.Context, name, description string) (*models.Role, error)
	ListRoles() ([]models.Role, error)
	GetRole(id uint) (*models.Role, error)
	UpdateRoleQuestions(id uint, questions []models.Question) (*models.Role, error)
	DeleteRole(id uint) error

	GeneratePersonalQuestions(ctx context.Context, cvText, roleName, roleDescription string) ([]models.Question, error)
	PrepareCandidate(ctx context.Context, roleID uint, cvText string, personalQuestions []models.Question) (*models.Candidate, error)
	AnalyzeInterview(ctx context.Context, candidateID uint, candidateName, transcript string) (*models.AnalysisResult, int, error)

	ListCandidates() ([]models.CandidateView, error)
	GetCandidate(id uint) (*models.CandidateView, error)
	DeleteCandidate(ctx context.Context, id uint) error
	SearchCandidates(ctx context.Context, query string, limit int) ([]models.CandidateSearchHit, error)
}

type interviewService struct {
	roleRepo      repositories.RoleRepository
	candidateRepo repositories.CandidateRepository
	llm           LLMService
	promptBuilder *PromptBuilder
	parser        *ResponseParser
	cvIndex       CVIndex
	maxTokens     int32
}

// NewInterviewService wires the pipeline. cvIndex may be nil, in which case
// CV search reports ErrIndexDisabled. analysisMaxTokens caps the scoring
// completion; zero or less means the default of 4000.
func NewInterviewService(
	roleRepo repositories.RoleRepository,
	candidateRepo repositories.CandidateRepository,
	llm LLMService,
	cvIndex CVIndex,
	analysisMaxTokens int32,
) InterviewService {
	if analysisMaxTokens <= 0 {
		analysisMaxTokens = defaultAnalysisMaxTokens
	}

	return &interviewService{
		roleRepo:      roleRepo,
		candidateRepo: candidateRepo,
		llm:           llm,
		promptBuilder: NewPromptBuilder(),
		parser:        NewResponseParser(),
		cvIndex:       cvIndex,
		maxTokens:     analysisMaxTokens,
	}
}

func (s *interviewService) CreateRole(ctx context.Context, name, description string) (*models.Role, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, NewValidationError("name", "Role name is required")
	}

	log.Printf("🤖 Generating questions for role %q...", name)

	var questions []models.Question
	raw, err := s.llm.GenerateText(ctx, s.promptBuilder.BuildRoleQuestionsPrompt(name, description), roleQuestionsMaxTokens)
	if err != nil {
		log.Printf("⚠️  Role question generation failed, using defaults: %v", err)
		questions = DefaultRoleQuestions()
	} else {
		questions = s.parser.ParseRoleQuestions(raw)
	}

	role := &models.Role{
		Name:        name,
		Description: description,
		Questions:   datatypes.JSONSlice[models.Question](questions),
	}
	if err := s.roleRepo.Create(role); err != nil {
		return nil, err
	}

	log.Printf("✅ Role %d created with %d questions", role.ID, len(role.Questions))
	return role, nil
}

func (s *interviewService) ListRoles() ([]models.Role, error) {
	return s.roleRepo.FindAll()
}

func (s *interviewService) GetRole(id uint) (*models.Role, error) {
	role, err := s.roleRepo.FindByID(id)
	if err != nil {
		return nil, translateNotFound(err, "role", id)
	}
	return role, nil
}

func (s *interviewService) UpdateRoleQuestions(id uint, questions []models.Question) (*models.Role, error) {
	if err := s.roleRepo.UpdateQuestions(id, questions); err != nil {
		return nil, translateNotFound(err, "role", id)
	}
	return s.GetRole(id)
}

func (s *interviewService) DeleteRole(id uint) error {
	return s.roleRepo.Delete(id)
}

func (s *interviewService) GeneratePersonalQuestions(ctx context.Context, cvText, roleName, roleDescription string) ([]models.Question, error) {
	if strings.TrimSpace(cvText) == "" {
		return nil, NewValidationError("cv_text", "CV text is required")
	}

	log.Println("🤖 Generating personal questions from CV...")

	raw, err := s.llm.GenerateText(ctx, s.promptBuilder.BuildPersonalQuestionsPrompt(cvText, roleName, roleDescription), personalQuestionsMaxTokens)
	if err != nil {
		log.Printf("⚠️  Personal question generation failed, using defaults: %v", err)
		return DefaultPersonalQuestions(), nil
	}

	return s.parser.ParsePersonalQuestions(raw), nil
}

// PrepareCandidate snapshots the role's current questions followed by the
// personal ones. Later edits to the role do not reach this candidate.
func (s *interviewService) PrepareCandidate(ctx context.Context, roleID uint, cvText string, personalQuestions []models.Question) (*models.Candidate, error) {
	role, err := s.roleRepo.FindByID(roleID)
	if err != nil {
		return nil, translateNotFound(err, "role", roleID)
	}

	if personalQuestions == nil {
		personalQuestions = []models.Question{}
	}

	candidate := &models.Candidate{
		RoleID:            &role.ID,
		CVText:            cvText,
		PersonalQuestions: datatypes.JSONSlice[models.Question](personalQuestions),
		AllQuestions:      datatypes.JSONSlice[models.Question](models.ConcatQuestions(role.Questions, personalQuestions)),
	}
	if err := s.candidateRepo.Create(candidate); err != nil {
		return nil, err
	}

	log.Printf("✅ Candidate %d prepared for role %q (%d questions)", candidate.ID, role.Name, len(candidate.AllQuestions))

	if s.cvIndex != nil && strings.TrimSpace(cvText) != "" {
		if err := s.cvIndex.IndexCV(ctx, candidate.ID, cvText); err != nil {
			log.Printf("⚠️  Failed to index CV for candidate %d: %v", candidate.ID, err)
		}
	}

	return candidate, nil
}

// AnalyzeInterview scores the transcript against the candidate's questions
// and overwrites any earlier analysis.
func (s *interviewService) AnalyzeInterview(ctx context.Context, candidateID uint, candidateName, transcript string) (*models.AnalysisResult, int, error) {
	candidate, err := s.candidateRepo.FindByID(candidateID)
	if err != nil {
		return nil, 0, translateNotFound(err, "candidate", candidateID)
	}

	if candidate.RoleID == nil {
		return nil, 0, &NotFoundError{Resource: "role for candidate", ID: candidateID}
	}

	role, err := s.roleRepo.FindByID(*candidate.RoleID)
	if err != nil {
		return nil, 0, translateNotFound(err, "role", *candidate.RoleID)
	}

	questions := []models.Question(candidate.AllQuestions)

	log.Printf("🔍 Analyzing interview for candidate %d (%d questions)...", candidateID, len(questions))

	var analysis *models.AnalysisResult
	raw, err := s.llm.GenerateText(ctx, s.promptBuilder.BuildAnalysisPrompt(questions, transcript, role.Name), s.maxTokens)
	if err != nil {
		log.Printf("⚠️  Analysis failed, using fallback: %v", err)
		analysis = FallbackAnalysis(questions, transcript)
	} else {
		analysis = s.parser.ParseAnalysis(raw, questions, transcript)
	}

	total := analysis.TotalScore()

	err = s.candidateRepo.SaveAnalysis(candidateID, &repositories.AnalysisUpdateData{
		Name:          candidateName,
		Transcript:    transcript,
		Analysis:      analysis,
		TotalScore:    total,
		InterviewDate: time.Now(),
	})
	if err != nil {
		return nil, 0, translateNotFound(err, "candidate", candidateID)
	}

	log.Printf("✅ Candidate %d analyzed: %d/%d", candidateID, total, models.MaxScore*len(questions))
	return analysis, total, nil
}

func (s *interviewService) ListCandidates() ([]models.CandidateView, error) {
	candidates, err := s.candidateRepo.FindAll()
	if err != nil {
		return nil, err
	}

	roles, err := s.rolesFor(candidates)
	if err != nil {
		return nil, err
	}

	views := make([]models.CandidateView, len(candidates))
	for i := range candidates {
		views[i] = newCandidateView(candidates[i], roles, false)
	}
	return views, nil
}

func (s *interviewService) GetCandidate(id uint) (*models.CandidateView, error) {
	candidate, err := s.candidateRepo.FindByID(id)
	if err != nil {
		return nil, translateNotFound(err, "candidate", id)
	}

	roles, err := s.rolesFor([]models.Candidate{*candidate})
	if err != nil {
		return nil, err
	}

	view := newCandidateView(*candidate, roles, true)
	return &view, nil
}

func (s *interviewService) DeleteCandidate(ctx context.Context, id uint) error {
	if err := s.candidateRepo.Delete(id); err != nil {
		return err
	}

	if s.cvIndex != nil {
		if err := s.cvIndex.Remove(ctx, id); err != nil {
			log.Printf("⚠️  Failed to remove candidate %d from CV index: %v", id, err)
		}
	}
	return nil
}

func (s *interviewService) SearchCandidates(ctx context.Context, query string, limit int) ([]models.CandidateSearchHit, error) {
	if s.cvIndex == nil {
		return nil, ErrIndexDisabled
	}
	return s.cvIndex.Search(ctx, query, limit)
}

// rolesFor loads the roles referenced by candidates. Deleted roles are simply
// absent from the map.
func (s *interviewService) rolesFor(candidates []models.Candidate) (map[uint]models.Role, error) {
	seen := make(map[uint]bool)
	var ids []uint
	for _, c := range candidates {
		if c.RoleID != nil && !seen[*c.RoleID] {
			seen[*c.RoleID] = true
			ids = append(ids, *c.RoleID)
		}
	}

	roles, err := s.roleRepo.FindByIDs(ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uint]models.Role, len(roles))
	for _, r := range roles {
		byID[r.ID] = r
	}
	return byID, nil
}

func newCandidateView(c models.Candidate, roles map[uint]models.Role, withDescription bool) models.CandidateView {
	view := models.CandidateView{
		Candidate: c,
		Status:    c.Status(),
	}
	if c.RoleID != nil {
		if role, ok := roles[*c.RoleID]; ok {
			name := role.Name
			view.RoleName = &name
			if withDescription {
				desc := role.Description
				view.RoleDescription = &desc
			}
		}
	}
	return view
}

func translateNotFound(err error, resource string, id uint) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return &NotFoundError{Resource: resource, ID: id}
	}
	return fmt.Errorf("failed to load %s: %w", resource, err)
}
