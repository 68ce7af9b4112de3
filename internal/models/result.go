package models

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type CreateRoleRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UpdateRoleRequest struct {
	Questions []Question `json:"questions"`
}

type UploadCVRequest struct {
	CVText string `json:"cv_text"`
}

type UploadCVResponse struct {
	CVText          string `json:"cv_text"`
	ExtractionError bool   `json:"extraction_error,omitempty"`
}

type GeneratePersonalQuestionsRequest struct {
	CVText          string `json:"cv_text"`
	RoleName        string `json:"role_name"`
	RoleDescription string `json:"role_description"`
}

type QuestionsResponse struct {
	Questions []Question `json:"questions"`
}

type PrepareCandidateRequest struct {
	RoleID            uint       `json:"role_id"`
	CVText            string     `json:"cv_text"`
	PersonalQuestions []Question `json:"personal_questions"`
}

type PrepareCandidateResponse struct {
	CandidateID  uint       `json:"candidate_id"`
	AllQuestions []Question `json:"all_questions"`
}

type TranscribeResponse struct {
	Transcript string `json:"transcript"`
}

type AnalyzeInterviewRequest struct {
	CandidateID   uint   `json:"candidate_id"`
	CandidateName string `json:"candidate_name"`
	Transcript    string `json:"transcript"`
}

type AnalyzeInterviewResponse struct {
	Analysis   *AnalysisResult `json:"analysis"`
	TotalScore int             `json:"total_score"`
}

// CandidateView is a candidate joined with its role's name and description.
// Role fields are nil when the role has been deleted.
type CandidateView struct {
	Candidate
	RoleName        *string         `json:"role_name"`
	RoleDescription *string         `json:"role_description,omitempty"`
	Status          CandidateStatus `json:"status"`
}

type CandidateSearchHit struct {
	CandidateID uint    `json:"candidate_id"`
	Score       float32 `json:"score"`
	Excerpt     string  `json:"excerpt"`
}
