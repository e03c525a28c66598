package acp

// Session statuses reported by the public-api gateway.
const (
	StatusCreating = "creating"
	StatusRunning  = "running"
	StatusStopped  = "stopped"
	StatusFailed   = "failed"
	StatusUnknown  = "unknown"
)

// Session is the gateway's AgenticSession DTO. The server never persists
// sessions; instances live only for the duration of one tool call.
type Session struct {
	ID          string `json:"id"`
	Project     string `json:"project,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
	Status      string `json:"status,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
	CompletedAt string `json:"completedAt,omitempty"`
	Task        string `json:"task,omitempty"`
}

// listSessionsResponse is the gateway's GET /v1/sessions body.
type listSessionsResponse struct {
	Items []Session `json:"items"`
}

// createSessionResponse is the gateway's POST /v1/sessions body.
type createSessionResponse struct {
	ID string `json:"id"`
}

// apiErrorBody is the gateway's error envelope.
type apiErrorBody struct {
	Error string `json:"error"`
}

// LLMConfig selects the model for a new session.
type LLMConfig struct {
	Model string `json:"model"`
}

// SessionManifest is the creation payload sent to POST /v1/sessions. A
// dry-run create returns it verbatim instead of issuing the request, so the
// preview contains every field the live call would submit.
type SessionManifest struct {
	InitialPrompt string    `json:"initialPrompt"`
	Interactive   bool      `json:"interactive"`
	LLMConfig     LLMConfig `json:"llmConfig"`
	Timeout       int       `json:"timeout"`
	DisplayName   string    `json:"displayName,omitempty"`
	Repos         []string  `json:"repos,omitempty"`
}

// SessionSummary is the compact session representation returned by tools.
type SessionSummary struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name,omitempty"`
	Status      string `json:"status,omitempty"`
	Created     string `json:"created,omitempty"`
	Stopped     string `json:"stopped,omitempty"`
	Task        string `json:"task,omitempty"`
}

// maxTaskExcerpt bounds the task text carried in summaries.
const maxTaskExcerpt = 50

func summarize(s Session) SessionSummary {
	task := s.Task
	if len(task) > maxTaskExcerpt {
		task = task[:maxTaskExcerpt] + "..."
	}
	return SessionSummary{
		Name:        s.ID,
		DisplayName: s.DisplayName,
		Status:      s.Status,
		Created:     s.CreatedAt,
		Stopped:     s.CompletedAt,
		Task:        task,
	}
}
