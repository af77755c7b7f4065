package model

// TextRequest is the API request body for free-text analysis and the AI
// sentiment and category endpoints.
type TextRequest struct {
	Text string `json:"text"`
}

// ExtractIDRequest is the API request body for resolving a video URL.
type ExtractIDRequest struct {
	URL string `json:"video_url"`
}

// CompareChannelsRequest is the API request body for comparing channels.
type CompareChannelsRequest struct {
	ChannelIDs []string `json:"channel_ids"`
}

// CritiqueRequest is the API request body for an AI content critique.
type CritiqueRequest struct {
	Content      string `json:"content"`
	FeedbackType string `json:"feedback_type,omitempty"`
}

// GenerateRequest is the API request body for AI content generation.
type GenerateRequest struct {
	Context     string `json:"context"`
	ContentType string `json:"content_type,omitempty"`
}

// WorkflowRequest is the API request body for an AI workflow run.
type WorkflowRequest struct {
	VideoID       string   `json:"video_id"`
	WorkflowSteps []string `json:"workflow_steps,omitempty"`
	ContentType   string   `json:"content_type,omitempty"`
}

// JobRequest is the API request body for queueing an async analysis.
type JobRequest struct {
	Kind   JobKind `json:"kind"`
	Target string  `json:"target"`
}
