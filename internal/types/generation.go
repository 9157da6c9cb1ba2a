package types

// GenerationRequest is the caller-supplied input for one pipeline invocation.
// ProjectID and ContentType are required; Content and URL are both optional
// (missing content means the extractors run on empty input).
type GenerationRequest struct {
	ProjectID        string   `json:"projectId" validate:"required"`
	URL              string   `json:"url,omitempty" validate:"omitempty,url"`
	ContentType      string   `json:"contentType" validate:"required"`
	Content          string   `json:"content,omitempty"`
	AcceptedEntities []string `json:"acceptedEntities,omitempty"`
	Mode             string   `json:"mode,omitempty" validate:"omitempty,oneof=auto lean rich auto_no_llm"`
}

// ModeUsed values reported in a GenerationResult.
const (
	ModeUsedLean         = "lean"
	ModeUsedLeanFallback = "lean_fallback"
	ModeUsedRich         = "rich"
)

// Issue is a single validation finding. Path points at the offending field
// when one can be named.
type Issue struct {
	Path    string `json:"path,omitempty"`
	Message string `json:"message"`
}

// ValidationResult is the outcome of a structural validation pass. It is a
// data value, never an error: an invalid candidate drives escalation policy
// rather than failing the pipeline.
type ValidationResult struct {
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues"`
}

// GenerationResult is the packaged outcome of one pipeline invocation.
type GenerationResult struct {
	Schema         Candidate `json:"schema"`
	Implementation string    `json:"implementation"`
	SchemaType     string    `json:"schemaType"`
	Valid          bool      `json:"valid"`
	Issues         []Issue   `json:"issues"`
	ModeUsed       string    `json:"modeUsed"`
	Instructions   []string  `json:"instructions"`
}
