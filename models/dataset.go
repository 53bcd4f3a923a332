package models

// Rules reported by dataset validation
const (
	RuleInvalidID       = "invalid_id"
	RuleBeforeMinTerm   = "before_min_term"
	RuleEmptyTranscript = "empty_transcript"
	RuleDuplicateID     = "duplicate_id"
	RuleUnreadable      = "unreadable_transcript"
)

type (
	// Entry is one case as it appears in the dataset
	Entry struct {
		ID        string `json:"id"`
		TurnCount int    `json:"turnCount"`
		// Error is set when one of the case's transcript files couldn't be read
		Error string `json:"error,omitempty"`
	}

	// Violation is a single broken dataset rule
	Violation struct {
		ID      string `json:"id"`
		Rule    string `json:"rule"`
		Message string `json:"message"`
	}

	// Report represents the response from 'POST /dataset/validate'
	Report struct {
		Checked    int         `json:"checked"`
		Valid      bool        `json:"valid"`
		Violations []Violation `json:"violations"`
	}
)
