package dto

type SearchTurnRequest struct {
	// SessionId is assigned server-side when blank; the first turn of a new
	// session always runs as a reset.
	SessionId        string `json:"session_id"`
	UserId           string `json:"user_id"`
	ModificationText string `json:"modification_text"`
	Reset            bool   `json:"reset"`
	// ImageRef is a local file path or an http(s) URL to the query image.
	ImageRef string `json:"image_ref"`
	// Limit caps the number of hydrated results; 0 means all ranked items.
	Limit int `json:"limit" validate:"min=0"`
}

type SearchResultItem struct {
	Index       int      `json:"index"`
	Description string   `json:"description"`
	Price       string   `json:"price,omitempty"`
	Rating      string   `json:"rating,omitempty"`
	RatingCount string   `json:"rating_count,omitempty"`
	ImagePath   string   `json:"image_path,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	// PassedFilters is false for items ranked behind the hard-filter cut.
	PassedFilters bool `json:"passed_filters"`
}

type SearchTurnResponse struct {
	SessionId   string             `json:"session_id"`
	CurrentText string             `json:"current_text"`
	BackBone    string             `json:"back_bone"`
	Tags        []string           `json:"tags,omitempty"`
	Total       int                `json:"total"`
	Results     []SearchResultItem `json:"results"`
}

type ResetSessionRequest struct {
	SessionId string `json:"session_id" validate:"required"`
	UserId    string `json:"user_id"`
}

type ShowSessionResponse struct {
	SessionId    string `json:"session_id"`
	CurrentText  string `json:"current_text"`
	BackBone     string `json:"back_bone"`
	LastQuery    string `json:"last_query"`
	CandidateIdx []int  `json:"candidate_idx"`
}

// TurnActivityMessage travels over the in-process event bus from the search
// service to the activity consumer.
type TurnActivityMessage struct {
	SessionId string `json:"session_id"`
	UserId    string `json:"user_id"`
	Query     string `json:"query"`
	Results   int    `json:"results"`
	Reset     bool   `json:"reset"`
}
