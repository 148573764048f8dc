package dto

// Page payloads. Each one is rendered as JSON or handed to the matching template.

// Viewer is the logged-in user shown in page headers
type Viewer struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	UserType string `json:"user_type"`
}

type LoginPage struct {
	Users []UserDTO `json:"users"`
}

type FeedPage struct {
	Viewer          Viewer    `json:"viewer"`
	Posts           []PostDTO `json:"posts"`
	PendingRequests int64     `json:"pending_requests"`
}

type ProfilePage struct {
	Viewer    Viewer       `json:"viewer"`
	User      UserDTO      `json:"user"`
	Projects  []ProjectDTO `json:"projects"`
	IsOwnPage bool         `json:"is_own_page"`
}

type ResearcherSearchPage struct {
	Viewer      Viewer     `json:"viewer"`
	Researchers []UserDTO  `json:"researchers"`
	Fields      []FieldDTO `json:"fields"`
	Field       string     `json:"field"`
	Country     string     `json:"country"`
	Institution string     `json:"institution"`
	Searched    bool       `json:"searched"`
}

type ProblemSearchPage struct {
	Viewer     Viewer        `json:"viewer"`
	Problems   []ProblemDTO  `json:"problems"`
	Fields     []FieldDTO    `json:"fields"`
	Subfields  []SubfieldDTO `json:"subfields"`
	Field      string        `json:"field"`
	SubfieldID *uint64       `json:"subfield_id"`
	Searched   bool          `json:"searched"`
}

type ProblemDetailPage struct {
	Viewer             Viewer       `json:"viewer"`
	Problem            ProblemDTO   `json:"problem"`
	FieldName          string       `json:"field_name"`
	RelatedProjects    []ProjectDTO `json:"related_projects"`
	WorkingResearchers []UserDTO    `json:"working_researchers"`
}

type ProjectFormPage struct {
	Viewer      Viewer        `json:"viewer"`
	Fields      []FieldDTO    `json:"fields"`
	Subfields   []SubfieldDTO `json:"subfields"`
	Researchers []UserDTO     `json:"researchers"`
}

type NotificationsPage struct {
	Viewer   Viewer       `json:"viewer"`
	Pending  []RequestDTO `json:"pending"`
	Accepted []RequestDTO `json:"accepted"`
	Rejected []RequestDTO `json:"rejected"`
}
