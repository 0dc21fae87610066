package structs

import "time"

const (
	ReqIdentificationActive    = "Active"
	ReqIdentificationCompleted = "Completed"
	ReqIdentificationFailed    = "Failed"
)

type ReqIdentification struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Description       string     `json:"description"`
	User              User       `json:"user"`
	Status            string     `json:"status"`
	CreatedAt         time.Time  `json:"created_at"`
	Jurisdiction      string     `json:"jurisdiction"`
	State             string     `json:"state,omitempty"`
	Municipality      string     `json:"municipality,omitempty"`
	Subject           Subject    `json:"subject"`
	LegalBases        LegalBases `json:"legal_bases"`
	IntelligenceLevel string     `json:"intelligence_level"`
}

type ReqIdentifications []ReqIdentification

type ReqIdentificationCreated struct {
	ReqIdentificationID string `json:"reqIdentificationId"`
	JobID               string `json:"jobId"`
}

type ReqIdentificationCreateOptions struct {
	Description       *string `flag:"description,d" param:"reqIdentificationDescription" desc:"description"`
	IntelligenceLevel *string `flag:"intelligence-level,i" param:"intelligenceLevel" desc:"High or Low"`
	Subject           *string `flag:"subject,s" param:"subjectId" desc:"subject id"`

	LegalBases []string
}

type ReqIdentificationListOptions struct {
	Description *string `flag:"description,d" query:"description" desc:"filter by description"`
	Name        *string `flag:"name,n" query:"name" desc:"filter by name"`
	Status      *string `flag:"status" query:"status" desc:"Active, Completed or Failed"`
	Subject     *string `flag:"subject,s" query:"subjectId" desc:"filter by subject id"`
	User        *string `flag:"user,u" query:"userId" desc:"filter by user id"`
}

type ReqIdentificationUpdateOptions struct {
	Description *string `flag:"description,d" param:"reqIdentificationDescription" desc:"description"`
	Name        *string `flag:"name,n" param:"reqIdentificationName" desc:"new name"`
}

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

func (r *ReqIdentification) Finished() bool {
	return r.Status == ReqIdentificationCompleted || r.Status == ReqIdentificationFailed
}
