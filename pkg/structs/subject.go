package structs

type Subject struct {
	ID           string `json:"id"`
	Name         string `json:"subject_name"`
	Abbreviation string `json:"abbreviation"`
	OrderIndex   int    `json:"order_index"`
}

type Subjects []Subject

type SubjectCreateOptions struct {
	Abbreviation *string `flag:"abbreviation,b" param:"abbreviation" desc:"short code shown in tables"`
	OrderIndex   *int    `flag:"order,o" param:"orderIndex" desc:"display position"`
}

type SubjectListOptions struct {
	Abbreviation *string `flag:"abbreviation,b" query:"abbreviation" desc:"filter by abbreviation"`
	Name         *string `flag:"name,n" query:"subjectName" desc:"filter by name"`
}

type SubjectUpdateOptions struct {
	Abbreviation *string `flag:"abbreviation,b" param:"abbreviation" desc:"short code shown in tables"`
	Name         *string `flag:"name,n" param:"subjectName" desc:"new name"`
	OrderIndex   *int    `flag:"order,o" param:"orderIndex" desc:"display position"`
}

func SubjectID(s Subject) string {
	return s.ID
}

func SubjectOrder(s Subject) int {
	return s.OrderIndex
}
