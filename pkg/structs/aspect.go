package structs

type Aspect struct {
	ID           string `json:"id"`
	SubjectID    string `json:"subject_id"`
	SubjectName  string `json:"subject_name,omitempty"`
	Name         string `json:"aspect_name"`
	Abbreviation string `json:"abbreviation"`
	OrderIndex   int    `json:"order_index"`
}

type Aspects []Aspect

type AspectCreateOptions struct {
	Abbreviation *string `flag:"abbreviation,b" param:"abbreviation" desc:"short code shown in tables"`
	OrderIndex   *int    `flag:"order,o" param:"orderIndex" desc:"display position"`
}

type AspectListOptions struct {
	Abbreviation *string `flag:"abbreviation,b" query:"abbreviation" desc:"filter by abbreviation"`
	Name         *string `flag:"name,n" query:"aspectName" desc:"filter by name"`
}

type AspectUpdateOptions struct {
	Abbreviation *string `flag:"abbreviation,b" param:"abbreviation" desc:"short code shown in tables"`
	Name         *string `flag:"name,n" param:"aspectName" desc:"new name"`
	OrderIndex   *int    `flag:"order,o" param:"orderIndex" desc:"display position"`
}

func AspectID(a Aspect) string {
	return a.ID
}

func AspectOrder(a Aspect) int {
	return a.OrderIndex
}

func (as Aspects) Names() []string {
	names := make([]string, len(as))

	for i, a := range as {
		names[i] = a.Name
	}

	return names
}
