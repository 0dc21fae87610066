package structs

const DateFormat = "2006-01-02"

type LegalBasis struct {
	ID             string  `json:"id"`
	Name           string  `json:"legal_name"`
	Abbreviation   string  `json:"abbreviation"`
	Classification string  `json:"classification"`
	Jurisdiction   string  `json:"jurisdiction"`
	State          string  `json:"state,omitempty"`
	Municipality   string  `json:"municipality,omitempty"`
	LastReform     string  `json:"last_reform"`
	URL            string  `json:"url,omitempty"`
	Subject        Subject `json:"subject"`
	Aspects        Aspects `json:"aspects"`
}

type LegalBases []LegalBasis

// LegalBasisCreated is returned by a create; JobID is set when article
// extraction was requested along with the document.
type LegalBasisCreated struct {
	LegalBasis LegalBasis `json:"legalBasis"`
	JobID      string     `json:"jobId,omitempty"`
}

type LegalBasisCreateOptions struct {
	Abbreviation    *string `flag:"abbreviation,b" param:"abbreviation" desc:"short code"`
	Classification  *string `flag:"classification,c" param:"classification" desc:"Ley, Reglamento, Norma, ..."`
	ExtractArticles *bool   `flag:"extract-articles" param:"extractArticles" desc:"extract articles from the document"`
	Jurisdiction    *string `flag:"jurisdiction,j" param:"jurisdiction" desc:"Federal, Estatal or Local"`
	LastReform      *string `flag:"last-reform" param:"lastReform" desc:"date of last reform (YYYY-MM-DD)"`
	Municipality    *string `flag:"municipality" param:"municipality" desc:"municipality for local jurisdiction"`
	State           *string `flag:"state" param:"state" desc:"state for estatal and local jurisdiction"`
	Subject         *string `flag:"subject,s" param:"subjectId" desc:"subject id"`

	Aspects  []string
	Document []byte
}

type LegalBasisListOptions struct {
	Abbreviation   *string `flag:"abbreviation,b" query:"abbreviation" desc:"filter by abbreviation"`
	Aspects        *string `flag:"aspects" query:"aspectIds" desc:"filter by comma separated aspect ids"`
	Classification *string `flag:"classification,c" query:"classification" desc:"filter by classification"`
	From           *string `flag:"from" query:"from" desc:"last reform on or after (YYYY-MM-DD)"`
	Jurisdiction   *string `flag:"jurisdiction,j" query:"jurisdiction" desc:"filter by jurisdiction"`
	Municipality   *string `flag:"municipality" query:"municipality" desc:"filter by municipality"`
	Name           *string `flag:"name,n" query:"legalName" desc:"filter by name"`
	State          *string `flag:"state" query:"state" desc:"filter by state"`
	Subject        *string `flag:"subject,s" query:"subjectId" desc:"filter by subject id"`
	To             *string `flag:"to" query:"to" desc:"last reform on or before (YYYY-MM-DD)"`
}

type LegalBasisUpdateOptions struct {
	Abbreviation    *string `flag:"abbreviation,b" param:"abbreviation" desc:"short code"`
	Classification  *string `flag:"classification,c" param:"classification" desc:"Ley, Reglamento, Norma, ..."`
	ExtractArticles *bool   `flag:"extract-articles" param:"extractArticles" desc:"extract articles from the document"`
	Jurisdiction    *string `flag:"jurisdiction,j" param:"jurisdiction" desc:"Federal, Estatal or Local"`
	LastReform      *string `flag:"last-reform" param:"lastReform" desc:"date of last reform (YYYY-MM-DD)"`
	Municipality    *string `flag:"municipality" param:"municipality" desc:"municipality for local jurisdiction"`
	Name            *string `flag:"name,n" param:"legalName" desc:"new name"`
	RemoveDocument  *bool   `flag:"remove-document" param:"removeDocument" desc:"drop the stored document"`
	State           *string `flag:"state" param:"state" desc:"state for estatal and local jurisdiction"`
	Subject         *string `flag:"subject,s" param:"subjectId" desc:"subject id"`

	Aspects  []string
	Document []byte
}
