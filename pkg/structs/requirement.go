package structs

type Requirement struct {
	ID                       string  `json:"id"`
	Subject                  Subject `json:"subject"`
	Aspects                  Aspects `json:"aspects"`
	Number                   string  `json:"requirement_number"`
	Name                     string  `json:"requirement_name"`
	MandatoryDescription     string  `json:"mandatory_description"`
	ComplementaryDescription string  `json:"complementary_description"`
	MandatorySentences       string  `json:"mandatory_sentences"`
	ComplementarySentences   string  `json:"complementary_sentences"`
	MandatoryKeywords        string  `json:"mandatory_keywords"`
	ComplementaryKeywords    string  `json:"complementary_keywords"`
	Condition                string  `json:"condition"`
	Evidence                 string  `json:"evidence"`
	Periodicity              string  `json:"periodicity"`
	Type                     string  `json:"requirement_type"`
}

type Requirements []Requirement

type RequirementCreateOptions struct {
	ComplementaryDescription *string `flag:"complementary-description" param:"complementaryDescription" desc:"complementary description"`
	ComplementaryKeywords    *string `flag:"complementary-keywords" param:"complementaryKeywords" desc:"complementary keywords"`
	ComplementarySentences   *string `flag:"complementary-sentences" param:"complementarySentences" desc:"complementary sentences"`
	Condition                *string `flag:"condition" param:"condition" desc:"Crítica, Operativa, Recomendación or Pendiente"`
	Evidence                 *string `flag:"evidence" param:"evidence" desc:"Trámite, Registro, Específica or Documento"`
	MandatoryDescription     *string `flag:"mandatory-description" param:"mandatoryDescription" desc:"mandatory description"`
	MandatoryKeywords        *string `flag:"mandatory-keywords" param:"mandatoryKeywords" desc:"mandatory keywords"`
	MandatorySentences       *string `flag:"mandatory-sentences" param:"mandatorySentences" desc:"mandatory sentences"`
	Periodicity              *string `flag:"periodicity" param:"periodicity" desc:"Anual, 2 años, Por evento or Única vez"`
	Subject                  *string `flag:"subject,s" param:"subjectId" desc:"subject id"`
	Type                     *string `flag:"type,t" param:"requirementType" desc:"requirement type"`

	Aspects []string
}

type RequirementListOptions struct {
	Aspects     *string `flag:"aspects" query:"aspectIds" desc:"filter by comma separated aspect ids"`
	Condition   *string `flag:"condition" query:"condition" desc:"filter by condition"`
	Description *string `flag:"description,d" query:"description" desc:"filter by mandatory or complementary description"`
	Evidence    *string `flag:"evidence" query:"evidence" desc:"filter by evidence"`
	Keyword     *string `flag:"keyword,k" query:"keyword" desc:"filter by keyword"`
	Name        *string `flag:"name,n" query:"requirementName" desc:"filter by name"`
	Number      *string `flag:"number" query:"requirementNumber" desc:"filter by number"`
	Periodicity *string `flag:"periodicity" query:"periodicity" desc:"filter by periodicity"`
	Subject     *string `flag:"subject,s" query:"subjectId" desc:"filter by subject id"`
	Type        *string `flag:"type,t" query:"requirementType" desc:"filter by type"`
}

type RequirementUpdateOptions struct {
	ComplementaryDescription *string `flag:"complementary-description" param:"complementaryDescription" desc:"complementary description"`
	ComplementaryKeywords    *string `flag:"complementary-keywords" param:"complementaryKeywords" desc:"complementary keywords"`
	ComplementarySentences   *string `flag:"complementary-sentences" param:"complementarySentences" desc:"complementary sentences"`
	Condition                *string `flag:"condition" param:"condition" desc:"Crítica, Operativa, Recomendación or Pendiente"`
	Evidence                 *string `flag:"evidence" param:"evidence" desc:"Trámite, Registro, Específica or Documento"`
	MandatoryDescription     *string `flag:"mandatory-description" param:"mandatoryDescription" desc:"mandatory description"`
	MandatoryKeywords        *string `flag:"mandatory-keywords" param:"mandatoryKeywords" desc:"mandatory keywords"`
	MandatorySentences       *string `flag:"mandatory-sentences" param:"mandatorySentences" desc:"mandatory sentences"`
	Name                     *string `flag:"name,n" param:"requirementName" desc:"new name"`
	Number                   *string `flag:"number" param:"requirementNumber" desc:"new number"`
	Periodicity              *string `flag:"periodicity" param:"periodicity" desc:"Anual, 2 años, Por evento or Única vez"`
	Subject                  *string `flag:"subject,s" param:"subjectId" desc:"subject id"`
	Type                     *string `flag:"type,t" param:"requirementType" desc:"requirement type"`

	Aspects []string
}
