package cli_test

import (
	"time"

	"github.com/lexcomply/admin/pkg/structs"
)

var fxCreated = time.Now().UTC().Add(-49 * time.Hour)

var fxSubject = structs.Subject{
	ID:           "sub1",
	Name:         "Ambiental",
	Abbreviation: "AMB",
	OrderIndex:   1,
}

var fxSubject2 = structs.Subject{
	ID:           "sub2",
	Name:         "Seguridad",
	Abbreviation: "SEG",
	OrderIndex:   2,
}

var fxAspect = structs.Aspect{
	ID:           "asp1",
	SubjectID:    "sub1",
	SubjectName:  "Ambiental",
	Name:         "Agua",
	Abbreviation: "AG",
	OrderIndex:   1,
}

var fxAspect2 = structs.Aspect{
	ID:           "asp2",
	SubjectID:    "sub1",
	SubjectName:  "Ambiental",
	Name:         "Aire",
	Abbreviation: "AI",
	OrderIndex:   2,
}

var fxLegalBasis = structs.LegalBasis{
	ID:             "lb1",
	Name:           "Ley General",
	Abbreviation:   "LGEEPA",
	Classification: "Ley",
	Jurisdiction:   "Federal",
	LastReform:     "2024-01-15",
	Subject:        fxSubject,
	Aspects:        structs.Aspects{fxAspect, fxAspect2},
}

var fxLegalBasisLocal = structs.LegalBasis{
	ID:             "lb2",
	Name:           "Reglamento Municipal",
	Abbreviation:   "RM",
	Classification: "Reglamento",
	Jurisdiction:   "Local",
	State:          "Jalisco",
	Municipality:   "Zapopan",
	LastReform:     "2023-06-01",
	URL:            "https://files.example.org/rm.pdf",
	Subject:        fxSubject,
	Aspects:        structs.Aspects{fxAspect},
}

var fxRequirement = structs.Requirement{
	ID:                   "req1",
	Subject:              fxSubject,
	Aspects:              structs.Aspects{fxAspect},
	Number:               "R-001",
	Name:                 "Licencia",
	MandatoryDescription: "Obtener licencia",
	Condition:            "Operativa",
	Evidence:             "Registro",
	Periodicity:          "Anual",
	Type:                 "Federal",
}

var fxRequirement2 = structs.Requirement{
	ID:          "req2",
	Subject:     fxSubject2,
	Number:      "R-002",
	Name:        "Bitacora",
	Condition:   "Pendiente",
	Evidence:    "Documento",
	Periodicity: "Unica vez",
}

var fxReqIdentification = structs.ReqIdentification{
	ID:                "ri1",
	Name:              "Planta Norte",
	Description:       "Revision anual",
	User:              structs.User{ID: "u1", Name: "Ana"},
	Status:            structs.ReqIdentificationCompleted,
	CreatedAt:         fxCreated,
	Jurisdiction:      "Federal",
	Subject:           fxSubject,
	LegalBases:        structs.LegalBases{fxLegalBasis},
	IntelligenceLevel: "High",
}

var fxJobActive = structs.Job{
	ID:       "job1",
	State:    structs.JobActive,
	Progress: 40,
}

var fxJobCompleted = structs.Job{
	ID:       "job1",
	State:    structs.JobCompleted,
	Progress: 100,
}

var fxJobFailed = structs.Job{
	ID:           "job1",
	State:        structs.JobFailed,
	Progress:     60,
	FailedReason: "document unreadable",
}
