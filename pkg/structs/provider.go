package structs

import "context"

type Provider interface {
	AspectCreate(subject, name string, opts AspectCreateOptions) (*Aspect, error)
	AspectDelete(subject, id string) error
	AspectDeleteBatch(subject string, ids []string) error
	AspectGet(subject, id string) (*Aspect, error)
	AspectList(subject string, opts AspectListOptions) (Aspects, error)
	AspectUpdate(subject, id string, opts AspectUpdateOptions) (*Aspect, error)

	Auth() error

	JobGet(id string) (*Job, error)

	LegalBasisCreate(name string, opts LegalBasisCreateOptions) (*LegalBasisCreated, error)
	LegalBasisDelete(id string) error
	LegalBasisDeleteBatch(ids []string) error
	LegalBasisGet(id string) (*LegalBasis, error)
	LegalBasisList(opts LegalBasisListOptions) (LegalBases, error)
	LegalBasisUpdate(id string, opts LegalBasisUpdateOptions) (*LegalBasisCreated, error)

	ReqIdentificationCreate(name string, opts ReqIdentificationCreateOptions) (*ReqIdentificationCreated, error)
	ReqIdentificationDelete(id string) error
	ReqIdentificationDeleteBatch(ids []string) error
	ReqIdentificationGet(id string) (*ReqIdentification, error)
	ReqIdentificationList(opts ReqIdentificationListOptions) (ReqIdentifications, error)
	ReqIdentificationUpdate(id string, opts ReqIdentificationUpdateOptions) (*ReqIdentification, error)

	RequirementCreate(number, name string, opts RequirementCreateOptions) (*Requirement, error)
	RequirementDelete(id string) error
	RequirementDeleteBatch(ids []string) error
	RequirementGet(id string) (*Requirement, error)
	RequirementList(opts RequirementListOptions) (Requirements, error)
	RequirementUpdate(id string, opts RequirementUpdateOptions) (*Requirement, error)

	SubjectCreate(name string, opts SubjectCreateOptions) (*Subject, error)
	SubjectDelete(id string) error
	SubjectDeleteBatch(ids []string) error
	SubjectGet(id string) (*Subject, error)
	SubjectList(opts SubjectListOptions) (Subjects, error)
	SubjectUpdate(id string, opts SubjectUpdateOptions) (*Subject, error)

	WithContext(ctx context.Context) Provider
}
