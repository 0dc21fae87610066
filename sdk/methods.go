package sdk

import (
	"fmt"

	"github.com/convox/stdsdk"
	"github.com/lexcomply/admin/pkg/structs"
)

func (c *Client) AspectCreate(subject, name string, opts structs.AspectCreateOptions) (*structs.Aspect, error) {
	var err error

	ro, err := stdsdk.MarshalOptions(opts)
	if err != nil {
		return nil, err
	}

	ro.Params["aspectName"] = name

	var v *structs.Aspect

	err = c.Post(fmt.Sprintf("/subjects/%s/aspects", subject), ro, &v)

	return v, err
}

func (c *Client) AspectDelete(subject, id string) error {
	var err error

	ro := stdsdk.RequestOptions{Headers: stdsdk.Headers{}, Params: stdsdk.Params{}}

	err = c.Delete(fmt.Sprintf("/subjects/%s/aspects/%s", subject, id), ro, nil)

	return err
}

func (c *Client) AspectDeleteBatch(subject string, ids []string) error {
	var err error

	ro, err := batch(ids)
	if err != nil {
		return err
	}

	err = c.Post(fmt.Sprintf("/subjects/%s/aspects/delete/batch", subject), ro, nil)

	return err
}

func (c *Client) AspectGet(subject, id string) (*structs.Aspect, error) {
	var err error

	ro := stdsdk.RequestOptions{Headers: stdsdk.Headers{}, Params: stdsdk.Params{}}

	var v *structs.Aspect

	err = c.Get(fmt.Sprintf("/subjects/%s/aspects/%s", subject, id), ro, &v)

	return v, err
}

func (c *Client) AspectList(subject string, opts structs.AspectListOptions) (structs.Aspects, error) {
	var err error

	ro, err := stdsdk.MarshalOptions(opts)
	if err != nil {
		return nil, err
	}

	var v structs.Aspects

	err = c.Get(fmt.Sprintf("/subjects/%s/aspects", subject), ro, &v)

	return v, err
}

func (c *Client) AspectUpdate(subject, id string, opts structs.AspectUpdateOptions) (*structs.Aspect, error) {
	var err error

	ro, err := stdsdk.MarshalOptions(opts)
	if err != nil {
		return nil, err
	}

	var v *structs.Aspect

	err = c.Put(fmt.Sprintf("/subjects/%s/aspects/%s", subject, id), ro, &v)

	return v, err
}

func (c *Client) Auth() error {
	return c.Get("/auth", stdsdk.RequestOptions{}, nil)
}

func (c *Client) JobGet(id string) (*structs.Job, error) {
	var err error

	ro := stdsdk.RequestOptions{Headers: stdsdk.Headers{}, Params: stdsdk.Params{}}

	var v *structs.Job

	err = c.Get(fmt.Sprintf("/jobs/%s", id), ro, &v)

	return v, err
}

func (c *Client) LegalBasisCreate(name string, opts structs.LegalBasisCreateOptions) (*structs.LegalBasisCreated, error) {
	var err error

	ro, err := stdsdk.MarshalOptions(opts)
	if err != nil {
		return nil, err
	}

	ro.Params["legalName"] = name

	if err := setList(&ro, "aspectsIds", opts.Aspects); err != nil {
		return nil, err
	}

	setDocument(&ro, opts.Document)

	var v *structs.LegalBasisCreated

	err = c.Post("/legalBasis", ro, &v)

	return v, err
}

func (c *Client) LegalBasisDelete(id string) error {
	var err error

	ro := stdsdk.RequestOptions{Headers: stdsdk.Headers{}, Params: stdsdk.Params{}}

	err = c.Delete(fmt.Sprintf("/legalBasis/%s", id), ro, nil)

	return err
}

func (c *Client) LegalBasisDeleteBatch(ids []string) error {
	var err error

	ro, err := batch(ids)
	if err != nil {
		return err
	}

	err = c.Post("/legalBasis/delete/batch", ro, nil)

	return err
}

func (c *Client) LegalBasisGet(id string) (*structs.LegalBasis, error) {
	var err error

	ro := stdsdk.RequestOptions{Headers: stdsdk.Headers{}, Params: stdsdk.Params{}}

	var v *structs.LegalBasis

	err = c.Get(fmt.Sprintf("/legalBasis/%s", id), ro, &v)

	return v, err
}

func (c *Client) LegalBasisList(opts structs.LegalBasisListOptions) (structs.LegalBases, error) {
	var err error

	ro, err := stdsdk.MarshalOptions(opts)
	if err != nil {
		return nil, err
	}

	var v structs.LegalBases

	err = c.Get("/legalBasis", ro, &v)

	return v, err
}

func (c *Client) LegalBasisUpdate(id string, opts structs.LegalBasisUpdateOptions) (*structs.LegalBasisCreated, error) {
	var err error

	ro, err := stdsdk.MarshalOptions(opts)
	if err != nil {
		return nil, err
	}

	if err := setList(&ro, "aspectsIds", opts.Aspects); err != nil {
		return nil, err
	}

	setDocument(&ro, opts.Document)

	var v *structs.LegalBasisCreated

	err = c.Put(fmt.Sprintf("/legalBasis/%s", id), ro, &v)

	return v, err
}

func (c *Client) ReqIdentificationCreate(name string, opts structs.ReqIdentificationCreateOptions) (*structs.ReqIdentificationCreated, error) {
	var err error

	ro, err := stdsdk.MarshalOptions(opts)
	if err != nil {
		return nil, err
	}

	ro.Params["reqIdentificationName"] = name

	if err := setList(&ro, "legalBasisIds", opts.LegalBases); err != nil {
		return nil, err
	}

	var v *structs.ReqIdentificationCreated

	err = c.Post("/req-identification", ro, &v)

	return v, err
}

func (c *Client) ReqIdentificationDelete(id string) error {
	var err error

	ro := stdsdk.RequestOptions{Headers: stdsdk.Headers{}, Params: stdsdk.Params{}}

	err = c.Delete(fmt.Sprintf("/req-identification/%s", id), ro, nil)

	return err
}

func (c *Client) ReqIdentificationDeleteBatch(ids []string) error {
	var err error

	ro, err := batch(ids)
	if err != nil {
		return err
	}

	err = c.Post("/req-identification/delete/batch", ro, nil)

	return err
}

func (c *Client) ReqIdentificationGet(id string) (*structs.ReqIdentification, error) {
	var err error

	ro := stdsdk.RequestOptions{Headers: stdsdk.Headers{}, Params: stdsdk.Params{}}

	var v *structs.ReqIdentification

	err = c.Get(fmt.Sprintf("/req-identification/%s", id), ro, &v)

	return v, err
}

func (c *Client) ReqIdentificationList(opts structs.ReqIdentificationListOptions) (structs.ReqIdentifications, error) {
	var err error

	ro, err := stdsdk.MarshalOptions(opts)
	if err != nil {
		return nil, err
	}

	var v structs.ReqIdentifications

	err = c.Get("/req-identification", ro, &v)

	return v, err
}

func (c *Client) ReqIdentificationUpdate(id string, opts structs.ReqIdentificationUpdateOptions) (*structs.ReqIdentification, error) {
	var err error

	ro, err := stdsdk.MarshalOptions(opts)
	if err != nil {
		return nil, err
	}

	var v *structs.ReqIdentification

	err = c.Put(fmt.Sprintf("/req-identification/%s", id), ro, &v)

	return v, err
}

func (c *Client) RequirementCreate(number, name string, opts structs.RequirementCreateOptions) (*structs.Requirement, error) {
	var err error

	ro, err := stdsdk.MarshalOptions(opts)
	if err != nil {
		return nil, err
	}

	ro.Params["requirementNumber"] = number
	ro.Params["requirementName"] = name

	if err := setList(&ro, "aspectsIds", opts.Aspects); err != nil {
		return nil, err
	}

	var v *structs.Requirement

	err = c.Post("/requirements", ro, &v)

	return v, err
}

func (c *Client) RequirementDelete(id string) error {
	var err error

	ro := stdsdk.RequestOptions{Headers: stdsdk.Headers{}, Params: stdsdk.Params{}}

	err = c.Delete(fmt.Sprintf("/requirements/%s", id), ro, nil)

	return err
}

func (c *Client) RequirementDeleteBatch(ids []string) error {
	var err error

	ro, err := batch(ids)
	if err != nil {
		return err
	}

	err = c.Post("/requirements/delete/batch", ro, nil)

	return err
}

func (c *Client) RequirementGet(id string) (*structs.Requirement, error) {
	var err error

	ro := stdsdk.RequestOptions{Headers: stdsdk.Headers{}, Params: stdsdk.Params{}}

	var v *structs.Requirement

	err = c.Get(fmt.Sprintf("/requirements/%s", id), ro, &v)

	return v, err
}

func (c *Client) RequirementList(opts structs.RequirementListOptions) (structs.Requirements, error) {
	var err error

	ro, err := stdsdk.MarshalOptions(opts)
	if err != nil {
		return nil, err
	}

	var v structs.Requirements

	err = c.Get("/requirements", ro, &v)

	return v, err
}

func (c *Client) RequirementUpdate(id string, opts structs.RequirementUpdateOptions) (*structs.Requirement, error) {
	var err error

	ro, err := stdsdk.MarshalOptions(opts)
	if err != nil {
		return nil, err
	}

	if err := setList(&ro, "aspectsIds", opts.Aspects); err != nil {
		return nil, err
	}

	var v *structs.Requirement

	err = c.Put(fmt.Sprintf("/requirements/%s", id), ro, &v)

	return v, err
}

func (c *Client) SubjectCreate(name string, opts structs.SubjectCreateOptions) (*structs.Subject, error) {
	var err error

	ro, err := stdsdk.MarshalOptions(opts)
	if err != nil {
		return nil, err
	}

	ro.Params["subjectName"] = name

	var v *structs.Subject

	err = c.Post("/subjects", ro, &v)

	return v, err
}

func (c *Client) SubjectDelete(id string) error {
	var err error

	ro := stdsdk.RequestOptions{Headers: stdsdk.Headers{}, Params: stdsdk.Params{}}

	err = c.Delete(fmt.Sprintf("/subjects/%s", id), ro, nil)

	return err
}

func (c *Client) SubjectDeleteBatch(ids []string) error {
	var err error

	ro, err := batch(ids)
	if err != nil {
		return err
	}

	err = c.Post("/subjects/delete/batch", ro, nil)

	return err
}

func (c *Client) SubjectGet(id string) (*structs.Subject, error) {
	var err error

	ro := stdsdk.RequestOptions{Headers: stdsdk.Headers{}, Params: stdsdk.Params{}}

	var v *structs.Subject

	err = c.Get(fmt.Sprintf("/subjects/%s", id), ro, &v)

	return v, err
}

func (c *Client) SubjectList(opts structs.SubjectListOptions) (structs.Subjects, error) {
	var err error

	ro, err := stdsdk.MarshalOptions(opts)
	if err != nil {
		return nil, err
	}

	var v structs.Subjects

	err = c.Get("/subjects", ro, &v)

	return v, err
}

func (c *Client) SubjectUpdate(id string, opts structs.SubjectUpdateOptions) (*structs.Subject, error) {
	var err error

	ro, err := stdsdk.MarshalOptions(opts)
	if err != nil {
		return nil, err
	}

	var v *structs.Subject

	err = c.Put(fmt.Sprintf("/subjects/%s", id), ro, &v)

	return v, err
}
