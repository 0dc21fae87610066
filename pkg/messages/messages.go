// Package messages turns sdk errors into a title and message for people.
//
// Lookups go from most to least specific: a rule for the resource, status
// code and server message; a rule for the resource and status code; then
// the generic text for the error's Kind.
package messages

import (
	"strings"

	"github.com/lexcomply/admin/pkg/httperr"
)

type Resource string

const (
	Aspect            Resource = "aspect"
	Job               Resource = "job"
	LegalBasis        Resource = "legal-basis"
	ReqIdentification Resource = "req-identification"
	Requirement       Resource = "requirement"
	Session           Resource = "session"
	Subject           Resource = "subject"
)

type Message struct {
	Kind    Kind
	Title   string
	Message string
}

func (m Message) Error() string {
	return m.Title + ": " + m.Message
}

type rule struct {
	resource Resource
	code     int
	match    string
	title    string
	message  string
}

var rules = []rule{
	{Subject, 400, "missing required fields", "Invalid subject", "The subject name is required."},
	{Subject, 400, "", "Invalid subject", "The server rejected the subject data."},
	{Subject, 404, "", "Subject not found", "The subject does not exist or was already deleted."},
	{Subject, 409, "subject already exists", "Duplicate subject", "A subject with this name already exists."},
	{Subject, 409, "abbreviation already exists", "Duplicate abbreviation", "Another subject already uses this abbreviation."},
	{Subject, 409, "subject is associated with legal bases", "Subject in use", "The subject is linked to legal bases and cannot be deleted."},
	{Subject, 409, "subject is associated with requirements", "Subject in use", "The subject is linked to requirements and cannot be deleted."},
	{Subject, 409, "", "Subject conflict", "The subject conflicts with existing records."},

	{Aspect, 400, "missing required fields", "Invalid aspect", "The aspect name is required."},
	{Aspect, 400, "", "Invalid aspect", "The server rejected the aspect data."},
	{Aspect, 404, "subject not found", "Subject not found", "The subject for this aspect does not exist."},
	{Aspect, 404, "", "Aspect not found", "The aspect does not exist or was already deleted."},
	{Aspect, 409, "aspect already exists", "Duplicate aspect", "An aspect with this name already exists for the subject."},
	{Aspect, 409, "aspect is associated with legal bases", "Aspect in use", "The aspect is linked to legal bases and cannot be deleted."},
	{Aspect, 409, "aspect is associated with requirements", "Aspect in use", "The aspect is linked to requirements and cannot be deleted."},
	{Aspect, 409, "", "Aspect conflict", "The aspect conflicts with existing records."},

	{LegalBasis, 400, "invalid jurisdiction", "Invalid jurisdiction", "Jurisdiction must be Federal, Estatal or Local with the matching state and municipality."},
	{LegalBasis, 400, "invalid document", "Invalid document", "The document must be a PDF or image file."},
	{LegalBasis, 400, "a document is required to extract articles", "Document required", "Attach a document to extract its articles."},
	{LegalBasis, 400, "", "Invalid legal basis", "The server rejected the legal basis data."},
	{LegalBasis, 404, "subject not found", "Subject not found", "The selected subject does not exist."},
	{LegalBasis, 404, "aspects not found", "Aspects not found", "One or more selected aspects do not exist."},
	{LegalBasis, 404, "", "Legal basis not found", "The legal basis does not exist or was already deleted."},
	{LegalBasis, 409, "legalbasis already exists", "Duplicate legal basis", "A legal basis with this name already exists."},
	{LegalBasis, 409, "abbreviation already exists", "Duplicate abbreviation", "Another legal basis already uses this abbreviation."},
	{LegalBasis, 409, "legal basis is associated with requirement identifications", "Legal basis in use", "The legal basis is part of a requirement identification and cannot be deleted."},
	{LegalBasis, 409, "articles are being extracted", "Extraction in progress", "Wait for the article extraction to finish before changing this legal basis."},
	{LegalBasis, 409, "", "Legal basis conflict", "The legal basis conflicts with existing records."},
	{LegalBasis, 413, "", "Document too large", "The document exceeds the upload size limit."},

	{Requirement, 400, "", "Invalid requirement", "The server rejected the requirement data."},
	{Requirement, 404, "subject not found", "Subject not found", "The selected subject does not exist."},
	{Requirement, 404, "aspects not found", "Aspects not found", "One or more selected aspects do not exist."},
	{Requirement, 404, "", "Requirement not found", "The requirement does not exist or was already deleted."},
	{Requirement, 409, "requirement number already exists", "Duplicate number", "Another requirement already uses this number."},
	{Requirement, 409, "requirement name already exists", "Duplicate requirement", "A requirement with this name already exists."},
	{Requirement, 409, "", "Requirement conflict", "The requirement conflicts with existing records."},

	{ReqIdentification, 400, "legalbases must have the same jurisdiction", "Mixed jurisdictions", "All selected legal bases must share the same jurisdiction."},
	{ReqIdentification, 400, "legalbases must belong to the same subject", "Mixed subjects", "All selected legal bases must belong to the selected subject."},
	{ReqIdentification, 400, "", "Invalid identification", "The server rejected the identification data."},
	{ReqIdentification, 404, "legalbases not found", "Legal bases not found", "One or more selected legal bases do not exist."},
	{ReqIdentification, 404, "subject not found", "Subject not found", "The selected subject does not exist."},
	{ReqIdentification, 404, "no requirements found", "No requirements", "No requirements match the selected subject and aspects."},
	{ReqIdentification, 404, "", "Identification not found", "The requirement identification does not exist or was already deleted."},
	{ReqIdentification, 409, "requirement identification already exists", "Duplicate identification", "A requirement identification with this name already exists."},
	{ReqIdentification, 409, "job is still running", "Identification in progress", "The identification cannot change while its analysis job is running."},
	{ReqIdentification, 409, "", "Identification conflict", "The identification conflicts with existing records."},

	{Job, 404, "", "Job not found", "The job does not exist or its results have expired."},
	{Job, 500, "", "Job status unavailable", "The server could not report the job status. Try again shortly."},

	{Session, 401, "", "Invalid credentials", "The token was rejected. Log in with a valid token."},
}

var generic = map[Kind]Message{
	Unknown:      {Kind: Unknown, Title: "Unexpected error", Message: "Something went wrong."},
	Network:      {Kind: Network, Title: "Connection error", Message: "Could not reach the server. Check the connection and try again."},
	Canceled:     {Kind: Canceled, Title: "Canceled", Message: "The operation was canceled."},
	TokenExpired: {Kind: TokenExpired, Title: "Session expired", Message: "The session token has expired. Log in again."},
	Validation:   {Kind: Validation, Title: "Invalid request", Message: "The server rejected the request data."},
	Unauthorized: {Kind: Unauthorized, Title: "Unauthorized", Message: "The session is not valid. Log in again."},
	Forbidden:    {Kind: Forbidden, Title: "Forbidden", Message: "You do not have permission to perform this action."},
	NotFound:     {Kind: NotFound, Title: "Not found", Message: "The requested record does not exist."},
	Conflict:     {Kind: Conflict, Title: "Conflict", Message: "The request conflicts with existing records."},
	TooLarge:     {Kind: TooLarge, Title: "Too large", Message: "The upload exceeds the size limit."},
	Server:       {Kind: Server, Title: "Server error", Message: "The server failed to process the request. Try again later."},
}

// For describes err in terms of the resource being worked on.
func For(resource Resource, err error) Message {
	kind := Classify(err)

	code, server := 0, ""

	if he, ok := httperr.As(err); ok {
		code = he.Code()
		server = normalize(he.Message())
	}

	if code > 0 {
		var fallback *rule

		for i, r := range rules {
			if r.resource != resource || r.code != code {
				continue
			}

			if r.match == "" {
				if fallback == nil {
					fallback = &rules[i]
				}
				continue
			}

			if r.match == server {
				return Message{Kind: kind, Title: r.title, Message: r.message}
			}
		}

		if fallback != nil {
			return Message{Kind: kind, Title: fallback.title, Message: fallback.message}
		}
	}

	m := generic[kind]

	switch kind {
	case Unknown:
		if err != nil {
			m.Message = err.Error()
		}
	case Validation, Conflict:
		if he, ok := httperr.As(err); ok && he.Message() != "" {
			m.Message = he.Message()
		}
	}

	return m
}

func normalize(s string) string {
	return strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), ".")
}
