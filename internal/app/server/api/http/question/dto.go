package question

import "questiondesk/internal/domain/question"

type listInput struct {
	AssignedTo string `query:"assignedTo" example:"alice@example.com" doc:"Only records assigned to this user"`
}

type listOutput struct {
	Body listResponse
}

type listResponse struct {
	Records      []question.Record `json:"records"`
	TotalRecords int               `json:"totalRecords"`
}

func newListOutput(records []question.Record) *listOutput {
	if records == nil {
		records = []question.Record{}
	}
	return &listOutput{
		Body: listResponse{
			Records:      records,
			TotalRecords: len(records),
		},
	}
}

type createInput struct {
	Body question.Fields
}

type updateInput struct {
	ID   string `path:"id" example:"recA1b2C3d4E5f6G7" doc:"Backend record ID"`
	Body question.Fields
}

type deleteInput struct {
	ID string `path:"id" example:"recA1b2C3d4E5f6G7" doc:"Backend record ID"`
}

type recordOutput struct {
	Body question.Record
}

type bulkReassignInput struct {
	Body bulkReassignRequest
}

// Fields are optional in the schema so that missing values reach the
// service and are reported with the usual 400 body.
type bulkReassignRequest struct {
	_          struct{} `json:"-" additionalProperties:"true"`
	IDs        []string `json:"ids,omitempty" doc:"Backend record IDs to reassign"`
	AssignedTo string   `json:"assigned_to,omitempty" doc:"New assignee"`
	UpdatedBy  string   `json:"updated_by,omitempty" doc:"User performing the change"`
}

type bulkReassignOutput struct {
	Body bulkReassignResponse
}

type bulkReassignResponse struct {
	Message        string            `json:"message"`
	UpdatedRecords []question.Record `json:"updatedRecords"`
}

type searchInput struct {
	SearchTerm string `query:"searchTerm" example:"encryption at rest" doc:"Text matched approximately against question and answer"`
}

type searchPropertiesInput struct {
	PropertyKey   string `query:"propertyKey" example:"framework" doc:"Property name"`
	PropertyValue string `query:"propertyValue" example:"SOC2" doc:"Property value"`
}
