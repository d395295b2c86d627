package v1

import (
	"github.com/openpoen/backend/internal/consent"
	"github.com/openpoen/backend/internal/jobs"
	"github.com/openpoen/backend/internal/uuid"
)

// Controller bundles what the handlers need besides the database.
type Controller struct {
	Consent *consent.Orchestrator
	Runner  *jobs.Runner
}

type URIID struct {
	ID uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type URIFunderSubproject struct {
	ID           uuid.UUID `uri:"id" binding:"required" format:"UUID"`           // ID of the funder
	SubprojectID uuid.UUID `uri:"subprojectId" binding:"required" format:"UUID"` // ID of the subproject
}

type URICardNumber struct {
	CardNumber string `uri:"cardNumber" binding:"required" example:"6731924123456789012"` // Number of the debit card
}

type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}
