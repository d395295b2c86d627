package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/openpoen/backend/internal/models"
	"gorm.io/gorm"
)

// FunderEditable represents all user configurable parameters
type FunderEditable struct {
	ProjectID        uuid.UUID `json:"projectId" example:"1e777d24-3f5b-4c43-8000-04f65f895578"` // ID of the project the funder awards a budget to
	Name             string    `json:"name" example:"Gemeente Amsterdam"`                        // Name of the funder
	SubsidyReference string    `json:"subsidyReference" example:"SUB-2023-0042"`                 // Reference of the subsidy
	URL              string    `json:"url" example:"https://www.amsterdam.nl"`                   // Website of the funder
	AwardedBudget    int64     `json:"awardedBudget" example:"15000"`                            // Awarded budget in whole euros
}

func (editable FunderEditable) model() models.Funder {
	return models.Funder{
		ProjectID:        editable.ProjectID,
		Name:             editable.Name,
		SubsidyReference: editable.SubsidyReference,
		URL:              editable.URL,
		AwardedBudget:    editable.AwardedBudget,
	}
}

type FunderLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/funders/5b0c2e3f-8d7a-4f6e-9a1b-2c3d4e5f6a7b"`            // The funder itself
	Justify string `json:"justify" example:"https://example.com/api/v1/funders/5b0c2e3f-8d7a-4f6e-9a1b-2c3d4e5f6a7b/justify"` // Marks the funder as justified
	Report  string `json:"report" example:"https://example.com/api/v1/funders/5b0c2e3f-8d7a-4f6e-9a1b-2c3d4e5f6a7b/report"`   // The justification report
}

type Funder struct {
	models.DefaultModel
	FunderEditable
	Justified bool        `json:"justified" example:"false"` // Has the funder been justified?
	Links     FunderLinks `json:"links"`

	// These fields are computed
	Justifiable   bool        `json:"justifiable" example:"false"` // Can the funder be justified now?
	SubprojectIDs []uuid.UUID `json:"subprojectIds"`               // Initiatives the funder finances
}

func newFunder(c *gin.Context, db *gorm.DB, model models.Funder) (Funder, error) {
	url := c.GetString(string(models.DBContextURL))

	justifiable, err := model.CanBeJustified(db)
	if err != nil {
		return Funder{}, err
	}

	var subprojects []models.Subproject
	err = db.Model(&model).Association("Subprojects").Find(&subprojects)
	if err != nil {
		return Funder{}, err
	}

	ids := make([]uuid.UUID, 0, len(subprojects))
	for _, s := range subprojects {
		ids = append(ids, s.ID)
	}

	return Funder{
		DefaultModel: model.DefaultModel,
		FunderEditable: FunderEditable{
			ProjectID:        model.ProjectID,
			Name:             model.Name,
			SubsidyReference: model.SubsidyReference,
			URL:              model.URL,
			AwardedBudget:    model.AwardedBudget,
		},
		Justified: model.Justified,
		Links: FunderLinks{
			Self:    fmt.Sprintf("%s/v1/funders/%s", url, model.ID),
			Justify: fmt.Sprintf("%s/v1/funders/%s/justify", url, model.ID),
			Report:  fmt.Sprintf("%s/v1/funders/%s/report", url, model.ID),
		},
		Justifiable:   justifiable,
		SubprojectIDs: ids,
	}, nil
}

type FunderResponse struct {
	Data  *Funder `json:"data"`                                                          // Data for the funder
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type FunderReportResponse struct {
	Data  *models.Report `json:"data"`                                                          // The justification report
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
