package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/openpoen/backend/internal/models"
	"gorm.io/gorm"
)

// SubprojectEditable represents all user configurable parameters
type SubprojectEditable struct {
	ProjectID   uuid.UUID `json:"projectId" example:"1e777d24-3f5b-4c43-8000-04f65f895578"` // ID of the project the initiative belongs to
	Name        string    `json:"name" example:"Zaden en gereedschap"`                      // Name of the initiative, unique within the project
	Description string    `json:"description" example:"Seeds and tools for the garden"`     // Description of the initiative
	Budget      *int64    `json:"budget" example:"2500"`                                    // Budget in whole euros
}

func (editable SubprojectEditable) model() models.Subproject {
	return models.Subproject{
		ProjectID:   editable.ProjectID,
		Name:        editable.Name,
		Description: editable.Description,
		Budget:      editable.Budget,
	}
}

type SubprojectFinish struct {
	FinishedDescription string `json:"finishedDescription" example:"All seeds have been planted"` // Closing description of the initiative
}

type SubprojectLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/subprojects/cc4a3b0d-1e64-4a4e-a3f3-ae0b0bba5d47"`                                         // The initiative itself
	Finish   string `json:"finish" example:"https://example.com/api/v1/subprojects/cc4a3b0d-1e64-4a4e-a3f3-ae0b0bba5d47/finish"`                                // Marks the initiative as finished
	Payments string `json:"payments" example:"https://example.com/api/v1/projects/1e777d24-3f5b-4c43-8000-04f65f895578/payments?subproject=cc4a3b0d-1e64-4a4e"` // Payments attributed to the initiative
}

type Subproject struct {
	models.DefaultModel
	SubprojectEditable
	Finished            bool            `json:"finished" example:"false"`                                  // Is the initiative finished?
	FinishedDescription string          `json:"finishedDescription" example:"All seeds have been planted"` // Closing description
	Links               SubprojectLinks `json:"links"`

	// These fields are computed
	Amounts models.Amounts `json:"amounts"` // Roll-ups of all payments attributed to the initiative
}

func newSubproject(c *gin.Context, db *gorm.DB, model models.Subproject) (Subproject, error) {
	url := c.GetString(string(models.DBContextURL))

	var payments []models.Payment
	err := db.Scopes(models.SubprojectPayments(model)).Find(&payments).Error
	if err != nil {
		return Subproject{}, err
	}

	return Subproject{
		DefaultModel: model.DefaultModel,
		SubprojectEditable: SubprojectEditable{
			ProjectID:   model.ProjectID,
			Name:        model.Name,
			Description: model.Description,
			Budget:      model.Budget,
		},
		Finished:            model.Finished,
		FinishedDescription: model.FinishedDescription,
		Links: SubprojectLinks{
			Self:     fmt.Sprintf("%s/v1/subprojects/%s", url, model.ID),
			Finish:   fmt.Sprintf("%s/v1/subprojects/%s/finish", url, model.ID),
			Payments: fmt.Sprintf("%s/v1/projects/%s/payments?subproject=%s", url, model.ProjectID, model.ID),
		},
		Amounts: models.CalculateAmounts(payments, model.BudgetValue()),
	}, nil
}

type SubprojectResponse struct {
	Data  *Subproject `json:"data"`                                                          // Data for the initiative
	Error *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
