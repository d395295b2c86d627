package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/openpoen/backend/internal/models"
	ez_uuid "github.com/openpoen/backend/internal/uuid"
	"gorm.io/gorm"
)

// DebitCardEditable links a card to a project.
type DebitCardEditable struct {
	CardNumber string    `json:"cardNumber" example:"6731924123456789012"`                 // Number of the debit card
	ProjectID  uuid.UUID `json:"projectId" example:"1e777d24-3f5b-4c43-8000-04f65f895578"` // ID of the project the card belongs to
}

type DebitCardLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/debit-cards/6731924123456789012"`            // The debit card itself
	Project string `json:"project" example:"https://example.com/api/v1/debit-cards/6731924123456789012/project"` // Detaches the card from its project
}

type DebitCard struct {
	models.DebitCard
	Links DebitCardLinks `json:"links"`

	// These fields are computed
	Amounts models.Amounts `json:"amounts"` // Roll-ups of all payments made with the card
}

func newDebitCard(c *gin.Context, db *gorm.DB, model models.DebitCard) (DebitCard, error) {
	url := c.GetString(string(models.DBContextURL))

	var payments []models.Payment
	err := db.Where(&models.Payment{CardNumber: &model.CardNumber}).Find(&payments).Error
	if err != nil {
		return DebitCard{}, err
	}

	return DebitCard{
		DebitCard: model,
		Links: DebitCardLinks{
			Self:    fmt.Sprintf("%s/v1/debit-cards/%s", url, model.CardNumber),
			Project: fmt.Sprintf("%s/v1/debit-cards/%s/project", url, model.CardNumber),
		},
		Amounts: models.CalculateAmounts(payments, 0),
	}, nil
}

type DebitCardListResponse struct {
	Data  []DebitCard `json:"data"`                                                          // List of debit cards
	Error *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type DebitCardResponse struct {
	Data  *DebitCard `json:"data"`                                                          // Data for the debit card
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type DebitCardQueryFilter struct {
	ProjectID ez_uuid.UUID `form:"project"` // By ID of the project
}
