package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/openpoen/backend/internal/models"
	ez_uuid "github.com/openpoen/backend/internal/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentEditable represents all user configurable parameters. Amount,
// booking date and the counterparty names can only be changed for manual
// payments.
type PaymentEditable struct {
	Route                models.PaymentRoute `json:"route" example:"insourcing"`                                  // One of income, expense or insourcing
	ProjectID            *uuid.UUID          `json:"projectId" example:"1e777d24-3f5b-4c43-8000-04f65f895578"`    // Project the payment belongs to, the project of its debit card takes precedence
	SubprojectID         *uuid.UUID          `json:"subprojectId" example:"cc4a3b0d-1e64-4a4e-a3f3-ae0b0bba5d47"` // Initiative the payment belongs to
	CategoryID           *uuid.UUID          `json:"categoryId" example:"7a1f2c59-3d3b-4c18-9bb2-5d8c1a2e3f40"`   // Category of the payment
	Hidden               bool                `json:"hidden" example:"false" default:"false"`                      // Is the payment hidden from the public?
	ShortUserDescription string              `json:"shortUserDescription" example:"Zaden"`                        // Short description
	LongUserDescription  string              `json:"longUserDescription" example:"Zaden voor de moestuinbakken"`  // Long description
	Amount               decimal.Decimal     `json:"amount" example:"-22.5"`                                      // Amount, negative for expenses
	BookingDate          time.Time           `json:"bookingDate" example:"2022-05-13T00:00:00Z"`                  // Date of the payment
	CreditorName         *string             `json:"creditorName" example:"Tuincentrum De Groene Vinger"`         // Name of the receiving party
	DebtorName           *string             `json:"debtorName" example:"Gemeente Amsterdam"`                     // Name of the paying party
}

func (editable PaymentEditable) model() models.Payment {
	return models.Payment{
		Route:                editable.Route,
		ProjectID:            editable.ProjectID,
		SubprojectID:         editable.SubprojectID,
		CategoryID:           editable.CategoryID,
		Hidden:               editable.Hidden,
		ShortUserDescription: editable.ShortUserDescription,
		LongUserDescription:  editable.LongUserDescription,
		Amount:               editable.Amount,
		BookingDate:          editable.BookingDate,
		CreditorName:         editable.CreditorName,
		DebtorName:           editable.DebtorName,
	}
}

// PaymentCreate is a manual payment or top-up.
type PaymentCreate struct {
	PaymentEditable
	Type       models.PaymentType `json:"type" example:"manual-payment"`            // One of manual-payment or manual-topup
	CardNumber *string            `json:"cardNumber" example:"6731924123456789012"` // Debit card the payment was made with
}

func (create PaymentCreate) model() models.Payment {
	payment := create.PaymentEditable.model()
	payment.Type = create.Type
	payment.CardNumber = create.CardNumber
	return payment
}

type PaymentLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/payments/4e6d4e6a-9d4c-4a4f-8a6a-0f3b2c6d4e5f"` // The payment itself
}

type Payment struct {
	models.Payment
	Links PaymentLinks `json:"links"`

	// These fields are computed
	EffectiveProjectID    *uuid.UUID `json:"effectiveProjectId" example:"1e777d24-3f5b-4c43-8000-04f65f895578"`    // Project the payment is attributed to
	EffectiveSubprojectID *uuid.UUID `json:"effectiveSubprojectId" example:"cc4a3b0d-1e64-4a4e-a3f3-ae0b0bba5d47"` // Initiative the payment is attributed to
}

func newPayment(c *gin.Context, db *gorm.DB, model models.Payment) (Payment, error) {
	url := c.GetString(string(models.DBContextURL))

	projectID, err := model.EffectiveProjectID(db)
	if err != nil {
		return Payment{}, err
	}

	subprojectID, err := model.EffectiveSubprojectID(db)
	if err != nil {
		return Payment{}, err
	}

	return Payment{
		Payment: model,
		Links: PaymentLinks{
			Self: fmt.Sprintf("%s/v1/payments/%s", url, model.ID),
		},
		EffectiveProjectID:    projectID,
		EffectiveSubprojectID: subprojectID,
	}, nil
}

type PaymentListResponse struct {
	Data       []Payment   `json:"data"`                                                          // List of payments
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type PaymentResponse struct {
	Data  *Payment `json:"data"`                                                          // Data for the payment
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type PaymentQueryFilter struct {
	Route        string       `form:"route"`                          // By route
	CategoryID   ez_uuid.UUID `form:"category"`                       // By ID of the category
	Hidden       bool         `form:"hidden"`                         // Is the payment hidden?
	SubprojectID ez_uuid.UUID `form:"subproject" filterField:"false"` // By ID of the initiative the payment is attributed to
	Offset       uint         `form:"offset" filterField:"false"`     // The offset of the first payment returned. Defaults to 0.
	Limit        int          `form:"limit" filterField:"false"`      // Maximum number of payments to return. Defaults to 50.
}

func (f PaymentQueryFilter) model() models.Payment {
	return models.Payment{
		Route:      models.PaymentRoute(f.Route),
		CategoryID: f.CategoryID.Ptr(),
		Hidden:     f.Hidden,
	}
}
