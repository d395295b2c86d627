package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openpoen/backend/internal/httputil"
	"github.com/openpoen/backend/internal/models"
)

// RegisterRoutes registers all v1 routes with the RouterGroup that is passed.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)

	co.RegisterBankAccountRoutes(r.Group("/bank-account"))
	co.RegisterProjectRoutes(r.Group("/projects"))
	co.RegisterSubprojectRoutes(r.Group("/subprojects"))
	co.RegisterFunderRoutes(r.Group("/funders"))
	co.RegisterDebitCardRoutes(r.Group("/debit-cards"))
	co.RegisterPaymentRoutes(r.Group("/payments"))
	co.RegisterCategoryRoutes(r.Group("/categories"))
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	BankAccount string `json:"bankAccount" example:"https://example.com/api/v1/bank-account"` // URL of the linked bank account
	Projects    string `json:"projects" example:"https://example.com/api/v1/projects"`        // URL of Project collection endpoint
	Subprojects string `json:"subprojects" example:"https://example.com/api/v1/subprojects"`  // URL of Initiative collection endpoint
	Funders     string `json:"funders" example:"https://example.com/api/v1/funders"`          // URL of Funder collection endpoint
	DebitCards  string `json:"debitCards" example:"https://example.com/api/v1/debit-cards"`   // URL of Debit card collection endpoint
	Payments    string `json:"payments" example:"https://example.com/api/v1/payments"`        // URL of Payment collection endpoint
	Categories  string `json:"categories" example:"https://example.com/api/v1/categories"`    // URL of Category collection endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			BankAccount: url + "/v1/bank-account",
			Projects:    url + "/v1/projects",
			Subprojects: url + "/v1/subprojects",
			Funders:     url + "/v1/funders",
			DebitCards:  url + "/v1/debit-cards",
			Payments:    url + "/v1/payments",
			Categories:  url + "/v1/categories",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
