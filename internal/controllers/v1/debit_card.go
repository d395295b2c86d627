package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openpoen/backend/internal/auth"
	"github.com/openpoen/backend/internal/httputil"
	"github.com/openpoen/backend/internal/models"
)

// RegisterDebitCardRoutes registers the routes for debit cards with
// the RouterGroup that is passed.
func (co Controller) RegisterDebitCardRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsDebitCardList)
		r.GET("", co.GetDebitCards)
		r.POST("", co.AttachDebitCard)
	}

	// Debit card with number
	{
		r.OPTIONS("/:cardNumber", OptionsDebitCardDetail)
		r.GET("/:cardNumber", co.GetDebitCard)
		r.OPTIONS("/:cardNumber/project", OptionsDebitCardProject)
		r.DELETE("/:cardNumber/project", co.DetachDebitCard)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Debit cards
// @Success		204
// @Router			/v1/debit-cards [options]
func OptionsDebitCardList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Debit cards
// @Success		204
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			cardNumber	path		string	true	"Number of the debit card"
// @Router			/v1/debit-cards/{cardNumber} [options]
func OptionsDebitCardDetail(c *gin.Context) {
	_, err := getDebitCard(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Debit cards
// @Success		204
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			cardNumber	path		string	true	"Number of the debit card"
// @Router			/v1/debit-cards/{cardNumber}/project [options]
func OptionsDebitCardProject(c *gin.Context) {
	_, err := getDebitCard(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsDelete(c)
}

// @Summary		Get debit cards
// @Description	Returns all debit cards with the roll-ups of their payments
// @Tags			Debit cards
// @Produce		json
// @Success		200		{object}	DebitCardListResponse
// @Failure		400		{object}	DebitCardListResponse
// @Failure		500		{object}	DebitCardListResponse
// @Param			project	query		string	false	"Filter by project ID"
// @Router			/v1/debit-cards [get]
func (co Controller) GetDebitCards(c *gin.Context) {
	var filter DebitCardQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, DebitCardListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.Order("card_number ASC")
	if filter.ProjectID.Ptr() != nil {
		q = q.Where(&models.DebitCard{ProjectID: filter.ProjectID.Ptr()})
	}

	var cards []models.DebitCard
	err := q.Find(&cards).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebitCardListResponse{
			Error: &s,
		})
		return
	}

	// When there are no resources, we want an empty list, not null
	data := make([]DebitCard, 0)
	for _, card := range cards {
		apiResource, err := newDebitCard(c, models.DB, card)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), DebitCardListResponse{
				Error: &s,
			})
			return
		}
		data = append(data, apiResource)
	}

	c.JSON(http.StatusOK, DebitCardListResponse{Data: data})
}

// @Summary		Get debit card
// @Description	Returns a specific debit card
// @Tags			Debit cards
// @Produce		json
// @Success		200			{object}	DebitCardResponse
// @Failure		400			{object}	DebitCardResponse
// @Failure		404			{object}	DebitCardResponse
// @Failure		500			{object}	DebitCardResponse
// @Param			cardNumber	path		string	true	"Number of the debit card"
// @Router			/v1/debit-cards/{cardNumber} [get]
func (co Controller) GetDebitCard(c *gin.Context) {
	card, err := getDebitCard(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebitCardResponse{
			Error: &s,
		})
		return
	}

	data, err := newDebitCard(c, models.DB, card)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebitCardResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, DebitCardResponse{Data: &data})
}

// @Summary		Attach debit card
// @Description	Links a debit card to a project. Unknown cards are created. Cards with payments can not be moved to another project.
// @Tags			Debit cards
// @Accept			json
// @Produce		json
// @Success		200		{object}	DebitCardResponse
// @Failure		400		{object}	DebitCardResponse
// @Failure		403		{object}	DebitCardResponse
// @Failure		404		{object}	DebitCardResponse
// @Failure		500		{object}	DebitCardResponse
// @Param			card	body		DebitCardEditable	true	"Debit card"
// @Router			/v1/debit-cards [post]
func (co Controller) AttachDebitCard(c *gin.Context) {
	var editable DebitCardEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebitCardResponse{
			Error: &s,
		})
		return
	}

	err = requireProjectEditor(auth.User(c), editable.ProjectID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebitCardResponse{
			Error: &s,
		})
		return
	}

	card, err := models.AttachDebitCard(models.DB, editable.CardNumber, editable.ProjectID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebitCardResponse{
			Error: &s,
		})
		return
	}

	data, err := newDebitCard(c, models.DB, card)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebitCardResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, DebitCardResponse{Data: &data})
}

// @Summary		Detach debit card
// @Description	Removes the debit card from its project. Cards with payments can not be detached.
// @Tags			Debit cards
// @Success		204
// @Failure		400			{object}	httpError
// @Failure		403			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			cardNumber	path		string	true	"Number of the debit card"
// @Router			/v1/debit-cards/{cardNumber}/project [delete]
func (co Controller) DetachDebitCard(c *gin.Context) {
	card, err := getDebitCard(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	// Cards without a project can only be handled by administrators
	user := auth.User(c)
	if card.ProjectID != nil {
		err = requireProjectEditor(user, *card.ProjectID)
	} else {
		err = requireAdmin(user)
	}
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DetachDebitCard(models.DB, card.CardNumber)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

func getDebitCard(c *gin.Context) (models.DebitCard, error) {
	var uri URICardNumber
	err := c.ShouldBindUri(&uri)
	if err != nil {
		return models.DebitCard{}, err
	}

	var card models.DebitCard
	err = models.DB.Where(&models.DebitCard{CardNumber: uri.CardNumber}).First(&card).Error
	return card, err
}
