package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openpoen/backend/internal/auth"
	"github.com/openpoen/backend/internal/httputil"
	"github.com/openpoen/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterPaymentRoutes registers the routes for payments with
// the RouterGroup that is passed.
func (co Controller) RegisterPaymentRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsPaymentList)
		r.POST("", co.CreatePayment)
	}

	// Payment with ID
	{
		r.OPTIONS("/:id", OptionsPaymentDetail)
		r.GET("/:id", co.GetPayment)
		r.PATCH("/:id", co.UpdatePayment)
		r.DELETE("/:id", co.DeletePayment)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Payments
// @Success		204
// @Router			/v1/payments [options]
func OptionsPaymentList(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Payments
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/payments/{id} [options]
func OptionsPaymentDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Payment{}, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create payment
// @Description	Creates a manual payment or top-up
// @Tags			Payments
// @Accept			json
// @Produce		json
// @Success		201		{object}	PaymentResponse
// @Failure		400		{object}	PaymentResponse
// @Failure		403		{object}	PaymentResponse
// @Failure		404		{object}	PaymentResponse
// @Failure		500		{object}	PaymentResponse
// @Param			payment	body		PaymentCreate	true	"Payment"
// @Router			/v1/payments [post]
func (co Controller) CreatePayment(c *gin.Context) {
	var create PaymentCreate
	err := httputil.BindData(c, &create)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PaymentResponse{
			Error: &s,
		})
		return
	}

	payment := create.model()
	if !payment.Type.Manual() {
		s := models.ErrPaymentNotManual.Error()
		c.JSON(http.StatusBadRequest, PaymentResponse{
			Error: &s,
		})
		return
	}

	err = requirePaymentEditor(auth.User(c), payment)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PaymentResponse{
			Error: &s,
		})
		return
	}

	err = models.CreateManualPayment(models.DB, &payment)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PaymentResponse{
			Error: &s,
		})
		return
	}

	data, err := newPayment(c, models.DB, payment)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PaymentResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusCreated, PaymentResponse{Data: &data})
}

// @Summary		Get payment
// @Description	Returns a specific payment. Hidden payments are only returned to users that can edit them.
// @Tags			Payments
// @Produce		json
// @Success		200	{object}	PaymentResponse
// @Failure		400	{object}	PaymentResponse
// @Failure		404	{object}	PaymentResponse
// @Failure		500	{object}	PaymentResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/payments/{id} [get]
func (co Controller) GetPayment(c *gin.Context) {
	payment, err := getPayment(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PaymentResponse{
			Error: &s,
		})
		return
	}

	if payment.Hidden && requirePaymentEditor(auth.User(c), payment) != nil {
		s := errPaymentNotFound.Error()
		c.JSON(http.StatusNotFound, PaymentResponse{
			Error: &s,
		})
		return
	}

	data, err := newPayment(c, models.DB, payment)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PaymentResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, PaymentResponse{Data: &data})
}

// @Summary		Update payment
// @Description	Update an existing payment. Only values to be updated need to be specified. Fields imported from the bank can not be changed.
// @Tags			Payments
// @Accept			json
// @Produce		json
// @Success		200		{object}	PaymentResponse
// @Failure		400		{object}	PaymentResponse
// @Failure		403		{object}	PaymentResponse
// @Failure		404		{object}	PaymentResponse
// @Failure		500		{object}	PaymentResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			payment	body		PaymentEditable	true	"Payment"
// @Router			/v1/payments/{id} [patch]
func (co Controller) UpdatePayment(c *gin.Context) {
	payment, err := getPayment(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PaymentResponse{
			Error: &s,
		})
		return
	}

	err = requirePaymentEditor(auth.User(c), payment)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PaymentResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, PaymentEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PaymentResponse{
			Error: &s,
		})
		return
	}

	var data PaymentEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PaymentResponse{
			Error: &s,
		})
		return
	}

	err = checkSubproject(payment, data, updateFields)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PaymentResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&payment).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PaymentResponse{
			Error: &s,
		})
		return
	}

	apiResource, err := newPayment(c, models.DB, payment)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PaymentResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, PaymentResponse{Data: &apiResource})
}

// @Summary		Delete payment
// @Description	Deletes a manual payment. Payments imported from the bank can not be deleted.
// @Tags			Payments
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/payments/{id} [delete]
func (co Controller) DeletePayment(c *gin.Context) {
	payment, err := getPayment(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = requirePaymentEditor(auth.User(c), payment)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&payment).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

func getPayment(c *gin.Context) (models.Payment, error) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		return models.Payment{}, err
	}

	var payment models.Payment
	err = models.DB.First(&payment, uri.ID.UUID).Error
	return payment, err
}

// checkSubproject verifies that a subproject set in the update belongs to
// the project the payment is attributed to after the update.
func checkSubproject(payment models.Payment, data PaymentEditable, updateFields []any) error {
	if !slices.Contains(updateFields, any("SubprojectID")) || data.SubprojectID == nil {
		return nil
	}

	if slices.Contains(updateFields, any("ProjectID")) {
		payment.ProjectID = data.ProjectID
	}

	projectID, err := payment.EffectiveProjectID(models.DB)
	if err != nil {
		return err
	}

	var subproject models.Subproject
	err = models.DB.First(&subproject, *data.SubprojectID).Error
	if err != nil {
		return err
	}

	if projectID == nil || subproject.ProjectID != *projectID {
		return models.ErrSubprojectNotInProject
	}

	return nil
}
