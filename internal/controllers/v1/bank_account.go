package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openpoen/backend/internal/auth"
	"github.com/openpoen/backend/internal/consent"
	"github.com/openpoen/backend/internal/httputil"
	"github.com/openpoen/backend/internal/jobs"
)

// RegisterBankAccountRoutes registers the routes for the linked bank
// account with the RouterGroup that is passed.
func (co Controller) RegisterBankAccountRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsBankAccount)
		r.GET("", co.GetBankAccount)
		r.DELETE("", co.UnlinkBankAccount)
	}

	{
		r.OPTIONS("/link", OptionsBankAccountLink)
		r.POST("/link", co.LinkBankAccount)
		r.OPTIONS("/callback", OptionsBankAccountCallback)
		r.GET("/callback", co.BankAccountCallback)
		r.OPTIONS("/import", OptionsBankAccountImport)
		r.POST("/import", co.ImportBankAccount)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Bank account
// @Success		204
// @Router			/v1/bank-account [options]
func OptionsBankAccount(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Bank account
// @Success		204
// @Router			/v1/bank-account/link [options]
func OptionsBankAccountLink(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Bank account
// @Success		204
// @Router			/v1/bank-account/callback [options]
func OptionsBankAccountCallback(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Bank account
// @Success		204
// @Router			/v1/bank-account/import [options]
func OptionsBankAccountImport(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Get bank account status
// @Description	Returns the status of the linked bank account. The consent status is requested from the bank.
// @Tags			Bank account
// @Produce		json
// @Success		200	{object}	BankAccountStatusResponse
// @Failure		403	{object}	BankAccountStatusResponse
// @Failure		500	{object}	BankAccountStatusResponse
// @Router			/v1/bank-account [get]
func (co Controller) GetBankAccount(c *gin.Context) {
	err := requireAdmin(auth.User(c))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BankAccountStatusResponse{
			Error: &s,
		})
		return
	}

	data, err := co.Consent.Status(c.Request.Context())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BankAccountStatusResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, BankAccountStatusResponse{Data: &data})
}

// @Summary		Link bank account
// @Description	Creates a consent at the bank. The user needs to visit the returned URL to authorise it.
// @Tags			Bank account
// @Accept			json
// @Produce		json
// @Success		201		{object}	BankAccountLinkResponse
// @Failure		400		{object}	BankAccountLinkResponse
// @Failure		403		{object}	BankAccountLinkResponse
// @Failure		500		{object}	BankAccountLinkResponse
// @Failure		502		{object}	BankAccountLinkResponse
// @Param			link	body		BankAccountLinkEditable	true	"Bank account"
// @Router			/v1/bank-account/link [post]
func (co Controller) LinkBankAccount(c *gin.Context) {
	var editable BankAccountLinkEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BankAccountLinkResponse{
			Error: &s,
		})
		return
	}

	if editable.IBAN == "" {
		s := errIBANRequired.Error()
		c.JSON(http.StatusBadRequest, BankAccountLinkResponse{
			Error: &s,
		})
		return
	}

	url, err := co.Consent.BeginLink(c.Request.Context(), auth.User(c), editable.IBAN, editable.ValidUntil)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BankAccountLinkResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusCreated, BankAccountLinkResponse{Data: &BankAccountLink{
		State:        consent.StateAwaitingAuthorisation,
		AuthoriseURL: url,
	}})
}

// @Summary		Bank callback
// @Description	Finishes linking the bank account after the user authorised the consent at the bank
// @Tags			Bank account
// @Produce		json
// @Success		200		{object}	BankAccountCallbackResponse
// @Failure		400		{object}	BankAccountCallbackResponse
// @Failure		403		{object}	BankAccountCallbackResponse
// @Failure		500		{object}	BankAccountCallbackResponse
// @Failure		502		{object}	BankAccountCallbackResponse
// @Param			code	query		string	true	"Authorisation code"
// @Param			state	query		string	true	"State token"
// @Router			/v1/bank-account/callback [get]
func (co Controller) BankAccountCallback(c *gin.Context) {
	var query BankAccountCallbackQuery
	if err := c.BindQuery(&query); err != nil || query.Code == "" || query.State == "" {
		s := errCallbackParameters.Error()
		c.JSON(http.StatusBadRequest, BankAccountCallbackResponse{
			Error: &s,
		})
		return
	}

	outcome := jobs.CallbackHandler(c.Request.Context(), co.Consent, auth.User(c), query.Code, query.State)
	c.JSON(callbackStatus[outcome], BankAccountCallbackResponse{Data: &BankAccountCallback{
		Outcome: outcome,
		Message: outcome.Message(),
	}})
}

// @Summary		Unlink bank account
// @Description	Revokes the consent at the bank and removes the linked bank account. Imported payments are kept.
// @Tags			Bank account
// @Success		204
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Failure		502	{object}	httpError
// @Router			/v1/bank-account [delete]
func (co Controller) UnlinkBankAccount(c *gin.Context) {
	err := co.Consent.Unlink(c.Request.Context(), auth.User(c))
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Import payments
// @Description	Imports the payments of the linked bank account now. If an import is already running, nothing is done.
// @Tags			Bank account
// @Produce		json
// @Success		200	{object}	BankAccountImportResponse
// @Failure		403	{object}	BankAccountImportResponse
// @Failure		500	{object}	BankAccountImportResponse
// @Failure		502	{object}	BankAccountImportResponse
// @Router			/v1/bank-account/import [post]
func (co Controller) ImportBankAccount(c *gin.Context) {
	err := requireAdmin(auth.User(c))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BankAccountImportResponse{
			Error: &s,
		})
		return
	}

	report := co.Runner.IngestJob(c.Request.Context())
	if !report.OK {
		s := report.Message
		c.JSON(status(report.Err), BankAccountImportResponse{
			Data:  &report,
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, BankAccountImportResponse{Data: &report})
}
