package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openpoen/backend/internal/auth"
	"github.com/openpoen/backend/internal/httputil"
	"github.com/openpoen/backend/internal/models"
	"gorm.io/gorm"
)

// RegisterFunderRoutes registers the routes for funders with
// the RouterGroup that is passed.
func (co Controller) RegisterFunderRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsFunderList)
		r.POST("", co.CreateFunder)
	}

	// Funder with ID
	{
		r.OPTIONS("/:id", OptionsFunderDetail)
		r.GET("/:id", co.GetFunder)
		r.PATCH("/:id", co.UpdateFunder)
		r.DELETE("/:id", co.DeleteFunder)
		r.OPTIONS("/:id/justify", OptionsFunderJustify)
		r.POST("/:id/justify", co.JustifyFunder)
		r.OPTIONS("/:id/report", OptionsFunderReport)
		r.GET("/:id/report", co.GetFunderReport)
		r.OPTIONS("/:id/subprojects/:subprojectId", OptionsFunderSubproject)
		r.POST("/:id/subprojects/:subprojectId", co.AttachFunderSubproject)
		r.DELETE("/:id/subprojects/:subprojectId", co.DetachFunderSubproject)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Funders
// @Success		204
// @Router			/v1/funders [options]
func OptionsFunderList(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Funders
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/funders/{id} [options]
func OptionsFunderDetail(c *gin.Context) {
	_, err := getFunder(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Funders
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/funders/{id}/justify [options]
func OptionsFunderJustify(c *gin.Context) {
	_, err := getFunder(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Funders
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/funders/{id}/report [options]
func OptionsFunderReport(c *gin.Context) {
	_, err := getFunder(c)
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
// @Tags			Funders
// @Success		204
// @Failure		400				{object}	httpError
// @Failure		404				{object}	httpError
// @Failure		500				{object}	httpError
// @Param			id				path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			subprojectId	path		string	true	"ID of the initiative"
// @Router			/v1/funders/{id}/subprojects/{subprojectId} [options]
func OptionsFunderSubproject(c *gin.Context) {
	_, _, err := getFunderSubproject(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsPostDelete(c)
}

// @Summary		Create funder
// @Description	Creates a new funder for a project
// @Tags			Funders
// @Accept			json
// @Produce		json
// @Success		201		{object}	FunderResponse
// @Failure		400		{object}	FunderResponse
// @Failure		403		{object}	FunderResponse
// @Failure		404		{object}	FunderResponse
// @Failure		500		{object}	FunderResponse
// @Param			funder	body		FunderEditable	true	"Funder"
// @Router			/v1/funders [post]
func (co Controller) CreateFunder(c *gin.Context) {
	var editable FunderEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FunderResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.First(&models.Project{}, editable.ProjectID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FunderResponse{
			Error: &s,
		})
		return
	}

	err = requireProjectEditor(auth.User(c), editable.ProjectID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FunderResponse{
			Error: &s,
		})
		return
	}

	funder := editable.model()
	err = models.DB.Create(&funder).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FunderResponse{
			Error: &s,
		})
		return
	}

	data, err := newFunder(c, models.DB, funder)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FunderResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusCreated, FunderResponse{Data: &data})
}

// @Summary		Get funder
// @Description	Returns a specific funder
// @Tags			Funders
// @Produce		json
// @Success		200	{object}	FunderResponse
// @Failure		400	{object}	FunderResponse
// @Failure		404	{object}	FunderResponse
// @Failure		500	{object}	FunderResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/funders/{id} [get]
func (co Controller) GetFunder(c *gin.Context) {
	funder, err := getFunder(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FunderResponse{
			Error: &s,
		})
		return
	}

	data, err := newFunder(c, models.DB, funder)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FunderResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, FunderResponse{Data: &data})
}

// @Summary		Update funder
// @Description	Update an existing funder. Only values to be updated need to be specified. Justified funders can not be changed.
// @Tags			Funders
// @Accept			json
// @Produce		json
// @Success		200		{object}	FunderResponse
// @Failure		400		{object}	FunderResponse
// @Failure		403		{object}	FunderResponse
// @Failure		404		{object}	FunderResponse
// @Failure		500		{object}	FunderResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			funder	body		FunderEditable	true	"Funder"
// @Router			/v1/funders/{id} [patch]
func (co Controller) UpdateFunder(c *gin.Context) {
	funder, err := getFunder(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FunderResponse{
			Error: &s,
		})
		return
	}

	err = requireProjectEditor(auth.User(c), funder.ProjectID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FunderResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, FunderEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FunderResponse{
			Error: &s,
		})
		return
	}

	var data FunderEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FunderResponse{
			Error: &s,
		})
		return
	}

	// Funders stay with their project
	data.ProjectID = funder.ProjectID

	err = models.DB.Model(&funder).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FunderResponse{
			Error: &s,
		})
		return
	}

	apiResource, err := newFunder(c, models.DB, funder)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FunderResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, FunderResponse{Data: &apiResource})
}

// @Summary		Delete funder
// @Description	Deletes a funder. Justified funders can not be deleted.
// @Tags			Funders
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/funders/{id} [delete]
func (co Controller) DeleteFunder(c *gin.Context) {
	funder, err := getFunder(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = requireProjectEditor(auth.User(c), funder.ProjectID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&funder).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Justify funder
// @Description	Marks the funder as justified. All of its initiatives must be finished. Justified funders are frozen.
// @Tags			Funders
// @Produce		json
// @Success		200	{object}	FunderResponse
// @Failure		400	{object}	FunderResponse
// @Failure		403	{object}	FunderResponse
// @Failure		404	{object}	FunderResponse
// @Failure		500	{object}	FunderResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/funders/{id}/justify [post]
func (co Controller) JustifyFunder(c *gin.Context) {
	funder, err := getFunder(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FunderResponse{
			Error: &s,
		})
		return
	}

	err = requireProjectEditor(auth.User(c), funder.ProjectID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FunderResponse{
			Error: &s,
		})
		return
	}

	err = funder.Justify(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FunderResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.First(&funder, funder.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FunderResponse{
			Error: &s,
		})
		return
	}

	data, err := newFunder(c, models.DB, funder)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FunderResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, FunderResponse{Data: &data})
}

// @Summary		Get justification report
// @Description	Returns the justification report of the funder with roll-ups and payments per initiative and category
// @Tags			Funders
// @Produce		json
// @Success		200	{object}	FunderReportResponse
// @Failure		400	{object}	FunderReportResponse
// @Failure		403	{object}	FunderReportResponse
// @Failure		404	{object}	FunderReportResponse
// @Failure		500	{object}	FunderReportResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/funders/{id}/report [get]
func (co Controller) GetFunderReport(c *gin.Context) {
	funder, err := getFunder(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FunderReportResponse{
			Error: &s,
		})
		return
	}

	err = requireProjectEditor(auth.User(c), funder.ProjectID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FunderReportResponse{
			Error: &s,
		})
		return
	}

	report, err := models.JustificationReport(models.DB, funder.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FunderReportResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, FunderReportResponse{Data: &report})
}

// @Summary		Attach initiative
// @Description	Adds an initiative of the same project to the initiatives the funder finances
// @Tags			Funders
// @Produce		json
// @Success		200				{object}	FunderResponse
// @Failure		400				{object}	FunderResponse
// @Failure		403				{object}	FunderResponse
// @Failure		404				{object}	FunderResponse
// @Failure		500				{object}	FunderResponse
// @Param			id				path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			subprojectId	path		string	true	"ID of the initiative"
// @Router			/v1/funders/{id}/subprojects/{subprojectId} [post]
func (co Controller) AttachFunderSubproject(c *gin.Context) {
	co.changeFunderSubproject(c, (*models.Funder).AttachSubproject)
}

// @Summary		Detach initiative
// @Description	Removes an initiative from the initiatives the funder finances
// @Tags			Funders
// @Produce		json
// @Success		200				{object}	FunderResponse
// @Failure		400				{object}	FunderResponse
// @Failure		403				{object}	FunderResponse
// @Failure		404				{object}	FunderResponse
// @Failure		500				{object}	FunderResponse
// @Param			id				path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			subprojectId	path		string	true	"ID of the initiative"
// @Router			/v1/funders/{id}/subprojects/{subprojectId} [delete]
func (co Controller) DetachFunderSubproject(c *gin.Context) {
	co.changeFunderSubproject(c, (*models.Funder).DetachSubproject)
}

func (co Controller) changeFunderSubproject(c *gin.Context, change func(*models.Funder, *gorm.DB, models.Subproject) error) {
	funder, subproject, err := getFunderSubproject(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FunderResponse{
			Error: &s,
		})
		return
	}

	err = requireProjectEditor(auth.User(c), funder.ProjectID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FunderResponse{
			Error: &s,
		})
		return
	}

	err = change(&funder, models.DB, subproject)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FunderResponse{
			Error: &s,
		})
		return
	}

	data, err := newFunder(c, models.DB, funder)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FunderResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, FunderResponse{Data: &data})
}

func getFunder(c *gin.Context) (models.Funder, error) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		return models.Funder{}, err
	}

	var funder models.Funder
	err = models.DB.First(&funder, uri.ID.UUID).Error
	return funder, err
}

func getFunderSubproject(c *gin.Context) (models.Funder, models.Subproject, error) {
	var uri URIFunderSubproject
	err := c.ShouldBindUri(&uri)
	if err != nil {
		return models.Funder{}, models.Subproject{}, err
	}

	var funder models.Funder
	err = models.DB.First(&funder, uri.ID.UUID).Error
	if err != nil {
		return models.Funder{}, models.Subproject{}, err
	}

	var subproject models.Subproject
	err = models.DB.First(&subproject, uri.SubprojectID.UUID).Error
	return funder, subproject, err
}
