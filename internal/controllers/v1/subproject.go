package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openpoen/backend/internal/auth"
	"github.com/openpoen/backend/internal/httputil"
	"github.com/openpoen/backend/internal/models"
)

// RegisterSubprojectRoutes registers the routes for initiatives with
// the RouterGroup that is passed.
func (co Controller) RegisterSubprojectRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsSubprojectList)
		r.POST("", co.CreateSubproject)
	}

	// Subproject with ID
	{
		r.OPTIONS("/:id", OptionsSubprojectDetail)
		r.GET("/:id", co.GetSubproject)
		r.PATCH("/:id", co.UpdateSubproject)
		r.OPTIONS("/:id/finish", OptionsSubprojectFinish)
		r.POST("/:id/finish", co.FinishSubproject)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Initiatives
// @Success		204
// @Router			/v1/subprojects [options]
func OptionsSubprojectList(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Initiatives
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/subprojects/{id} [options]
func OptionsSubprojectDetail(c *gin.Context) {
	_, err := getSubproject(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatch(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Initiatives
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/subprojects/{id}/finish [options]
func OptionsSubprojectFinish(c *gin.Context) {
	_, err := getSubproject(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsPost(c)
}

// @Summary		Create initiative
// @Description	Creates a new initiative in a project that contains initiatives
// @Tags			Initiatives
// @Accept			json
// @Produce		json
// @Success		201			{object}	SubprojectResponse
// @Failure		400			{object}	SubprojectResponse
// @Failure		403			{object}	SubprojectResponse
// @Failure		404			{object}	SubprojectResponse
// @Failure		500			{object}	SubprojectResponse
// @Param			subproject	body		SubprojectEditable	true	"Initiative"
// @Router			/v1/subprojects [post]
func (co Controller) CreateSubproject(c *gin.Context) {
	var editable SubprojectEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubprojectResponse{
			Error: &s,
		})
		return
	}

	var project models.Project
	err = models.DB.First(&project, editable.ProjectID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubprojectResponse{
			Error: &s,
		})
		return
	}

	err = requireProjectEditor(auth.User(c), project.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubprojectResponse{
			Error: &s,
		})
		return
	}

	if !project.ContainsSubprojects {
		s := models.ErrProjectHasNoSubprojects.Error()
		c.JSON(http.StatusBadRequest, SubprojectResponse{
			Error: &s,
		})
		return
	}

	subproject := editable.model()
	err = models.DB.Create(&subproject).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubprojectResponse{
			Error: &s,
		})
		return
	}

	data, err := newSubproject(c, models.DB, subproject)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubprojectResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusCreated, SubprojectResponse{Data: &data})
}

// @Summary		Get initiative
// @Description	Returns a specific initiative with its roll-ups
// @Tags			Initiatives
// @Produce		json
// @Success		200	{object}	SubprojectResponse
// @Failure		400	{object}	SubprojectResponse
// @Failure		404	{object}	SubprojectResponse
// @Failure		500	{object}	SubprojectResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/subprojects/{id} [get]
func (co Controller) GetSubproject(c *gin.Context) {
	subproject, err := getSubproject(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubprojectResponse{
			Error: &s,
		})
		return
	}

	// Initiatives of hidden projects are hidden as well
	var project models.Project
	err = models.DB.First(&project, subproject.ProjectID).Error
	if err == nil {
		var ok bool
		ok, err = canSeeProject(auth.User(c), project)
		if err == nil && !ok {
			err = errProjectNotFound
		}
	}
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubprojectResponse{
			Error: &s,
		})
		return
	}

	data, err := newSubproject(c, models.DB, subproject)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubprojectResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, SubprojectResponse{Data: &data})
}

// @Summary		Update initiative
// @Description	Update an existing initiative. Only values to be updated need to be specified. The project can not be changed.
// @Tags			Initiatives
// @Accept			json
// @Produce		json
// @Success		200			{object}	SubprojectResponse
// @Failure		400			{object}	SubprojectResponse
// @Failure		403			{object}	SubprojectResponse
// @Failure		404			{object}	SubprojectResponse
// @Failure		500			{object}	SubprojectResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			subproject	body		SubprojectEditable	true	"Initiative"
// @Router			/v1/subprojects/{id} [patch]
func (co Controller) UpdateSubproject(c *gin.Context) {
	subproject, err := getSubproject(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubprojectResponse{
			Error: &s,
		})
		return
	}

	err = requireSubprojectEditor(auth.User(c), subproject)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubprojectResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, SubprojectEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubprojectResponse{
			Error: &s,
		})
		return
	}

	var data SubprojectEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubprojectResponse{
			Error: &s,
		})
		return
	}

	// Initiatives can not move between projects
	data.ProjectID = subproject.ProjectID

	err = models.DB.Model(&subproject).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubprojectResponse{
			Error: &s,
		})
		return
	}

	apiResource, err := newSubproject(c, models.DB, subproject)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubprojectResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, SubprojectResponse{Data: &apiResource})
}

// @Summary		Finish initiative
// @Description	Marks the initiative as finished. A closing description is required, finished initiatives can not be reopened.
// @Tags			Initiatives
// @Accept			json
// @Produce		json
// @Success		200		{object}	SubprojectResponse
// @Failure		400		{object}	SubprojectResponse
// @Failure		403		{object}	SubprojectResponse
// @Failure		404		{object}	SubprojectResponse
// @Failure		500		{object}	SubprojectResponse
// @Param			id		path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			finish	body		SubprojectFinish	true	"Closing description"
// @Router			/v1/subprojects/{id}/finish [post]
func (co Controller) FinishSubproject(c *gin.Context) {
	subproject, err := getSubproject(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubprojectResponse{
			Error: &s,
		})
		return
	}

	err = requireSubprojectEditor(auth.User(c), subproject)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubprojectResponse{
			Error: &s,
		})
		return
	}

	var finish SubprojectFinish
	err = httputil.BindData(c, &finish)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubprojectResponse{
			Error: &s,
		})
		return
	}

	err = subproject.Finish(models.DB, finish.FinishedDescription)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubprojectResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.First(&subproject, subproject.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubprojectResponse{
			Error: &s,
		})
		return
	}

	data, err := newSubproject(c, models.DB, subproject)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubprojectResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, SubprojectResponse{Data: &data})
}

func getSubproject(c *gin.Context) (models.Subproject, error) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		return models.Subproject{}, err
	}

	var subproject models.Subproject
	err = models.DB.First(&subproject, uri.ID.UUID).Error
	return subproject, err
}
