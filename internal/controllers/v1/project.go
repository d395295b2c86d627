package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openpoen/backend/internal/auth"
	"github.com/openpoen/backend/internal/httputil"
	"github.com/openpoen/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterProjectRoutes registers the routes for projects with
// the RouterGroup that is passed.
func (co Controller) RegisterProjectRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsProjectList)
		r.GET("", co.GetProjects)
		r.POST("", co.CreateProject)
	}

	// Project with ID
	{
		r.OPTIONS("/:id", OptionsProjectDetail)
		r.GET("/:id", co.GetProject)
		r.PATCH("/:id", co.UpdateProject)
		r.OPTIONS("/:id/payments", OptionsProjectPayments)
		r.GET("/:id/payments", co.GetProjectPayments)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Projects
// @Success		204
// @Router			/v1/projects [options]
func OptionsProjectList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Projects
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/projects/{id} [options]
func OptionsProjectDetail(c *gin.Context) {
	_, err := getProject(c)
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
// @Tags			Projects
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/projects/{id}/payments [options]
func OptionsProjectPayments(c *gin.Context) {
	_, err := getProject(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Create project
// @Description	Creates a new project. Only administrators can create projects.
// @Tags			Projects
// @Accept			json
// @Produce		json
// @Success		201		{object}	ProjectResponse
// @Failure		400		{object}	ProjectResponse
// @Failure		403		{object}	ProjectResponse
// @Failure		500		{object}	ProjectResponse
// @Param			project	body		ProjectEditable	true	"Project"
// @Router			/v1/projects [post]
func (co Controller) CreateProject(c *gin.Context) {
	err := requireAdmin(auth.User(c))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProjectResponse{
			Error: &s,
		})
		return
	}

	var editable ProjectEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProjectResponse{
			Error: &s,
		})
		return
	}

	project := editable.model()
	err = models.DB.Create(&project).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProjectResponse{
			Error: &s,
		})
		return
	}

	data, err := newProject(c, models.DB, project)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProjectResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusCreated, ProjectResponse{Data: &data})
}

// @Summary		Get projects
// @Description	Returns all projects with their roll-ups. Hidden projects are only returned to users that can edit them.
// @Tags			Projects
// @Produce		json
// @Success		200	{object}	ProjectListResponse
// @Failure		500	{object}	ProjectListResponse
// @Router			/v1/projects [get]
func (co Controller) GetProjects(c *gin.Context) {
	var projects []models.Project
	err := models.DB.Order("name ASC").Find(&projects).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProjectListResponse{
			Error: &s,
		})
		return
	}

	user := auth.User(c)

	// When there are no resources, we want an empty list, not null
	data := make([]Project, 0)
	for _, project := range projects {
		ok, err := canSeeProject(user, project)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), ProjectListResponse{
				Error: &s,
			})
			return
		}

		if !ok {
			continue
		}

		apiResource, err := newProject(c, models.DB, project)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), ProjectListResponse{
				Error: &s,
			})
			return
		}
		data = append(data, apiResource)
	}

	c.JSON(http.StatusOK, ProjectListResponse{Data: data})
}

// @Summary		Get project
// @Description	Returns a specific project with its initiatives, funders and roll-ups
// @Tags			Projects
// @Produce		json
// @Success		200	{object}	ProjectResponse
// @Failure		400	{object}	ProjectResponse
// @Failure		404	{object}	ProjectResponse
// @Failure		500	{object}	ProjectResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/projects/{id} [get]
func (co Controller) GetProject(c *gin.Context) {
	project, err := getVisibleProject(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProjectResponse{
			Error: &s,
		})
		return
	}

	data, err := newProject(c, models.DB, project)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProjectResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, ProjectResponse{Data: &data})
}

// @Summary		Update project
// @Description	Update an existing project. Only values to be updated need to be specified.
// @Tags			Projects
// @Accept			json
// @Produce		json
// @Success		200		{object}	ProjectResponse
// @Failure		400		{object}	ProjectResponse
// @Failure		403		{object}	ProjectResponse
// @Failure		404		{object}	ProjectResponse
// @Failure		500		{object}	ProjectResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			project	body		ProjectEditable	true	"Project"
// @Router			/v1/projects/{id} [patch]
func (co Controller) UpdateProject(c *gin.Context) {
	project, err := getProject(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProjectResponse{
			Error: &s,
		})
		return
	}

	err = requireProjectEditor(auth.User(c), project.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProjectResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, ProjectEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProjectResponse{
			Error: &s,
		})
		return
	}

	var data ProjectEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProjectResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&project).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProjectResponse{
			Error: &s,
		})
		return
	}

	apiResource, err := newProject(c, models.DB, project)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProjectResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, ProjectResponse{Data: &apiResource})
}

// @Summary		Get project payments
// @Description	Returns the payments attributed to the project, newest first. Hidden payments are only returned to users that can edit the project.
// @Tags			Projects
// @Produce		json
// @Success		200			{object}	PaymentListResponse
// @Failure		400			{object}	PaymentListResponse
// @Failure		404			{object}	PaymentListResponse
// @Failure		500			{object}	PaymentListResponse
// @Param			id			path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			route		query		string	false	"Filter by route"
// @Param			category	query		string	false	"Filter by category ID"
// @Param			subproject	query		string	false	"Filter by initiative ID"
// @Param			hidden		query		bool	false	"Is the payment hidden?"
// @Param			offset		query		uint	false	"The offset of the first payment returned. Defaults to 0."
// @Param			limit		query		int		false	"Maximum number of payments to return. Defaults to 50."
// @Router			/v1/projects/{id}/payments [get]
func (co Controller) GetProjectPayments(c *gin.Context) {
	project, err := getVisibleProject(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PaymentListResponse{
			Error: &s,
		})
		return
	}

	var filter PaymentQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, PaymentListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)
	model := filter.model()

	q := models.DB.
		Scopes(models.ProjectPayments(project.ID)).
		Order("payments.booking_date DESC").
		Where(&model, queryFields...)

	if filter.SubprojectID.Ptr() != nil {
		q = q.Where("payments.subproject_id = ?", filter.SubprojectID.UUID)
	}

	// Hidden payments are only shown to editors
	if ok, _ := auth.User(c).CanEditProject(models.DB, project.ID); !ok {
		q = q.Where("payments.hidden = ?", false)
	}

	q = q.Offset(int(filter.Offset))

	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var payments []models.Payment
	err = q.Find(&payments).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PaymentListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PaymentListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Payment, 0)
	for _, payment := range payments {
		apiResource, err := newPayment(c, models.DB, payment)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), PaymentListResponse{
				Error: &s,
			})
			return
		}
		data = append(data, apiResource)
	}

	c.JSON(http.StatusOK, PaymentListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

func getProject(c *gin.Context) (models.Project, error) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		return models.Project{}, err
	}

	var project models.Project
	err = models.DB.First(&project, uri.ID.UUID).Error
	return project, err
}

// getVisibleProject returns the project from the URI if the user can see it.
func getVisibleProject(c *gin.Context) (models.Project, error) {
	project, err := getProject(c)
	if err != nil {
		return models.Project{}, err
	}

	ok, err := canSeeProject(auth.User(c), project)
	if err != nil {
		return models.Project{}, err
	}

	if !ok {
		return models.Project{}, errProjectNotFound
	}

	return project, nil
}
