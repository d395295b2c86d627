package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/openpoen/backend/internal/auth"
	"github.com/openpoen/backend/internal/httputil"
	"github.com/openpoen/backend/internal/models"
	"gorm.io/gorm"
)

// CategoryEditable represents all user configurable parameters. Exactly one
// of projectId and subprojectId must be set.
type CategoryEditable struct {
	Name         string     `json:"name" example:"Materiaal"`                                    // Name of the category
	ProjectID    *uuid.UUID `json:"projectId" example:"1e777d24-3f5b-4c43-8000-04f65f895578"`    // ID of the project the category belongs to
	SubprojectID *uuid.UUID `json:"subprojectId" example:"cc4a3b0d-1e64-4a4e-a3f3-ae0b0bba5d47"` // ID of the initiative the category belongs to
}

func (editable CategoryEditable) model() models.Category {
	return models.Category{
		Name:         editable.Name,
		ProjectID:    editable.ProjectID,
		SubprojectID: editable.SubprojectID,
	}
}

type CategoryResponse struct {
	Data  *models.Category `json:"data"`                                                          // Data for the category
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func (co Controller) RegisterCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCategoryList)
		r.POST("", co.CreateCategory)
	}

	// Category with ID
	{
		r.OPTIONS("/:id", OptionsCategoryDetail)
		r.DELETE("/:id", co.DeleteCategory)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func OptionsCategoryList(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/categories/{id} [options]
func OptionsCategoryDetail(c *gin.Context) {
	_, err := getCategory(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsDelete(c)
}

// @Summary		Create category
// @Description	Creates a new category for a project or an initiative
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		201			{object}	CategoryResponse
// @Failure		400			{object}	CategoryResponse
// @Failure		403			{object}	CategoryResponse
// @Failure		404			{object}	CategoryResponse
// @Failure		500			{object}	CategoryResponse
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories [post]
func (co Controller) CreateCategory(c *gin.Context) {
	var editable CategoryEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{
			Error: &s,
		})
		return
	}

	category := editable.model()
	err = requireCategoryEditor(auth.User(c), category)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Create(&category).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusCreated, CategoryResponse{Data: &category})
}

// @Summary		Delete category
// @Description	Deletes a category. Payments in the category lose their category.
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/categories/{id} [delete]
func (co Controller) DeleteCategory(c *gin.Context) {
	category, err := getCategory(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = requireCategoryEditor(auth.User(c), category)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.Payment{}).Where("category_id = ?", category.ID).UpdateColumn("category_id", nil).Error
		if err != nil {
			return err
		}

		return tx.Delete(&category).Error
	})
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// requireCategoryEditor checks that the user can edit the project or
// initiative the category belongs to.
func requireCategoryEditor(user models.User, category models.Category) error {
	if category.SubprojectID != nil {
		var subproject models.Subproject
		err := models.DB.First(&subproject, *category.SubprojectID).Error
		if err != nil {
			return err
		}

		return requireSubprojectEditor(user, subproject)
	}

	if category.ProjectID != nil {
		err := models.DB.First(&models.Project{}, *category.ProjectID).Error
		if err != nil {
			return err
		}

		return requireProjectEditor(user, *category.ProjectID)
	}

	return models.ErrCategoryParent
}

func getCategory(c *gin.Context) (models.Category, error) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		return models.Category{}, err
	}

	var category models.Category
	err = models.DB.First(&category, uri.ID.UUID).Error
	return category, err
}
