package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/openpoen/backend/internal/models"
	"gorm.io/gorm"
)

// ProjectEditable represents all user configurable parameters
type ProjectEditable struct {
	Name                string `json:"name" example:"Buurtmoestuin"`                                   // Name of the project
	Description         string `json:"description" example:"A vegetable garden for the neighbourhood"` // Description of the project
	Budget              int64  `json:"budget" example:"10000"`                                         // Budget in whole euros, 0 for none
	ContainsSubprojects bool   `json:"containsSubprojects" example:"true" default:"false"`             // Does the project have initiatives? Can not be changed after creation
	Hidden              bool   `json:"hidden" example:"false" default:"false"`                         // Is the project hidden from the public?
}

func (editable ProjectEditable) model() models.Project {
	return models.Project{
		Name:                editable.Name,
		Description:         editable.Description,
		Budget:              editable.Budget,
		ContainsSubprojects: editable.ContainsSubprojects,
		Hidden:              editable.Hidden,
	}
}

type ProjectLinks struct {
	Self       string `json:"self" example:"https://example.com/api/v1/projects/1e777d24-3f5b-4c43-8000-04f65f895578"`                  // The project itself
	Payments   string `json:"payments" example:"https://example.com/api/v1/projects/1e777d24-3f5b-4c43-8000-04f65f895578/payments"`     // Payments attributed to the project
	DebitCards string `json:"debitCards" example:"https://example.com/api/v1/debit-cards?project=1e777d24-3f5b-4c43-8000-04f65f895578"` // Debit cards of the project
}

type Project struct {
	models.DefaultModel
	ProjectEditable
	Links ProjectLinks `json:"links"`

	// These fields are computed
	Amounts     models.Amounts `json:"amounts"`     // Roll-ups of all payments attributed to the project
	Subprojects []Subproject   `json:"subprojects"` // Initiatives of the project
	Funders     []Funder       `json:"funders"`     // Funders of the project
}

func newProject(c *gin.Context, db *gorm.DB, model models.Project) (Project, error) {
	url := c.GetString(string(models.DBContextURL))

	project := Project{
		DefaultModel: model.DefaultModel,
		ProjectEditable: ProjectEditable{
			Name:                model.Name,
			Description:         model.Description,
			Budget:              model.Budget,
			ContainsSubprojects: model.ContainsSubprojects,
			Hidden:              model.Hidden,
		},
		Links: ProjectLinks{
			Self:       fmt.Sprintf("%s/v1/projects/%s", url, model.ID),
			Payments:   fmt.Sprintf("%s/v1/projects/%s/payments", url, model.ID),
			DebitCards: fmt.Sprintf("%s/v1/debit-cards?project=%s", url, model.ID),
		},
		Subprojects: make([]Subproject, 0),
		Funders:     make([]Funder, 0),
	}

	var payments []models.Payment
	err := db.Scopes(models.ProjectPayments(model.ID)).Find(&payments).Error
	if err != nil {
		return Project{}, err
	}
	project.Amounts = models.CalculateAmounts(payments, model.Budget)

	var subprojects []models.Subproject
	err = db.Where(&models.Subproject{ProjectID: model.ID}).Order("name ASC").Find(&subprojects).Error
	if err != nil {
		return Project{}, err
	}

	for _, s := range subprojects {
		subproject, err := newSubproject(c, db, s)
		if err != nil {
			return Project{}, err
		}
		project.Subprojects = append(project.Subprojects, subproject)
	}

	var funders []models.Funder
	err = db.Where(&models.Funder{ProjectID: model.ID}).Order("name ASC").Find(&funders).Error
	if err != nil {
		return Project{}, err
	}

	for _, f := range funders {
		funder, err := newFunder(c, db, f)
		if err != nil {
			return Project{}, err
		}
		project.Funders = append(project.Funders, funder)
	}

	return project, nil
}

type ProjectListResponse struct {
	Data  []Project `json:"data"`                                                          // List of projects
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ProjectResponse struct {
	Data  *Project `json:"data"`                                                          // Data for the project
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
