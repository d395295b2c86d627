package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/openpoen/backend/internal/controllers/v1"
	"github.com/openpoen/backend/internal/models"
	"github.com/openpoen/backend/test"
)

func (suite *TestSuiteStandard) TestCategoriesOptions() {
	admin := suite.createAdmin()
	project := suite.createProject(models.Project{})
	category := models.Category{Name: "Materiaal", ProjectID: &project.ID}
	suite.Require().Nil(models.DB.Create(&category).Error)

	suite.assertOptions(admin, "http://example.com/v1/categories", "OPTIONS, POST")
	suite.assertOptions(admin, fmt.Sprintf("http://example.com/v1/categories/%s", category.ID), "OPTIONS, DELETE")
}

func (suite *TestSuiteStandard) TestCategoriesCreate() {
	subproject := suite.createSubproject(models.Subproject{})
	owner := suite.createOwner("owner@example.com", models.UserRole{SubprojectID: subproject.ID})

	recorder := suite.request(owner, http.MethodPost, "http://example.com/v1/categories", v1.CategoryEditable{
		Name:         "Materiaal",
		SubprojectID: &subproject.ID,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("Materiaal", response.Data.Name)
	suite.Assert().Nil(response.Data.ProjectID)
	suite.Require().NotNil(response.Data.SubprojectID)
	suite.Assert().Equal(subproject.ID, *response.Data.SubprojectID)
}

func (suite *TestSuiteStandard) TestCategoriesCreateFails() {
	admin := suite.createAdmin()
	subproject := suite.createSubproject(models.Subproject{})
	owner := suite.createOwner("owner@example.com", models.UserRole{SubprojectID: subproject.ID})

	existing := models.Category{Name: "Materiaal", ProjectID: &subproject.ProjectID}
	suite.Require().Nil(models.DB.Create(&existing).Error)

	tests := []struct {
		name   string
		user   models.User
		body   v1.CategoryEditable
		status int
	}{
		{"No parent", admin, v1.CategoryEditable{Name: "Zaden"}, http.StatusBadRequest},
		{"Both parents", admin, v1.CategoryEditable{Name: "Zaden", ProjectID: &subproject.ProjectID, SubprojectID: &subproject.ID}, http.StatusBadRequest},
		{"Duplicate name", admin, v1.CategoryEditable{Name: "Materiaal", ProjectID: &subproject.ProjectID}, http.StatusBadRequest},
		{"Initiative owner for project", owner, v1.CategoryEditable{Name: "Zaden", ProjectID: &subproject.ProjectID}, http.StatusForbidden},
		{"Unknown project", admin, v1.CategoryEditable{Name: "Zaden", ProjectID: &admin.ID}, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			recorder := suite.request(tt.user, http.MethodPost, "http://example.com/v1/categories", tt.body)
			test.AssertHTTPStatus(suite.T(), &recorder, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesDelete() {
	admin := suite.createAdmin()
	project := suite.createProject(models.Project{})
	category := models.Category{Name: "Materiaal", ProjectID: &project.ID}
	suite.Require().Nil(models.DB.Create(&category).Error)

	payment := suite.createPayment(models.Payment{ProjectID: &project.ID, CategoryID: &category.ID})

	recorder := suite.request(suite.createUser("someone@example.com"), http.MethodDelete, fmt.Sprintf("http://example.com/v1/categories/%s", category.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusForbidden)

	recorder = suite.request(admin, http.MethodDelete, fmt.Sprintf("http://example.com/v1/categories/%s", category.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	var reloaded models.Payment
	suite.Require().Nil(models.DB.First(&reloaded, payment.ID).Error)
	suite.Assert().Nil(reloaded.CategoryID, "Payments must not keep a deleted category")

	recorder = suite.request(admin, http.MethodDelete, fmt.Sprintf("http://example.com/v1/categories/%s", category.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
