package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/openpoen/backend/internal/controllers/v1"
	"github.com/openpoen/backend/internal/models"
	"github.com/openpoen/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestSubprojectsOptions() {
	admin := suite.createAdmin()
	subproject := suite.createSubproject(models.Subproject{})

	suite.assertOptions(admin, "http://example.com/v1/subprojects", "OPTIONS, POST")
	suite.assertOptions(admin, fmt.Sprintf("http://example.com/v1/subprojects/%s", subproject.ID), "OPTIONS, GET, PATCH")
	suite.assertOptions(admin, fmt.Sprintf("http://example.com/v1/subprojects/%s/finish", subproject.ID), "OPTIONS, POST")
}

func (suite *TestSuiteStandard) TestSubprojectsCreate() {
	project := suite.createProject(models.Project{ContainsSubprojects: true})
	owner := suite.createOwner("owner@example.com", models.UserRole{ProjectID: project.ID})
	budget := int64(2500)

	recorder := suite.request(owner, http.MethodPost, "http://example.com/v1/subprojects", v1.SubprojectEditable{
		ProjectID: project.ID,
		Name:      "Zaden en gereedschap",
		Budget:    &budget,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.SubprojectResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("Zaden en gereedschap", response.Data.Name)
	suite.Assert().False(response.Data.Finished)
	suite.Assert().Equal(int64(2500), response.Data.Amounts.Budget)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/projects/%s/payments?subproject=%s", project.ID, response.Data.ID), response.Data.Links.Payments)
}

func (suite *TestSuiteStandard) TestSubprojectsCreateFails() {
	admin := suite.createAdmin()
	flat := suite.createProject(models.Project{})
	project := suite.createProject(models.Project{ContainsSubprojects: true})
	suite.createSubproject(models.Subproject{ProjectID: project.ID, Name: "Zaden"})
	negative := int64(-5)

	tests := []struct {
		name   string
		user   models.User
		body   any
		status int
	}{
		{"No initiatives in project", admin, v1.SubprojectEditable{ProjectID: flat.ID, Name: "Zaden"}, http.StatusBadRequest},
		{"Not an owner", suite.createUser("someone@example.com"), v1.SubprojectEditable{ProjectID: project.ID, Name: "Gieters"}, http.StatusForbidden},
		{"Project does not exist", admin, v1.SubprojectEditable{ProjectID: suite.createUser("other@example.com").ID, Name: "Gieters"}, http.StatusNotFound},
		{"Duplicate name", admin, v1.SubprojectEditable{ProjectID: project.ID, Name: "Zaden"}, http.StatusBadRequest},
		{"Negative budget", admin, v1.SubprojectEditable{ProjectID: project.ID, Name: "Gieters", Budget: &negative}, http.StatusBadRequest},
		{"Broken body", admin, `{"name": false}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			recorder := suite.request(tt.user, http.MethodPost, "http://example.com/v1/subprojects", tt.body)
			test.AssertHTTPStatus(suite.T(), &recorder, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestSubprojectsGet() {
	project := suite.createProject(models.Project{ContainsSubprojects: true})
	subproject := suite.createSubproject(models.Subproject{ProjectID: project.ID})
	suite.createPayment(models.Payment{ProjectID: &project.ID, SubprojectID: &subproject.ID, Amount: decimal.NewFromInt(-40)})
	suite.createPayment(models.Payment{ProjectID: &project.ID, Amount: decimal.NewFromInt(-10)})

	recorder := suite.request(suite.createUser("someone@example.com"), http.MethodGet, fmt.Sprintf("http://example.com/v1/subprojects/%s", subproject.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.SubprojectResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().True(decimal.NewFromInt(40).Equal(response.Data.Amounts.Expenses), response.Data.Amounts.Expenses.String())
}

func (suite *TestSuiteStandard) TestSubprojectsGetHiddenProject() {
	project := suite.createProject(models.Project{ContainsSubprojects: true, Hidden: true})
	subproject := suite.createSubproject(models.Subproject{ProjectID: project.ID})
	url := fmt.Sprintf("http://example.com/v1/subprojects/%s", subproject.ID)

	recorder := suite.request(suite.createUser("someone@example.com"), http.MethodGet, url, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

	recorder = suite.request(suite.createAdmin(), http.MethodGet, url, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
}

func (suite *TestSuiteStandard) TestSubprojectsUpdate() {
	subproject := suite.createSubproject(models.Subproject{Name: "Zaden"})
	owner := suite.createOwner("owner@example.com", models.UserRole{SubprojectID: subproject.ID})
	other := suite.createProject(models.Project{ContainsSubprojects: true})

	recorder := suite.request(owner, http.MethodPatch, fmt.Sprintf("http://example.com/v1/subprojects/%s", subproject.ID), map[string]any{
		"name":      "Zaden en bollen",
		"projectId": other.ID,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.SubprojectResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("Zaden en bollen", response.Data.Name)
	suite.Assert().Equal(subproject.ProjectID, response.Data.ProjectID, "Initiatives must not move between projects")

	recorder = suite.request(suite.createUser("someone@example.com"), http.MethodPatch, fmt.Sprintf("http://example.com/v1/subprojects/%s", subproject.ID), map[string]any{
		"name": "Bollen",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusForbidden)
}

func (suite *TestSuiteStandard) TestSubprojectsFinish() {
	subproject := suite.createSubproject(models.Subproject{})
	owner := suite.createOwner("owner@example.com", models.UserRole{SubprojectID: subproject.ID})
	url := fmt.Sprintf("http://example.com/v1/subprojects/%s/finish", subproject.ID)

	recorder := suite.request(owner, http.MethodPost, url, v1.SubprojectFinish{})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	recorder = suite.request(owner, http.MethodPost, url, v1.SubprojectFinish{FinishedDescription: "All seeds have been planted"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.SubprojectResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().True(response.Data.Finished)
	suite.Assert().Equal("All seeds have been planted", response.Data.FinishedDescription)

	recorder = suite.request(owner, http.MethodPost, url, v1.SubprojectFinish{FinishedDescription: "Again"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
