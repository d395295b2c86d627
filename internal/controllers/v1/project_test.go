package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/openpoen/backend/internal/controllers/v1"
	"github.com/openpoen/backend/internal/models"
	"github.com/openpoen/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestProjectsOptions() {
	admin := suite.createAdmin()
	project := suite.createProject(models.Project{})

	suite.assertOptions(admin, "http://example.com/v1/projects", "OPTIONS, GET, POST")
	suite.assertOptions(admin, fmt.Sprintf("http://example.com/v1/projects/%s", project.ID), "OPTIONS, GET, PATCH")
	suite.assertOptions(admin, fmt.Sprintf("http://example.com/v1/projects/%s/payments", project.ID), "OPTIONS, GET")

	recorder := suite.request(admin, http.MethodOptions, "http://example.com/v1/projects/0f2b2c55-3c50-4b0e-9a39-b6a3fa0f1a53", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestProjectsCreate() {
	recorder := suite.request(suite.createAdmin(), http.MethodPost, "http://example.com/v1/projects", v1.ProjectEditable{
		Name:                "Buurtmoestuin",
		Budget:              10000,
		ContainsSubprojects: true,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.ProjectResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("Buurtmoestuin", response.Data.Name)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/projects/%s", response.Data.ID), response.Data.Links.Self)
	suite.Assert().True(response.Data.Amounts.Spent.IsZero())
	suite.Assert().Empty(response.Data.Subprojects)
}

func (suite *TestSuiteStandard) TestProjectsCreateFails() {
	admin := suite.createAdmin()
	suite.createProject(models.Project{Name: "Buurtmoestuin"})

	tests := []struct {
		name   string
		user   models.User
		body   any
		status int
	}{
		{"Not an admin", suite.createUser("someone@example.com"), v1.ProjectEditable{Name: "Speeltuin"}, http.StatusForbidden},
		{"Empty body", admin, "", http.StatusBadRequest},
		{"Negative budget", admin, v1.ProjectEditable{Name: "Speeltuin", Budget: -1}, http.StatusBadRequest},
		{"Duplicate name", admin, v1.ProjectEditable{Name: "Buurtmoestuin"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			recorder := suite.request(tt.user, http.MethodPost, "http://example.com/v1/projects", tt.body)
			test.AssertHTTPStatus(suite.T(), &recorder, tt.status)

			var response v1.ProjectResponse
			test.DecodeResponse(suite.T(), &recorder, &response)
			suite.Assert().NotNil(response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestProjectsGetHidden() {
	admin := suite.createAdmin()
	visible := suite.createProject(models.Project{Name: "Aardappels"})
	hidden := suite.createProject(models.Project{Name: "Bieten", Hidden: true})
	owner := suite.createOwner("owner@example.com", models.UserRole{ProjectID: hidden.ID})
	someone := suite.createUser("someone@example.com")

	tests := []struct {
		name  string
		user  models.User
		names []string
	}{
		{"Admin", admin, []string{visible.Name, hidden.Name}},
		{"Owner", owner, []string{visible.Name, hidden.Name}},
		{"Someone", someone, []string{visible.Name}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			recorder := suite.request(tt.user, http.MethodGet, "http://example.com/v1/projects", "")
			test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

			var response v1.ProjectListResponse
			test.DecodeResponse(suite.T(), &recorder, &response)

			names := make([]string, 0)
			for _, p := range response.Data {
				names = append(names, p.Name)
			}
			suite.Assert().Equal(tt.names, names)
		})
	}

	recorder := suite.request(someone, http.MethodGet, fmt.Sprintf("http://example.com/v1/projects/%s", hidden.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

	recorder = suite.request(owner, http.MethodGet, fmt.Sprintf("http://example.com/v1/projects/%s", hidden.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
}

func (suite *TestSuiteStandard) TestProjectsGetRollUps() {
	admin := suite.createAdmin()
	project := suite.createProject(models.Project{Budget: 1000, ContainsSubprojects: true})
	subproject := suite.createSubproject(models.Subproject{ProjectID: project.ID, Name: "Zaden"})

	suite.createPayment(models.Payment{ProjectID: &project.ID, Amount: decimal.NewFromInt(500)})
	suite.createPayment(models.Payment{ProjectID: &project.ID, SubprojectID: &subproject.ID, Amount: decimal.NewFromInt(-200)})

	recorder := suite.request(admin, http.MethodGet, fmt.Sprintf("http://example.com/v1/projects/%s", project.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ProjectResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().True(decimal.NewFromInt(500).Equal(response.Data.Amounts.Awarded), response.Data.Amounts.Awarded.String())
	suite.Assert().True(decimal.NewFromInt(200).Equal(response.Data.Amounts.Spent), response.Data.Amounts.Spent.String())
	suite.Require().Len(response.Data.Subprojects, 1)
	suite.Assert().True(decimal.NewFromInt(200).Equal(response.Data.Subprojects[0].Amounts.Spent))
}

func (suite *TestSuiteStandard) TestProjectsUpdate() {
	project := suite.createProject(models.Project{Name: "Buurtmoestuin", Budget: 100})
	owner := suite.createOwner("owner@example.com", models.UserRole{ProjectID: project.ID})

	recorder := suite.request(owner, http.MethodPatch, fmt.Sprintf("http://example.com/v1/projects/%s", project.ID), map[string]any{
		"description": "Groenten voor de buurt",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ProjectResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("Groenten voor de buurt", response.Data.Description)
	suite.Assert().Equal("Buurtmoestuin", response.Data.Name)
	suite.Assert().Equal(int64(100), response.Data.Budget)
}

func (suite *TestSuiteStandard) TestProjectsUpdateFails() {
	project := suite.createProject(models.Project{ContainsSubprojects: true})
	owner := suite.createOwner("owner@example.com", models.UserRole{ProjectID: project.ID})
	url := fmt.Sprintf("http://example.com/v1/projects/%s", project.ID)

	tests := []struct {
		name   string
		user   models.User
		url    string
		body   any
		status int
	}{
		{"Not an owner", suite.createUser("someone@example.com"), url, map[string]any{"name": "Nieuw"}, http.StatusForbidden},
		{"Not found", owner, "http://example.com/v1/projects/0f2b2c55-3c50-4b0e-9a39-b6a3fa0f1a53", map[string]any{"name": "Nieuw"}, http.StatusNotFound},
		{"Invalid ID", owner, "http://example.com/v1/projects/not-a-uuid", map[string]any{"name": "Nieuw"}, http.StatusBadRequest},
		{"Empty body", owner, url, "", http.StatusBadRequest},
		{"Broken body", owner, url, `{"name": 2}`, http.StatusBadRequest},
		{"Contains subprojects", owner, url, map[string]any{"containsSubprojects": false}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			recorder := suite.request(tt.user, http.MethodPatch, tt.url, tt.body)
			test.AssertHTTPStatus(suite.T(), &recorder, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestProjectsPayments() {
	project := suite.createProject(models.Project{ContainsSubprojects: true})
	subproject := suite.createSubproject(models.Subproject{ProjectID: project.ID})
	owner := suite.createOwner("owner@example.com", models.UserRole{ProjectID: project.ID})
	someone := suite.createUser("someone@example.com")

	suite.createPayment(models.Payment{ProjectID: &project.ID, ShortUserDescription: "Zaden"})
	suite.createPayment(models.Payment{ProjectID: &project.ID, SubprojectID: &subproject.ID, ShortUserDescription: "Gieter"})
	suite.createPayment(models.Payment{ProjectID: &project.ID, Hidden: true, ShortUserDescription: "Geheim"})
	suite.createPayment(models.Payment{ProjectID: &project.ID, Amount: decimal.NewFromInt(100), ShortUserDescription: "Subsidie"})

	// Payments of other projects are not listed
	other := suite.createProject(models.Project{})
	suite.createPayment(models.Payment{ProjectID: &other.ID})

	tests := []struct {
		name  string
		user  models.User
		query string
		len   int
		total int64
	}{
		{"Owner sees hidden", owner, "", 4, 4},
		{"Someone does not", someone, "", 3, 3},
		{"Subproject", owner, fmt.Sprintf("?subproject=%s", subproject.ID), 1, 1},
		{"Route", owner, "?route=income", 1, 1},
		{"Hidden", owner, "?hidden=true", 1, 1},
		{"Limit", owner, "?limit=2", 2, 4},
		{"Offset", owner, "?offset=3", 1, 4},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			recorder := suite.request(tt.user, http.MethodGet, fmt.Sprintf("http://example.com/v1/projects/%s/payments%s", project.ID, tt.query), "")
			test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

			var response v1.PaymentListResponse
			test.DecodeResponse(suite.T(), &recorder, &response)
			suite.Assert().Len(response.Data, tt.len)
			suite.Assert().Equal(tt.total, response.Pagination.Total)
		})
	}
}

// TestProjectsDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestProjectsDBClosed() {
	admin := suite.createAdmin()
	suite.CloseDB()

	recorder := suite.request(admin, http.MethodGet, "http://example.com/v1/projects", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}
