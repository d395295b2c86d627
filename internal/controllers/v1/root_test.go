package v1_test

import (
	"net/http"

	v1 "github.com/openpoen/backend/internal/controllers/v1"
	"github.com/openpoen/backend/internal/models"
	"github.com/openpoen/backend/test"
)

func (suite *TestSuiteStandard) TestRoot() {
	admin := suite.createAdmin()

	recorder := suite.request(admin, http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.Response
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("http://example.com/v1/bank-account", response.Links.BankAccount)
	suite.Assert().Equal("http://example.com/v1/projects", response.Links.Projects)
	suite.Assert().Equal("http://example.com/v1/categories", response.Links.Categories)

	suite.assertOptions(admin, "http://example.com/v1", "OPTIONS, GET")
}

func (suite *TestSuiteStandard) TestRootUnauthenticated() {
	recorder := test.Request(suite.co, suite.T(), http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestRootInactiveUser() {
	user := suite.createUser("inactive@example.com")
	suite.Require().Nil(models.DB.Model(&user).Update("active", false).Error)

	recorder := suite.request(user, http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)
}
