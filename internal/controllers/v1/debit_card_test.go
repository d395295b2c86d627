package v1_test

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	v1 "github.com/openpoen/backend/internal/controllers/v1"
	"github.com/openpoen/backend/internal/models"
	"github.com/openpoen/backend/test"
	"github.com/shopspring/decimal"
)

const cardNumber = "6731924123456789012"

func (suite *TestSuiteStandard) TestDebitCardsOptions() {
	admin := suite.createAdmin()
	_, err := models.AttachDebitCard(models.DB, cardNumber, suite.createProject(models.Project{}).ID)
	suite.Require().Nil(err)

	suite.assertOptions(admin, "http://example.com/v1/debit-cards", "OPTIONS, GET, POST")
	suite.assertOptions(admin, "http://example.com/v1/debit-cards/"+cardNumber, "OPTIONS, GET")
	suite.assertOptions(admin, "http://example.com/v1/debit-cards/"+cardNumber+"/project", "OPTIONS, DELETE")

	recorder := suite.request(admin, http.MethodOptions, "http://example.com/v1/debit-cards/6731924000000000000", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDebitCardsAttach() {
	project := suite.createProject(models.Project{})
	owner := suite.createOwner("owner@example.com", models.UserRole{ProjectID: project.ID})

	recorder := suite.request(owner, http.MethodPost, "http://example.com/v1/debit-cards", v1.DebitCardEditable{
		CardNumber: " " + cardNumber + " ",
		ProjectID:  project.ID,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.DebitCardResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(cardNumber, response.Data.CardNumber)
	suite.Require().NotNil(response.Data.ProjectID)
	suite.Assert().Equal(project.ID, *response.Data.ProjectID)
	suite.Assert().Equal("http://example.com/v1/debit-cards/"+cardNumber, response.Data.Links.Self)

	// Attaching again is idempotent
	recorder = suite.request(owner, http.MethodPost, "http://example.com/v1/debit-cards", v1.DebitCardEditable{
		CardNumber: cardNumber,
		ProjectID:  project.ID,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
}

func (suite *TestSuiteStandard) TestDebitCardsAttachFails() {
	admin := suite.createAdmin()
	project := suite.createProject(models.Project{})
	other := suite.createProject(models.Project{})

	_, err := models.AttachDebitCard(models.DB, cardNumber, project.ID)
	suite.Require().Nil(err)

	number := cardNumber
	suite.createPayment(models.Payment{CardNumber: &number})

	tests := []struct {
		name   string
		user   models.User
		body   v1.DebitCardEditable
		status int
	}{
		{"Invalid number", admin, v1.DebitCardEditable{CardNumber: "1234", ProjectID: project.ID}, http.StatusBadRequest},
		{"Wrong prefix", admin, v1.DebitCardEditable{CardNumber: "1234567123456789012", ProjectID: project.ID}, http.StatusBadRequest},
		{"Unknown project", admin, v1.DebitCardEditable{CardNumber: "6731924000000000001", ProjectID: admin.ID}, http.StatusNotFound},
		{"Not an owner", suite.createUser("someone@example.com"), v1.DebitCardEditable{CardNumber: cardNumber, ProjectID: project.ID}, http.StatusForbidden},
		{"Moving a card with payments", admin, v1.DebitCardEditable{CardNumber: cardNumber, ProjectID: other.ID}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			recorder := suite.request(tt.user, http.MethodPost, "http://example.com/v1/debit-cards", tt.body)
			test.AssertHTTPStatus(suite.T(), &recorder, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestDebitCardsGet() {
	admin := suite.createAdmin()
	project := suite.createProject(models.Project{})
	other := suite.createProject(models.Project{})

	for number, projectID := range map[string]uuid.UUID{
		cardNumber:            project.ID,
		"6731924000000000001": other.ID,
		"6731924000000000002": project.ID,
	} {
		_, err := models.AttachDebitCard(models.DB, number, projectID)
		suite.Require().Nil(err)
	}

	number := cardNumber
	suite.createPayment(models.Payment{Type: models.PaymentTypeManualTopup, CardNumber: &number, Amount: decimal.NewFromInt(50)})
	suite.createPayment(models.Payment{CardNumber: &number, Amount: decimal.NewFromInt(-20)})

	recorder := suite.request(admin, http.MethodGet, fmt.Sprintf("http://example.com/v1/debit-cards?project=%s", project.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var list v1.DebitCardListResponse
	test.DecodeResponse(suite.T(), &recorder, &list)
	suite.Require().Len(list.Data, 2)
	suite.Assert().Equal("6731924000000000002", list.Data[0].CardNumber)
	suite.Assert().Equal(cardNumber, list.Data[1].CardNumber)

	recorder = suite.request(admin, http.MethodGet, "http://example.com/v1/debit-cards", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	test.DecodeResponse(suite.T(), &recorder, &list)
	suite.Assert().Len(list.Data, 3)

	recorder = suite.request(admin, http.MethodGet, "http://example.com/v1/debit-cards/"+cardNumber, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.DebitCardResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().True(decimal.NewFromInt(50).Equal(response.Data.Amounts.Awarded), response.Data.Amounts.Awarded.String())
	suite.Assert().True(decimal.NewFromInt(20).Equal(response.Data.Amounts.Spent), response.Data.Amounts.Spent.String())

	recorder = suite.request(admin, http.MethodGet, "http://example.com/v1/debit-cards?project=not-a-uuid", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestDebitCardsDetach() {
	project := suite.createProject(models.Project{})
	owner := suite.createOwner("owner@example.com", models.UserRole{ProjectID: project.ID})

	_, err := models.AttachDebitCard(models.DB, cardNumber, project.ID)
	suite.Require().Nil(err)

	recorder := suite.request(suite.createUser("someone@example.com"), http.MethodDelete, "http://example.com/v1/debit-cards/"+cardNumber+"/project", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusForbidden)

	recorder = suite.request(owner, http.MethodDelete, "http://example.com/v1/debit-cards/"+cardNumber+"/project", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	// The card has no project any more, only admins can handle it now
	recorder = suite.request(owner, http.MethodDelete, "http://example.com/v1/debit-cards/"+cardNumber+"/project", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusForbidden)

	var card models.DebitCard
	suite.Require().Nil(models.DB.Where(&models.DebitCard{CardNumber: cardNumber}).First(&card).Error)
	suite.Assert().Nil(card.ProjectID)
}

func (suite *TestSuiteStandard) TestDebitCardsDetachWithPayments() {
	admin := suite.createAdmin()
	project := suite.createProject(models.Project{})

	_, err := models.AttachDebitCard(models.DB, cardNumber, project.ID)
	suite.Require().Nil(err)

	number := cardNumber
	suite.createPayment(models.Payment{CardNumber: &number})

	recorder := suite.request(admin, http.MethodDelete, "http://example.com/v1/debit-cards/"+cardNumber+"/project", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response struct{ Error string }
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(models.ErrCardHasPayments.Error(), response.Error)
}
