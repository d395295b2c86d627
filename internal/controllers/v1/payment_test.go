package v1_test

import (
	"fmt"
	"net/http"
	"time"

	v1 "github.com/openpoen/backend/internal/controllers/v1"
	"github.com/openpoen/backend/internal/models"
	"github.com/openpoen/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestPaymentsOptions() {
	admin := suite.createAdmin()
	project := suite.createProject(models.Project{})
	payment := suite.createPayment(models.Payment{ProjectID: &project.ID})

	suite.assertOptions(admin, "http://example.com/v1/payments", "OPTIONS, POST")
	suite.assertOptions(admin, fmt.Sprintf("http://example.com/v1/payments/%s", payment.ID), "OPTIONS, GET, PATCH, DELETE")

	recorder := suite.request(admin, http.MethodOptions, "http://example.com/v1/payments/not-a-uuid", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestPaymentsCreate() {
	project := suite.createProject(models.Project{})
	owner := suite.createOwner("owner@example.com", models.UserRole{ProjectID: project.ID})
	bookingDate := time.Date(2023, 3, 14, 0, 0, 0, 0, time.UTC)

	recorder := suite.request(owner, http.MethodPost, "http://example.com/v1/payments", v1.PaymentCreate{
		Type: models.PaymentTypeManualPayment,
		PaymentEditable: v1.PaymentEditable{
			ProjectID:            &project.ID,
			Amount:               decimal.NewFromFloat(-22.5),
			BookingDate:          bookingDate,
			ShortUserDescription: " Zaden ",
		},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.PaymentResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(models.RouteExpense, response.Data.Route)
	suite.Assert().Equal("Zaden", response.Data.ShortUserDescription)
	suite.Assert().True(bookingDate.Equal(response.Data.BookingDate), response.Data.BookingDate.String())
	suite.Assert().Contains(response.Data.TransactionID, "manual-")
	suite.Require().NotNil(response.Data.EffectiveProjectID)
	suite.Assert().Equal(project.ID, *response.Data.EffectiveProjectID)
}

func (suite *TestSuiteStandard) TestPaymentsCreateFails() {
	admin := suite.createAdmin()
	project := suite.createProject(models.Project{})
	number := cardNumber

	tests := []struct {
		name   string
		user   models.User
		body   v1.PaymentCreate
		status int
	}{
		{"Bank payment", admin, v1.PaymentCreate{Type: models.PaymentTypeBank, PaymentEditable: v1.PaymentEditable{ProjectID: &project.ID, Amount: decimal.NewFromInt(-1)}}, http.StatusBadRequest},
		{"No attribution", admin, v1.PaymentCreate{Type: models.PaymentTypeManualPayment, PaymentEditable: v1.PaymentEditable{Amount: decimal.NewFromInt(-1)}}, http.StatusBadRequest},
		{"Top-up without card", admin, v1.PaymentCreate{Type: models.PaymentTypeManualTopup, PaymentEditable: v1.PaymentEditable{ProjectID: &project.ID, Amount: decimal.NewFromInt(10)}}, http.StatusBadRequest},
		{"Top-up with negative amount", admin, v1.PaymentCreate{Type: models.PaymentTypeManualTopup, CardNumber: &number, PaymentEditable: v1.PaymentEditable{Amount: decimal.NewFromInt(-10)}}, http.StatusBadRequest},
		{"Income route for expense", admin, v1.PaymentCreate{Type: models.PaymentTypeManualPayment, PaymentEditable: v1.PaymentEditable{ProjectID: &project.ID, Route: models.RouteIncome, Amount: decimal.NewFromInt(-10)}}, http.StatusBadRequest},
		{"Invalid route", admin, v1.PaymentCreate{Type: models.PaymentTypeManualPayment, PaymentEditable: v1.PaymentEditable{ProjectID: &project.ID, Route: "gift", Amount: decimal.NewFromInt(-10)}}, http.StatusBadRequest},
		{"Not an owner", suite.createUser("someone@example.com"), v1.PaymentCreate{Type: models.PaymentTypeManualPayment, PaymentEditable: v1.PaymentEditable{ProjectID: &project.ID, Amount: decimal.NewFromInt(-1)}}, http.StatusForbidden},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			recorder := suite.request(tt.user, http.MethodPost, "http://example.com/v1/payments", tt.body)
			test.AssertHTTPStatus(suite.T(), &recorder, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestPaymentsCardProjectWins() {
	admin := suite.createAdmin()
	cardProject := suite.createProject(models.Project{})
	other := suite.createProject(models.Project{})

	_, err := models.AttachDebitCard(models.DB, cardNumber, cardProject.ID)
	suite.Require().Nil(err)

	number := cardNumber
	payment := suite.createPayment(models.Payment{ProjectID: &other.ID, CardNumber: &number})

	recorder := suite.request(admin, http.MethodGet, fmt.Sprintf("http://example.com/v1/payments/%s", payment.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.PaymentResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data.EffectiveProjectID)
	suite.Assert().Equal(cardProject.ID, *response.Data.EffectiveProjectID)

	// The project of the payment itself only sees it once the card has no project
	recorder = suite.request(admin, http.MethodGet, fmt.Sprintf("http://example.com/v1/projects/%s/payments", other.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var list v1.PaymentListResponse
	test.DecodeResponse(suite.T(), &recorder, &list)
	suite.Assert().Len(list.Data, 0)
}

func (suite *TestSuiteStandard) TestPaymentsGetHidden() {
	project := suite.createProject(models.Project{})
	owner := suite.createOwner("owner@example.com", models.UserRole{ProjectID: project.ID})
	payment := suite.createPayment(models.Payment{ProjectID: &project.ID, Hidden: true})
	url := fmt.Sprintf("http://example.com/v1/payments/%s", payment.ID)

	recorder := suite.request(suite.createUser("someone@example.com"), http.MethodGet, url, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

	recorder = suite.request(owner, http.MethodGet, url, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = suite.request(suite.createAdmin(), http.MethodGet, url, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
}

func (suite *TestSuiteStandard) TestPaymentsUpdate() {
	project := suite.createProject(models.Project{ContainsSubprojects: true})
	subproject := suite.createSubproject(models.Subproject{ProjectID: project.ID})
	owner := suite.createOwner("owner@example.com", models.UserRole{ProjectID: project.ID})
	payment := suite.createBankPayment(models.Payment{ProjectID: &project.ID})

	recorder := suite.request(owner, http.MethodPatch, fmt.Sprintf("http://example.com/v1/payments/%s", payment.ID), map[string]any{
		"subprojectId":         subproject.ID,
		"route":                models.RouteInsourcing,
		"shortUserDescription": "Gieters",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.PaymentResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(models.RouteInsourcing, response.Data.Route)
	suite.Assert().Equal("Gieters", response.Data.ShortUserDescription)
	suite.Require().NotNil(response.Data.EffectiveSubprojectID)
	suite.Assert().Equal(subproject.ID, *response.Data.EffectiveSubprojectID)
	suite.Assert().True(payment.Amount.Equal(response.Data.Amount))
}

func (suite *TestSuiteStandard) TestPaymentsUpdateFails() {
	admin := suite.createAdmin()
	project := suite.createProject(models.Project{ContainsSubprojects: true})
	foreign := suite.createSubproject(models.Subproject{})
	bank := suite.createBankPayment(models.Payment{ProjectID: &project.ID})
	manual := suite.createPayment(models.Payment{ProjectID: &project.ID})

	other := suite.createProject(models.Project{})
	otherCategory := models.Category{Name: "Elders", ProjectID: &other.ID}
	suite.Require().Nil(models.DB.Create(&otherCategory).Error)

	tests := []struct {
		name    string
		user    models.User
		payment models.Payment
		body    map[string]any
		status  int
	}{
		{"Amount of bank payment", admin, bank, map[string]any{"amount": "-1"}, http.StatusBadRequest},
		{"Creditor of bank payment", admin, bank, map[string]any{"creditorName": "Someone else"}, http.StatusBadRequest},
		{"Initiative of other project", admin, manual, map[string]any{"subprojectId": foreign.ID}, http.StatusBadRequest},
		{"Category of other project", admin, manual, map[string]any{"categoryId": otherCategory.ID}, http.StatusBadRequest},
		{"Route and sign mismatch", admin, manual, map[string]any{"route": models.RouteIncome}, http.StatusBadRequest},
		{"Not an owner", suite.createUser("someone@example.com"), manual, map[string]any{"hidden": true}, http.StatusForbidden},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			recorder := suite.request(tt.user, http.MethodPatch, fmt.Sprintf("http://example.com/v1/payments/%s", tt.payment.ID), tt.body)
			test.AssertHTTPStatus(suite.T(), &recorder, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestPaymentsUpdateManual() {
	project := suite.createProject(models.Project{})
	payment := suite.createPayment(models.Payment{ProjectID: &project.ID})

	recorder := suite.request(suite.createAdmin(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/payments/%s", payment.ID), map[string]any{
		"amount":       "-30",
		"creditorName": "Tuincentrum De Groene Vinger",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.PaymentResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().True(decimal.NewFromInt(-30).Equal(response.Data.Amount), response.Data.Amount.String())
	suite.Require().NotNil(response.Data.CreditorName)
	suite.Assert().Equal("Tuincentrum De Groene Vinger", *response.Data.CreditorName)
}

func (suite *TestSuiteStandard) TestPaymentsFinancialUser() {
	project := suite.createProject(models.Project{})
	payment := suite.createBankPayment(models.Payment{ProjectID: &project.ID})

	financial := suite.createUser("financial@example.com")
	suite.Require().Nil(models.DB.Model(&financial).Update("financial", true).Error)

	recorder := suite.request(financial, http.MethodPatch, fmt.Sprintf("http://example.com/v1/payments/%s", payment.ID), map[string]any{
		"hidden": true,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
}

func (suite *TestSuiteStandard) TestPaymentsDelete() {
	admin := suite.createAdmin()
	project := suite.createProject(models.Project{})
	bank := suite.createBankPayment(models.Payment{ProjectID: &project.ID})
	manual := suite.createPayment(models.Payment{ProjectID: &project.ID})

	recorder := suite.request(admin, http.MethodDelete, fmt.Sprintf("http://example.com/v1/payments/%s", bank.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	recorder = suite.request(admin, http.MethodDelete, fmt.Sprintf("http://example.com/v1/payments/%s", manual.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = suite.request(admin, http.MethodGet, fmt.Sprintf("http://example.com/v1/payments/%s", manual.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
