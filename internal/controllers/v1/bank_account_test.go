package v1_test

import (
	"net/http"
	"net/url"
	"time"

	"github.com/openpoen/backend/internal/consent"
	v1 "github.com/openpoen/backend/internal/controllers/v1"
	"github.com/openpoen/backend/internal/jobs"
	"github.com/openpoen/backend/internal/models"
	"github.com/openpoen/backend/internal/psd2"
	"github.com/openpoen/backend/test"
)

func (suite *TestSuiteStandard) TestBankAccountOptions() {
	admin := suite.createAdmin()

	suite.assertOptions(admin, "http://example.com/v1/bank-account", "OPTIONS, GET, DELETE")
	suite.assertOptions(admin, "http://example.com/v1/bank-account/link", "OPTIONS, POST")
	suite.assertOptions(admin, "http://example.com/v1/bank-account/callback", "OPTIONS, GET")
	suite.assertOptions(admin, "http://example.com/v1/bank-account/import", "OPTIONS, POST")
}

func (suite *TestSuiteStandard) TestBankAccountStatusUnlinked() {
	recorder := suite.request(suite.createAdmin(), http.MethodGet, "http://example.com/v1/bank-account", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BankAccountStatusResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(consent.StateUnlinked, response.Data.State)
	suite.Assert().Empty(suite.bank.calls)
}

func (suite *TestSuiteStandard) TestBankAccountStatusLinked() {
	admin := suite.createAdmin()
	suite.linkAccount(admin)

	recorder := suite.request(admin, http.MethodGet, "http://example.com/v1/bank-account", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BankAccountStatusResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(consent.StateLinked, response.Data.State)
	suite.Assert().Equal("NL91BNGH0417164300", response.Data.IBAN)
	suite.Assert().True(response.Data.Online)
	suite.Assert().Equal(consent.ColourGrey, response.Data.LastImportColour)
}

func (suite *TestSuiteStandard) TestBankAccountStatusForbidden() {
	recorder := suite.request(suite.createUser("someone@example.com"), http.MethodGet, "http://example.com/v1/bank-account", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusForbidden)
}

func (suite *TestSuiteStandard) TestBankAccountLink() {
	admin := suite.createAdmin()

	recorder := suite.request(admin, http.MethodPost, "http://example.com/v1/bank-account/link", v1.BankAccountLinkEditable{
		IBAN:       "NL91BNGH0417164300",
		ValidUntil: suite.now.AddDate(0, 0, 89),
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.BankAccountLinkResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(consent.StateAwaitingAuthorisation, response.Data.State)

	u, err := url.Parse(response.Data.AuthoriseURL)
	suite.Require().Nil(err)
	suite.Assert().NotEmpty(u.Query().Get("state"))
	suite.Assert().Equal([]string{"CreateConsent"}, suite.bank.calls)
}

func (suite *TestSuiteStandard) TestBankAccountLinkFails() {
	admin := suite.createAdmin()
	valid := suite.now.AddDate(0, 0, 30)

	tests := []struct {
		name   string
		user   models.User
		body   any
		bankOK bool
		status int
	}{
		{"Empty body", admin, "", true, http.StatusBadRequest},
		{"Broken body", admin, `{"iban": 12}`, true, http.StatusBadRequest},
		{"No IBAN", admin, v1.BankAccountLinkEditable{ValidUntil: valid}, true, http.StatusBadRequest},
		{"Invalid IBAN", admin, v1.BankAccountLinkEditable{IBAN: "NL00XXXX", ValidUntil: valid}, true, http.StatusBadRequest},
		{"Valid until in the past", admin, v1.BankAccountLinkEditable{IBAN: "NL91BNGH0417164300", ValidUntil: suite.now.Add(-time.Hour)}, true, http.StatusBadRequest},
		{"Not an admin", suite.createUser("someone@example.com"), v1.BankAccountLinkEditable{IBAN: "NL91BNGH0417164300", ValidUntil: valid}, true, http.StatusForbidden},
		{"Bank unavailable", admin, v1.BankAccountLinkEditable{IBAN: "NL91BNGH0417164300", ValidUntil: valid}, false, http.StatusBadGateway},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.bank.err = nil
			if !tt.bankOK {
				suite.bank.err = psd2.ErrBankUnavailable
			}

			recorder := suite.request(tt.user, http.MethodPost, "http://example.com/v1/bank-account/link", tt.body)
			test.AssertHTTPStatus(suite.T(), &recorder, tt.status)

			var response v1.BankAccountLinkResponse
			test.DecodeResponse(suite.T(), &recorder, &response)
			suite.Assert().NotNil(response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestBankAccountLinkTwice() {
	admin := suite.createAdmin()
	suite.linkAccount(admin)

	recorder := suite.request(admin, http.MethodPost, "http://example.com/v1/bank-account/link", v1.BankAccountLinkEditable{
		IBAN:       "NL91BNGH0417164300",
		ValidUntil: suite.now.AddDate(0, 0, 30),
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestBankAccountCallback() {
	admin := suite.createAdmin()

	recorder := suite.request(admin, http.MethodPost, "http://example.com/v1/bank-account/link", v1.BankAccountLinkEditable{
		IBAN:       "NL91BNGH0417164300",
		ValidUntil: suite.now.AddDate(0, 0, 89),
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var link v1.BankAccountLinkResponse
	test.DecodeResponse(suite.T(), &recorder, &link)

	u, err := url.Parse(link.Data.AuthoriseURL)
	suite.Require().Nil(err)

	query := url.Values{"code": {"the-code"}, "state": {u.Query().Get("state")}}
	recorder = suite.request(admin, http.MethodGet, "http://example.com/v1/bank-account/callback?"+query.Encode(), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BankAccountCallbackResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(jobs.OutcomeLinked, response.Data.Outcome)
	suite.Assert().Equal(jobs.OutcomeLinked.Message(), response.Data.Message)
	suite.Assert().Equal(1, suite.ingestor.calls)

	accounts, err := models.LinkedBankAccounts(models.DB)
	suite.Require().Nil(err)
	suite.Assert().Len(accounts, 1)
}

func (suite *TestSuiteStandard) TestBankAccountCallbackFails() {
	admin := suite.createAdmin()

	tests := []struct {
		name    string
		query   string
		status  int
		outcome jobs.CallbackOutcome
	}{
		{"No parameters", "", http.StatusBadRequest, ""},
		{"No code", "?state=abc", http.StatusBadRequest, ""},
		{"Bad state", "?code=the-code&state=abc", http.StatusBadRequest, jobs.OutcomeBadState},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			recorder := suite.request(admin, http.MethodGet, "http://example.com/v1/bank-account/callback"+tt.query, "")
			test.AssertHTTPStatus(suite.T(), &recorder, tt.status)

			var response v1.BankAccountCallbackResponse
			test.DecodeResponse(suite.T(), &recorder, &response)

			if tt.outcome == "" {
				suite.Assert().NotNil(response.Error)
				return
			}
			suite.Assert().Equal(tt.outcome, response.Data.Outcome)
		})
	}
}

func (suite *TestSuiteStandard) TestBankAccountUnlink() {
	admin := suite.createAdmin()
	suite.linkAccount(admin)

	recorder := suite.request(admin, http.MethodDelete, "http://example.com/v1/bank-account", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal([]string{"RevokeConsent"}, suite.bank.calls)

	recorder = suite.request(admin, http.MethodDelete, "http://example.com/v1/bank-account", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestBankAccountImport() {
	admin := suite.createAdmin()

	recorder := suite.request(admin, http.MethodPost, "http://example.com/v1/bank-account/import", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BankAccountImportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().True(response.Data.OK)
	suite.Assert().Equal(2, response.Data.NewCount)
	suite.Assert().Nil(response.Error)
}

func (suite *TestSuiteStandard) TestBankAccountImportFails() {
	admin := suite.createAdmin()
	suite.ingestor.err = psd2.ErrBankUnavailable

	recorder := suite.request(admin, http.MethodPost, "http://example.com/v1/bank-account/import", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadGateway)

	var response v1.BankAccountImportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().False(response.Data.OK)
	suite.Assert().Equal(jobs.KindBankUnavailable, response.Data.Kind)
	suite.Assert().Equal(jobs.Message(jobs.KindBankUnavailable), *response.Error)

	recorder = suite.request(suite.createUser("someone@example.com"), http.MethodPost, "http://example.com/v1/bank-account/import", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusForbidden)
}
