package models_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/openpoen/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestPaymentRouteSign() {
	tests := []struct {
		name   string
		amount float64
		route  models.PaymentRoute
		err    error
	}{
		{"Income", 10, models.RouteIncome, nil},
		{"Expense", -10, models.RouteExpense, nil},
		{"Insourcing", -10, models.RouteInsourcing, nil},
		{"Zero expense", 0, models.RouteExpense, nil},
		{"Positive expense", 10, models.RouteExpense, models.ErrPaymentRouteSign},
		{"Positive insourcing", 10, models.RouteInsourcing, models.ErrPaymentRouteSign},
		{"Negative income", -10, models.RouteIncome, models.ErrPaymentRouteSign},
		{"Zero income", 0, models.RouteIncome, models.ErrPaymentRouteSign},
		{"Unknown route", -10, "uitgaven", models.ErrPaymentRouteInvalid},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			p := bankPayment(tt.amount)
			p.Route = tt.route

			err := models.DB.Create(&p).Error
			if tt.err == nil {
				assert.Nil(t, err)
			} else {
				assert.ErrorIs(t, err, tt.err)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestPaymentTypeInvalid() {
	p := bankPayment(-10)
	p.Type = "BNG"

	err := models.DB.Create(&p).Error
	suite.Assert().ErrorIs(err, models.ErrPaymentTypeInvalid)
}

func (suite *TestSuiteStandard) TestBankPaymentUnreferenced() {
	p := bankPayment(-10)
	p.EntryReference = nil

	err := models.DB.Create(&p).Error
	suite.Assert().ErrorIs(err, models.ErrBankPaymentUnreferenced)

	p.RemittanceStructured = ptr("Factuur 2022-001")
	suite.Assert().Nil(models.DB.Create(&p).Error, "structured remittance is enough")
}

func (suite *TestSuiteStandard) TestPaymentTransactionIDUnique() {
	p := suite.createTestPayment(bankPayment(-10))

	duplicate := bankPayment(-10)
	duplicate.TransactionID = p.TransactionID
	err := models.DB.Create(&duplicate).Error
	suite.Assert().ErrorIs(err, models.ErrDuplicate)
	suite.Assert().ErrorIs(err, models.ErrTransactionIDNotUnique)
}

func (suite *TestSuiteStandard) TestPaymentUnknownCard() {
	p := bankPayment(-10)
	p.CardNumber = ptr(cardNumber())

	err := models.DB.Create(&p).Error
	suite.Assert().ErrorIs(err, models.ErrReferenceNotFound)
}

func (suite *TestSuiteStandard) TestCreateManualPayment() {
	project := suite.createTestProject(models.Project{})

	p := models.Payment{
		Type:         models.PaymentTypeManualPayment,
		Amount:       decimal.NewFromFloat(-42.5),
		ProjectID:    &project.ID,
		CreditorName: ptr("Bouwmarkt"),
	}
	suite.Require().Nil(models.CreateManualPayment(models.DB, &p))

	suite.Assert().True(strings.HasPrefix(p.TransactionID, "manual-"), p.TransactionID)
	suite.Assert().Equal(models.RouteExpense, p.Route)

	other := models.Payment{Type: models.PaymentTypeManualPayment, Amount: decimal.NewFromFloat(-1), ProjectID: &project.ID}
	suite.Require().Nil(models.CreateManualPayment(models.DB, &other))
	suite.Assert().NotEqual(p.TransactionID, other.TransactionID)
}

func (suite *TestSuiteStandard) TestCreateManualPaymentErrors() {
	card := suite.createTestCard(nil)
	unknownCard := "6731924000000000000"
	unknownProject := uuid.New()

	tests := []struct {
		name    string
		payment models.Payment
		err     error
	}{
		{"Bank type", models.Payment{Type: models.PaymentTypeBank, Amount: decimal.NewFromFloat(-1)}, models.ErrPaymentNotManual},
		{"Unattributed", models.Payment{Type: models.PaymentTypeManualPayment, Amount: decimal.NewFromFloat(-1)}, models.ErrPaymentUnattributed},
		{"Top-up without card", models.Payment{Type: models.PaymentTypeManualTopup, Amount: decimal.NewFromFloat(50)}, models.ErrTopupInvalid},
		{"Negative top-up", models.Payment{Type: models.PaymentTypeManualTopup, Amount: decimal.NewFromFloat(-50), CardNumber: &card.CardNumber}, models.ErrTopupInvalid},
		{"Route not matching", models.Payment{Type: models.PaymentTypeManualTopup, Route: models.RouteExpense, Amount: decimal.NewFromFloat(50), CardNumber: &card.CardNumber}, models.ErrPaymentRouteSign},
		{"Negative top-up with unknown card", models.Payment{Type: models.PaymentTypeManualTopup, Amount: decimal.NewFromFloat(-50), CardNumber: &unknownCard}, models.ErrTopupInvalid},
		{"Route not matching with unknown project", models.Payment{Type: models.PaymentTypeManualPayment, Route: models.RouteIncome, Amount: decimal.NewFromFloat(-1), ProjectID: &unknownProject}, models.ErrPaymentRouteSign},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.CreateManualPayment(models.DB, &tt.payment)
			assert.ErrorIs(t, err, tt.err)
		})
	}

	topup := models.Payment{Type: models.PaymentTypeManualTopup, Amount: decimal.NewFromFloat(50), CardNumber: &card.CardNumber}
	suite.Assert().Nil(models.CreateManualPayment(models.DB, &topup))
	suite.Assert().Equal(models.RouteIncome, topup.Route)
}

func (suite *TestSuiteStandard) TestBankPaymentFieldsImmutable() {
	project := suite.createTestProject(models.Project{})
	p := suite.createTestPayment(bankPayment(-10))

	for column, value := range map[string]any{
		"transaction_amount":                  decimal.NewFromFloat(-11),
		"transaction_id":                      "changed",
		"creditor_name":                       "Someone else",
		"remittance_information_unstructured": "changed",
		"type":                                models.PaymentTypeManualPayment,
	} {
		err := models.DB.Model(&p).Update(column, value).Error
		suite.Assert().ErrorIs(err, models.ErrPaymentBankFieldImmutable, column)
	}

	err := models.DB.Model(&p).Updates(map[string]any{
		"project_id":             project.ID,
		"hidden":                 true,
		"short_user_description": "Zaden",
	}).Error
	suite.Require().Nil(err, "attribution and annotations can be changed")

	var reloaded models.Payment
	suite.Require().Nil(models.DB.First(&reloaded, p.ID).Error)
	suite.Assert().True(decimal.NewFromFloat(-10).Equal(reloaded.Amount))
	suite.Assert().Equal(project.ID, *reloaded.ProjectID)
	suite.Assert().True(reloaded.Hidden)
	suite.Assert().Equal("Zaden", reloaded.ShortUserDescription)
}

func (suite *TestSuiteStandard) TestPaymentDelete() {
	project := suite.createTestProject(models.Project{})
	bank := suite.createTestPayment(bankPayment(-10))

	err := models.DB.Delete(&bank).Error
	suite.Assert().ErrorIs(err, models.ErrBankPaymentDelete)

	manual := models.Payment{Type: models.PaymentTypeManualPayment, Amount: decimal.NewFromFloat(-1), ProjectID: &project.ID}
	suite.Require().Nil(models.CreateManualPayment(models.DB, &manual))
	suite.Assert().Nil(models.DB.Delete(&manual).Error)
}

func (suite *TestSuiteStandard) TestPaymentAttribution() {
	cardProject := suite.createTestProject(models.Project{})
	paymentProject := suite.createTestProject(models.Project{})
	card := suite.createTestCard(&cardProject.ID)
	loose := suite.createTestCard(nil)

	// Card with project: the card's project wins
	withCard := bankPayment(-10)
	withCard.CardNumber = &card.CardNumber
	withCard.ProjectID = &paymentProject.ID
	withCard = suite.createTestPayment(withCard)

	// Card without project: the payment's project is used
	withLooseCard := bankPayment(-20)
	withLooseCard.CardNumber = &loose.CardNumber
	withLooseCard.ProjectID = &paymentProject.ID
	withLooseCard = suite.createTestPayment(withLooseCard)

	// No card
	plain := bankPayment(-30)
	plain.ProjectID = &paymentProject.ID
	plain = suite.createTestPayment(plain)

	// Not attributed at all
	_ = suite.createTestPayment(bankPayment(-40))

	id, err := withCard.EffectiveProjectID(models.DB)
	suite.Require().Nil(err)
	suite.Assert().Equal(cardProject.ID, *id)

	id, err = withLooseCard.EffectiveProjectID(models.DB)
	suite.Require().Nil(err)
	suite.Assert().Equal(paymentProject.ID, *id)

	var cardPayments []models.Payment
	suite.Require().Nil(models.DB.Scopes(models.ProjectPayments(cardProject.ID)).Find(&cardPayments).Error)
	suite.Require().Len(cardPayments, 1)
	suite.Assert().Equal(withCard.ID, cardPayments[0].ID)

	var projectPayments []models.Payment
	suite.Require().Nil(models.DB.Scopes(models.ProjectPayments(paymentProject.ID)).Order("payments.transaction_amount DESC").Find(&projectPayments).Error)
	suite.Require().Len(projectPayments, 2)
	suite.Assert().Equal(withLooseCard.ID, projectPayments[0].ID)
	suite.Assert().Equal(plain.ID, projectPayments[1].ID)
}

func (suite *TestSuiteStandard) TestPaymentAttributionFollowsCard() {
	first := suite.createTestProject(models.Project{})
	second := suite.createTestProject(models.Project{})
	card := suite.createTestCard(nil)

	p := bankPayment(-10)
	p.CardNumber = &card.CardNumber
	_ = suite.createTestPayment(p)

	_, err := models.AttachDebitCard(models.DB, card.CardNumber, first.ID)
	suite.Require().Nil(err)

	var count int64
	models.DB.Model(&models.Payment{}).Scopes(models.ProjectPayments(first.ID)).Count(&count)
	suite.Assert().Equal(int64(1), count, "payments are attributed through the card at read time")

	models.DB.Model(&models.Payment{}).Scopes(models.ProjectPayments(second.ID)).Count(&count)
	suite.Assert().Equal(int64(0), count)
}

func (suite *TestSuiteStandard) TestPaymentSubprojectOutsideProject() {
	project := suite.createTestProject(models.Project{})
	other := suite.createTestProject(models.Project{})
	inside := suite.createTestSubproject(models.Subproject{ProjectID: project.ID})
	outside := suite.createTestSubproject(models.Subproject{ProjectID: other.ID})
	card := suite.createTestCard(&project.ID)

	valid := bankPayment(-10)
	valid.CardNumber = &card.CardNumber
	valid.SubprojectID = &inside.ID
	valid = suite.createTestPayment(valid)

	foreign := bankPayment(-20)
	foreign.CardNumber = &card.CardNumber
	foreign.SubprojectID = &outside.ID
	foreign = suite.createTestPayment(foreign)

	id, err := valid.EffectiveSubprojectID(models.DB)
	suite.Require().Nil(err)
	suite.Assert().Equal(inside.ID, *id)

	id, err = foreign.EffectiveSubprojectID(models.DB)
	suite.Require().Nil(err)
	suite.Assert().Nil(id, "subproject outside of the effective project is ignored")

	var payments []models.Payment
	suite.Require().Nil(models.DB.Scopes(models.SubprojectPayments(inside)).Find(&payments).Error)
	suite.Require().Len(payments, 1)
	suite.Assert().Equal(valid.ID, payments[0].ID)

	suite.Require().Nil(models.DB.Scopes(models.SubprojectPayments(outside)).Find(&payments).Error)
	suite.Assert().Len(payments, 0)

	suite.Require().Nil(models.DB.Scopes(models.ProjectPayments(project.ID)).Find(&payments).Error)
	suite.Assert().Len(payments, 2, "both payments are attributed to the project")
}

func (suite *TestSuiteStandard) TestPaymentCategoryScope() {
	project := suite.createTestProject(models.Project{})
	other := suite.createTestProject(models.Project{})
	subproject := suite.createTestSubproject(models.Subproject{ProjectID: project.ID})

	projectCategory := suite.createTestCategory(models.Category{ProjectID: &project.ID})
	otherCategory := suite.createTestCategory(models.Category{ProjectID: &other.ID})
	subprojectCategory := suite.createTestCategory(models.Category{SubprojectID: &subproject.ID})

	p := bankPayment(-10)
	p.ProjectID = &project.ID
	p = suite.createTestPayment(p)

	suite.Assert().Nil(models.DB.Model(&p).Update("category_id", projectCategory.ID).Error)
	suite.Assert().ErrorIs(models.DB.Model(&p).Update("category_id", otherCategory.ID).Error, models.ErrCategoryNotInScope)
	suite.Assert().ErrorIs(models.DB.Model(&p).Update("category_id", subprojectCategory.ID).Error, models.ErrCategoryNotInScope)

	suite.Assert().Nil(models.DB.Model(&p).Updates(map[string]any{"subproject_id": subproject.ID, "category_id": subprojectCategory.ID}).Error)
}

func (suite *TestSuiteStandard) TestPaymentBankColumns() {
	columns, err := models.BankColumns()
	suite.Require().Nil(err)

	suite.Assert().ElementsMatch([]string{
		"transaction_id",
		"booking_date",
		"value_date",
		"transaction_amount",
		"transaction_currency",
		"debtor_name",
		"debtor_account_iban",
		"debtor_account_currency",
		"creditor_name",
		"creditor_account_iban",
		"creditor_account_currency",
		"remittance_information_structured",
		"remittance_information_unstructured",
		"entry_reference",
		"end_to_end_id",
	}, columns)
}

func (suite *TestSuiteStandard) TestPaymentNilUUIDsUnset() {
	p := bankPayment(-10)
	p.ProjectID = &uuid.Nil
	p = suite.createTestPayment(p)

	suite.Assert().Nil(p.ProjectID)
}
