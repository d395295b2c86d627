package models_test

import (
	"github.com/openpoen/backend/internal/models"
)

func (suite *TestSuiteStandard) TestAttachDebitCardInvalidNumber() {
	project := suite.createTestProject(models.Project{})

	for _, number := range []string{"", "6731924", "673192412345678901", "67319241234567890123", "1234567123456789012", "6731924abcdefghijkl"} {
		_, err := models.AttachDebitCard(models.DB, number, project.ID)
		suite.Assert().ErrorIs(err, models.ErrCardNumberInvalid, number)
	}
}

func (suite *TestSuiteStandard) TestAttachDebitCard() {
	project := suite.createTestProject(models.Project{})

	card, err := models.AttachDebitCard(models.DB, " 6731924123456789012 ", project.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal("6731924123456789012", card.CardNumber)
	suite.Require().NotNil(card.ProjectID)
	suite.Assert().Equal(project.ID, *card.ProjectID)

	// Attaching again is a no-op
	again, err := models.AttachDebitCard(models.DB, card.CardNumber, project.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(card.ID, again.ID)
}

func (suite *TestSuiteStandard) TestAttachDebitCardUnknownProject() {
	project := suite.createTestProject(models.Project{})
	suite.Require().Nil(models.DB.Unscoped().Delete(&project).Error)

	_, err := models.AttachDebitCard(models.DB, cardNumber(), project.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestAttachDebitCardImportedWithoutProject() {
	card := suite.createTestCard(nil)
	payment := bankPayment(-10)
	payment.CardNumber = &card.CardNumber
	_ = suite.createTestPayment(payment)

	project := suite.createTestProject(models.Project{})
	card, err := models.AttachDebitCard(models.DB, card.CardNumber, project.ID)
	suite.Require().Nil(err, "cards without a project can always be attached")
	suite.Assert().Equal(project.ID, *card.ProjectID)
}

func (suite *TestSuiteStandard) TestMoveDebitCard() {
	from := suite.createTestProject(models.Project{})
	to := suite.createTestProject(models.Project{})
	card := suite.createTestCard(&from.ID)

	moved, err := models.AttachDebitCard(models.DB, card.CardNumber, to.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(to.ID, *moved.ProjectID)

	payment := bankPayment(-10)
	payment.CardNumber = &card.CardNumber
	_ = suite.createTestPayment(payment)

	_, err = models.AttachDebitCard(models.DB, card.CardNumber, from.ID)
	suite.Assert().ErrorIs(err, models.ErrCardHasPayments)

	var reloaded models.DebitCard
	suite.Require().Nil(models.DB.First(&reloaded, card.ID).Error)
	suite.Assert().Equal(to.ID, *reloaded.ProjectID)
}

func (suite *TestSuiteStandard) TestDetachDebitCard() {
	project := suite.createTestProject(models.Project{})
	card := suite.createTestCard(&project.ID)

	suite.Require().Nil(models.DetachDebitCard(models.DB, card.CardNumber))

	var reloaded models.DebitCard
	suite.Require().Nil(models.DB.First(&reloaded, card.ID).Error)
	suite.Assert().Nil(reloaded.ProjectID)
}

func (suite *TestSuiteStandard) TestDetachDebitCardWithPayments() {
	project := suite.createTestProject(models.Project{})

	for _, amounts := range [][]float64{{-10}, {-10, 25, -3.5}} {
		card := suite.createTestCard(&project.ID)
		for _, amount := range amounts {
			payment := bankPayment(amount)
			payment.CardNumber = &card.CardNumber
			_ = suite.createTestPayment(payment)
		}

		err := models.DetachDebitCard(models.DB, card.CardNumber)
		suite.Assert().ErrorIs(err, models.ErrCardHasPayments)

		var reloaded models.DebitCard
		suite.Require().Nil(models.DB.First(&reloaded, card.ID).Error)
		suite.Require().NotNil(reloaded.ProjectID, "link must stay intact")
		suite.Assert().Equal(project.ID, *reloaded.ProjectID)
	}
}

func (suite *TestSuiteStandard) TestDetachUnknownDebitCard() {
	err := models.DetachDebitCard(models.DB, cardNumber())
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestDebitCardNumberUnique() {
	card := suite.createTestCard(nil)

	err := models.DB.Create(&models.DebitCard{CardNumber: card.CardNumber}).Error
	suite.Assert().ErrorIs(err, models.ErrCardNumberNotUnique)
}
