package models_test

import (
	"time"

	"github.com/openpoen/backend/internal/models"
)

func (suite *TestSuiteStandard) createTestBankAccount(iban string) (models.BankAccount, error) {
	user := models.User{Email: iban + "@example.com", Admin: true, Active: true}
	suite.Require().Nil(models.DB.Create(&user).Error)

	account := models.BankAccount{
		UserID:      user.ID,
		IBAN:        iban,
		BankName:    "BNG",
		ConsentID:   "consent-1",
		AccessToken: "token",
		ExpiresOn:   time.Now().Add(90 * 24 * time.Hour),
	}
	err := models.DB.Create(&account).Error
	return account, err
}

// At most one bank account can be linked.
func (suite *TestSuiteStandard) TestBankAccountSingleton() {
	account, err := suite.createTestBankAccount("NL91BNGH0417164300")
	suite.Require().Nil(err)
	suite.Assert().True(account.Singleton)

	_, err = suite.createTestBankAccount("NL02BNGH0123456789")
	suite.Assert().ErrorIs(err, models.ErrBankAccountLinked)
	suite.Assert().ErrorIs(err, models.ErrDuplicate)

	accounts, err := models.LinkedBankAccounts(models.DB)
	suite.Require().Nil(err)
	suite.Assert().Len(accounts, 1)

	// After unlinking, another account can be linked
	suite.Require().Nil(models.DB.Unscoped().Delete(&account).Error)
	_, err = suite.createTestBankAccount("NL02BNGH0123456789")
	suite.Assert().Nil(err)
}
