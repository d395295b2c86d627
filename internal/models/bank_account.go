package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BankAccount is the bank account linked through a PSD2 consent. A
// deployment has at most one.
type BankAccount struct {
	DefaultModel
	UserID       uuid.UUID  `json:"userId"`
	User         User       `json:"-"`
	IBAN         string     `json:"iban" gorm:"column:iban;uniqueIndex" example:"NL91BNGH0417164300"`
	BankName     string     `json:"bankName" example:"BNG"`
	ConsentID    string     `json:"-"`
	AccessToken  string     `json:"-"`
	RefreshToken string     `json:"-"`
	ExpiresOn    time.Time  `json:"expiresOn"`
	LastImportOn *time.Time `json:"lastImportOn"`
	Singleton    bool       `json:"-" gorm:"uniqueIndex;not null;default:true"` // Always true, the unique index allows one account only
}

func (b *BankAccount) BeforeCreate(tx *gorm.DB) error {
	b.Singleton = true
	return b.DefaultModel.BeforeCreate(tx)
}

func (b *BankAccount) AfterFind(tx *gorm.DB) error {
	err := b.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	b.ExpiresOn = b.ExpiresOn.In(time.UTC)
	if b.LastImportOn != nil {
		t := b.LastImportOn.In(time.UTC)
		b.LastImportOn = &t
	}

	return nil
}

// LinkedBankAccounts returns all linked bank accounts.
func LinkedBankAccounts(db *gorm.DB) ([]BankAccount, error) {
	var accounts []BankAccount
	err := db.Find(&accounts).Error
	return accounts, err
}
