package models

import (
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CardNumberPrefix is the issuer prefix of all debit cards of the bank.
const CardNumberPrefix = "6731924"

var cardNumberRegex = regexp.MustCompile(`^` + CardNumberPrefix + `\d{12}$`)

// DebitCard is a card whose number shows up in the unstructured remittance
// information of bank payments. Payments made with the card are attributed
// to the project the card currently belongs to.
type DebitCard struct {
	DefaultModel
	CardNumber string     `json:"cardNumber" gorm:"uniqueIndex" example:"6731924123456789012"`
	ProjectID  *uuid.UUID `json:"projectId" example:"1e777d24-3f5b-4c43-8000-04f65f895578"`
	Project    *Project   `json:"-"`
	Payments   []Payment  `json:"-" gorm:"foreignKey:CardNumber;references:CardNumber"`
}

func (d *DebitCard) BeforeSave(_ *gorm.DB) error {
	d.CardNumber = strings.TrimSpace(d.CardNumber)
	return nil
}

// PaymentCount returns the number of payments made with the card.
func (d DebitCard) PaymentCount(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&Payment{}).Where(&Payment{CardNumber: &d.CardNumber}).Count(&count).Error
	return count, err
}

// AttachDebitCard links the card to the project, creating it if it does not
// exist yet. Cards that already have payments can not be moved to another
// project.
func AttachDebitCard(db *gorm.DB, cardNumber string, projectID uuid.UUID) (DebitCard, error) {
	cardNumber = strings.TrimSpace(cardNumber)
	if !cardNumberRegex.MatchString(cardNumber) {
		return DebitCard{}, ErrCardNumberInvalid
	}

	var card DebitCard
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&Project{}, projectID).Error; err != nil {
			return err
		}

		err := tx.Where(&DebitCard{CardNumber: cardNumber}).First(&card).Error
		if errors.Is(err, ErrResourceNotFound) {
			card = DebitCard{CardNumber: cardNumber, ProjectID: &projectID}
			return tx.Create(&card).Error
		}
		if err != nil {
			return err
		}

		if card.ProjectID != nil && *card.ProjectID == projectID {
			return nil
		}

		if card.ProjectID != nil {
			count, err := card.PaymentCount(tx)
			if err != nil {
				return err
			}
			if count > 0 {
				return ErrCardHasPayments
			}
		}

		return tx.Model(&card).Update("project_id", &projectID).Error
	})

	return card, err
}

// DetachDebitCard removes the card from its project. The link stays intact
// when payments have been made with the card.
func DetachDebitCard(db *gorm.DB, cardNumber string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var card DebitCard
		if err := tx.Where(&DebitCard{CardNumber: cardNumber}).First(&card).Error; err != nil {
			return err
		}

		count, err := card.PaymentCount(tx)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrCardHasPayments
		}

		return tx.Model(&card).Update("project_id", nil).Error
	})
}
