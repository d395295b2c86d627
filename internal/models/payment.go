package models

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

type PaymentRoute string

const (
	RouteIncome     PaymentRoute = "income"
	RouteExpense    PaymentRoute = "expense"
	RouteInsourcing PaymentRoute = "insourcing"
)

func (r PaymentRoute) Valid() bool {
	return r == RouteIncome || r == RouteExpense || r == RouteInsourcing
}

// RouteOf returns the route for a bank payment with the given amount.
func RouteOf(amount decimal.Decimal) PaymentRoute {
	if amount.IsPositive() {
		return RouteIncome
	}
	return RouteExpense
}

type PaymentType string

const (
	PaymentTypeBank          PaymentType = "bank"
	PaymentTypeManualPayment PaymentType = "manual-payment"
	PaymentTypeManualTopup   PaymentType = "manual-topup"
)

func (t PaymentType) Valid() bool {
	return t == PaymentTypeBank || t.Manual()
}

func (t PaymentType) Manual() bool {
	return t == PaymentTypeManualPayment || t == PaymentTypeManualTopup
}

// Payment is a single transaction on the linked bank account or a manually
// entered one.
//
// The column names of all bank derived fields equal the flattened and
// snake cased keys of the bank's transaction records.
type Payment struct {
	DefaultModel
	TransactionID           string          `json:"transactionId" gorm:"column:transaction_id;uniqueIndex" example:"2022-05-13-00.07.12.591378"`
	BookingDate             time.Time       `json:"bookingDate" gorm:"column:booking_date" example:"2022-05-13T00:00:00Z"`
	ValueDate               *time.Time      `json:"valueDate" gorm:"column:value_date" example:"2022-05-13T00:00:00Z"`
	Amount                  decimal.Decimal `json:"amount" gorm:"column:transaction_amount;type:DECIMAL(20,8)" example:"-22.5"`
	TransactionCurrency     *string         `json:"transactionCurrency" gorm:"column:transaction_currency" example:"EUR"`
	DebtorName              *string         `json:"debtorName" gorm:"column:debtor_name"`
	DebtorAccount           *string         `json:"debtorAccount" gorm:"column:debtor_account_iban" example:"NL91BNGH0417164300"`
	DebtorAccountCurrency   *string         `json:"debtorAccountCurrency" gorm:"column:debtor_account_currency"`
	CreditorName            *string         `json:"creditorName" gorm:"column:creditor_name" example:"Tuincentrum De Groene Vinger"`
	CreditorAccount         *string         `json:"creditorAccount" gorm:"column:creditor_account_iban"`
	CreditorAccountCurrency *string         `json:"creditorAccountCurrency" gorm:"column:creditor_account_currency"`
	RemittanceStructured    *string         `json:"remittanceStructured" gorm:"column:remittance_information_structured"`
	RemittanceUnstructured  *string         `json:"remittanceUnstructured" gorm:"column:remittance_information_unstructured" example:"Betaalautomaat 6731924123456789012"`
	EntryReference          *string         `json:"entryReference" gorm:"column:entry_reference"`
	EndToEndID              *string         `json:"endToEndId" gorm:"column:end_to_end_id"`
	Route                   PaymentRoute    `json:"route" example:"expense"`
	Type                    PaymentType     `json:"type" example:"bank"`
	CardNumber              *string         `json:"cardNumber" example:"6731924123456789012"`
	ProjectID               *uuid.UUID      `json:"projectId"`
	Project                 *Project        `json:"-"`
	SubprojectID            *uuid.UUID      `json:"subprojectId"`
	Subproject              *Subproject     `json:"-"`
	CategoryID              *uuid.UUID      `json:"categoryId"`
	Category                *Category       `json:"-"`
	Hidden                  bool            `json:"hidden" default:"false"`
	ShortUserDescription    string          `json:"shortUserDescription"`
	LongUserDescription     string          `json:"longUserDescription"`
	Attachments             []File          `json:"-" gorm:"many2many:payment_attachments"`
	RawRecord               datatypes.JSON  `json:"-"` // The normalised bank record as it was imported
}

// bankRecordFields are the fields set from the bank's transaction records.
var bankRecordFields = []string{
	"TransactionID",
	"BookingDate",
	"ValueDate",
	"Amount",
	"TransactionCurrency",
	"DebtorName",
	"DebtorAccount",
	"DebtorAccountCurrency",
	"CreditorName",
	"CreditorAccount",
	"CreditorAccountCurrency",
	"RemittanceStructured",
	"RemittanceUnstructured",
	"EntryReference",
	"EndToEndID",
}

// bankFields can not be changed on bank payments.
var bankFields = append([]string{"Type", "CardNumber", "RawRecord"}, bankRecordFields...)

// BankColumns returns the column names of all fields that are set from bank
// records. They are equal to the normalised keys of the records.
func BankColumns() ([]string, error) {
	s, err := schema.Parse(&Payment{}, &sync.Map{}, schema.NamingStrategy{})
	if err != nil {
		return nil, err
	}

	columns := make([]string, 0, len(bankRecordFields))
	for _, name := range bankRecordFields {
		columns = append(columns, s.LookUpField(name).DBName)
	}

	return columns, nil
}

func (p *Payment) AfterFind(tx *gorm.DB) error {
	err := p.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	p.BookingDate = p.BookingDate.In(time.UTC)
	if p.ValueDate != nil {
		v := p.ValueDate.In(time.UTC)
		p.ValueDate = &v
	}

	return nil
}

func (p *Payment) BeforeSave(_ *gorm.DB) error {
	p.ShortUserDescription = strings.TrimSpace(p.ShortUserDescription)
	p.LongUserDescription = strings.TrimSpace(p.LongUserDescription)

	// Nil UUIDs are treated as unset
	for _, id := range []**uuid.UUID{&p.ProjectID, &p.SubprojectID, &p.CategoryID} {
		if *id != nil && **id == uuid.Nil {
			*id = nil
		}
	}

	if p.CardNumber != nil && strings.TrimSpace(*p.CardNumber) == "" {
		p.CardNumber = nil
	}

	if p.BookingDate.IsZero() {
		p.BookingDate = time.Now().In(time.UTC)
	} else {
		p.BookingDate = p.BookingDate.In(time.UTC)
	}

	return nil
}

// BeforeUpdate rejects changes to fields that only the bank sets.
func (p *Payment) BeforeUpdate(tx *gorm.DB) error {
	if p.Type == PaymentTypeBank && tx.Statement.Changed(bankFields...) {
		return ErrPaymentBankFieldImmutable
	}

	return nil
}

func (p *Payment) BeforeDelete(_ *gorm.DB) error {
	if p.Type == PaymentTypeBank {
		return ErrBankPaymentDelete
	}

	return nil
}

// BeforeCreate checks the invariants that do not need the database, so a
// payment that is invalid by itself is rejected before its references are.
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if err := p.checkInvariants(); err != nil {
		return err
	}

	return p.DefaultModel.BeforeCreate(tx)
}

// AfterSave enforces the payment invariants.
func (p *Payment) AfterSave(tx *gorm.DB) error {
	if err := p.checkInvariants(); err != nil {
		return err
	}

	if p.CategoryID != nil {
		return p.checkCategory(tx)
	}

	return nil
}

func (p Payment) checkInvariants() error {
	if !p.Type.Valid() {
		return fmt.Errorf("%w: %s", ErrPaymentTypeInvalid, p.Type)
	}

	if !p.Route.Valid() {
		return fmt.Errorf("%w: %s", ErrPaymentRouteInvalid, p.Route)
	}

	if p.Amount.IsPositive() != (p.Route == RouteIncome) {
		return ErrPaymentRouteSign
	}

	switch p.Type {
	case PaymentTypeBank:
		if p.EntryReference == nil && p.RemittanceStructured == nil {
			return ErrBankPaymentUnreferenced
		}
	case PaymentTypeManualPayment:
		if p.ProjectID == nil && p.CardNumber == nil {
			return ErrPaymentUnattributed
		}
	case PaymentTypeManualTopup:
		if p.CardNumber == nil || !p.Amount.IsPositive() {
			return ErrTopupInvalid
		}
	}

	return nil
}

// checkCategory verifies that the category belongs to the subproject or
// project the payment is attributed to.
func (p Payment) checkCategory(tx *gorm.DB) error {
	var category Category
	err := tx.First(&category, p.CategoryID).Error
	if err != nil {
		return err
	}

	if category.SubprojectID != nil {
		if p.SubprojectID == nil || *p.SubprojectID != *category.SubprojectID {
			return ErrCategoryNotInScope
		}
		return nil
	}

	projectID, err := p.EffectiveProjectID(tx)
	if err != nil {
		return err
	}

	if projectID == nil || category.ProjectID == nil || *projectID != *category.ProjectID {
		return ErrCategoryNotInScope
	}

	return nil
}

// EffectiveProjectID returns the project the payment is attributed to. If
// the card the payment was made with belongs to a project, that project
// wins. Otherwise, the project set on the payment is used.
func (p Payment) EffectiveProjectID(db *gorm.DB) (*uuid.UUID, error) {
	if p.CardNumber != nil {
		var card DebitCard
		err := db.Where(&DebitCard{CardNumber: *p.CardNumber}).Limit(1).Find(&card).Error
		if err != nil {
			return nil, err
		}

		if card.ProjectID != nil {
			return card.ProjectID, nil
		}
	}

	return p.ProjectID, nil
}

// EffectiveSubprojectID returns the subproject the payment is attributed to.
// A subproject outside of the effective project is ignored, the payment is
// then attributed to the project only.
func (p Payment) EffectiveSubprojectID(db *gorm.DB) (*uuid.UUID, error) {
	if p.SubprojectID == nil {
		return nil, nil
	}

	projectID, err := p.EffectiveProjectID(db)
	if err != nil || projectID == nil {
		return nil, err
	}

	var subproject Subproject
	err = db.Where(&Subproject{DefaultModel: DefaultModel{ID: *p.SubprojectID}}).Limit(1).Find(&subproject).Error
	if err != nil {
		return nil, err
	}

	if subproject.ProjectID != *projectID {
		return nil, nil
	}

	return p.SubprojectID, nil
}

// ProjectPayments scopes a query to all payments attributed to the project.
// Attribution is resolved through the debit card at query time.
func ProjectPayments(projectID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Joins("LEFT JOIN debit_cards ON payments.card_number = debit_cards.card_number AND debit_cards.deleted_at IS NULL").
			Where("debit_cards.project_id = ? OR (debit_cards.project_id IS NULL AND payments.project_id = ?)", projectID, projectID)
	}
}

// SubprojectPayments scopes a query to all payments attributed to the
// subproject.
func SubprojectPayments(subproject Subproject) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Scopes(ProjectPayments(subproject.ProjectID)).Where("payments.subproject_id = ?", subproject.ID)
	}
}

// ManualTransactionID returns a new transaction ID for a manual payment.
func ManualTransactionID() string {
	return "manual-" + uuid.New().String()
}

// CreateManualPayment stores a payment entered by a user. The route
// defaults to the one matching the sign of the amount.
func CreateManualPayment(db *gorm.DB, p *Payment) error {
	if !p.Type.Manual() {
		return ErrPaymentNotManual
	}

	if p.Route == "" {
		p.Route = RouteOf(p.Amount)
	}

	p.TransactionID = ManualTransactionID()
	return db.Create(p).Error
}
