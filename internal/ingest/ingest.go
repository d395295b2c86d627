package ingest

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/openpoen/backend/internal/config"
	"github.com/openpoen/backend/internal/models"
	"github.com/openpoen/backend/internal/psd2"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

const batchSize = 100

// Bank is the part of the bank API the ingestor needs.
type Bank interface {
	ReadAccounts(ctx context.Context, consentID, accessToken string) ([]psd2.Account, error)
	ReadTransactionArchive(ctx context.Context, consentID, accessToken, resourceID string, from, to time.Time) ([]byte, error)
}

// Result summarises an ingestion run.
type Result struct {
	New        int      `json:"new"`        // Payments that were stored
	Duplicates int      `json:"duplicates"` // Records that were already stored or appeared twice in the archive
	Skipped    int      `json:"skipped"`    // Records that are not final yet
	NewCards   []string `json:"newCards"`   // Debit cards that were seen for the first time
}

// Ingestor pulls the booked transactions of the linked bank account and
// stores the new ones as payments.
type Ingestor struct {
	db   *gorm.DB
	bank Bank
	loc  *time.Location
	now  func() time.Time
}

func New(db *gorm.DB, bank Bank, c config.Config) *Ingestor {
	loc := c.Location
	if loc == nil {
		loc = time.UTC
	}

	return &Ingestor{
		db:   db,
		bank: bank,
		loc:  loc,
		now:  time.Now,
	}
}

// Window returns the booking date range that is requested from the bank:
// from 365 days ago until yesterday.
func Window(now time.Time) (from, to time.Time) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return today.AddDate(0, 0, -365), today.AddDate(0, 0, -1)
}

// Run performs one ingestion. Either all new payments are stored or none.
func (i *Ingestor) Run(ctx context.Context) (Result, error) {
	accounts, err := models.LinkedBankAccounts(i.db.WithContext(ctx))
	if err != nil {
		return Result{}, err
	}

	if len(accounts) == 0 {
		log.Info().Msg("No bank account linked, nothing to ingest")
		return Result{}, nil
	}

	if len(accounts) > 1 {
		return Result{}, fmt.Errorf("%w: %d bank accounts are linked", ErrMisconfigured, len(accounts))
	}
	account := accounts[0]

	bankAccounts, err := i.bank.ReadAccounts(ctx, account.ConsentID, account.AccessToken)
	if err != nil {
		return Result{}, err
	}

	if len(bankAccounts) != 1 {
		return Result{}, fmt.Errorf("%w: the consent grants access to %d accounts, expected 1", ErrMisconfigured, len(bankAccounts))
	}

	from, to := Window(i.now().In(i.loc))
	data, err := i.bank.ReadTransactionArchive(ctx, account.ConsentID, account.AccessToken, bankAccounts[0].ResourceID, from, to)
	if err != nil {
		return Result{}, err
	}

	records, err := Extract(data)
	if err != nil {
		return Result{}, err
	}

	payments, result, err := i.candidates(records)
	if err != nil {
		return Result{}, err
	}

	payments, err = i.dropExisting(ctx, payments, &result)
	if err != nil {
		return Result{}, err
	}

	err = i.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result.NewCards, err = createCards(tx, payments)
		if err != nil {
			return err
		}

		if len(payments) == 0 {
			return nil
		}
		return tx.CreateInBatches(&payments, batchSize).Error
	})
	if err != nil {
		return Result{}, err
	}
	result.New = len(payments)

	err = i.db.WithContext(ctx).Model(&account).Update("last_import_on", i.now().UTC()).Error
	if err != nil {
		return result, err
	}

	log.Info().
		Int("new", result.New).
		Int("duplicates", result.Duplicates).
		Int("skipped", result.Skipped).
		Strs("new_cards", result.NewCards).
		Str("iban", account.IBAN).
		Msg("Ingested transactions")

	return result, nil
}

// candidates converts the records to payments, dropping records that are
// not final and duplicates within the archive.
func (i *Ingestor) candidates(records []map[string]any) ([]models.Payment, Result, error) {
	var result Result
	payments := make([]models.Payment, 0, len(records))
	seen := map[string]bool{}
	drift := map[string]bool{}

	columns, err := models.BankColumns()
	if err != nil {
		return nil, result, err
	}

	for _, raw := range records {
		record := Normalise(raw)

		for key := range record {
			if !slices.Contains(columns, key) {
				drift[key] = true
			}
		}

		if skip(record) {
			result.Skipped++
			continue
		}

		p, err := toPayment(record, i.loc)
		if err != nil {
			return nil, result, err
		}

		if seen[p.TransactionID] {
			result.Duplicates++
			continue
		}
		seen[p.TransactionID] = true

		payments = append(payments, p)
	}

	if len(drift) > 0 {
		keys := make([]string, 0, len(drift))
		for key := range drift {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		log.Warn().Strs("keys", keys).Msg("Bank records contain keys without payment column, they are only kept in the raw record")
	}

	return payments, result, nil
}

// dropExisting removes all payments whose transaction ID is already stored.
// Deleted payments count as stored.
func (i *Ingestor) dropExisting(ctx context.Context, payments []models.Payment, result *Result) ([]models.Payment, error) {
	existing := map[string]bool{}

	for start := 0; start < len(payments); start += batchSize {
		end := min(start+batchSize, len(payments))

		ids := make([]string, 0, end-start)
		for _, p := range payments[start:end] {
			ids = append(ids, p.TransactionID)
		}

		var found []string
		err := i.db.WithContext(ctx).Unscoped().Model(&models.Payment{}).Where("transaction_id IN ?", ids).Pluck("transaction_id", &found).Error
		if err != nil {
			return nil, err
		}

		for _, id := range found {
			existing[id] = true
		}
	}

	fresh := make([]models.Payment, 0, len(payments))
	for _, p := range payments {
		if existing[p.TransactionID] {
			result.Duplicates++
			continue
		}
		fresh = append(fresh, p)
	}

	return fresh, nil
}

// createCards stores all debit cards the payments were made with that are
// not known yet. It returns their numbers.
func createCards(tx *gorm.DB, payments []models.Payment) ([]string, error) {
	numbers := []string{}
	for _, p := range payments {
		if p.CardNumber != nil && !slices.Contains(numbers, *p.CardNumber) {
			numbers = append(numbers, *p.CardNumber)
		}
	}

	if len(numbers) == 0 {
		return []string{}, nil
	}

	var known []string
	err := tx.Unscoped().Model(&models.DebitCard{}).Where("card_number IN ?", numbers).Pluck("card_number", &known).Error
	if err != nil {
		return nil, err
	}

	cards := []models.DebitCard{}
	created := []string{}
	for _, number := range numbers {
		if slices.Contains(known, number) {
			continue
		}
		cards = append(cards, models.DebitCard{CardNumber: number})
		created = append(created, number)
	}

	if len(cards) > 0 {
		if err := tx.CreateInBatches(&cards, batchSize).Error; err != nil {
			return nil, err
		}
	}

	return created, nil
}
