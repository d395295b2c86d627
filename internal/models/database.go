package models

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/openpoen/backend/internal/config"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

type PoenContext string

const (
	DBContextURL PoenContext = "poen-backend-url"
)

// Open connects to the database configured in c. If a database host is
// configured, PostgreSQL is used, otherwise the SQLite database file.
func Open(c config.Config) error {
	if c.DBHost == "" {
		log.Debug().Str("file", c.DBFile).Msg("Database")

		err := os.MkdirAll(filepath.Dir(c.DBFile), os.ModePerm)
		if err != nil {
			return fmt.Errorf("could not create data directory: %w", err)
		}

		return Connect(c.DBFile)
	}

	log.Debug().Str("host", c.DBHost).Msg("Database")
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s", c.DBHost, c.DBUser, c.DBPassword, c.DBName)
	db, err := gorm.Open(postgres.Open(dsn), gormConfig())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	err = migrate(db)
	if err != nil {
		return err
	}

	return setup(db)
}

// Connect opens the SQLite database and configures the connection pool.
func Connect(dsn string) error {
	config := gormConfig()

	// Migration with foreign keys disabled since sqlite copies tables
	// for schema changes
	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	err = migrate(db)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}
	sqlDB.Close()

	// Now, reconnect with foreign keys enabled
	dsn = fmt.Sprintf("%s?_pragma=foreign_keys(1)", dsn)
	db, err = gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err = db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// This is done to prevent SQLITE_BUSY errors.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	return setup(db)
}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger: &logger{
			Logger: log.Logger,
		},
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// setup registers the error translating callbacks and sets DB.
func setup(db *gorm.DB) error {
	callbacks := []struct {
		processor interface {
			Register(string, func(*gorm.DB)) error
		}
		name string
		fn   func(*gorm.DB)
	}{
		{db.Callback().Query().After("*"), "open_poen:after_query", queryCallback},
		{db.Callback().Query().After("*"), "open_poen:after_query_general", generalCallback},
		{db.Callback().Create().After("*"), "open_poen:after_create", createUpdateCallback},
		{db.Callback().Create().After("*"), "open_poen:after_create_general", generalCallback},
		{db.Callback().Update().After("*"), "open_poen:after_update", createUpdateCallback},
		{db.Callback().Update().After("*"), "open_poen:after_update_general", generalCallback},
		{db.Callback().Delete().After("*"), "open_poen:after_delete", createUpdateCallback},
		{db.Callback().Delete().After("*"), "open_poen:after_delete_general", generalCallback},
	}

	for _, c := range callbacks {
		if err := c.processor.Register(c.name, c.fn); err != nil {
			return err
		}
	}

	DB = db
	return nil
}

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		// Use the table name as information about the type of resource
		// and replace "_" with "[space]"
		name := strings.ReplaceAll(db.Statement.Table, "_", " ")

		// Replace pluralized "ies" with "y"
		match := regexp.MustCompile("ies$")
		name = match.ReplaceAllString(name, "y")

		// Remove plural "s"
		name = strings.TrimRight(name, "s")

		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
	}
}

// uniqueConstraints maps unique indices to the error returned when they
// are violated. sqlite reports the columns, postgres the index name.
var uniqueConstraints = []struct {
	sqlite   string
	postgres string
	err      error
}{
	{"projects.name", "idx_projects_name", ErrProjectNameNotUnique},
	{"subprojects.project_id, subprojects.name", "subproject_project_name", ErrSubprojectNameNotUnique},
	{"categories.project_id, categories.name", "category_project_name", ErrCategoryNameNotUnique},
	{"categories.subproject_id, categories.name", "category_subproject_name", ErrCategoryNameNotUnique},
	{"payments.transaction_id", "idx_payments_transaction_id", ErrTransactionIDNotUnique},
	{"debit_cards.card_number", "idx_debit_cards_card_number", ErrCardNumberNotUnique},
	{"bank_accounts.iban", "idx_bank_accounts_iban", ErrIBANNotUnique},
	{"bank_accounts.singleton", "idx_bank_accounts_singleton", ErrBankAccountLinked},
	{"users.email", "idx_users_email", ErrUserEmailNotUnique},
}

// createUpdateCallback inspects errors returned by the database for create,
// update and delete calls and replaces them with user friendly ones
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	msg := db.Error.Error()
	for _, c := range uniqueConstraints {
		if strings.Contains(msg, "UNIQUE constraint failed: "+c.sqlite) || strings.Contains(msg, fmt.Sprintf("%q", c.postgres)) {
			db.Error = c.err
			return
		}
	}

	if strings.Contains(msg, "FOREIGN KEY constraint failed") || strings.Contains(msg, "violates foreign key constraint") {
		db.Error = ErrReferenceNotFound
	}
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// "sql: database is closed" is hard-coded in the sql module
	if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) {
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral
	}
}

// migrate migrates all models to the schema defined in the code.
func migrate(db *gorm.DB) error {
	err := db.AutoMigrate(User{}, Project{}, Subproject{}, Funder{}, DebitCard{}, Category{}, File{}, Payment{}, BankAccount{}, JobLock{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}
