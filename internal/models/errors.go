package models

import (
	"errors"
	"fmt"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
	ErrDuplicate        = errors.New("already exists")
	ErrPermissionDenied = errors.New("you are not allowed to do this")
)

var ErrReferenceNotFound = fmt.Errorf("%w resource with the referenced ID", ErrResourceNotFound)

// Uniqueness
var (
	ErrProjectNameNotUnique    = fmt.Errorf("a project with this name %w", ErrDuplicate)
	ErrSubprojectNameNotUnique = fmt.Errorf("an initiative with this name %w in this project", ErrDuplicate)
	ErrCategoryNameNotUnique   = fmt.Errorf("a category with this name %w", ErrDuplicate)
	ErrTransactionIDNotUnique  = fmt.Errorf("a payment with this transaction ID %w", ErrDuplicate)
	ErrCardNumberNotUnique     = fmt.Errorf("a debit card with this number %w", ErrDuplicate)
	ErrIBANNotUnique           = fmt.Errorf("a bank account with this IBAN %w", ErrDuplicate)
	ErrBankAccountLinked       = fmt.Errorf("a linked bank account %w", ErrDuplicate)
	ErrUserEmailNotUnique      = fmt.Errorf("a user with this email address %w", ErrDuplicate)
	ErrUserAlreadyOwner        = fmt.Errorf("this user is already an owner: ownership %w", ErrDuplicate)
)

// Project and subproject errors
var (
	ErrBudgetNegative                = errors.New("budgets must not be negative")
	ErrContainsSubprojectsImmutable  = errors.New("containsSubprojects can not be changed after the project has been created")
	ErrFinishedDescriptionRequired   = errors.New("a finished initiative needs a closing description")
	ErrSubprojectUnfinish            = errors.New("a finished initiative can not be reopened")
	ErrSubprojectAlreadyFinished     = errors.New("this initiative is already finished")
	ErrProjectHasNoSubprojects       = errors.New("this project does not contain initiatives")
	ErrSubprojectNotInProject        = errors.New("the initiative does not belong to the project of this payment")
	ErrCategoryNotInScope            = errors.New("the category does not belong to the project or initiative of this payment")
	ErrCategoryParent                = errors.New("a category belongs to exactly one of a project or an initiative")
	ErrMediatypeInvalid              = errors.New("the media type of a file must be one of 'media' or 'receipt'")
	ErrUserEmailInvalid              = errors.New("the email address is not valid")
	ErrUserAddRequiresRole           = errors.New("a user needs to be admin or the owner of a project or initiative")
	ErrUserProjectAndSubprojectGiven = errors.New("only one of project and initiative may be specified")
)

// Funder errors
var (
	ErrFunderJustified       = errors.New("this funder has been justified and can not be changed anymore")
	ErrFunderNotJustifiable  = errors.New("a funder can only be justified when it has initiatives and all of them are finished")
	ErrFunderProjectMismatch = errors.New("the initiative belongs to a different project than the funder")
)

// Debit card errors
var (
	ErrCardNumberInvalid = errors.New("a debit card number consists of 19 digits and starts with 6731924")
	ErrCardHasPayments   = errors.New("this debit card has payments and can not be detached or moved")
)

// Payment errors
var (
	ErrPaymentTypeInvalid        = errors.New("the payment type must be one of 'bank', 'manual-payment' or 'manual-topup'")
	ErrPaymentRouteInvalid       = errors.New("the route must be one of 'income', 'expense' or 'insourcing'")
	ErrPaymentRouteSign          = errors.New("positive amounts must have the route 'income', all others 'expense' or 'insourcing'")
	ErrBankPaymentUnreferenced   = errors.New("a bank payment needs an entry reference or a structured remittance")
	ErrPaymentUnattributed       = errors.New("a manual payment needs a project or a debit card")
	ErrTopupInvalid              = errors.New("a top-up needs a debit card and a positive amount")
	ErrPaymentBankFieldImmutable = errors.New("fields imported from the bank can not be changed")
	ErrBankPaymentDelete         = errors.New("payments imported from the bank can not be deleted")
	ErrPaymentNotManual          = errors.New("only manual payments can be created this way")
)
