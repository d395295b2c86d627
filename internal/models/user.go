package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var validate = validator.New()

// User is a person that can log in. Session handling happens outside of
// this backend, users are only referenced for permissions and ownership.
type User struct {
	DefaultModel
	Email       string       `json:"email" gorm:"uniqueIndex" example:"anna@example.com"`
	Admin       bool         `json:"admin" default:"false"`
	Financial   bool         `json:"financial" default:"false"` // Can edit payments of all projects
	Active      bool         `json:"active" default:"true"`
	Projects    []Project    `json:"-" gorm:"many2many:project_users"`
	Subprojects []Subproject `json:"-" gorm:"many2many:subproject_users"`
}

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	return nil
}

func (u *User) AfterSave(_ *gorm.DB) error {
	if err := validate.Var(u.Email, "required,email"); err != nil {
		return ErrUserEmailInvalid
	}
	return nil
}

// CanEditProject reports if the user can manage the project.
func (u User) CanEditProject(db *gorm.DB, projectID uuid.UUID) (bool, error) {
	if u.Admin {
		return true, nil
	}

	var count int64
	err := db.Table("project_users").Where("user_id = ? AND project_id = ?", u.ID, projectID).Count(&count).Error
	return count > 0, err
}

// CanEditSubproject reports if the user can manage the subproject. Owners of
// the parent project can edit all of its subprojects.
func (u User) CanEditSubproject(db *gorm.DB, subproject Subproject) (bool, error) {
	ok, err := u.CanEditProject(db, subproject.ProjectID)
	if ok || err != nil {
		return ok, err
	}

	var count int64
	err = db.Table("subproject_users").Where("user_id = ? AND subproject_id = ?", u.ID, subproject.ID).Count(&count).Error
	return count > 0, err
}

// UserRole describes which roles AddUser grants.
type UserRole struct {
	Admin        bool
	ProjectID    uuid.UUID
	SubprojectID uuid.UUID
}

// AddUser creates the user if no user with this email address exists and
// grants the roles. Adding an owner twice is an error.
//
// The second return value is true when the user was newly created.
func AddUser(db *gorm.DB, email string, role UserRole) (User, bool, error) {
	if !role.Admin && role.ProjectID == uuid.Nil && role.SubprojectID == uuid.Nil {
		return User{}, false, ErrUserAddRequiresRole
	}

	if role.ProjectID != uuid.Nil && role.SubprojectID != uuid.Nil {
		return User{}, false, ErrUserProjectAndSubprojectGiven
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if err := validate.Var(email, "required,email"); err != nil {
		return User{}, false, ErrUserEmailInvalid
	}

	var user User
	var created bool
	err := db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where(User{Email: email}).First(&user).Error
		if errors.Is(err, ErrResourceNotFound) {
			user = User{Email: email, Active: true}
			err = tx.Create(&user).Error
			created = true
		}
		if err != nil {
			return err
		}

		return setUserRole(tx, &user, role)
	})

	return user, created, err
}

func setUserRole(tx *gorm.DB, user *User, role UserRole) error {
	if role.Admin && !user.Admin {
		if err := tx.Model(user).Update("admin", true).Error; err != nil {
			return err
		}
	}

	if role.ProjectID != uuid.Nil {
		var project Project
		if err := tx.First(&project, role.ProjectID).Error; err != nil {
			return err
		}

		var count int64
		err := tx.Table("project_users").Where("user_id = ? AND project_id = ?", user.ID, project.ID).Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("%w of project %s", ErrUserAlreadyOwner, project.Name)
		}

		if err := tx.Model(&project).Association("Users").Append(user); err != nil {
			return err
		}
	}

	if role.SubprojectID != uuid.Nil {
		var subproject Subproject
		if err := tx.First(&subproject, role.SubprojectID).Error; err != nil {
			return err
		}

		var count int64
		err := tx.Table("subproject_users").Where("user_id = ? AND subproject_id = ?", user.ID, subproject.ID).Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("%w of initiative %s", ErrUserAlreadyOwner, subproject.Name)
		}

		if err := tx.Model(&subproject).Association("Users").Append(user); err != nil {
			return err
		}
	}

	return nil
}
