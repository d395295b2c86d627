package v1

import (
	"github.com/google/uuid"
	"github.com/openpoen/backend/internal/models"
)

func requireAdmin(user models.User) error {
	if !user.Admin {
		return models.ErrPermissionDenied
	}

	return nil
}

// requireProjectEditor checks that the user is an admin or owns the project.
func requireProjectEditor(user models.User, projectID uuid.UUID) error {
	ok, err := user.CanEditProject(models.DB, projectID)
	if err != nil {
		return err
	}

	if !ok {
		return models.ErrPermissionDenied
	}

	return nil
}

// requireSubprojectEditor checks that the user owns the subproject or its
// project.
func requireSubprojectEditor(user models.User, subproject models.Subproject) error {
	ok, err := user.CanEditSubproject(models.DB, subproject)
	if err != nil {
		return err
	}

	if !ok {
		return models.ErrPermissionDenied
	}

	return nil
}

// requirePaymentEditor checks that the user may edit the payment. Financial
// users can edit all payments, owners the ones attributed to what they own.
func requirePaymentEditor(user models.User, payment models.Payment) error {
	if user.Admin || user.Financial {
		return nil
	}

	projectID, err := payment.EffectiveProjectID(models.DB)
	if err != nil {
		return err
	}

	if projectID != nil {
		err = requireProjectEditor(user, *projectID)
		if err == nil {
			return nil
		}
	}

	subprojectID, err := payment.EffectiveSubprojectID(models.DB)
	if err != nil {
		return err
	}

	if subprojectID != nil {
		var subproject models.Subproject
		if err := models.DB.First(&subproject, *subprojectID).Error; err != nil {
			return err
		}
		return requireSubprojectEditor(user, subproject)
	}

	return models.ErrPermissionDenied
}

// canSeeProject reports if the user can see the project. Hidden projects
// are only shown to the ones that can edit them.
func canSeeProject(user models.User, project models.Project) (bool, error) {
	if !project.Hidden {
		return true, nil
	}

	return user.CanEditProject(models.DB, project.ID)
}
