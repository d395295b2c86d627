package models

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// JobLock is a lease on a job. It keeps a job from running in more than one
// process at the same time, e.g. the CLI next to the scheduler of the API.
type JobLock struct {
	Name        string `gorm:"primaryKey"`
	Holder      string
	LockedUntil int64 // Unix seconds, 0 when released
}

// AcquireJobLock takes the lease on the job for the holder. It returns false
// when the lease is held by someone else and did not expire yet.
func AcquireJobLock(db *gorm.DB, name, holder string, now time.Time, lease time.Duration) (bool, error) {
	err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&JobLock{Name: name}).Error
	if err != nil {
		return false, err
	}

	// The conditional update is atomic, only one holder can win it
	result := db.Model(&JobLock{}).
		Where("name = ? AND locked_until < ?", name, now.Unix()).
		Updates(map[string]any{"holder": holder, "locked_until": now.Add(lease).Unix()})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}

// ReleaseJobLock gives the lease back. Leases of other holders are not
// touched.
func ReleaseJobLock(db *gorm.DB, name, holder string) error {
	return db.Model(&JobLock{}).
		Where("name = ? AND holder = ?", name, holder).
		Update("locked_until", 0).Error
}
