package repository

import "gorm.io/gorm"

// affected turns an owner-scoped write that matched nothing into
// gorm.ErrRecordNotFound, so "not yours" and "not there" look the same.
func affected(res *gorm.DB) error {
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
