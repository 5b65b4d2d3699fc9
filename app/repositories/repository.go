// Package repositories wraps GORM queries per model. A repository is bound
// to one *gorm.DB, which may be a transaction:
//
//	err := db.Transaction(func(tx *gorm.DB) error {
//	    products := repositories.NewProductRepository(tx)
//	    ...
//	})
package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/backoffice/pkg/orm"
)

// ListQuery is the common shape of list requests.
type ListQuery struct {
	Page orm.Page
	Name string
}

// exists reports whether query matches at least one row.
func exists(ctx context.Context, query *gorm.DB) (bool, error) {
	var n int64
	if err := query.WithContext(ctx).Limit(1).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// IsNotFound reports whether err is gorm's record-not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// apply runs scopes eagerly. Count and Find then share one compiled
// condition set.
func apply(db *gorm.DB, scopes ...func(*gorm.DB) *gorm.DB) *gorm.DB {
	for _, s := range scopes {
		db = s(db)
	}
	return db
}
