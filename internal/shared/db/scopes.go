package db

import (
	"math"
	"strings"

	"gorm.io/gorm"
)

// VisibleToAdmin restricts rows to those owned by adminID or by nobody.
// column is the owner column, optionally qualified ("c.admin_id").
//
//	db.Table("clientes c").Scopes(db.VisibleToAdmin("c.admin_id", 7)).Find(&rows)
func VisibleToAdmin(column string, adminID uint) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where("("+column+" = ? OR "+column+" IS NULL)", adminID)
	}
}

// Paginate applies offset/limit for a 1-based page. A page whose offset
// would overflow matches no rows.
func Paginate(page, pageSize int) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if page < 1 {
			page = 1
		}
		if pageSize < 1 {
			return tx
		}
		if page-1 > math.MaxInt32/pageSize {
			return tx.Where("1 = 0")
		}
		return tx.Offset((page - 1) * pageSize).Limit(pageSize)
	}
}

// ContainsAny matches rows where any of columns contains term, ignoring case.
// An empty term leaves the query untouched.
func ContainsAny(term string, columns ...string) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		term = strings.TrimSpace(term)
		if term == "" || len(columns) == 0 {
			return tx
		}
		pattern := "%" + strings.ToLower(term) + "%"
		clauses := make([]string, len(columns))
		args := make([]any, len(columns))
		for i, col := range columns {
			clauses[i] = "LOWER(" + col + ") LIKE ?"
			args[i] = pattern
		}
		return tx.Where("("+strings.Join(clauses, " OR ")+")", args...)
	}
}
