package repository

import "gorm.io/gorm"

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

// Page is a LIMIT/OFFSET window. There is no total count: a short page is the only end marker.
type Page struct {
	Limit  int
	Offset int
}

func (p Page) normalized() Page {
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

// newestFirst orders by creation time descending, id breaking ties so pages never overlap
func newestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC").Order("id DESC")
}

func paginate(p Page) func(db *gorm.DB) *gorm.DB {
	p = p.normalized()
	return func(db *gorm.DB) *gorm.DB {
		return newestFirst(db).Limit(p.Limit).Offset(p.Offset)
	}
}
