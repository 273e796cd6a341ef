package database

import (
	"strings"

	"gorm.io/gorm"
)

// Paginate counts the rows matched by query, then loads one page of them into
// dest ordered by id. page is 1-based.
func Paginate(query *gorm.DB, page, size int, dest any) (int64, error) {
	q := query.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return 0, err
	}
	if total == 0 {
		return 0, nil
	}

	offset := (page - 1) * size
	err := q.Order("id ASC").Offset(offset).Limit(size).Find(dest).Error
	if err != nil {
		return 0, err
	}

	return total, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern builds a LIKE pattern matching needle anywhere in the
// column. Use it with ContainsClause so the escapes are honoured.
func ContainsPattern(needle string) string {
	return "%" + likeEscaper.Replace(needle) + "%"
}

// ContainsClause is the WHERE fragment for a ContainsPattern match on column.
func ContainsClause(column string) string {
	return column + ` LIKE ? ESCAPE '\'`
}
