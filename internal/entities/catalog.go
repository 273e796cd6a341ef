package entities

import "time"

// Author ("romancista"). Name is stored sanitized and is unique.
type Author struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:256;not null" json:"nome"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (Author) TableName() string {
	return "romancistas"
}

// Book ("livro"). Title is stored sanitized; (title, author) is unique.
type Book struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"uniqueIndex:idx_livros_title_author;size:512;not null" json:"titulo"`
	Year      int       `gorm:"index" json:"ano"`
	AuthorID  uint      `gorm:"uniqueIndex:idx_livros_title_author;index;not null" json:"romancista_id"`
	Author    *Author   `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (Book) TableName() string {
	return "livros"
}

// BookUpdate carries the optional fields of a partial book update.
// A nil field is left untouched.
type BookUpdate struct {
	Title    *string
	Year     *int
	AuthorID *uint
}

// IsEmpty reports whether no field was supplied.
func (u BookUpdate) IsEmpty() bool {
	return u.Title == nil && u.Year == nil && u.AuthorID == nil
}

// Apply merges the supplied fields into book. Title is copied as given;
// callers sanitize it first.
func (u BookUpdate) Apply(book *Book) {
	if u.Title != nil {
		book.Title = *u.Title
	}
	if u.Year != nil {
		book.Year = *u.Year
	}
	if u.AuthorID != nil {
		book.AuthorID = *u.AuthorID
	}
}
