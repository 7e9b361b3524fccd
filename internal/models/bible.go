package models

// Translation is a named scriptural edition
type Translation struct {
	ID             string  `json:"id" db:"id"`
	Abbreviation   string  `json:"abbreviation" db:"abbreviation"`
	Name           string  `json:"name" db:"name"`
	Language       string  `json:"language" db:"language"`
	Copyright      *string `json:"copyright,omitempty" db:"copyright"`
	IsPublicDomain bool    `json:"is_public_domain" db:"is_public_domain"`
}

// Book is one of the 73 canonical books as stored
type Book struct {
	ID                 string `json:"id" db:"id"`
	Name               string `json:"name" db:"name"`
	Abbreviation       string `json:"abbreviation" db:"abbreviation"`
	AbbreviationKey    string `json:"abbreviation_key" db:"abbreviation_key"`
	Order              int    `json:"order" db:"canon_order"`
	Testament          string `json:"testament" db:"testament"`
	Group              string `json:"group" db:"book_group"`
	IsDeuterocanonical bool   `json:"is_deuterocanonical" db:"is_deuterocanonical"`
}

// BookDetail is a book with the number of chapters loaded for it
type BookDetail struct {
	Book
	ChapterCount int `json:"chapter_count" db:"chapter_count"`
}

// Chapter belongs to exactly one book
type Chapter struct {
	ID     string `json:"id" db:"id"`
	BookID string `json:"book_id" db:"book_id"`
	Number int    `json:"number" db:"number"`
}

// Verse is the text of one verse in one translation. BookName and
// ChapterNumber are copied from the parent rows.
type Verse struct {
	ID            string `json:"id" db:"id"`
	TranslationID string `json:"translation_id" db:"translation_id"`
	ChapterID     string `json:"chapter_id" db:"chapter_id"`
	Number        int    `json:"number" db:"number"`
	Text          string `json:"text" db:"text"`
	BookName      string `json:"book_name" db:"book_name"`
	ChapterNumber int    `json:"chapter_number" db:"chapter_number"`
}
