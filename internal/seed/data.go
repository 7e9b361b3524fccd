package seed

import "github.com/verbum-domini-api/internal/models"

func strPtr(s string) *string { return &s }

// Translations are the editions created by every seed run
var Translations = []models.Translation{
	{
		Name:         "New American Bible, Revised Edition",
		Abbreviation: "NABRE",
		Language:     "English",
		Copyright:    strPtr("Copyright © 2010, 1991, 1986, 1970 Confraternity of Christian Doctrine, Inc."),
	},
	{
		Name:           "Douay-Rheims Bible",
		Abbreviation:   "DR",
		Language:       "English",
		IsPublicDomain: true,
	},
	{
		Name:         "Revised Standard Version, Second Catholic Edition",
		Abbreviation: "RSV-2CE",
		Language:     "English",
		Copyright:    strPtr("Copyright © 2006 Ignatius Press"),
	},
}

// SampleVerse is a hand-curated verse written with overwrite-on-conflict
type SampleVerse struct {
	Translation string
	Book        string
	Chapter     int
	Number      int
	Text        string
}

// SampleVerses cover John 1 and Tobit 1
var SampleVerses = []SampleVerse{
	{"NABRE", "John", 1, 1, "In the beginning was the Word, and the Word was with God, and the Word was God."},
	{"NABRE", "John", 1, 2, "He was in the beginning with God."},
	{"NABRE", "John", 1, 3, "All things came to be through him, and without him nothing came to be."},
	{"DR", "John", 1, 1, "In the beginning was the Word, and the Word was with God, and the Word was God."},
	{"DR", "John", 1, 2, "The same was in the beginning with God."},

	{"NABRE", "Tobit", 1, 1, "This book tells the story of Tobit, son of Tobiel, son of Hananiel, son of Aduel, son of Gabael, son of Raphael, son of Raguel, of the family of Asiel, of the tribe of Naphtali."},
	{"DR", "Tobit", 1, 1, "Tobias of the tribe and city of Nephtali, (which is in the upper parts of Galilee above Naasson, beyond the way that leadeth to the west, having on the right hand the city of Sephet,)"},
}
