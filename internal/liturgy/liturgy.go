// Package liturgy describes the liturgical day used to theme the reader.
package liturgy

import "time"

// Color is a liturgical vestment colour
type Color string

const (
	Green  Color = "GREEN"
	Violet Color = "VIOLET"
	White  Color = "WHITE"
	Red    Color = "RED"
	Rose   Color = "ROSE"
)

// Season names
const (
	SeasonAdvent    = "Advent"
	SeasonChristmas = "Christmas Time"
	SeasonLent      = "Lent"
	SeasonTriduum   = "Paschal Triduum"
	SeasonEaster    = "Easter Time"
	SeasonOrdinary  = "Ordinary Time"
)

// Rank names
const (
	RankSolemnity     = "Solemnity"
	RankFeast         = "Feast"
	RankSunday        = "Sunday"
	RankTriduum       = "Triduum"
	RankCommemoration = "Commemoration"
	RankFeria         = "Feria"
)

// Celebration is what a calendar reports for one civil date
type Celebration struct {
	Name   string
	Color  Color
	Season string
	Rank   string
}

// Calendar resolves a civil date to its celebration. ok is false when the
// calendar has no entry for the date.
type Calendar interface {
	DayFor(date time.Time) (c Celebration, ok bool)
}

// Day is the themed descriptor served to clients
type Day struct {
	Date   string `json:"date"`
	Name   string `json:"name"`
	Color  string `json:"color"`
	Season string `json:"season"`
	Rank   string `json:"rank"`
	Hex    string `json:"hex"`
}

// Theme keys
const (
	ThemeOrdinary = "ordinary"
	ThemeLent     = "lent"
	ThemeEaster   = "easter"
	ThemeAdvent   = "advent"
	ThemeMartyr   = "martyr"
	ThemeRose     = "rose"
)

var themeHex = map[string]string{
	ThemeOrdinary: "#059669",
	ThemeLent:     "#7c3aed",
	ThemeEaster:   "#fbbf24",
	ThemeAdvent:   "#4f46e5",
	ThemeMartyr:   "#dc2626",
	ThemeRose:     "#f472b6",
}

var colorTheme = map[Color]string{
	Green:  ThemeOrdinary,
	Violet: ThemeLent,
	White:  ThemeEaster,
	Red:    ThemeMartyr,
	Rose:   ThemeRose,
}

// Theme maps a celebration's colour to a theme key. Violet in Advent uses
// the advent theme.
func Theme(c Celebration) string {
	if c.Color == Violet && c.Season == SeasonAdvent {
		return ThemeAdvent
	}
	if key, ok := colorTheme[c.Color]; ok {
		return key
	}
	return ThemeOrdinary
}

// Hex returns the hex colour of a theme key, falling back to ordinary
func Hex(theme string) string {
	if hex, ok := themeHex[theme]; ok {
		return hex
	}
	return themeHex[ThemeOrdinary]
}

// DateLayout is the wire format of a liturgical date
const DateLayout = "2006-01-02"

// Lookup returns the themed day for date. Dates the calendar does not know
// are reported as an ordinary feria.
func Lookup(cal Calendar, date time.Time) Day {
	day := Day{Date: date.Format(DateLayout)}

	c, ok := cal.DayFor(date)
	if !ok {
		day.Name = "Ordinary Day"
		day.Color = ThemeOrdinary
		day.Season = SeasonOrdinary
		day.Rank = RankFeria
		day.Hex = Hex(ThemeOrdinary)
		return day
	}

	day.Name = c.Name
	day.Color = Theme(c)
	day.Season = c.Season
	if day.Season == "" {
		day.Season = "Unknown Season"
	}
	day.Rank = c.Rank
	day.Hex = Hex(day.Color)
	return day
}
