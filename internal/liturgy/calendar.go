package liturgy

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// GeneralCalendar approximates the General Roman Calendar: the movable
// cycle around Easter, the seasons with their Sundays and weeks, and the
// principal fixed solemnities and feasts. Optional memorials and national
// propers are not modelled.
type GeneralCalendar struct{}

var _ Calendar = GeneralCalendar{}

type fixedDay struct {
	month time.Month
	day   int
	name  string
	color Color
	rank  string
	// lord marks feasts of the Lord, which replace a Sunday in Ordinary Time
	lord bool
}

var fixedSolemnities = []fixedDay{
	{time.January, 1, "Mary, the Holy Mother of God", White, RankSolemnity, true},
	{time.January, 6, "The Epiphany of the Lord", White, RankSolemnity, true},
	{time.March, 19, "Saint Joseph, Spouse of the Blessed Virgin Mary", White, RankSolemnity, false},
	{time.March, 25, "The Annunciation of the Lord", White, RankSolemnity, true},
	{time.June, 24, "The Nativity of Saint John the Baptist", White, RankSolemnity, false},
	{time.June, 29, "Saints Peter and Paul, Apostles", Red, RankSolemnity, false},
	{time.August, 15, "The Assumption of the Blessed Virgin Mary", White, RankSolemnity, false},
	{time.November, 1, "All Saints", White, RankSolemnity, false},
	{time.November, 2, "The Commemoration of All the Faithful Departed", Violet, RankCommemoration, false},
	{time.December, 8, "The Immaculate Conception of the Blessed Virgin Mary", White, RankSolemnity, false},
	{time.December, 25, "The Nativity of the Lord", White, RankSolemnity, true},
}

var fixedFeasts = []fixedDay{
	{time.January, 25, "The Conversion of Saint Paul, Apostle", White, RankFeast, false},
	{time.February, 2, "The Presentation of the Lord", White, RankFeast, true},
	{time.February, 22, "The Chair of Saint Peter, Apostle", White, RankFeast, false},
	{time.April, 25, "Saint Mark, Evangelist", Red, RankFeast, false},
	{time.May, 3, "Saints Philip and James, Apostles", Red, RankFeast, false},
	{time.May, 14, "Saint Matthias, Apostle", Red, RankFeast, false},
	{time.May, 31, "The Visitation of the Blessed Virgin Mary", White, RankFeast, false},
	{time.July, 3, "Saint Thomas, Apostle", Red, RankFeast, false},
	{time.July, 22, "Saint Mary Magdalene", White, RankFeast, false},
	{time.July, 25, "Saint James, Apostle", Red, RankFeast, false},
	{time.August, 6, "The Transfiguration of the Lord", White, RankFeast, true},
	{time.August, 10, "Saint Lawrence, Deacon and Martyr", Red, RankFeast, false},
	{time.August, 24, "Saint Bartholomew, Apostle", Red, RankFeast, false},
	{time.September, 8, "The Nativity of the Blessed Virgin Mary", White, RankFeast, false},
	{time.September, 14, "The Exaltation of the Holy Cross", Red, RankFeast, true},
	{time.September, 21, "Saint Matthew, Apostle and Evangelist", Red, RankFeast, false},
	{time.September, 29, "Saints Michael, Gabriel and Raphael, Archangels", White, RankFeast, false},
	{time.October, 18, "Saint Luke, Evangelist", Red, RankFeast, false},
	{time.October, 28, "Saints Simon and Jude, Apostles", Red, RankFeast, false},
	{time.November, 9, "The Dedication of the Lateran Basilica", White, RankFeast, true},
	{time.November, 30, "Saint Andrew, Apostle", Red, RankFeast, false},
	{time.December, 26, "Saint Stephen, the First Martyr", Red, RankFeast, false},
	{time.December, 27, "Saint John, Apostle and Evangelist", White, RankFeast, false},
	{time.December, 28, "The Holy Innocents, Martyrs", Red, RankFeast, false},
}

// Easter returns the date of Easter Sunday in the Gregorian calendar
func Easter(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return civil(year, time.Month(month), day)
}

// FirstSundayOfAdvent returns the Sunday that opens Advent in year
func FirstSundayOfAdvent(year int) time.Time {
	christmas := civil(year, time.December, 25)
	back := int(christmas.Weekday())
	if back == 0 {
		back = 7
	}
	return christmas.AddDate(0, 0, -back-21)
}

// BaptismOfTheLord returns the Sunday after Epiphany that closes Christmas Time
func BaptismOfTheLord(year int) time.Time {
	epiphany := civil(year, time.January, 6)
	return epiphany.AddDate(0, 0, 7-int(epiphany.Weekday()))
}

// holyFamily is the Sunday within the Christmas octave, or 30 December when
// there is none.
func holyFamily(year int) time.Time {
	for d := 26; d <= 31; d++ {
		if t := civil(year, time.December, d); t.Weekday() == time.Sunday {
			return t
		}
	}
	return civil(year, time.December, 30)
}

func civil(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func dateOf(t time.Time) time.Time {
	return civil(t.Year(), t.Month(), t.Day())
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

// cycle holds the movable dates of one civil year
type cycle struct {
	baptism, ashWednesday, easter, pentecost, adventStart, christKing time.Time
}

func newCycle(y int) cycle {
	easter := Easter(y)
	advent := FirstSundayOfAdvent(y)
	return cycle{
		baptism:      BaptismOfTheLord(y),
		ashWednesday: easter.AddDate(0, 0, -46),
		easter:       easter,
		pentecost:    easter.AddDate(0, 0, 49),
		adventStart:  advent,
		christKing:   advent.AddDate(0, 0, -7),
	}
}

// DayFor always reports a celebration
func (GeneralCalendar) DayFor(date time.Time) (Celebration, bool) {
	d := dateOf(date)
	y := newCycle(d.Year())
	season := y.season(d)

	if c, ok := y.movable(d, season); ok {
		return c, true
	}

	privileged := season == SeasonAdvent || season == SeasonLent || season == SeasonEaster
	sunday := d.Weekday() == time.Sunday
	protected := y.inHolyWeekOrOctave(d)

	if f, ok := findFixed(fixedSolemnities, d); ok && !protected && !(sunday && privileged) {
		return f.celebration(season), true
	}
	// a solemnity displaced by a privileged Sunday moves to the Monday
	if prev := d.AddDate(0, 0, -1); d.Weekday() == time.Monday && !protected {
		if f, ok := findFixed(fixedSolemnities, prev); ok && f.rank == RankSolemnity && y.season(prev) != SeasonOrdinary && y.season(prev) != SeasonChristmas {
			return f.celebration(season), true
		}
	}

	if sunday {
		if f, ok := findFixed(fixedFeasts, d); ok && f.lord && season == SeasonOrdinary {
			return f.celebration(season), true
		}
		return y.sunday(d, season), true
	}

	if f, ok := findFixed(fixedFeasts, d); ok && !protected {
		return f.celebration(season), true
	}
	return y.weekday(d, season), true
}

func findFixed(days []fixedDay, d time.Time) (fixedDay, bool) {
	for _, f := range days {
		if f.month == d.Month() && f.day == d.Day() {
			return f, true
		}
	}
	return fixedDay{}, false
}

func (f fixedDay) celebration(season string) Celebration {
	return Celebration{Name: f.name, Color: f.color, Season: season, Rank: f.rank}
}

func (y cycle) season(d time.Time) string {
	switch {
	case !d.After(y.baptism):
		return SeasonChristmas
	case !d.Before(y.ashWednesday) && d.Before(y.easter.AddDate(0, 0, -3)):
		return SeasonLent
	case !d.Before(y.easter.AddDate(0, 0, -3)) && d.Before(y.easter):
		return SeasonTriduum
	case !d.Before(y.easter) && !d.After(y.pentecost):
		return SeasonEaster
	case !d.Before(y.adventStart) && d.Before(civil(d.Year(), time.December, 25)):
		return SeasonAdvent
	case !d.Before(civil(d.Year(), time.December, 25)):
		return SeasonChristmas
	default:
		return SeasonOrdinary
	}
}

func (y cycle) inHolyWeekOrOctave(d time.Time) bool {
	palm := y.easter.AddDate(0, 0, -7)
	octave := y.easter.AddDate(0, 0, 7)
	return !d.Before(palm) && !d.After(octave)
}

// movable returns the celebrations fixed relative to Easter, Advent or Epiphany
func (y cycle) movable(d time.Time, season string) (Celebration, bool) {
	offset := daysBetween(y.easter, d)
	switch offset {
	case -46:
		return Celebration{"Ash Wednesday", Violet, season, RankFeria}, true
	case -7:
		return Celebration{"Palm Sunday of the Passion of the Lord", Red, season, RankSunday}, true
	case -3:
		return Celebration{"Holy Thursday, Evening Mass of the Lord's Supper", White, season, RankTriduum}, true
	case -2:
		return Celebration{"Friday of the Passion of the Lord", Red, season, RankTriduum}, true
	case -1:
		return Celebration{"Holy Saturday", Violet, season, RankTriduum}, true
	case 0:
		return Celebration{"Easter Sunday of the Resurrection of the Lord", White, season, RankSolemnity}, true
	case 7:
		return Celebration{"Second Sunday of Easter (Divine Mercy)", White, season, RankSunday}, true
	case 39:
		return Celebration{"The Ascension of the Lord", White, season, RankSolemnity}, true
	case 49:
		return Celebration{"Pentecost Sunday", Red, season, RankSolemnity}, true
	case 56:
		return Celebration{"The Most Holy Trinity", White, season, RankSolemnity}, true
	case 60:
		return Celebration{"The Most Holy Body and Blood of Christ", White, season, RankSolemnity}, true
	case 68:
		return Celebration{"The Most Sacred Heart of Jesus", White, season, RankSolemnity}, true
	}

	if offset > -7 && offset < -3 {
		return Celebration{d.Weekday().String() + " of Holy Week", Violet, season, RankFeria}, true
	}
	if offset > 0 && offset < 7 {
		return Celebration{d.Weekday().String() + " within the Octave of Easter", White, season, RankSolemnity}, true
	}

	switch {
	case d.Equal(y.christKing):
		return Celebration{"Our Lord Jesus Christ, King of the Universe", White, season, RankSolemnity}, true
	case d.Equal(y.baptism):
		return Celebration{"The Baptism of the Lord", White, season, RankFeast}, true
	case d.Equal(holyFamily(d.Year())):
		return Celebration{"The Holy Family of Jesus, Mary and Joseph", White, season, RankFeast}, true
	}
	return Celebration{}, false
}

func (y cycle) sunday(d time.Time, season string) Celebration {
	c := Celebration{Color: White, Season: season, Rank: RankSunday}
	switch season {
	case SeasonAdvent:
		week := daysBetween(y.adventStart, d)/7 + 1
		c.Name = fmt.Sprintf("%s Sunday of Advent", humanize.Ordinal(week))
		c.Color = Violet
		if week == 3 {
			c.Color = Rose
		}
	case SeasonLent:
		week := daysBetween(y.ashWednesday.AddDate(0, 0, 4), d)/7 + 1
		c.Name = fmt.Sprintf("%s Sunday of Lent", humanize.Ordinal(week))
		c.Color = Violet
		if week == 4 {
			c.Color = Rose
		}
	case SeasonEaster:
		week := daysBetween(y.easter, d)/7 + 1
		c.Name = fmt.Sprintf("%s Sunday of Easter", humanize.Ordinal(week))
	case SeasonChristmas:
		c.Name = "Second Sunday after the Nativity"
	default:
		c.Name = fmt.Sprintf("%s Sunday in Ordinary Time", humanize.Ordinal(y.ordinaryWeek(d)))
		c.Color = Green
	}
	return c
}

func (y cycle) weekday(d time.Time, season string) Celebration {
	c := Celebration{Color: Green, Season: season, Rank: RankFeria}
	day := d.Weekday().String()
	switch season {
	case SeasonAdvent:
		week := daysBetween(y.adventStart, d)/7 + 1
		c.Name = fmt.Sprintf("%s of the %s Week of Advent", day, humanize.Ordinal(week))
		c.Color = Violet
	case SeasonLent:
		firstSunday := y.ashWednesday.AddDate(0, 0, 4)
		if d.Before(firstSunday) {
			c.Name = day + " after Ash Wednesday"
		} else {
			week := daysBetween(firstSunday, d)/7 + 1
			c.Name = fmt.Sprintf("%s of the %s Week of Lent", day, humanize.Ordinal(week))
		}
		c.Color = Violet
	case SeasonEaster:
		week := daysBetween(y.easter, d)/7 + 1
		c.Name = fmt.Sprintf("%s of the %s Week of Easter", day, humanize.Ordinal(week))
		c.Color = White
	case SeasonChristmas:
		if d.Month() == time.December {
			c.Name = "Day within the Octave of the Nativity of the Lord"
		} else {
			c.Name = "Christmas Weekday"
		}
		c.Color = White
	default:
		c.Name = fmt.Sprintf("%s of the %s Week in Ordinary Time", day, humanize.Ordinal(y.ordinaryWeek(d)))
	}
	return c
}

// ordinaryWeek numbers Ordinary Time weeks. Weeks before Lent count up from
// the Baptism of the Lord; weeks after Pentecost count down from Christ the
// King in the 34th week.
func (y cycle) ordinaryWeek(d time.Time) int {
	if d.Before(y.ashWednesday) {
		return daysBetween(y.baptism, d)/7 + 1
	}
	sunday := d.AddDate(0, 0, -int(d.Weekday()))
	return 34 - daysBetween(sunday, y.christKing)/7
}
