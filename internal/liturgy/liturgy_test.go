package liturgy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestEaster(t *testing.T) {
	tests := map[int]string{
		2000: "2000-04-23",
		2019: "2019-04-21",
		2024: "2024-03-31",
		2025: "2025-04-20",
		2026: "2026-04-05",
		2038: "2038-04-25",
	}
	for year, want := range tests {
		assert.Equal(t, want, Easter(year).Format("2006-01-02"), "year %d", year)
	}
}

func TestFirstSundayOfAdvent(t *testing.T) {
	assert.Equal(t, "2024-12-01", FirstSundayOfAdvent(2024).Format("2006-01-02"))
	assert.Equal(t, "2025-11-30", FirstSundayOfAdvent(2025).Format("2006-01-02"))
	assert.Equal(t, "2022-11-27", FirstSundayOfAdvent(2022).Format("2006-01-02"))
}

func TestBaptismOfTheLord(t *testing.T) {
	assert.Equal(t, "2025-01-12", BaptismOfTheLord(2025).Format("2006-01-02"))
	// Epiphany on a Sunday
	assert.Equal(t, "2019-01-13", BaptismOfTheLord(2019).Format("2006-01-02"))
}

func TestGeneralCalendar_DayFor(t *testing.T) {
	tests := []struct {
		date   string
		name   string
		color  Color
		season string
		rank   string
	}{
		{"2025-03-05", "Ash Wednesday", Violet, SeasonLent, RankFeria},
		{"2025-03-06", "Thursday after Ash Wednesday", Violet, SeasonLent, RankFeria},
		{"2025-03-30", "4th Sunday of Lent", Rose, SeasonLent, RankSunday},
		{"2025-04-13", "Palm Sunday of the Passion of the Lord", Red, SeasonLent, RankSunday},
		{"2025-04-14", "Monday of Holy Week", Violet, SeasonLent, RankFeria},
		{"2025-04-18", "Friday of the Passion of the Lord", Red, SeasonTriduum, RankTriduum},
		{"2025-04-20", "Easter Sunday of the Resurrection of the Lord", White, SeasonEaster, RankSolemnity},
		{"2025-04-25", "Friday within the Octave of Easter", White, SeasonEaster, RankSolemnity},
		{"2025-05-11", "4th Sunday of Easter", White, SeasonEaster, RankSunday},
		{"2025-06-08", "Pentecost Sunday", Red, SeasonEaster, RankSolemnity},
		{"2025-06-29", "Saints Peter and Paul, Apostles", Red, SeasonOrdinary, RankSolemnity},
		{"2025-01-19", "2nd Sunday in Ordinary Time", Green, SeasonOrdinary, RankSunday},
		{"2025-07-15", "Tuesday of the 15th Week in Ordinary Time", Green, SeasonOrdinary, RankFeria},
		{"2025-08-06", "The Transfiguration of the Lord", White, SeasonOrdinary, RankFeast},
		{"2025-11-16", "33rd Sunday in Ordinary Time", Green, SeasonOrdinary, RankSunday},
		{"2025-11-23", "Our Lord Jesus Christ, King of the Universe", White, SeasonOrdinary, RankSolemnity},
		{"2025-12-02", "Tuesday of the 1st Week of Advent", Violet, SeasonAdvent, RankFeria},
		{"2025-12-14", "3rd Sunday of Advent", Rose, SeasonAdvent, RankSunday},
		{"2025-12-25", "The Nativity of the Lord", White, SeasonChristmas, RankSolemnity},
		{"2025-12-28", "The Holy Family of Jesus, Mary and Joseph", White, SeasonChristmas, RankFeast},
		{"2025-01-01", "Mary, the Holy Mother of God", White, SeasonChristmas, RankSolemnity},
		{"2025-01-12", "The Baptism of the Lord", White, SeasonChristmas, RankFeast},
		// Advent Sunday outranks the solemnity, which moves to Monday
		{"2024-12-08", "2nd Sunday of Advent", Violet, SeasonAdvent, RankSunday},
		{"2024-12-09", "The Immaculate Conception of the Blessed Virgin Mary", White, SeasonAdvent, RankSolemnity},
		// a Lenten Sunday outranks a feast
		{"2026-02-22", "1st Sunday of Lent", Violet, SeasonLent, RankSunday},
	}

	cal := GeneralCalendar{}
	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			got, ok := cal.DayFor(date(tt.date))
			assert.True(t, ok)
			assert.Equal(t, Celebration{Name: tt.name, Color: tt.color, Season: tt.season, Rank: tt.rank}, got)
		})
	}
}

func TestDayFor_IgnoresTimeOfDay(t *testing.T) {
	cal := GeneralCalendar{}
	loc := time.FixedZone("UTC-5", -5*3600)
	got, _ := cal.DayFor(time.Date(2025, 4, 20, 23, 30, 0, 0, loc))
	assert.Equal(t, "Easter Sunday of the Resurrection of the Lord", got.Name)
}

func TestTheme(t *testing.T) {
	tests := []struct {
		c    Celebration
		want string
	}{
		{Celebration{Color: Green, Season: SeasonOrdinary}, ThemeOrdinary},
		{Celebration{Color: Violet, Season: SeasonLent}, ThemeLent},
		{Celebration{Color: Violet, Season: SeasonAdvent}, ThemeAdvent},
		{Celebration{Color: White, Season: SeasonChristmas}, ThemeEaster},
		{Celebration{Color: Red, Season: SeasonTriduum}, ThemeMartyr},
		{Celebration{Color: Rose, Season: SeasonAdvent}, ThemeRose},
		{Celebration{Color: "BLACK"}, ThemeOrdinary},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Theme(tt.c), "%+v", tt.c)
	}

	assert.Equal(t, "#4f46e5", Hex(ThemeAdvent))
	assert.Equal(t, "#059669", Hex("unknown"))
}

type emptyCalendar struct{}

func (emptyCalendar) DayFor(time.Time) (Celebration, bool) { return Celebration{}, false }

func TestLookup(t *testing.T) {
	day := Lookup(GeneralCalendar{}, date("2025-03-05"))
	assert.Equal(t, Day{
		Date:   "2025-03-05",
		Name:   "Ash Wednesday",
		Color:  ThemeLent,
		Season: SeasonLent,
		Rank:   RankFeria,
		Hex:    "#7c3aed",
	}, day)

	day = Lookup(GeneralCalendar{}, date("2025-12-01"))
	assert.Equal(t, ThemeAdvent, day.Color)
	assert.Equal(t, "#4f46e5", day.Hex)
}

func TestLookup_Fallback(t *testing.T) {
	day := Lookup(emptyCalendar{}, date("2025-07-01"))
	assert.Equal(t, Day{
		Date:   "2025-07-01",
		Name:   "Ordinary Day",
		Color:  ThemeOrdinary,
		Season: SeasonOrdinary,
		Rank:   RankFeria,
		Hex:    "#059669",
	}, day)
}
