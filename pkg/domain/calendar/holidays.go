// Package calendar implements the business calendar: the holiday table,
// day classification and business-day arithmetic.
package calendar

import (
	"sort"
	"time"
)

// Scope classifies how widely a holiday is observed. Every scope blocks a
// business day in the same way.
type Scope string

const (
	ScopeNational Scope = "national"
	ScopeState    Scope = "state"
	ScopeLocal    Scope = "local"
	ScopeOptional Scope = "optional"
)

// AllScopes returns every holiday scope.
func AllScopes() []Scope {
	return []Scope{ScopeNational, ScopeState, ScopeLocal, ScopeOptional}
}

// IsValid returns true if the scope is a known holiday scope.
func (s Scope) IsValid() bool {
	switch s {
	case ScopeNational, ScopeState, ScopeLocal, ScopeOptional:
		return true
	default:
		return false
	}
}

// Holiday is a single non-working calendar day.
type Holiday struct {
	Date        time.Time `json:"date" yaml:"date"` // midnight UTC, only the civil date matters
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description" yaml:"description"`
	Scope       Scope     `json:"scope" yaml:"scope"`
	Region      string    `json:"region,omitempty" yaml:"region,omitempty"`
	City        string    `json:"city,omitempty" yaml:"city,omitempty"`
}

// Closure is a one-off collective shutdown covering an inclusive range of days.
type Closure struct {
	Name string
	From time.Time
	To   time.Time
}

type fixedHoliday struct {
	month       time.Month
	day         int
	name        string
	description string
	scope       Scope
	region      string
	city        string
}

var nationalHolidays = []fixedHoliday{
	{time.January, 1, "Confraternização Universal", "New Year's Day", ScopeNational, "", ""},
	{time.April, 21, "Tiradentes", "Tiradentes Day", ScopeNational, "", ""},
	{time.May, 1, "Dia do Trabalho", "Labor Day", ScopeNational, "", ""},
	{time.September, 7, "Independência do Brasil", "Independence Day", ScopeNational, "", ""},
	{time.October, 12, "Nossa Senhora Aparecida", "Patron Saint of Brazil", ScopeNational, "", ""},
	{time.November, 2, "Finados", "All Souls' Day", ScopeNational, "", ""},
	{time.November, 15, "Proclamação da República", "Republic Proclamation Day", ScopeNational, "", ""},
	{time.November, 20, "Dia da Consciência Negra", "Black Consciousness Day", ScopeNational, "", ""},
	{time.December, 24, "Véspera de Natal", "Christmas Eve", ScopeNational, "", ""},
	{time.December, 25, "Natal", "Christmas Day", ScopeNational, "", ""},
	{time.December, 31, "Véspera de Ano Novo", "New Year's Eve", ScopeNational, "", ""},
}

var regionalHolidays = []fixedHoliday{
	{time.July, 2, "Independência da Bahia", "Bahia Independence Day", ScopeState, "BA", ""},
	{time.June, 24, "São João", "Saint John's Day", ScopeLocal, "BA", "Salvador"},
	{time.February, 2, "Festa de Iemanjá", "Iemanjá Festival", ScopeOptional, "BA", "Salvador"},
	{time.December, 8, "Nossa Senhora da Conceição da Praia", "Patron Saint of Salvador", ScopeLocal, "BA", "Salvador"},
}

// closures is keyed by the dates it covers, not by the year being queried.
// Only days that fall inside the requested year are emitted.
var closures = []Closure{
	{
		Name: "Férias coletivas",
		From: civil(2023, time.December, 26),
		To:   civil(2024, time.January, 7),
	},
}

// Closures returns the compiled-in collective shutdown table.
func Closures() []Closure {
	out := make([]Closure, len(closures))
	copy(out, closures)
	return out
}

// HolidaysForYear returns the full holiday table for a year, sorted by date.
// It is a pure function of year.
func HolidaysForYear(year int) []Holiday {
	easter := EasterSunday(year)
	holidays := []Holiday{
		{Date: easter, Name: "Páscoa", Description: "Easter Sunday", Scope: ScopeNational},
		{Date: easter.AddDate(0, 0, 60), Name: "Corpus Christi", Description: "Corpus Christi", Scope: ScopeNational},
		{Date: easter.AddDate(0, 0, -47), Name: "Carnaval", Description: "Carnival", Scope: ScopeNational},
		{Date: easter.AddDate(0, 0, -2), Name: "Sexta-feira Santa", Description: "Good Friday", Scope: ScopeNational},
	}

	for _, group := range [][]fixedHoliday{nationalHolidays, regionalHolidays} {
		for _, f := range group {
			holidays = append(holidays, Holiday{
				Date:        civil(year, f.month, f.day),
				Name:        f.name,
				Description: f.description,
				Scope:       f.scope,
				Region:      f.region,
				City:        f.city,
			})
		}
	}

	for _, c := range closures {
		for d := c.From; !d.After(c.To); d = d.AddDate(0, 0, 1) {
			if d.Year() != year {
				continue
			}
			holidays = append(holidays, Holiday{
				Date:        d,
				Name:        c.Name,
				Description: "Collective vacation",
				Scope:       ScopeNational,
			})
		}
	}

	sort.SliceStable(holidays, func(i, j int) bool {
		return holidays[i].Date.Before(holidays[j].Date)
	})
	return holidays
}

// EasterSunday returns the date of Easter Sunday in the Gregorian calendar
// (anonymous Gregorian / Meeus-Jones-Butcher algorithm).
func EasterSunday(year int) time.Time {
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
	day := ((h + l - 7*m + 114) % 31) + 1

	return civil(year, time.Month(month), day)
}

func civil(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
