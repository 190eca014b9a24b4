package calendar

import (
	"reflect"
	"testing"
	"time"
)

func TestEasterSunday(t *testing.T) {
	tests := []struct {
		year int
		want time.Time
	}{
		{2000, civil(2000, time.April, 23)},
		{2019, civil(2019, time.April, 21)},
		{2023, civil(2023, time.April, 9)},
		{2024, civil(2024, time.March, 31)},
		{2025, civil(2025, time.April, 20)},
	}

	for _, tt := range tests {
		if got := EasterSunday(tt.year); !got.Equal(tt.want) {
			t.Errorf("EasterSunday(%d) = %s, want %s", tt.year, got.Format("2006-01-02"), tt.want.Format("2006-01-02"))
		}
	}
}

func TestHolidaysForYear_Deterministic(t *testing.T) {
	for year := 2020; year <= 2030; year++ {
		first := HolidaysForYear(year)
		second := HolidaysForYear(year)
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("HolidaysForYear(%d) is not deterministic", year)
		}
	}
}

func TestHolidaysForYear_MoveableFeasts(t *testing.T) {
	for year := 2018; year <= 2032; year++ {
		easter := EasterSunday(year)
		want := map[string]time.Time{
			"Páscoa":            easter,
			"Corpus Christi":    easter.AddDate(0, 0, 60),
			"Carnaval":          easter.AddDate(0, 0, -47),
			"Sexta-feira Santa": easter.AddDate(0, 0, -2),
		}

		found := map[string]time.Time{}
		for _, h := range HolidaysForYear(year) {
			if _, ok := want[h.Name]; ok {
				found[h.Name] = h.Date
			}
		}
		for name, date := range want {
			got, ok := found[name]
			if !ok {
				t.Fatalf("%d: missing %s", year, name)
			}
			if !got.Equal(date) {
				t.Errorf("%d: %s = %s, want %s", year, name, got.Format("2006-01-02"), date.Format("2006-01-02"))
			}
		}
	}
}

func TestHolidaysForYear_Counts(t *testing.T) {
	tests := []struct {
		year int
		want int
	}{
		{2022, 19},
		{2023, 25}, // Dec 26-31 closure
		{2024, 26}, // Jan 1-7 closure
		{2025, 19},
	}

	for _, tt := range tests {
		if got := len(HolidaysForYear(tt.year)); got != tt.want {
			t.Errorf("len(HolidaysForYear(%d)) = %d, want %d", tt.year, got, tt.want)
		}
	}
}

func TestHolidaysForYear_SortedAndScoped(t *testing.T) {
	holidays := HolidaysForYear(2024)
	for i := 1; i < len(holidays); i++ {
		if holidays[i].Date.Before(holidays[i-1].Date) {
			t.Fatalf("holidays not sorted at index %d", i)
		}
	}

	regional := 0
	for _, h := range holidays {
		if !h.Scope.IsValid() {
			t.Errorf("holiday %s has invalid scope %q", h.Name, h.Scope)
		}
		if h.Region == "BA" {
			regional++
		}
	}
	if regional != 4 {
		t.Errorf("expected 4 regional holidays, got %d", regional)
	}
}

func TestHolidaysForYear_ClosureOnlyInItsYears(t *testing.T) {
	countClosure := func(year int) int {
		n := 0
		for _, h := range HolidaysForYear(year) {
			if h.Name == "Férias coletivas" {
				n++
			}
		}
		return n
	}

	if got := countClosure(2023); got != 6 {
		t.Errorf("2023 closure days = %d, want 6", got)
	}
	if got := countClosure(2024); got != 7 {
		t.Errorf("2024 closure days = %d, want 7", got)
	}
	if got := countClosure(2026); got != 0 {
		t.Errorf("2026 closure days = %d, want 0", got)
	}
}

func TestClosures_ReturnsCopy(t *testing.T) {
	c := Closures()
	if len(c) != 1 {
		t.Fatalf("expected one closure, got %d", len(c))
	}
	c[0].Name = "changed"
	if Closures()[0].Name == "changed" {
		t.Fatal("Closures() must not expose the internal table")
	}
}
