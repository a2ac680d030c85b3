package streak

import (
	"testing"
	"time"
)

func TestDayOf(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	// 03:00 UTC on March 10 is still March 9 in UTC-5.
	got := DayOf(time.Date(2025, time.March, 10, 3, 0, 0, 0, time.UTC), loc)
	want := Day{Year: 2025, Month: time.March, Day: 9}
	if got != want {
		t.Errorf("DayOf = %+v, want %+v", got, want)
	}
}

func TestDaySub(t *testing.T) {
	tests := []struct {
		name string
		a, b Day
		want int
	}{
		{"same day", Day{2025, time.March, 10}, Day{2025, time.March, 10}, 0},
		{"next day", Day{2025, time.March, 11}, Day{2025, time.March, 10}, 1},
		{"across month", Day{2025, time.February, 1}, Day{2025, time.January, 31}, 1},
		{"across year", Day{2025, time.January, 1}, Day{2024, time.December, 31}, 1},
		{"leap february", Day{2024, time.March, 1}, Day{2024, time.February, 28}, 2},
		{"negative", Day{2025, time.March, 10}, Day{2025, time.March, 12}, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Sub(tt.b); got != tt.want {
				t.Errorf("Sub = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDayBefore(t *testing.T) {
	a := Day{2024, time.December, 31}
	b := Day{2025, time.January, 1}
	if !a.Before(b) {
		t.Error("expected a before b")
	}
	if b.Before(a) {
		t.Error("did not expect b before a")
	}
	if a.Before(a) {
		t.Error("a day is not before itself")
	}
}
