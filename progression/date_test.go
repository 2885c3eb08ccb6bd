package progression

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateNext(t *testing.T) {
	tests := []struct {
		name string
		in   Date
		want Date
	}{
		{"mid month", Date{2025, time.March, 10}, Date{2025, time.March, 11}},
		{"month boundary", Date{2025, time.January, 31}, Date{2025, time.February, 1}},
		{"year boundary", Date{2025, time.December, 31}, Date{2026, time.January, 1}},
		{"leap day", Date{2024, time.February, 28}, Date{2024, time.February, 29}},
		{"non leap", Date{2025, time.February, 28}, Date{2025, time.March, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Next(); !got.Equal(tt.want) {
				t.Errorf("%v.Next() = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDateIsYesterdayOf(t *testing.T) {
	d := Date{2025, time.December, 31}
	if !d.IsYesterdayOf(Date{2026, time.January, 1}) {
		t.Fatal("year boundary not consecutive")
	}
	if d.IsYesterdayOf(Date{2026, time.January, 2}) {
		t.Fatal("two-day gap counted as consecutive")
	}
	if d.IsYesterdayOf(d) {
		t.Fatal("same day counted as consecutive")
	}
}

func TestDateJSON(t *testing.T) {
	d := Date{2025, time.July, 4}
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"2025-07-04"` {
		t.Fatalf("marshalled %s", data)
	}

	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if !back.Equal(d) {
		t.Fatalf("round trip: %v", back)
	}

	var zero Date
	if err := json.Unmarshal([]byte(`""`), &zero); err != nil {
		t.Fatal(err)
	}
	if !zero.IsZero() {
		t.Fatalf("empty string parsed as %v", zero)
	}
}
