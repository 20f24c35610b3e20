package usecase

import "testing"

func TestParsePriceRange(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantMin *float64
		wantMax *float64
	}{
		{
			name:    "under sets max only",
			query:   "toys under £20",
			wantMin: nil,
			wantMax: f(20),
		},
		{
			name:    "below sets max only",
			query:   "gifts below 15",
			wantMin: nil,
			wantMax: f(15),
		},
		{
			name:    "less than with dollar sign",
			query:   "games less than $30",
			wantMin: nil,
			wantMax: f(30),
		},
		{
			name:    "up to sets max only",
			query:   "lego up to €25",
			wantMin: nil,
			wantMax: f(25),
		},
		{
			name:    "over sets min only",
			query:   "watches over £10",
			wantMin: f(10),
			wantMax: nil,
		},
		{
			name:    "at least sets min only",
			query:   "perfume at least 40",
			wantMin: f(40),
			wantMax: nil,
		},
		{
			name:    "explicit range",
			query:   "toys £10-£20",
			wantMin: f(10),
			wantMax: f(20),
		},
		{
			name:    "range with to",
			query:   "books 5 to 15",
			wantMin: f(5),
			wantMax: f(15),
		},
		{
			name:    "reversed range is normalized",
			query:   "games £20 - £10",
			wantMin: f(10),
			wantMax: f(20),
		},
		{
			name:    "reversed range with to",
			query:   "£20 to £10",
			wantMin: f(10),
			wantMax: f(20),
		},
		{
			name:    "range overrides earlier bound phrases",
			query:   "under 50 but really 10-20",
			wantMin: f(10),
			wantMax: f(20),
		},
		{
			name:    "both bound phrases",
			query:   "over 10 and under 30",
			wantMin: f(10),
			wantMax: f(30),
		},
		{
			name:    "no price phrases",
			query:   "disney toys",
			wantMin: nil,
			wantMax: nil,
		},
		{
			name:    "min inside another word does not match",
			query:   "minecraft sets",
			wantMin: nil,
			wantMax: nil,
		},
		{
			name:    "empty query",
			query:   "",
			wantMin: nil,
			wantMax: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotMin, gotMax := ParsePriceRange(tt.query)
			if !floatPtrEqual(gotMin, tt.wantMin) {
				t.Errorf("min = %v, want %v", fmtPtr(gotMin), fmtPtr(tt.wantMin))
			}
			if !floatPtrEqual(gotMax, tt.wantMax) {
				t.Errorf("max = %v, want %v", fmtPtr(gotMax), fmtPtr(tt.wantMax))
			}
		})
	}
}

func f(v float64) *float64 {
	return &v
}

func floatPtrEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func fmtPtr(p *float64) interface{} {
	if p == nil {
		return nil
	}
	return *p
}
