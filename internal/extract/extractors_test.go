package extract_test

import (
	"testing"
	"time"

	"datefix/internal/extract"
	"datefix/internal/logging"
)

// fixedClock keeps future-date discarding deterministic across the tests.
func fixedClock(t *testing.T) func() time.Time {
	t.Helper()
	return func() time.Time {
		return time.Date(2026, 3, 1, 12, 0, 0, 0, time.Local)
	}
}

func newDispatcher(t *testing.T) *extract.Dispatcher {
	t.Helper()
	return extract.New(logging.NewNop(), extract.WithClock(fixedClock(t)))
}

func TestWhatsAppNames(t *testing.T) {
	d := newDispatcher(t)

	tests := []struct {
		name string
		want time.Time
		ok   bool
	}{
		{"IMG-20250127-WA0006.jpg", time.Date(2025, 1, 27, 0, 0, 0, 0, time.Local), true},
		{"backup IMG-20250127-WA0001.jpg", time.Date(2025, 1, 27, 0, 0, 0, 0, time.Local), true},
		{"IMG-20251345-WA0001.jpg", time.Time{}, false},
		{"IMG-2025012-WA0001.jpg", time.Time{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := d.FromPath("/photos/" + tc.name)
			if ok != tc.ok {
				t.Fatalf("FromPath(%q) ok = %v, want %v", tc.name, ok, tc.ok)
			}
			if ok && !got.Equal(tc.want) {
				t.Fatalf("FromPath(%q) = %v, want %v", tc.name, got, tc.want)
			}
		})
	}
}

func TestAndroidNames(t *testing.T) {
	d := newDispatcher(t)

	tests := []struct {
		name string
		want time.Time
		ok   bool
	}{
		{"IMG_20190818_130841.jpg", time.Date(2019, 8, 18, 13, 8, 41, 0, time.Local), true},
		{"holiday IMG_20190818_130841 edit.jpg", time.Date(2019, 8, 18, 13, 8, 41, 0, time.Local), true},
		{"IMG_20191318_130841.jpg", time.Time{}, false},
		{"IMG_20190818_256161.jpg", time.Time{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := d.FromPath("/photos/" + tc.name)
			if ok != tc.ok {
				t.Fatalf("FromPath(%q) ok = %v, want %v", tc.name, ok, tc.ok)
			}
			if ok && !got.Equal(tc.want) {
				t.Fatalf("FromPath(%q) = %v, want %v", tc.name, got, tc.want)
			}
		})
	}
}

func TestDatePrefixedNames(t *testing.T) {
	d := newDispatcher(t)

	tests := []struct {
		name string
		want time.Time
		ok   bool
	}{
		{"2021 vacation.jpg", time.Date(2021, 1, 1, 0, 0, 0, 0, time.Local), true},
		{"2020-10 hawaii.png", time.Date(2020, 10, 1, 0, 0, 0, 0, time.Local), true},
		{"2019-08-18 hike.jpg", time.Date(2019, 8, 18, 0, 0, 0, 0, time.Local), true},
		{"2021-07-14 20_25_57 party.jpg", time.Date(2021, 7, 14, 20, 25, 57, 0, time.Local), true},
		{"2020-10-10 211056 a.png", time.Date(2020, 10, 10, 21, 10, 56, 0, time.Local), true},
		{"20201010_20_25_57-a.png", time.Date(2020, 10, 10, 20, 25, 57, 0, time.Local), true},
		{"20241108_094517_Mull.jpg", time.Date(2024, 11, 8, 9, 45, 17, 0, time.Local), true},
		// A time without a day zeroes the hour but keeps the finer components.
		{"2021-130841_january.jpg", time.Date(2021, 1, 1, 0, 8, 41, 0, time.Local), true},
		// A day without a month reads as an invalid month and yields nothing.
		{"2021-15 beach.jpg", time.Time{}, false},
		{"2563.jpg", time.Time{}, false},
		{"2021.jpg", time.Time{}, false},
		{"panorama.jpg", time.Time{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := d.FromPath("/photos/" + tc.name)
			if ok != tc.ok {
				t.Fatalf("FromPath(%q) ok = %v, want %v", tc.name, ok, tc.ok)
			}
			if ok && !got.Equal(tc.want) {
				t.Fatalf("FromPath(%q) = %v, want %v", tc.name, got, tc.want)
			}
		})
	}
}

func TestEpochUUIDNames(t *testing.T) {
	d := newDispatcher(t)

	tests := []struct {
		name string
		want time.Time
		ok   bool
	}{
		{"1575287300397-e1b3b2a6-5e34-4c39-a1b2-9f3e8c7d6e5f.jpg", time.UnixMilli(1575287300397), true},
		{"5000-e1b3b2a6-5e34-4c39-a1b2-9f3e8c7d6e5f.jpg", time.UnixMilli(5000), true},
		{"1575287300397-E1B3B2A6-5E34-4C39-A1B2-9F3E8C7D6E5F.jpg", time.Time{}, false},
		{"123-not-a-uuid.jpg", time.Time{}, false},
		{"99999999999999999999-e1b3b2a6-5e34-4c39-a1b2-9f3e8c7d6e5f.jpg", time.Time{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := d.FromPath("/photos/" + tc.name)
			if ok != tc.ok {
				t.Fatalf("FromPath(%q) ok = %v, want %v", tc.name, ok, tc.ok)
			}
			if ok && !got.Equal(tc.want) {
				t.Fatalf("FromPath(%q) = %v, want %v", tc.name, got, tc.want)
			}
		})
	}
}

func TestScreenshotNames(t *testing.T) {
	d := newDispatcher(t)

	tests := []struct {
		name string
		want time.Time
		ok   bool
	}{
		{"Screenshot_20190818-130841.png", time.Date(2019, 8, 18, 0, 0, 0, 0, time.Local), true},
		{"Screenshot-IMG_20190818_130841.png", time.Date(2019, 8, 18, 13, 8, 41, 0, time.Local), true},
		{"Screenshot 2021 games.png", time.Date(2021, 1, 1, 0, 0, 0, 0, time.Local), true},
		{"Screenshot_Screenshot_2021 nested.png", time.Date(2021, 1, 1, 0, 0, 0, 0, time.Local), true},
		{"Screenshot_untitled.png", time.Time{}, false},
		{"Screenshots_2021 plural.png", time.Time{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := d.FromPath("/pictures/" + tc.name)
			if ok != tc.ok {
				t.Fatalf("FromPath(%q) ok = %v, want %v", tc.name, ok, tc.ok)
			}
			if ok && !got.Equal(tc.want) {
				t.Fatalf("FromPath(%q) = %v, want %v", tc.name, got, tc.want)
			}
		})
	}
}
