package shaper

import "testing"

func TestSegmentBidi(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		baseRTL bool
		want    []segment
	}{
		{
			name: "empty",
			text: "",
			want: nil,
		},
		{
			name: "all latin",
			text: "hello",
			want: []segment{{Start: 0, End: 5, RTL: false}},
		},
		{
			name: "all hebrew",
			text: "שלום",
			want: []segment{{Start: 0, End: 4, RTL: true}},
		},
		{
			name: "latin then hebrew",
			text: "abcשלום",
			want: []segment{
				{Start: 0, End: 3, RTL: false},
				{Start: 3, End: 7, RTL: true},
			},
		},
		{
			name: "neutral falls back to base LTR",
			text: "!!!",
			want: []segment{{Start: 0, End: 3, RTL: false}},
		},
		{
			name:    "neutral falls back to base RTL",
			text:    "!!!",
			baseRTL: true,
			want:    []segment{{Start: 0, End: 3, RTL: true}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := segmentBidi(tt.text, tt.baseRTL)
			if len(got) != len(tt.want) {
				t.Fatalf("segmentBidi(%q) = %v, want %v", tt.text, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("segment %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSegmentBidiCoversText(t *testing.T) {
	// Segments tile the rune range with no gaps or overlaps.
	texts := []string{"a", "aשb", "שלום abc שלום", "mixed ערבוב text"}
	for _, text := range texts {
		segs := segmentBidi(text, false)
		runeCount := len([]rune(text))
		next := 0
		for _, seg := range segs {
			if seg.Start != next {
				t.Errorf("%q: segment starts at %d, want %d", text, seg.Start, next)
			}
			if seg.End <= seg.Start {
				t.Errorf("%q: empty segment %+v", text, seg)
			}
			next = seg.End
		}
		if next != runeCount {
			t.Errorf("%q: segments end at %d, want %d", text, next, runeCount)
		}
	}
}
