package typeface

import (
	"testing"

	"golang.org/x/text/language"
)

// fourInstanceFamily builds the conventional regular/bold/italic/bold-italic family.
func fourInstanceFamily() *Family {
	return NewFamily([]Instance{
		{Style: NewFontStyle(400, SlantUpright)},
		{Style: NewFontStyle(700, SlantUpright)},
		{Style: NewFontStyle(400, SlantItalic)},
		{Style: NewFontStyle(700, SlantItalic)},
	})
}

func TestNewFamilyCopiesInstances(t *testing.T) {
	instances := []Instance{
		{Style: NewFontStyle(400, SlantUpright)},
	}
	fam := NewFamily(instances)

	instances[0].Style = NewFontStyle(900, SlantItalic)
	if got := fam.Instance(0).Style; got != NewFontStyle(400, SlantUpright) {
		t.Errorf("family instance mutated through caller slice: %v", got)
	}
}

func TestFamilyLanguage(t *testing.T) {
	plain := NewFamily(nil)
	if got := plain.Language(); got != language.Und {
		t.Errorf("Language() = %v, want Und", got)
	}

	tagged := NewFamily(nil, WithLanguage(language.Japanese))
	if got := tagged.Language(); got != language.Japanese {
		t.Errorf("Language() = %v, want %v", got, language.Japanese)
	}
}

func TestClosestInstance(t *testing.T) {
	regular := NewFontStyle(400, SlantUpright)

	tests := []struct {
		name      string
		instances []Instance
		target    FontStyle
		want      FontStyle
	}{
		{
			name: "exact regular",
			instances: []Instance{
				{Style: NewFontStyle(400, SlantUpright)},
				{Style: NewFontStyle(700, SlantUpright)},
			},
			target: regular,
			want:   NewFontStyle(400, SlantUpright),
		},
		{
			name: "nearest weight wins without exact match",
			instances: []Instance{
				{Style: NewFontStyle(100, SlantUpright)},
				{Style: NewFontStyle(500, SlantUpright)},
				{Style: NewFontStyle(900, SlantUpright)},
			},
			target: regular,
			want:   NewFontStyle(500, SlantUpright),
		},
		{
			name: "upright beats italic at equal weight distance",
			instances: []Instance{
				{Style: NewFontStyle(400, SlantItalic)},
				{Style: NewFontStyle(400, SlantUpright)},
			},
			target: regular,
			want:   NewFontStyle(400, SlantUpright),
		},
		{
			name: "weight distance beats slant match",
			instances: []Instance{
				{Style: NewFontStyle(700, SlantUpright)},
				{Style: NewFontStyle(400, SlantItalic)},
			},
			target: regular,
			want:   NewFontStyle(400, SlantItalic),
		},
		{
			name: "declaration order breaks full ties",
			instances: []Instance{
				{Style: NewFontStyle(300, SlantUpright)},
				{Style: NewFontStyle(500, SlantUpright)},
			},
			target: regular,
			want:   NewFontStyle(300, SlantUpright),
		},
		{
			name: "italic target prefers italic",
			instances: []Instance{
				{Style: NewFontStyle(400, SlantUpright)},
				{Style: NewFontStyle(400, SlantItalic)},
			},
			target: NewFontStyle(400, SlantItalic),
			want:   NewFontStyle(400, SlantItalic),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fam := NewFamily(tt.instances)
			inst, ok := fam.ClosestInstance(tt.target)
			if !ok {
				t.Fatal("ClosestInstance reported no instances")
			}
			if inst.Style != tt.want {
				t.Errorf("ClosestInstance(%v) = %v, want %v", tt.target, inst.Style, tt.want)
			}
		})
	}
}

func TestClosestInstanceEmpty(t *testing.T) {
	if _, ok := NewFamily(nil).ClosestInstance(NewFontStyle(400, SlantUpright)); ok {
		t.Error("ClosestInstance on empty family reported ok")
	}
	var nilFam *Family
	if _, ok := nilFam.ClosestInstance(NewFontStyle(400, SlantUpright)); ok {
		t.Error("ClosestInstance on nil family reported ok")
	}
}

func TestCreateFromFamilies(t *testing.T) {
	fam := fourInstanceFamily()

	tests := []struct {
		name       string
		weight     int
		italic     bool
		wantWeight int
		wantSlant  Slant
		wantStyle  Style
	}{
		{"regular", 400, false, 400, SlantUpright, StyleNormal},
		{"bold", 700, false, 700, SlantUpright, StyleBold},
		{"italic", 400, true, 400, SlantItalic, StyleItalic},
		{"bold italic", 700, true, 700, SlantItalic, StyleBoldItalic},
		{"overflow clamps to bold", 1100, false, 1000, SlantUpright, StyleBold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tf := CreateFromFamilies([]*Family{fam}, tt.weight, tt.italic)
			wantResolved(t, tf, tt.wantWeight, tt.wantSlant, tt.wantStyle)
			if got := tf.BaseWeight(); got != tt.wantWeight {
				t.Errorf("BaseWeight() = %d, want %d", got, tt.wantWeight)
			}
			if fams := tf.Families(); len(fams) != 1 || fams[0] != fam {
				t.Error("families not retained by reference")
			}
		})
	}
}

// The explicit path trusts the numeric request even when the family
// declares nothing like it.
func TestCreateFromFamiliesTrustsRequest(t *testing.T) {
	fam := NewFamily([]Instance{
		{Style: NewFontStyle(900, SlantItalic)},
	})
	tf := CreateFromFamilies([]*Family{fam}, 250, false)
	wantResolved(t, tf, 250, SlantUpright, StyleNormal)
}

func TestCreateFromFamiliesAuto(t *testing.T) {
	t.Run("conventional family resolves regular", func(t *testing.T) {
		tf := CreateFromFamiliesAuto([]*Family{fourInstanceFamily()})
		wantResolved(t, tf, 400, SlantUpright, StyleNormal)
		if got := tf.BaseWeight(); got != 400 {
			t.Errorf("BaseWeight() = %d, want 400", got)
		}
	})

	t.Run("list without regular resolves from primary family", func(t *testing.T) {
		// One single-instance family per font, bold first: the list
		// has no regular anywhere, and only the primary family is
		// inspected.
		families := []*Family{
			NewFamily([]Instance{{Style: NewFontStyle(700, SlantUpright)}}),
			NewFamily([]Instance{{Style: NewFontStyle(400, SlantItalic)}}),
			NewFamily([]Instance{{Style: NewFontStyle(700, SlantItalic)}}),
		}
		tf := CreateFromFamiliesAuto(families)
		wantResolved(t, tf, 700, SlantUpright, StyleBold)
		if got := tf.BaseWeight(); got != 700 {
			t.Errorf("BaseWeight() = %d, want 700", got)
		}
	})

	t.Run("mixed family without regular picks nearest weight", func(t *testing.T) {
		fam := NewFamily([]Instance{
			{Style: NewFontStyle(700, SlantUpright)},
			{Style: NewFontStyle(400, SlantItalic)},
			{Style: NewFontStyle(700, SlantItalic)},
		})
		tf := CreateFromFamiliesAuto([]*Family{fam})
		// Weight distance is the primary criterion, so the 400-weight
		// italic beats the 700-weight upright.
		wantResolved(t, tf, 400, SlantItalic, StyleItalic)
		if got := tf.BaseWeight(); got != 400 {
			t.Errorf("BaseWeight() = %d, want 400", got)
		}
	})

	t.Run("bold-only family resolves to its own weight", func(t *testing.T) {
		fam := NewFamily([]Instance{
			{Style: NewFontStyle(700, SlantUpright)},
			{Style: NewFontStyle(700, SlantItalic)},
		})
		tf := CreateFromFamiliesAuto([]*Family{fam})
		wantResolved(t, tf, 700, SlantUpright, StyleBold)
		if got := tf.BaseWeight(); got != 700 {
			t.Errorf("BaseWeight() = %d, want 700", got)
		}
	})

	t.Run("only the primary family is inspected", func(t *testing.T) {
		primary := NewFamily([]Instance{
			{Style: NewFontStyle(700, SlantUpright)},
		})
		fallback := NewFamily([]Instance{
			{Style: NewFontStyle(400, SlantUpright)},
		})
		tf := CreateFromFamiliesAuto([]*Family{primary, fallback})
		wantResolved(t, tf, 700, SlantUpright, StyleBold)
	})

	t.Run("primary family with no instances resolves regular", func(t *testing.T) {
		tf := CreateFromFamiliesAuto([]*Family{NewFamily(nil)})
		wantResolved(t, tf, 400, SlantUpright, StyleNormal)
	})
}

func TestCreateFromFamiliesPanicsOnEmpty(t *testing.T) {
	tests := []struct {
		name string
		call func()
	}{
		{"explicit nil", func() { CreateFromFamilies(nil, 400, false) }},
		{"explicit empty", func() { CreateFromFamilies([]*Family{}, 400, false) }},
		{"auto nil", func() { CreateFromFamiliesAuto(nil) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic on empty families")
				}
			}()
			tt.call()
		})
	}
}
