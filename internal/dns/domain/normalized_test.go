package domain

import "testing"

func TestNewNormalizedDomain_Key(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"a.b.com", "moc.b.a."},
		{"com", "moc."},
		{"gdz.ru", "ur.zdg."},
		{"localhost", "tsohlacol."},
		{"", "."},
		{"com.", ".moc."},
	}

	for _, tt := range tests {
		got := NewNormalizedDomain(tt.in).Key()
		if got != tt.want {
			t.Errorf("NewNormalizedDomain(%q).Key() = %q; want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizedDomain_KeyEndsWithSeparator(t *testing.T) {
	for _, in := range []string{"", "x", "habr.com", "ru.wiki.net", "a..b"} {
		key := NewNormalizedDomain(in).Key()
		if key[len(key)-1] != LabelSeparator {
			t.Errorf("key %q for %q does not end with %q", key, in, LabelSeparator)
		}
	}
}

func TestNormalizedDomain_Name(t *testing.T) {
	for _, in := range []string{"", "com", "habr.com", "this.is.also.cool.domain.da", "com."} {
		if got := NewNormalizedDomain(in).Name(); got != in {
			t.Errorf("Name() = %q; want %q", got, in)
		}
		if got := NewNormalizedDomain(in).String(); got != in {
			t.Errorf("String() = %q; want %q", got, in)
		}
	}
}

func TestNormalizedDomain_Equal(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"this_is_super_cool_and_long_and_FAT_domain.lol", "this_is_super_cool_and_long_and_FAT_domain.lol", true},
		{"this.is.also.cool.domain.da", "this.is.also.cool.domain.da", true},
		{"i_am_happy_domain.com", "i_am_happy_domain,com", false},
		{"habr.com", "Habr.com", false},
		{"com", "com.", false},
		{"", "", true},
	}

	for _, tt := range tests {
		got := NewNormalizedDomain(tt.a).Equal(NewNormalizedDomain(tt.b))
		if got != tt.want {
			t.Errorf("Equal(%q, %q) = %v; want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestNormalizedDomain_IsSubdomain(t *testing.T) {
	tests := []struct {
		name, ancestor string
		want           bool
	}{
		{"com", "habr.com", false},
		{"habr.com", "habr.com", true},
		{"habr.com", "com", true},
		{"this_cool_domain.dotcom", "com", false},
		{"fakegdz.ru", "gdz.ru", false},
		{"alg.m.gdz.ru", "gdz.ru", true},
		{"alg.m.gdz.ru", "m.gdz.ru", true},
		{"gdz.ru", "m.gdz.ru", false},
		{"maps.ru", "gdz.ru", false},
		{"", "", true},
		{"com", "", false},
	}

	for _, tt := range tests {
		got := NewNormalizedDomain(tt.name).IsSubdomain(NewNormalizedDomain(tt.ancestor))
		if got != tt.want {
			t.Errorf("IsSubdomain(%q, %q) = %v; want %v", tt.name, tt.ancestor, got, tt.want)
		}
	}
}

func TestNormalizedDomain_Reflexive(t *testing.T) {
	for _, in := range []string{"", "com", "habr.com", "a_b.c-d.e", "i_am_happy_domain,com"} {
		d := NewNormalizedDomain(in)
		if !d.Equal(NewNormalizedDomain(in)) {
			t.Errorf("Equal not idempotent for %q", in)
		}
		if !d.IsSubdomain(d) {
			t.Errorf("IsSubdomain not reflexive for %q", in)
		}
	}
}

func TestNormalizedDomain_LessAndCompare(t *testing.T) {
	com := NewNormalizedDomain("com")
	habr := NewNormalizedDomain("habr.com")
	ru := NewNormalizedDomain("gdz.ru")

	if !com.Less(habr) {
		t.Errorf("expected com < habr.com")
	}
	if habr.Less(com) {
		t.Errorf("expected !(habr.com < com)")
	}
	if com.Less(com) {
		t.Errorf("Less must be irreflexive")
	}
	if got := com.Compare(habr); got != -1 {
		t.Errorf("Compare(com, habr.com) = %d; want -1", got)
	}
	if got := ru.Compare(com); got != 1 {
		t.Errorf("Compare(gdz.ru, com) = %d; want 1", got)
	}
	if got := ru.Compare(NewNormalizedDomain("gdz.ru")); got != 0 {
		t.Errorf("Compare(gdz.ru, gdz.ru) = %d; want 0", got)
	}
}
