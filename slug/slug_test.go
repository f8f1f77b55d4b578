package slug

import "testing"

func TestMakeTransliteratesCyrillic(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Дубай Сити", "dubay-siti"},
		{"Дубай", "dubay"},
		{"Тайланд", "tailand"},
		{"Жълта щука", "zhalta-shtuka"},
		{"Банкок Делукс", "bankok-deluks"},
		{"Already-latin 42", "already-latin-42"},
		{"  spaced   out  ", "spaced-out"},
		{"under_score", "under-score"},
		{"Punct!@#uation", "punctuation"},
		{"", ""},
	}

	for _, c := range cases {
		if got := Make(c.in); got != c.want {
			t.Errorf("Make(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestMakeIdempotent(t *testing.T) {
	inputs := []string{"Дубай Сити", "Екскурзия до Рим 2026", "plain", "", "a--b__c"}
	for _, in := range inputs {
		once := Make(in)
		if twice := Make(once); twice != once {
			t.Errorf("Make not idempotent for %q: %q != %q", in, twice, once)
		}
	}
}
