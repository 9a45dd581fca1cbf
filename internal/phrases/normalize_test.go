package phrases

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"  Я Рядом,   даже если молчишь. ", "я рядом, даже если молчишь."},
		{"«Ты важен» — даже если сомневаешься.", "ты важен даже если сомневаешься."},
		{"#тишина-тоже\tответ", "тишина тоже ответ"},
		{"“ВСЁ” ‘хорошо’", "всё хорошо"},
		{"", ""},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
