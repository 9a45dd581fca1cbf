package phrases

import "testing"

func TestBanlistIsBanned(t *testing.T) {
	bans := DefaultBanlist()

	cases := []struct {
		text string
		want bool
	}{
		{"у тебя всё получится.", true},
		{"У тебя всё получится!", true},
		{"Ты справишься, я это знаю.", true},
		{"я знаю, что ты справишься.", true},
		{"мне кажется, ты справишься с этим.", true},
		{"и всё обязательно получится.", true},
		{"я рядом, даже если молчишь.", false},
		{"неполучится такое слово не бывает.", false},
		{"справишьсяли тоже не слово.", false},
	}

	for _, c := range cases {
		if got := bans.IsBanned(c.text); got != c.want {
			t.Errorf("IsBanned(%q) = %v, want %v", c.text, got, c.want)
		}
	}
}
