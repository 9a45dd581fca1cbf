package phrases

const DefaultThreshold = 0.65

// Similarity — детектор похожести по Жаккару на биграммах слов.
type Similarity struct {
	Threshold float64
}

func NewSimilarity(threshold float64) Similarity {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return Similarity{Threshold: threshold}
}

type bigram [2]string

func bigrams(ws []string) map[bigram]struct{} {
	if len(ws) < 2 {
		return nil
	}
	out := make(map[bigram]struct{}, len(ws)-1)
	for i := 0; i+1 < len(ws); i++ {
		out[bigram{ws[i], ws[i+1]}] = struct{}{}
	}
	return out
}

// Jaccard returns |A∩B| / |A∪B| over word bigrams, 0 when either side
// has fewer than two words.
func Jaccard(a, b string) float64 {
	return jaccard(bigrams(words(a)), bigrams(words(b)))
}

func jaccard(A, B map[bigram]struct{}) float64 {
	if len(A) == 0 || len(B) == 0 {
		return 0
	}

	inter := 0
	for g := range A {
		if _, ok := B[g]; ok {
			inter++
		}
	}
	union := len(A) + len(B) - inter
	return float64(inter) / float64(union)
}

func (s Similarity) TooSimilar(a, b string) bool {
	A := bigrams(words(a))
	B := bigrams(words(b))
	if len(A) == 0 || len(B) == 0 {
		return false
	}
	return jaccard(A, B) >= s.Threshold
}

// SimilarToAny — есть ли в items хоть одна слишком похожая строка.
func (s Similarity) SimilarToAny(text string, items []string) bool {
	for _, it := range items {
		if s.TooSimilar(text, it) {
			return true
		}
	}
	return false
}
