package phrases

// Rand — источник случайности; *math/rand/v2.Rand подходит как есть.
type Rand interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}
