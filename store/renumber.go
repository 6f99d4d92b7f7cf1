package store

// Renumber assigns ids 1..n to items in their current order and returns the
// id the next appended item should receive (n+1).
func Renumber[T Storable](items []T) Id {
	next := Id(1)
	for _, item := range items {
		item.SetId(next)
		next++
	}
	return next
}
