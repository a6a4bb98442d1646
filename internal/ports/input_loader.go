package ports

// InputLoader reads a day's puzzle input from a source (e.g., filesystem).
type InputLoader interface {
	LoadInput(day int) (string, error)
}
