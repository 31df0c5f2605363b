package services

// QueryCache memoizes read results by key. Mutations drop entries by key prefix.
type QueryCache interface {
	Get(key string) (any, bool)
	Set(key string, value any)
	Invalidate(prefixes ...string)
}
