package utils

// Tabler is implemented by every persisted model.
type Tabler interface {
	TableName() string
}

func Ptr[T any](t T) *T {
	return &t
}
