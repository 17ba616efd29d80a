package core

// IDGenerator creates unique identifiers
type IDGenerator interface {
	NewID() string
}
