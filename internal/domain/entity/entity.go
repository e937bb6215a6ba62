package entity

// Entity is a stored record addressed by a store-assigned integer identifier.
type Entity interface {
	Identifier() int
}
