package core

// Entity is a unique identifier for a world entity
// Zero is reserved as the invalid entity
type Entity uint64
