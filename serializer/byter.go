package serializer

// SerializablePtr is a type constraint for pointers to values that implement the
// fixed-size codec contract. It lets generic helpers instantiate a V and decode into it.
type SerializablePtr[V any] interface {
	*V
	Deserializable
}
