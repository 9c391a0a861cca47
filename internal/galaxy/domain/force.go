package domain

// Force is an in-flight group of units traveling toward a destination body.
// Power is copied from the source body at launch and never changes in
// transit. A force with zero TurnsToArrival is resolved, win or lose, in the
// same turn resolution that reached zero.
type Force struct {
	ID             ForceID
	Units          int
	Power          int
	TurnsToArrival int
	Destination    BodyID
	Owner          PlayerID
}
