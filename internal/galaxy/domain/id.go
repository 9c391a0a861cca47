package domain

// PlayerID identifies a player for the lifetime of a game. Player, body and
// force identifiers are distinct types on purpose: the numeric values
// overlap, the namespaces never do.
type PlayerID int

// BodyID identifies a body for the lifetime of a game.
type BodyID int

// ForceID identifies an in-flight force. Values are allocated from a
// monotonic counter and never reused, even after the force is destroyed.
type ForceID int
