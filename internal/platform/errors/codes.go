// Package errors provides structured error handling for the game engine.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Game construction errors
	CodeGameTooManyBodies Code = "GAME_TOO_MANY_BODIES"
	CodeGameInvalidBody   Code = "GAME_INVALID_BODY"
	CodeGameNoPlayers     Code = "GAME_NO_PLAYERS"
	CodeGameMissingRNG    Code = "GAME_MISSING_RNG"

	// Order errors
	CodeOrderNoSuchBody     Code = "ORDER_NO_SUCH_BODY"
	CodeOrderSameBody       Code = "ORDER_SAME_BODY"
	CodeOrderNotYourBody    Code = "ORDER_NOT_YOUR_BODY"
	CodeOrderInvalidCount   Code = "ORDER_INVALID_COUNT"
	CodeOrderNotEnoughUnits Code = "ORDER_NOT_ENOUGH_UNITS"

	// Lookup errors
	CodeBodyNotFound   Code = "BODY_NOT_FOUND"
	CodePlayerNotFound Code = "PLAYER_NOT_FOUND"

	// Display-name resolution errors
	CodeNameNotSingleCharacter Code = "NAME_NOT_SINGLE_CHARACTER"
	CodeNameUnknownBody        Code = "NAME_UNKNOWN_BODY"

	// Scenario errors
	CodeScenarioInvalid       Code = "SCENARIO_INVALID"
	CodeScenarioUnknownPlayer Code = "SCENARIO_UNKNOWN_PLAYER"
	CodeScenarioUnknownBody   Code = "SCENARIO_UNKNOWN_BODY"
)
