package cli

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	message.SetString(lang, "turn.ended", "----- Turn ended ------")
	message.SetString(lang, "turn.prompt", "Player %s: ")
	message.SetString(lang, "turn.help", "\ns A B n - send n units from A to B\nd - show distances between all bodies\nd A B C ... - show distance for trips between A, B, C...\ni - info on bodies\ni A B ... - info on specific bodies\nn - finish turn\n")

	message.SetString(lang, "event.attack_failed", "Force from player %s failed to take body %s.")
	message.SetString(lang, "event.attack_succeeded", "Force from player %s took over body %s!")
	message.SetString(lang, "event.reinforced", "Reinforcements of %d units have arrived at body %s.")
	message.SetString(lang, "event.eliminated", "Player %s was eliminated!")
	message.SetString(lang, "game.winner", "Player %s wins!")

	message.SetString(lang, "error.no_command", "No command provided")
	message.SetString(lang, "error.unknown_command", "No such command")
	message.SetString(lang, "error.send_usage", "Need a source and destination body and a number of units")
	message.SetString(lang, "error.invalid_number", "Invalid number of units")
	message.SetString(lang, "error.body_skipped", "Body %s: %s, skipping")
	message.SetString(lang, "error.order.not_enough_units", "Not enough units")
	message.SetString(lang, "error.order.not_your_body", "Not your body")
	message.SetString(lang, "error.order.same_body", "Source and destination are the same body")
	message.SetString(lang, "error.order.invalid_count", "Unit count must be greater than zero")
	message.SetString(lang, "error.name.not_single_character", "Body names are a single character")
	message.SetString(lang, "error.name.unknown", "No such body")
}

// Printer returns a message printer for the console's language.
func Printer() *message.Printer {
	return message.NewPrinter(language.English)
}
