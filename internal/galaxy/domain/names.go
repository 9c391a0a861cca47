package domain

import apperrors "github.com/louisbranch/starhold/internal/platform/errors"

// bodyAlphabet is the fixed display alphabet. Bodies take one character each
// in creation order; the engine's integer identities never depend on it.
const bodyAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// MaxBodies is the number of bodies a single game can display.
const MaxBodies = len(bodyAlphabet)

var (
	// ErrNameNotSingleCharacter indicates a display name of the wrong length.
	ErrNameNotSingleCharacter = apperrors.New(apperrors.CodeNameNotSingleCharacter, "body names are a single character")
	// ErrUnknownBodyName indicates a display name matching no body.
	ErrUnknownBodyName = apperrors.New(apperrors.CodeNameUnknownBody, "no such body")
)

func displayName(id BodyID) string {
	return bodyAlphabet[id : id+1]
}

// ResolveBody maps a display name to a body identity. The name must be
// exactly one character and match a body's assigned display character.
func (g *Game) ResolveBody(name string) (BodyID, error) {
	if len(name) != 1 {
		return 0, ErrNameNotSingleCharacter
	}
	for id := range g.bodies {
		if g.bodies[id].Name == name {
			return BodyID(id), nil
		}
	}
	return 0, apperrors.WithMetadata(apperrors.CodeNameUnknownBody, "no such body",
		map[string]string{"name": name})
}
