package cli

import (
	"fmt"
	"io"

	"golang.org/x/text/message"

	"github.com/louisbranch/starhold/internal/galaxy/domain"
)

// renderMap draws the grid one row per line, each cell boxed by vertical
// bars and holding a body's display character or a space.
func renderMap(w io.Writer, game *domain.Game) {
	width, height := game.Size()
	byPosition := make(map[domain.Position]string)
	for _, body := range game.Bodies() {
		byPosition[body.Position] = body.Name
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			name, ok := byPosition[domain.Position{X: x, Y: y}]
			if !ok {
				name = " "
			}
			fmt.Fprintf(w, "│%s", name)
		}
		fmt.Fprintln(w, "│")
	}
}

// renderInfo prints the stats table for the named bodies, or for every body
// when no names are given. Unknown names are reported and skipped.
func renderInfo(p *message.Printer, w io.Writer, game *domain.Game, names []string) {
	fmt.Fprintln(w, " Body   | Units  | Power  | Prod   | Owner")

	bodies := game.Bodies()
	selected := bodies
	if len(names) > 0 {
		selected = selected[:0:0]
		for _, name := range names {
			id, err := game.ResolveBody(name)
			if err != nil {
				p.Fprintf(w, "error.body_skipped", name, describeError(p, err))
				fmt.Fprintln(w)
				continue
			}
			selected = append(selected, bodies[id])
		}
	}

	for _, body := range selected {
		owner := "-"
		if body.Owned {
			if player, err := game.Player(body.Owner); err == nil {
				owner = player.Name
			}
		}
		fmt.Fprintf(w, " %-6s | %6d | %6d | %6d | %s\n",
			body.Name, body.Units, body.Power, body.Production, owner)
	}
}

// renderDistances prints the travel-time matrix for the given bodies. The
// diagonal stays blank.
func renderDistances(w io.Writer, bodies []domain.Body) {
	fmt.Fprint(w, `\|`)
	for _, body := range bodies {
		fmt.Fprintf(w, " %s |", body.Name)
	}
	for _, from := range bodies {
		fmt.Fprintf(w, "\n%s|", from.Name)
		for _, to := range bodies {
			turns := domain.TravelTime(from.Position, to.Position)
			if turns != 0 {
				fmt.Fprintf(w, "%3d|", turns)
			} else {
				fmt.Fprint(w, "   |")
			}
		}
	}
	fmt.Fprint(w, "\n\n")
}
