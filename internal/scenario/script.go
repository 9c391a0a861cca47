// Package scenario loads scripted matches from Lua files and replays them
// through the engine without prompting anyone. Scripts declare the grid,
// the players, the bodies, and the orders for each turn; the runner drives
// the game to a winner or a turn limit.
package scenario

import (
	"math"
	"path/filepath"
	"strings"

	"github.com/Shopify/go-lua"

	apperrors "github.com/louisbranch/starhold/internal/platform/errors"
)

const scenarioTypeName = "scenario"

// Scenario is a scripted match declaration. Bodies take display names from
// the engine's alphabet in declaration order, so scripts refer to the first
// declared body as "A", the second as "B", and so on.
type Scenario struct {
	Name      string
	Width     int
	Height    int
	Seed      int64
	TurnLimit int
	Players   []string
	Bodies    []BodyDecl
	Turns     []TurnDecl
}

// BodyDecl declares one body. An empty Owner means neutral.
type BodyDecl struct {
	Owner      string
	Units      int
	Power      int
	Production int
	X, Y       int
}

// TurnDecl declares the orders every player submits on one turn.
type TurnDecl struct {
	Orders []OrderDecl
}

// OrderDecl declares one order by player name and body display names.
type OrderDecl struct {
	Player string
	From   string
	To     string
	Units  int
}

// LoadFile runs a Lua script and returns the scenario it builds. The script
// must return the scenario userdata it constructed.
func LoadFile(path string) (*Scenario, error) {
	state := lua.NewState()
	lua.OpenLibraries(state)

	registerScenarioType(state)
	registerScenarioConstructor(state)

	if err := lua.LoadFile(state, path, ""); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeScenarioInvalid, "load script", err)
	}
	if err := state.ProtectedCall(0, 1, 0); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeScenarioInvalid, "run script", err)
	}

	if state.TypeOf(-1) != lua.TypeUserData {
		state.Pop(1)
		return nil, apperrors.New(apperrors.CodeScenarioInvalid, "script must return a scenario")
	}
	ud := state.ToUserData(-1)
	state.Pop(1)
	scenario, ok := ud.(*Scenario)
	if !ok || scenario == nil {
		return nil, apperrors.New(apperrors.CodeScenarioInvalid, "script returned invalid scenario")
	}
	if strings.TrimSpace(scenario.Name) == "" {
		scenario.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return scenario, nil
}

func registerScenarioType(state *lua.State) {
	lua.NewMetaTable(state, scenarioTypeName)
	state.NewTable()
	lua.SetFunctions(state, scenarioMethods, 0)
	state.SetField(-2, "__index")
	state.Pop(1)
}

func registerScenarioConstructor(state *lua.State) {
	state.NewTable()
	lua.SetFunctions(state, scenarioConstructor, 0)
	state.SetGlobal("Scenario")
}

var scenarioConstructor = []lua.RegistryFunction{
	{Name: "new", Function: scenarioNew},
}

var scenarioMethods = []lua.RegistryFunction{
	{Name: "grid", Function: scenarioGrid},
	{Name: "seed", Function: scenarioSeed},
	{Name: "turn_limit", Function: scenarioTurnLimit},
	{Name: "player", Function: scenarioPlayer},
	{Name: "body", Function: scenarioBody},
	{Name: "turn", Function: scenarioTurn},
}

func scenarioNew(state *lua.State) int {
	name := lua.OptString(state, 1, "")
	scenario := &Scenario{Name: name}
	state.PushUserData(scenario)
	lua.SetMetaTableNamed(state, scenarioTypeName)
	return 1
}

func scenarioGrid(state *lua.State) int {
	scenario := checkScenario(state)
	scenario.Width = lua.CheckInteger(state, 2)
	scenario.Height = lua.CheckInteger(state, 3)
	return 0
}

// maxExactSeed is the largest integer a Lua number (float64) holds exactly.
// The seed is the replay contract, so values it cannot represent are
// rejected rather than truncated.
const maxExactSeed = int64(1) << 53

func scenarioSeed(state *lua.State) int {
	scenario := checkScenario(state)
	value := lua.CheckNumber(state, 2)
	if value != math.Trunc(value) || math.Abs(value) > float64(maxExactSeed) {
		lua.ArgumentError(state, 2, "seed must be an integer within 2^53")
	}
	scenario.Seed = int64(value)
	return 0
}

func scenarioTurnLimit(state *lua.State) int {
	scenario := checkScenario(state)
	scenario.TurnLimit = lua.CheckInteger(state, 2)
	return 0
}

func scenarioPlayer(state *lua.State) int {
	scenario := checkScenario(state)
	scenario.Players = append(scenario.Players, lua.CheckString(state, 2))
	return 0
}

func scenarioBody(state *lua.State) int {
	scenario := checkScenario(state)
	lua.CheckType(state, 2, lua.TypeTable)
	data := tableToMap(state, 2)
	scenario.Bodies = append(scenario.Bodies, BodyDecl{
		Owner:      stringArg(data, "owner"),
		Units:      intArg(data, "units"),
		Power:      intArg(data, "power"),
		Production: intArg(data, "production"),
		X:          intArg(data, "x"),
		Y:          intArg(data, "y"),
	})
	return 0
}

func scenarioTurn(state *lua.State) int {
	scenario := checkScenario(state)
	lua.CheckType(state, 2, lua.TypeTable)

	turn := TurnDecl{}
	for i := 1; ; i++ {
		state.RawGetInt(2, i)
		if state.TypeOf(-1) == lua.TypeNil {
			state.Pop(1)
			break
		}
		if state.TypeOf(-1) == lua.TypeTable {
			data := tableToMap(state, state.AbsIndex(-1))
			turn.Orders = append(turn.Orders, OrderDecl{
				Player: stringArg(data, "player"),
				From:   stringArg(data, "from"),
				To:     stringArg(data, "to"),
				Units:  intArg(data, "units"),
			})
		}
		state.Pop(1)
	}
	scenario.Turns = append(scenario.Turns, turn)
	return 0
}

func checkScenario(state *lua.State) *Scenario {
	ud := lua.CheckUserData(state, 1, scenarioTypeName)
	if scenario, ok := ud.(*Scenario); ok && scenario != nil {
		return scenario
	}
	lua.ArgumentError(state, 1, "scenario expected")
	return nil
}

func tableToMap(state *lua.State, index int) map[string]any {
	output := map[string]any{}
	if state.TypeOf(index) != lua.TypeTable {
		return output
	}

	index = state.AbsIndex(index)
	state.PushNil()
	for state.Next(index) {
		if state.TypeOf(-2) == lua.TypeString {
			key, _ := state.ToString(-2)
			switch state.TypeOf(-1) {
			case lua.TypeString:
				value, _ := state.ToString(-1)
				output[key] = value
			case lua.TypeNumber:
				value, _ := state.ToNumber(-1)
				output[key] = value
			case lua.TypeBoolean:
				output[key] = state.ToBoolean(-1)
			}
		}
		state.Pop(1)
	}
	return output
}

func stringArg(data map[string]any, key string) string {
	value, _ := data[key].(string)
	return value
}

func intArg(data map[string]any, key string) int {
	value, _ := data[key].(float64)
	return int(value)
}
