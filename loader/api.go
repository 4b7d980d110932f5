package loader

import (
	"math"
	"strconv"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/nathoo/adventure/types"
)

// collector accumulates world records while a Lua file executes.
type collector struct {
	defs *types.Defs
}

// registerAPI registers the world-definition constructors as globals.
// They only record data; nothing registered here runs during play.
func registerAPI(L *lua.LState, coll *collector) {
	// Room(id, name, description)
	L.SetGlobal("Room", L.NewFunction(func(L *lua.LState) int {
		coll.defs.Rooms = append(coll.defs.Rooms, types.RoomRecord{
			ID:          L.CheckInt(1),
			Name:        L.CheckString(2),
			Description: L.CheckString(3),
		})
		return 0
	}))

	// Connect(source, dir, target, dir, target, ...)
	// A target is a room id or a "room/item" string. Directions and gating
	// item names are upper-cased like player input; room names are not.
	L.SetGlobal("Connect", L.NewFunction(func(L *lua.LState) int {
		top := L.GetTop()
		if top < 3 || (top-1)%2 != 0 {
			L.ArgError(top, "expected direction/target pairs after the source room")
			return 0
		}
		rec := types.ConnectionRecord{Source: L.CheckInt(1)}
		for i := 2; i < top; i += 2 {
			rec.Links = append(rec.Links, types.Link{
				Direction: strings.ToUpper(L.CheckString(i)),
				Target:    luaTarget(L, i+1),
			})
		}
		coll.defs.Connections = append(coll.defs.Connections, rec)
		return 0
	}))

	// Place(name, description, room, ...)
	// Item names are upper-cased so TAKE and DROP can match them.
	L.SetGlobal("Place", L.NewFunction(func(L *lua.LState) int {
		top := L.GetTop()
		if top == 0 || top%3 != 0 {
			L.ArgError(top, "expected name/description/room triples")
			return 0
		}
		for i := 1; i <= top; i += 3 {
			coll.defs.Placements = append(coll.defs.Placements, types.PlacementRecord{
				Item: types.Item{Name: strings.ToUpper(L.CheckString(i)), Description: L.CheckString(i + 1)},
				Room: L.CheckInt(i + 2),
			})
		}
		return 0
	}))

	// Synonym(token, canonical)
	L.SetGlobal("Synonym", L.NewFunction(func(L *lua.LState) int {
		token := strings.ToUpper(L.CheckString(1))
		coll.defs.Synonyms[token] = strings.ToUpper(L.CheckString(2))
		return 0
	}))
}

// luaTarget converts a Connect target argument into the raw target token
// used by the tab format.
func luaTarget(L *lua.LState, n int) string {
	switch v := L.Get(n).(type) {
	case lua.LNumber:
		f := float64(v)
		if f != math.Trunc(f) {
			L.ArgError(n, "room id must be an integer")
			return ""
		}
		return strconv.Itoa(int(f))
	case lua.LString:
		if dest, item, ok := strings.Cut(string(v), "/"); ok {
			return dest + "/" + strings.ToUpper(item)
		}
		return string(v)
	default:
		L.ArgError(n, `target must be a room id or a "room/item" string`)
		return ""
	}
}
