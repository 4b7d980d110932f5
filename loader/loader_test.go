package loader

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nathoo/adventure/engine/world"
	"github.com/nathoo/adventure/types"
)

func TestLoad_TinyDat(t *testing.T) {
	defs, err := Load("testdata/TinyAdv.dat")
	require.NoError(t, err)

	assert.Equal(t, "Tiny", defs.Title)
	require.Len(t, defs.Rooms, 6)
	assert.Equal(t, types.RoomRecord{
		ID:          1,
		Name:        "Outside building",
		Description: "You are standing at the end of a road before a small brick building.",
	}, defs.Rooms[0])

	require.Len(t, defs.Connections, 6)
	assert.Equal(t, types.ConnectionRecord{
		Source: 1,
		Links: []types.Link{
			{Direction: "WEST", Target: "2"},
			{Direction: "IN", Target: "3"},
			{Direction: "SOUTH", Target: "4"},
		},
	}, defs.Connections[0])
	assert.Equal(t, types.Link{Direction: "DOWN", Target: "5/KEYS"}, defs.Connections[3].Links[1])

	require.Len(t, defs.Placements, 3)
	assert.Equal(t, types.PlacementRecord{Item: types.Item{Name: "KEYS", Description: "a set of keys"}, Room: 3}, defs.Placements[0])
	assert.Equal(t, types.PlacementRecord{Item: types.Item{Name: "LAMP", Description: "a shiny brass lamp"}, Room: 3}, defs.Placements[1])
	assert.Equal(t, types.PlacementRecord{Item: types.Item{Name: "FOOD", Description: "tasty food"}, Room: 2}, defs.Placements[2])
}

func TestLoad_TinyBuildsWorld(t *testing.T) {
	defs, err := Load("testdata/TinyAdv.dat")
	require.NoError(t, err)

	w, err := world.New(defs)
	require.NoError(t, err)
	assert.Equal(t, "Outside building", w.Current().Name)

	grate, ok := w.Room(4)
	require.True(t, ok)
	assert.Len(t, grate.Conditionals("KEYS"), 1)
}

func TestLoad_BrokenDat(t *testing.T) {
	_, err := Load("testdata/BrokenAdv.dat")
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve), "expected *ValidationError, got %T", err)
	require.Len(t, ve.Errors, 4)
	assert.Contains(t, ve.Errors[0], "BrokenAdv.dat:2:")
	assert.Contains(t, ve.Errors[0], "not an integer")
	assert.Contains(t, ve.Errors[1], "BrokenAdv.dat:3:")
	assert.Contains(t, ve.Errors[2], "BrokenAdv.dat:5:")
	assert.Contains(t, ve.Errors[3], "BrokenAdv.dat:8:")
	assert.Contains(t, err.Error(), "4 error(s)")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("testdata/NopeAdv.dat")
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestParseWorld_SectionsAndEOF(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		rooms       int
		connections int
		placements  int
	}{
		{
			name:  "rooms only, no trailing blank line",
			input: "1\tA\tRoom A",
			rooms: 1,
		},
		{
			name:        "empty connection section",
			input:       "1\tA\tRoom A\n\n\nLAMP\ta lamp\t1\n",
			rooms:       1,
			placements:  1,
			connections: 0,
		},
		{
			name:        "content after items section is ignored",
			input:       "1\tA\tRoom A\n\n1\tUP\t1\n\nLAMP\ta lamp\t1\n\ngarbage\n",
			rooms:       1,
			connections: 1,
			placements:  1,
		},
		{
			name:       "repeated item triples on one line",
			input:      "1\tA\tRoom A\n2\tB\tRoom B\n\n\nLAMP\ta lamp\t1\tKEY\ta key\t2\n",
			rooms:      2,
			placements: 2,
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "  1\tA\tRoom A  \n",
			rooms: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defs, err := ParseWorld(strings.NewReader(tt.input), "test")
			require.NoError(t, err)
			assert.Len(t, defs.Rooms, tt.rooms)
			assert.Len(t, defs.Connections, tt.connections)
			assert.Len(t, defs.Placements, tt.placements)
		})
	}
}

func TestParseWorld_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"room missing description", "1\tA\n", "want 3"},
		{"room id not integer", "one\tA\tRoom A\n", "not an integer"},
		{"odd connection fields", "1\tA\tRoom A\n\n1\tUP\t1\tDOWN\n", "direction/target pairs"},
		{"connection source not integer", "1\tA\tRoom A\n\nx\tUP\t1\n", "not an integer"},
		{"item triple incomplete", "1\tA\tRoom A\n\n\nLAMP\ta lamp\n", "triples"},
		{"item room not integer", "1\tA\tRoom A\n\n\nLAMP\ta lamp\there\n", "not an integer"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseWorld(strings.NewReader(tt.input), "test")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadSynonyms(t *testing.T) {
	syn, err := LoadSynonyms("testdata/Synonyms.dat")
	require.NoError(t, err)

	assert.Equal(t, "NORTH", syn["N"])
	assert.Equal(t, "TAKE", syn["GET"], "keys and values are upper-cased")
	_, ok := syn["IGNORED"]
	assert.False(t, ok, "lines after the blank line are not read")
	assert.Len(t, syn, 9)
}

func TestParseSynonyms_Malformed(t *testing.T) {
	_, err := ParseSynonyms(strings.NewReader("N=NORTH\nBROKEN\n=EMPTY\n"), "syn")
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Len(t, ve.Errors, 2)
	assert.Contains(t, ve.Errors[0], "syn:2:")
}

func TestLoad_Lua(t *testing.T) {
	defs, err := Load("testdata/Castle.lua")
	require.NoError(t, err)

	assert.Equal(t, "Castle", defs.Title)
	assert.Len(t, defs.Rooms, 5)
	require.Len(t, defs.Connections, 4)
	assert.Equal(t, []types.Link{
		{Direction: "SOUTH", Target: "1"},
		{Direction: "NORTH", Target: "Keep/TORCH"},
		{Direction: "DOWN", Target: "4"},
	}, defs.Connections[1].Links)
	assert.Equal(t, []types.PlacementRecord{
		{Item: types.Item{Name: "TORCH", Description: "torch on the ground"}, Room: 1},
		{Item: types.Item{Name: "BREAD", Description: "bread on the ground"}, Room: 2},
	}, defs.Placements)
	assert.Equal(t, map[string]string{"N": "NORTH", "S": "SOUTH"}, defs.Synonyms)

	w, err := world.New(defs)
	require.NoError(t, err)
	assert.Equal(t, "Gate", w.Current().Name)
}

func TestLoad_LuaUpperCasesPlayerTokens(t *testing.T) {
	defs, err := Load("testdata/lowercase.lua")
	require.NoError(t, err)

	assert.Equal(t, []types.Link{
		{Direction: "NORTH", Target: "2"},
		{Direction: "UP", Target: "Loft/LAMP"},
	}, defs.Connections[0].Links)
	assert.Equal(t, "SOUTH", defs.Connections[1].Links[0].Direction)
	assert.Equal(t, "LAMP", defs.Placements[0].Item.Name)
	assert.Empty(t, validate(defs))

	// Typed commands reach the exit and the item.
	w, err := world.New(defs)
	require.NoError(t, err)
	assert.Equal(t, "LAMP taken.", w.Take("LAMP"))
	require.True(t, w.Move("UP", nil))
	assert.Equal(t, "Loft", w.Current().Name)
	require.True(t, w.Move("SOUTH", nil))
	require.True(t, w.Move("NORTH", nil))
	assert.Equal(t, 2, w.Current().ID)
}

func TestLoad_DatWarnsOnLowerCaseNames(t *testing.T) {
	input := "1\tAttic\tDusty beams.\n2\tLoft\tA loft.\n\n1\tnorth\t2\tUP\t2/lamp\n\nlamp\ta tin lamp\t1\n"
	defs, err := ParseWorld(strings.NewReader(input), "lower")
	require.NoError(t, err)

	warnings := validate(defs)
	require.Len(t, warnings, 3)
	assert.Contains(t, warnings[0], `item "lamp" has lower-case letters`)
	assert.Contains(t, warnings[1], `exit "north" has lower-case letters`)
	assert.Contains(t, warnings[2], `needs "lamp", which has lower-case letters`)
}

func TestLoad_LuaErrors(t *testing.T) {
	_, err := Load("testdata/bad_connect.lua")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad_connect.lua")

	_, err = Load("testdata/sandboxed.lua")
	require.Error(t, err, "dofile must not be available")
}

func TestResolve(t *testing.T) {
	path, err := Resolve("testdata", "Tiny")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("testdata", "TinyAdv.dat"), path)

	path, err = Resolve("testdata", "Castle")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("testdata", "Castle.lua"), path)

	path, err = Resolve("elsewhere", "testdata/TinyAdv.dat")
	require.NoError(t, err)
	assert.Equal(t, "testdata/TinyAdv.dat", path)

	_, err = Resolve("testdata", "Missing")
	assert.ErrorIs(t, err, ErrGameNotFound)
}

func TestLoadGame_MergesSynonyms(t *testing.T) {
	defs, err := LoadGame("testdata", "Castle", "testdata/Synonyms.dat")
	require.NoError(t, err)

	assert.Equal(t, "NORTH", defs.Synonyms["N"])
	assert.Equal(t, "INVENTORY", defs.Synonyms["I"], "file synonyms are merged in")
}

func TestLoadGame_MissingSynonymFile(t *testing.T) {
	defs, err := LoadGame("testdata", "Tiny", filepath.Join(t.TempDir(), "Synonyms.dat"))
	require.NoError(t, err)
	assert.Empty(t, defs.Synonyms)
}

func TestGameTitle(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"data/TinyAdv.dat", "Tiny"},
		{"CrowtherAdv.dat", "Crowther"},
		{"worlds/castle.lua", "castle"},
		{"Adv.dat", "Adv"},
	}
	for _, tt := range tests {
		if got := gameTitle(tt.path); got != tt.want {
			t.Errorf("gameTitle(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
