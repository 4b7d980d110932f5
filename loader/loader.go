// Package loader reads world definitions from disk and turns them into the
// records consumed by world construction. Two formats are supported: the
// tab-separated .dat format and a declarative Lua format. The Lua VM is
// discarded after loading.
package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/nathoo/adventure/types"
)

// ErrGameNotFound is returned by Resolve when no world file matches a game name.
var ErrGameNotFound = errors.New("game not found")

// Load reads a world file, choosing the format by extension, and logs any
// validation warnings.
func Load(path string) (*types.Defs, error) {
	var (
		defs *types.Defs
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".lua":
		defs, err = loadLua(path)
	default:
		defs, err = loadDat(path)
	}
	if err != nil {
		return nil, err
	}
	defs.Title = gameTitle(path)

	for _, w := range validate(defs) {
		slog.Warn("world data", "file", filepath.Base(path), "warning", w)
	}
	return defs, nil
}

// LoadGame resolves game inside dataDir, loads it and merges the synonym
// file at synonymsPath. Synonyms defined by the world file win. A missing
// synonym file is not an error.
func LoadGame(dataDir, game, synonymsPath string) (*types.Defs, error) {
	path, err := Resolve(dataDir, game)
	if err != nil {
		return nil, err
	}
	defs, err := Load(path)
	if err != nil {
		return nil, err
	}

	if synonymsPath == "" {
		return defs, nil
	}
	syn, err := LoadSynonyms(synonymsPath)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Info("no synonym file", "path", synonymsPath)
		return defs, nil
	}
	if err != nil {
		return nil, err
	}
	for token, canonical := range syn {
		if _, ok := defs.Synonyms[token]; !ok {
			defs.Synonyms[token] = canonical
		}
	}
	return defs, nil
}

// Resolve finds the world file for game. game may be a path to an existing
// file; otherwise <dataDir>/<game>Adv.dat and <dataDir>/<game>.lua are tried.
func Resolve(dataDir, game string) (string, error) {
	if fileExists(game) {
		return game, nil
	}
	candidates := []string{
		filepath.Join(dataDir, game+"Adv.dat"),
		filepath.Join(dataDir, game+".lua"),
	}
	for _, c := range candidates {
		if fileExists(c) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q (tried %s)", ErrGameNotFound, game, strings.Join(candidates, ", "))
}

// LoadSynonyms reads a synonym file.
func LoadSynonyms(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseSynonyms(f, filepath.Base(path))
}

func loadDat(path string) (*types.Defs, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening world file: %w", err)
	}
	defer f.Close()
	return ParseWorld(f, filepath.Base(path))
}

func loadLua(path string) (*types.Defs, error) {
	// Create sandboxed VM.
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	openSafeLibs(L)
	sandbox(L)

	coll := &collector{defs: &types.Defs{Synonyms: map[string]string{}}}
	registerAPI(L, coll)

	if err := L.DoFile(path); err != nil {
		return nil, fmt.Errorf("executing %s: %w", filepath.Base(path), err)
	}
	return coll.defs, nil
}

// openSafeLibs opens only the safe subset of Lua standard libraries.
func openSafeLibs(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// sandbox removes globals that could reach the filesystem or load code.
func sandbox(L *lua.LState) {
	dangerous := []string{
		"dofile", "loadfile", "load", "loadstring", "require",
		"rawset", "rawget", "rawequal",
		"collectgarbage",
	}
	for _, name := range dangerous {
		L.SetGlobal(name, lua.LNil)
	}
}

// gameTitle derives the game name from a world file path:
// "data/TinyAdv.dat" → "Tiny", "worlds/castle.lua" → "castle".
func gameTitle(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if t := strings.TrimSuffix(base, "Adv"); t != "" {
		return t
	}
	return base
}

func fileExists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && !fi.IsDir()
}
