package loader

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/nathoo/adventure/types"
)

// ValidationError collects all problems found in a world or synonym file.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

// validate checks loaded records for problems that do not stop the game:
// overwritten rooms, items placed twice, conditional exits whose target
// names no room, and directions or item names with lower-case letters.
// Player input is upper-cased before matching, so such names can never be
// used. Structural errors are left to world construction.
func validate(defs *types.Defs) []string {
	var warnings []string

	ids := map[int]bool{}
	names := map[string]bool{}
	for _, r := range defs.Rooms {
		if ids[r.ID] {
			warnings = append(warnings, fmt.Sprintf(
				"room %d defined more than once; the last definition wins", r.ID))
		}
		ids[r.ID] = true
		names[r.Name] = true
	}

	placed := map[string][]int{}
	for _, p := range defs.Placements {
		placed[p.Item.Name] = append(placed[p.Item.Name], p.Room)
	}
	items := make([]string, 0, len(placed))
	for name := range placed {
		items = append(items, name)
	}
	sort.Strings(items)
	for _, name := range items {
		if rooms := placed[name]; len(rooms) > 1 {
			warnings = append(warnings, fmt.Sprintf(
				"item %q placed %d times (rooms %v)", name, len(rooms), rooms))
		}
		if hasLower(name) {
			warnings = append(warnings, fmt.Sprintf(
				"item %q has lower-case letters and cannot be taken", name))
		}
	}

	for _, c := range defs.Connections {
		for _, l := range c.Links {
			if hasLower(l.Direction) {
				warnings = append(warnings, fmt.Sprintf(
					"room %d exit %q has lower-case letters and cannot be used", c.Source, l.Direction))
			}
			dest, item, ok := strings.Cut(l.Target, "/")
			if !ok {
				continue
			}
			if hasLower(item) {
				warnings = append(warnings, fmt.Sprintf(
					"room %d exit %q needs %q, which has lower-case letters and cannot be carried", c.Source, l.Direction, item))
			}
			if id, err := strconv.Atoi(dest); err == nil {
				if !ids[id] {
					warnings = append(warnings, fmt.Sprintf(
						"room %d exit %q needs %q but room %d does not exist", c.Source, l.Direction, item, id))
				}
				continue
			}
			if !names[dest] {
				warnings = append(warnings, fmt.Sprintf(
					"room %d exit %q needs %q but no room is named %q", c.Source, l.Direction, item, dest))
			}
		}
	}

	return warnings
}

func hasLower(s string) bool {
	return strings.ToUpper(s) != s
}
