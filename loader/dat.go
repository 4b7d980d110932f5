package loader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nathoo/adventure/types"
)

// Sections of a tab-separated world file, in file order.
const (
	sectionRooms = iota
	sectionConnections
	sectionItems
	sectionDone
)

const maxLineSize = 1 << 20

// ParseWorld reads a tab-separated world file: room lines, connection lines
// and item lines, each section terminated by a blank line. name is used in
// error messages. All malformed lines are reported together in a
// *ValidationError.
func ParseWorld(r io.Reader, name string) (*types.Defs, error) {
	defs := &types.Defs{Synonyms: map[string]string{}}
	ve := &ValidationError{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	section := sectionRooms
	lineNo := 0
	for section != sectionDone && scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			section++
			continue
		}
		fields := strings.Split(line, "\t")

		var err error
		switch section {
		case sectionRooms:
			err = parseRoomLine(defs, fields)
		case sectionConnections:
			err = parseConnectionLine(defs, fields)
		case sectionItems:
			err = parseItemLine(defs, fields)
		}
		if err != nil {
			ve.Errors = append(ve.Errors, fmt.Sprintf("%s:%d: %v", name, lineNo, err))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	if len(ve.Errors) > 0 {
		return nil, ve
	}
	return defs, nil
}

// parseRoomLine handles "id<TAB>name<TAB>description".
func parseRoomLine(defs *types.Defs, fields []string) error {
	if len(fields) != 3 {
		return fmt.Errorf("room line has %d fields, want 3 (id, name, description)", len(fields))
	}
	id, err := parseID(fields[0])
	if err != nil {
		return err
	}
	defs.Rooms = append(defs.Rooms, types.RoomRecord{
		ID:          id,
		Name:        strings.TrimSpace(fields[1]),
		Description: strings.TrimSpace(fields[2]),
	})
	return nil
}

// parseConnectionLine handles "source<TAB>dir<TAB>target[<TAB>dir<TAB>target...]".
// Targets are kept raw; the world decides whether they are conditional.
func parseConnectionLine(defs *types.Defs, fields []string) error {
	if len(fields) < 3 || (len(fields)-1)%2 != 0 {
		return fmt.Errorf("connection line has %d fields, want a source id followed by direction/target pairs", len(fields))
	}
	src, err := parseID(fields[0])
	if err != nil {
		return err
	}
	rec := types.ConnectionRecord{Source: src}
	for i := 1; i < len(fields); i += 2 {
		dir := strings.TrimSpace(fields[i])
		target := strings.TrimSpace(fields[i+1])
		if dir == "" || target == "" {
			return fmt.Errorf("empty direction or target in pair %d", (i+1)/2)
		}
		rec.Links = append(rec.Links, types.Link{Direction: dir, Target: target})
	}
	defs.Connections = append(defs.Connections, rec)
	return nil
}

// parseItemLine handles "name<TAB>description<TAB>roomId", repeated.
func parseItemLine(defs *types.Defs, fields []string) error {
	if len(fields)%3 != 0 {
		return fmt.Errorf("item line has %d fields, want name/description/room triples", len(fields))
	}
	for i := 0; i < len(fields); i += 3 {
		roomID, err := parseID(fields[i+2])
		if err != nil {
			return err
		}
		name := strings.TrimSpace(fields[i])
		if name == "" {
			return fmt.Errorf("empty item name in triple %d", i/3+1)
		}
		defs.Placements = append(defs.Placements, types.PlacementRecord{
			Item: types.Item{Name: name, Description: strings.TrimSpace(fields[i+1])},
			Room: roomID,
		})
	}
	return nil
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("room id %q is not an integer", s)
	}
	return id, nil
}

// ParseSynonyms reads "token=canonical" lines up to the first blank line.
// Both sides are upper-cased to match the command loop's normalisation.
func ParseSynonyms(r io.Reader, name string) (map[string]string, error) {
	synonyms := map[string]string{}
	ve := &ValidationError{}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			break
		}
		token, canonical, ok := strings.Cut(line, "=")
		token = strings.ToUpper(strings.TrimSpace(token))
		canonical = strings.ToUpper(strings.TrimSpace(canonical))
		if !ok || token == "" || canonical == "" {
			ve.Errors = append(ve.Errors, fmt.Sprintf("%s:%d: want token=command, got %q", name, lineNo, line))
			continue
		}
		synonyms[token] = canonical
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	if len(ve.Errors) > 0 {
		return nil, ve
	}
	return synonyms, nil
}
