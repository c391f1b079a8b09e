package directory

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/khmm12/open-watcher/internal/domain"
)

// Column offsets of serverlist.ini rows. Columns in between carry region names and flags we do not use.
const (
	nameField    = 1
	addressField = 3
	portField    = 4

	minFields = portField + 1
)

// Parse turns the tab separated server list into a directory. Any malformed row fails the whole payload.
func Parse(text string) (domain.Directory, error) {
	dir := make(domain.Directory)

	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}

		entry, err := parseLine(line)
		if err != nil {
			return nil, &domain.DecodeError{Line: i + 1, Err: err}
		}

		dir[entry.Name] = entry
	}

	return dir, nil
}

func parseLine(line string) (domain.DirectoryEntry, error) {
	fields := strings.Split(line, "\t")
	if len(fields) < minFields {
		return domain.DirectoryEntry{}, fmt.Errorf("expected at least %d fields, got %d", minFields, len(fields))
	}

	name := fields[nameField]
	if name == "" {
		return domain.DirectoryEntry{}, errors.New("empty name")
	}

	address := fields[addressField]
	if address == "" {
		return domain.DirectoryEntry{}, errors.New("empty address")
	}

	port, err := strconv.ParseUint(fields[portField], 10, 16)
	if err != nil {
		return domain.DirectoryEntry{}, fmt.Errorf("invalid port %q: %w", fields[portField], err)
	}

	return domain.DirectoryEntry{
		Name:    name,
		Address: address,
		Port:    uint16(port),
	}, nil
}
