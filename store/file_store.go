package store

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/travelwing/travelwing/models"
	yaml "gopkg.in/yaml.v3"
)

const (
	defaultDataFile   = "calendar.json"
	dataFileKey       = "dataFile"
	dataFileFormatKey = "dataFileFormat"
	defaultDataFormat = "json"
	formatJSON        = "json"
	formatYAML        = "yaml"
	formatTOML        = "toml"
	checksumSuffix    = ".checksum"
)

// eventList is the on-disk document shape.
type eventList struct {
	Events     []models.CalendarEvent `json:"events" yaml:"events" toml:"events"`
	TotalCount int                    `json:"totalCount" yaml:"totalCount" toml:"totalCount"`
}

// FileCalendarStore implements the CalendarStore interface using a file
// backend. It supports JSON, YAML, and TOML formats and uses file-level
// locking so several processes can share the same calendar file.
type FileCalendarStore struct {
	filePath string
	events   map[string]models.CalendarEvent
	flk      *flock.Flock
	format   string
}

// NewFileCalendarStore creates a new instance of FileCalendarStore.
// It does not initialize the store; Initialize must be called separately.
func NewFileCalendarStore() *FileCalendarStore {
	return &FileCalendarStore{
		events: make(map[string]models.CalendarEvent),
	}
}

// Initialize configures the FileCalendarStore. It expects a 'dataFile'
// key in the config map specifying the path to the data file; if not
// provided it defaults to 'calendar.json' in the working directory.
// Existing events are loaded from the file if it exists.
func (s *FileCalendarStore) Initialize(config map[string]string) error {
	if val, ok := config[dataFileKey]; ok && val != "" {
		s.filePath = val
	} else {
		s.filePath = defaultDataFile
	}

	if val, ok := config[dataFileFormatKey]; ok && val != "" {
		formatLower := strings.ToLower(val)
		switch formatLower {
		case formatJSON, formatYAML, formatTOML:
			s.format = formatLower
		default:
			return fmt.Errorf("unsupported dataFileFormat: %s. Supported formats are json, yaml, toml", val)
		}
	} else {
		s.format = defaultDataFormat
	}

	if s.filePath == defaultDataFile && s.format != formatJSON {
		ext := filepath.Ext(s.filePath)
		s.filePath = strings.TrimSuffix(s.filePath, ext) + "." + s.format
	}

	dir := filepath.Dir(s.filePath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	s.flk = flock.New(s.filePath)

	locked, err := s.flk.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire initial lock for %s: %w", s.filePath, err)
	}
	if !locked {
		if err := s.flk.Lock(); err != nil {
			return fmt.Errorf("failed to acquire blocking initial lock for %s: %w", s.filePath, err)
		}
	}
	defer func() { _ = s.flk.Unlock() }()

	s.events = make(map[string]models.CalendarEvent)
	return s.loadEventsFromFileInternal()
}

// calculateChecksum computes the SHA256 checksum of the given data.
func calculateChecksum(data []byte) string {
	hasher := sha256.New()
	hasher.Write(data)
	return hex.EncodeToString(hasher.Sum(nil))
}

// loadEventsFromFileInternal reads events from the file, verifies the
// checksum, and unmarshals. Assumes the file lock is held.
func (s *FileCalendarStore) loadEventsFromFileInternal() error {
	checksumFilePath := s.filePath + checksumSuffix

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.events = make(map[string]models.CalendarEvent)
			_ = os.Remove(checksumFilePath)
			f, createErr := os.OpenFile(s.filePath, os.O_CREATE|os.O_RDWR, 0o644)
			if createErr != nil {
				return fmt.Errorf("failed to create data file %s: %w", s.filePath, createErr)
			}
			_ = f.Close()
			_ = os.WriteFile(checksumFilePath, []byte(calculateChecksum([]byte{})), 0o644)
			return nil
		}
		return fmt.Errorf("failed to read data file %s: %w", s.filePath, err)
	}

	if _, err := os.Stat(checksumFilePath); err == nil {
		expectedChecksumBytes, readErr := os.ReadFile(checksumFilePath)
		if readErr != nil {
			return fmt.Errorf("failed to read checksum file %s: %w", checksumFilePath, readErr)
		}
		expectedChecksum := strings.TrimSpace(string(expectedChecksumBytes))
		actualChecksum := calculateChecksum(data)
		if actualChecksum != expectedChecksum {
			return fmt.Errorf("checksum mismatch for %s - expected %s, got %s - file is corrupt or tampered", s.filePath, expectedChecksum, actualChecksum)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("error checking checksum file %s: %w", checksumFilePath, err)
	}

	if len(data) == 0 {
		_ = os.WriteFile(checksumFilePath, []byte(calculateChecksum([]byte{})), 0o644)
		s.events = make(map[string]models.CalendarEvent)
		return nil
	}

	var list eventList
	switch s.format {
	case formatJSON:
		if err := json.Unmarshal(data, &list); err != nil {
			return fmt.Errorf("failed to unmarshal JSON from %s: %w", s.filePath, err)
		}
	case formatYAML:
		if err := yaml.Unmarshal(data, &list); err != nil {
			return fmt.Errorf("failed to unmarshal YAML from %s: %w", s.filePath, err)
		}
	case formatTOML:
		if err := toml.Unmarshal(data, &list); err != nil {
			return fmt.Errorf("failed to unmarshal TOML from %s: %w", s.filePath, err)
		}
	default:
		return fmt.Errorf("unsupported data format for loading: %s", s.format)
	}

	s.events = make(map[string]models.CalendarEvent, len(list.Events))
	for _, event := range list.Events {
		s.events[event.ID] = event
	}
	return nil
}

// saveEventsToFileInternal writes events to file, then writes its
// checksum. Both writes go through a temp file and an atomic rename.
// Assumes the file lock is held.
func (s *FileCalendarStore) saveEventsToFileInternal() error {
	list := eventList{
		Events:     sortedEvents(s.events),
		TotalCount: len(s.events),
	}

	var marshaledData []byte
	var err error

	switch s.format {
	case formatJSON:
		marshaledData, err = json.MarshalIndent(list, "", "  ")
	case formatYAML:
		marshaledData, err = yaml.Marshal(list)
	case formatTOML:
		buf := new(bytes.Buffer)
		if encodeErr := toml.NewEncoder(buf).Encode(list); encodeErr == nil {
			marshaledData = buf.Bytes()
		} else {
			err = fmt.Errorf("failed to marshal TOML: %w", encodeErr)
		}
	default:
		return fmt.Errorf("unsupported data format for saving: %s", s.format)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal events to %s: %w", s.format, err)
	}

	tempFilePath := s.filePath + ".tmp"
	checksumFilePath := s.filePath + checksumSuffix
	tempChecksumFilePath := checksumFilePath + ".tmp"

	defer func() { _ = os.Remove(tempFilePath) }()
	defer func() { _ = os.Remove(tempChecksumFilePath) }()

	if err := os.WriteFile(tempFilePath, marshaledData, 0o644); err != nil {
		return fmt.Errorf("failed to write to temporary data file %s: %w", tempFilePath, err)
	}
	if err := os.WriteFile(tempChecksumFilePath, []byte(calculateChecksum(marshaledData)), 0o644); err != nil {
		return fmt.Errorf("failed to write to temporary checksum file %s: %w", tempChecksumFilePath, err)
	}

	if err := os.Rename(tempFilePath, s.filePath); err != nil {
		return fmt.Errorf("failed to rename temporary data file %s to %s: %w", tempFilePath, s.filePath, err)
	}
	if err := os.Rename(tempChecksumFilePath, checksumFilePath); err != nil {
		return fmt.Errorf("data file %s updated, but failed to update checksum file %s: %w - store may be inconsistent", s.filePath, checksumFilePath, err)
	}

	return nil
}

// sortedEvents returns the map values ordered by date, start time, ID.
func sortedEvents(events map[string]models.CalendarEvent) []models.CalendarEvent {
	out := make([]models.CalendarEvent, 0, len(events))
	for _, event := range events {
		out = append(out, event)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		if out[i].Start != out[j].Start {
			return out[i].Start < out[j].Start
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// EventsOn returns the events on the given date ordered by start time.
func (s *FileCalendarStore) EventsOn(date string) ([]models.CalendarEvent, error) {
	if err := s.flk.RLock(); err != nil {
		return nil, fmt.Errorf("could not lock file for read: %w", err)
	}
	defer func() { _ = s.flk.Unlock() }()

	if err := s.loadEventsFromFileInternal(); err != nil {
		return nil, fmt.Errorf("failed to reload events: %w", err)
	}

	matched := []models.CalendarEvent{}
	for _, event := range sortedEvents(s.events) {
		if event.Date == date {
			matched = append(matched, event)
		}
	}
	return matched, nil
}

// ListEvents returns all events ordered by date and start time,
// optionally filtered.
func (s *FileCalendarStore) ListEvents(filterFn func(models.CalendarEvent) bool) ([]models.CalendarEvent, error) {
	if err := s.flk.RLock(); err != nil {
		return nil, fmt.Errorf("could not lock file for read: %w", err)
	}
	defer func() { _ = s.flk.Unlock() }()

	if err := s.loadEventsFromFileInternal(); err != nil {
		return nil, fmt.Errorf("failed to reload events: %w", err)
	}

	matched := []models.CalendarEvent{}
	for _, event := range sortedEvents(s.events) {
		if filterFn == nil || filterFn(event) {
			matched = append(matched, event)
		}
	}
	return matched, nil
}

// AddEvent validates and persists a new event, generating an ID if
// missing.
func (s *FileCalendarStore) AddEvent(event models.CalendarEvent) (models.CalendarEvent, error) {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if err := models.ValidateStruct(event); err != nil {
		return models.CalendarEvent{}, fmt.Errorf("event validation failed: %w", err)
	}

	if err := s.flk.Lock(); err != nil {
		return models.CalendarEvent{}, fmt.Errorf("could not lock file for add: %w", err)
	}
	defer func() { _ = s.flk.Unlock() }()

	// Reload so concurrent writers through other handles are visible.
	if err := s.loadEventsFromFileInternal(); err != nil {
		return models.CalendarEvent{}, fmt.Errorf("failed to reload events before add: %w", err)
	}

	if _, exists := s.events[event.ID]; exists {
		return models.CalendarEvent{}, fmt.Errorf("event with ID %s already exists", event.ID)
	}
	s.events[event.ID] = event

	if err := s.saveEventsToFileInternal(); err != nil {
		return models.CalendarEvent{}, err
	}
	return event, nil
}

// DeleteEvent removes an event by ID and persists the change.
func (s *FileCalendarStore) DeleteEvent(id string) error {
	if err := s.flk.Lock(); err != nil {
		return fmt.Errorf("could not lock file for delete: %w", err)
	}
	defer func() { _ = s.flk.Unlock() }()

	if err := s.loadEventsFromFileInternal(); err != nil {
		return fmt.Errorf("failed to reload events before delete: %w", err)
	}

	if _, exists := s.events[id]; !exists {
		return ErrEventNotFound
	}
	delete(s.events, id)

	return s.saveEventsToFileInternal()
}

// Close releases the file lock.
func (s *FileCalendarStore) Close() error {
	if s.flk != nil {
		return s.flk.Unlock()
	}
	return nil
}
