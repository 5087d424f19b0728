// Package catalog manages the local USSD service catalog with file
// watching and persistence. The catalog maps shortcodes to display
// names and categories so tabs can label series the way operations
// staff know them, and external edits to the file are picked up live.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/k-mensah/ussd-dash-tui/internal/logger"
	"github.com/k-mensah/ussd-dash-tui/internal/models"
)

// Entry is one catalog row tying a USSD shortcode to a category.
type Entry struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Enabled  bool   `json:"enabled"`
}

// ServiceCategory parses the entry's category field, falling back to
// the unknown variant.
func (e Entry) ServiceCategory() models.ServiceCategory {
	return models.ParseServiceCategory(e.Category)
}

// File represents the JSON file structure for catalog storage.
type File struct {
	Services []Entry `json:"services"`
	Version  int     `json:"version,omitempty"`
}

// Event represents a catalog service event.
type Event struct {
	Type  EventType
	Error error
	Entry *Entry
}

// EventType defines the type of catalog event.
type EventType int

const (
	EventLoaded EventType = iota
	EventChanged
	EventEntryAdded
	EventEntryUpdated
	EventEntryDeleted
	EventError
)

// Service manages the catalog with file watching and change notifications.
type Service struct {
	mu            sync.RWMutex
	entries       []Entry
	filePath      string
	watcher       *fsnotify.Watcher
	eventChan     chan Event
	stopChan      chan struct{}
	debounceTimer *time.Timer
}

// New creates a new catalog service and starts file watching. A missing
// file is created with an empty catalog.
func New(filePath string) (*Service, error) {
	s := &Service{
		entries:   make([]Entry, 0),
		filePath:  filePath,
		eventChan: make(chan Event, 100),
		stopChan:  make(chan struct{}),
	}

	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create catalog directory: %w", err)
	}

	if err := s.load(); err != nil {
		if os.IsNotExist(err) {
			if err := s.save(); err != nil {
				return nil, fmt.Errorf("failed to create catalog file: %w", err)
			}
		} else {
			return nil, fmt.Errorf("failed to load catalog: %w", err)
		}
	}

	if err := s.startWatcher(); err != nil {
		return nil, fmt.Errorf("failed to start file watcher: %w", err)
	}

	s.sendEvent(Event{Type: EventLoaded})

	return s, nil
}

// Events returns the event channel for subscribing to catalog changes.
func (s *Service) Events() <-chan Event {
	return s.eventChan
}

// Entries returns a copy of all catalog entries, sorted by code.
func (s *Service) Entries() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]Entry, len(s.entries))
	copy(entries, s.entries)
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Code < entries[j].Code
	})
	return entries
}

// Lookup returns the entry for a shortcode, nil when absent.
func (s *Service) Lookup(code string) *Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.entries {
		if s.entries[i].Code == code {
			e := s.entries[i]
			return &e
		}
	}
	return nil
}

// NamesFor returns the enabled display names under a category, sorted.
func (s *Service) NamesFor(c models.ServiceCategory) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var names []string
	for _, e := range s.entries {
		if e.Enabled && e.ServiceCategory() == c {
			names = append(names, e.Name)
		}
	}
	sort.Strings(names)
	return names
}

// Count returns the number of catalog entries.
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Upsert adds or replaces an entry keyed by shortcode.
func (s *Service) Upsert(entry Entry) error {
	if entry.Code == "" {
		return fmt.Errorf("catalog entry requires a code")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	updated := false
	for i := range s.entries {
		if s.entries[i].Code == entry.Code {
			s.entries[i] = entry
			updated = true
			break
		}
	}
	if !updated {
		s.entries = append(s.entries, entry)
	}

	if err := s.saveLocked(); err != nil {
		return fmt.Errorf("failed to save catalog: %w", err)
	}

	if updated {
		s.sendEvent(Event{Type: EventEntryUpdated, Entry: &entry})
	} else {
		s.sendEvent(Event{Type: EventEntryAdded, Entry: &entry})
	}
	return nil
}

// Delete removes an entry by shortcode.
func (s *Service) Delete(code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	var deleted Entry
	for i, e := range s.entries {
		if e.Code == code {
			idx = i
			deleted = e
			break
		}
	}
	if idx == -1 {
		return fmt.Errorf("catalog entry not found: %s", code)
	}

	s.entries = append(s.entries[:idx], s.entries[idx+1:]...)

	if err := s.saveLocked(); err != nil {
		return fmt.Errorf("failed to save catalog: %w", err)
	}

	s.sendEvent(Event{Type: EventEntryDeleted, Entry: &deleted})
	return nil
}

// load reads the catalog from the JSON file.
func (s *Service) load() error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return err
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse catalog file: %w", err)
	}

	s.mu.Lock()
	s.entries = file.Services
	if s.entries == nil {
		s.entries = make([]Entry, 0)
	}
	s.mu.Unlock()
	return nil
}

// save persists the catalog (public version).
func (s *Service) save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked()
}

// saveLocked persists the catalog to the JSON file (must hold lock).
func (s *Service) saveLocked() error {
	file := File{
		Services: s.entries,
		Version:  1,
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}

	// Write to temp file first, then rename
	tmpFile := s.filePath + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := os.Rename(tmpFile, s.filePath); err != nil {
		if removeErr := os.Remove(tmpFile); removeErr != nil {
			logger.Error("failed to remove temp file", "error", removeErr)
		}
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}

// startWatcher starts the file system watcher.
func (s *Service) startWatcher() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	s.watcher = watcher

	// Watch the directory (to catch file creation/deletion)
	dir := filepath.Dir(s.filePath)
	if err := watcher.Add(dir); err != nil {
		if closeErr := watcher.Close(); closeErr != nil {
			logger.Error("failed to close watcher", "error", closeErr)
		}
		return err
	}

	go s.watchLoop()
	return nil
}

// watchLoop handles file system events with debouncing.
func (s *Service) watchLoop() {
	const debounceInterval = 100 * time.Millisecond

	for {
		select {
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}

			// Only care about our catalog file
			if filepath.Base(event.Name) != filepath.Base(s.filePath) {
				continue
			}

			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				// Debounce rapid changes
				if s.debounceTimer != nil {
					s.debounceTimer.Stop()
				}
				s.debounceTimer = time.AfterFunc(debounceInterval, func() {
					s.handleFileChange()
				})
			}

		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			s.sendEvent(Event{Type: EventError, Error: err})

		case <-s.stopChan:
			return
		}
	}
}

// handleFileChange reloads the catalog after an external change.
func (s *Service) handleFileChange() {
	if err := s.load(); err != nil {
		s.sendEvent(Event{Type: EventError, Error: err})
		return
	}
	s.sendEvent(Event{Type: EventChanged})
}

// sendEvent sends an event to the event channel non-blocking.
func (s *Service) sendEvent(event Event) {
	select {
	case s.eventChan <- event:
	default:
		// Channel full, drop oldest event
		select {
		case <-s.eventChan:
		default:
		}
		select {
		case s.eventChan <- event:
		default:
		}
	}
}

// Close stops the file watcher and cleans up resources.
func (s *Service) Close() error {
	close(s.stopChan)

	if s.debounceTimer != nil {
		s.debounceTimer.Stop()
	}

	if s.watcher != nil {
		return s.watcher.Close()
	}
	return nil
}
