// Package services provides service orchestration for the TUI.
package services

import (
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"

	"github.com/k-mensah/ussd-dash-tui/internal/api"
	"github.com/k-mensah/ussd-dash-tui/internal/config"
	"github.com/k-mensah/ussd-dash-tui/internal/db"
	"github.com/k-mensah/ussd-dash-tui/internal/logger"
	"github.com/k-mensah/ussd-dash-tui/internal/models"
	"github.com/k-mensah/ussd-dash-tui/internal/services/catalog"
	"github.com/k-mensah/ussd-dash-tui/internal/services/metricsvc"
)

type (
	// RefreshingEvent is emitted when a dataset fetch begins.
	RefreshingEvent struct {
		Dataset metricsvc.Dataset
	}

	// VolumeUpdatedEvent is emitted when the volume snapshot is replaced.
	VolumeUpdatedEvent struct {
		Snapshot *metricsvc.VolumeSnapshot
	}

	// PeakHoursUpdatedEvent is emitted when the peak-hours snapshot is replaced.
	PeakHoursUpdatedEvent struct {
		Snapshot *metricsvc.PeakHoursSnapshot
	}

	// RevenueUpdatedEvent is emitted when the revenue snapshot is replaced.
	RevenueUpdatedEvent struct {
		Snapshot *metricsvc.RevenueSnapshot
	}

	// DemographicsUpdatedEvent is emitted when the demographics snapshot is replaced.
	DemographicsUpdatedEvent struct {
		Snapshot *metricsvc.DemographicsSnapshot
	}

	// CatalogChangedEvent is emitted when the service catalog changes.
	CatalogChangedEvent struct {
		Entries []catalog.Entry
	}

	// ErrorEvent is emitted when an error occurs in any service.
	ErrorEvent struct {
		Service string
		Error   error
	}
)

// ServiceEvent is the interface implemented by all service events.
type ServiceEvent interface {
	isServiceEvent()
}

func (RefreshingEvent) isServiceEvent()          {}
func (VolumeUpdatedEvent) isServiceEvent()       {}
func (PeakHoursUpdatedEvent) isServiceEvent()    {}
func (RevenueUpdatedEvent) isServiceEvent()      {}
func (DemographicsUpdatedEvent) isServiceEvent() {}
func (CatalogChangedEvent) isServiceEvent()      {}
func (ErrorEvent) isServiceEvent()               {}

// Manager orchestrates services and event routing.
type Manager struct {
	mu          sync.RWMutex
	metrics     *metricsvc.Service
	catalog     *catalog.Service
	database    *db.DB
	cfg         *config.Config
	eventChan   chan ServiceEvent
	stopChan    chan struct{}
	subscribers []chan<- ServiceEvent

	// prevSuccessRate tracks the last seen success rate per range so a
	// desktop alert fires only on a downward threshold crossing.
	prevSuccessRate map[models.TimeRange]float64
}

// NewManager creates a new service manager.
func NewManager(cfg *config.Config) (*Manager, error) {
	m := &Manager{
		cfg:             cfg,
		eventChan:       make(chan ServiceEvent, 100),
		stopChan:        make(chan struct{}),
		prevSuccessRate: make(map[models.TimeRange]float64),
	}

	var err error
	m.catalog, err = catalog.New(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}

	m.database, err = db.New(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	metricsConfig := metricsvc.DefaultConfig()
	metricsConfig.PollInterval = cfg.PollInterval

	client := api.NewClient(cfg.APIBaseURL, cfg.APIKey)
	m.metrics = metricsvc.New(client, metricsConfig)

	go m.routeEvents()

	m.metrics.RefreshAll()

	return m, nil
}

// routeEvents routes events from individual services to subscribers.
func (m *Manager) routeEvents() {
	for {
		select {
		case event := <-m.metrics.Events():
			m.handleMetricsEvent(event)

		case event := <-m.catalog.Events():
			m.handleCatalogEvent(event)

		case <-m.stopChan:
			return
		}
	}
}

func (m *Manager) handleMetricsEvent(event metricsvc.Event) {
	switch event.Type {
	case metricsvc.EventRefreshing:
		m.broadcast(RefreshingEvent{Dataset: event.Dataset})

	case metricsvc.EventUpdated:
		switch event.Dataset {
		case metricsvc.DatasetVolume:
			m.broadcast(VolumeUpdatedEvent{Snapshot: event.Volume})
			if event.Volume != nil {
				m.checkNotifications(event.TimeRange, event.Volume.Summary)
				go m.persistSnapshot(event.TimeRange, event.Volume.Summary)
			}
		case metricsvc.DatasetPeakHours:
			m.broadcast(PeakHoursUpdatedEvent{Snapshot: event.PeakHours})
		case metricsvc.DatasetRevenue:
			m.broadcast(RevenueUpdatedEvent{Snapshot: event.Revenue})
		case metricsvc.DatasetDemographics:
			m.broadcast(DemographicsUpdatedEvent{Snapshot: event.Demographics})
		}

	case metricsvc.EventError:
		m.broadcast(ErrorEvent{
			Service: event.Dataset.String(),
			Error:   event.Error,
		})
	}
}

func (m *Manager) handleCatalogEvent(event catalog.Event) {
	switch event.Type {
	case catalog.EventLoaded, catalog.EventChanged,
		catalog.EventEntryAdded, catalog.EventEntryUpdated, catalog.EventEntryDeleted:

		m.broadcast(CatalogChangedEvent{Entries: m.catalog.Entries()})

	case catalog.EventError:
		m.broadcast(ErrorEvent{
			Service: "catalog",
			Error:   event.Error,
		})
	}
}

// checkNotifications fires a desktop alert when the success rate drops
// below the configured threshold, once per downward crossing.
func (m *Manager) checkNotifications(tr models.TimeRange, summary models.SummaryMetrics) {
	threshold := m.cfg.SuccessRateAlert
	if threshold <= 0 {
		return
	}

	m.mu.Lock()
	prev, seen := m.prevSuccessRate[tr]
	m.prevSuccessRate[tr] = summary.SuccessRate
	m.mu.Unlock()

	if !seen {
		return
	}

	if summary.SuccessRate < threshold && prev >= threshold {
		title := fmt.Sprintf("USSD Success Rate Alert (%s)", tr.String())
		body := fmt.Sprintf("Success rate dropped to %.1f%% (threshold %.0f%%)", summary.SuccessRate, threshold)
		_ = beeep.Notify(title, body, "")
	}
}

// persistSnapshot records the summary so history survives restarts.
func (m *Manager) persistSnapshot(tr models.TimeRange, summary models.SummaryMetrics) {
	if m.database == nil {
		return
	}
	if err := m.database.InsertSnapshot(tr, summary); err != nil {
		logger.Error("failed to persist snapshot", "error", err)
	}
}

// broadcast sends an event to all subscribers.
func (m *Manager) broadcast(event ServiceEvent) {
	// Send to main event channel
	select {
	case m.eventChan <- event:
	default:
	}

	// Send to subscribers
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, sub := range m.subscribers {
		select {
		case sub <- event:
		default:
			// Subscriber channel full, skip
		}
	}
}

// Subscribe creates a channel for receiving service events.
// Returns a tea.Cmd that can be used in Bubble Tea's Init or Update.
func (m *Manager) Subscribe() (chan ServiceEvent, tea.Cmd) {
	ch := make(chan ServiceEvent, 50)

	m.mu.Lock()
	m.subscribers = append(m.subscribers, ch)
	m.mu.Unlock()

	return ch, waitForEvent(ch)
}

// waitForEvent returns a tea.Cmd that waits for the next event.
func waitForEvent(ch <-chan ServiceEvent) tea.Cmd {
	return func() tea.Msg {
		return <-ch
	}
}

// WaitForEvent returns a tea.Cmd for the next event on a channel.
func WaitForEvent(ch <-chan ServiceEvent) tea.Cmd {
	return waitForEvent(ch)
}

// Unsubscribe removes a subscriber channel.
func (m *Manager) Unsubscribe(ch chan ServiceEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, sub := range m.subscribers {
		if sub == ch {
			m.subscribers = append(m.subscribers[:i], m.subscribers[i+1:]...)
			close(ch)
			break
		}
	}
}

// Metrics returns the metrics service.
func (m *Manager) Metrics() *metricsvc.Service {
	return m.metrics
}

// Catalog returns the catalog service.
func (m *Manager) Catalog() *catalog.Service {
	return m.catalog
}

// Database returns the database instance for direct access.
func (m *Manager) Database() *db.DB {
	return m.database
}

// Config returns the configuration the manager was built with.
func (m *Manager) Config() *config.Config {
	return m.cfg
}

// SetTimeRange switches every dataset to a new time range.
func (m *Manager) SetTimeRange(tr models.TimeRange) {
	m.metrics.SetTimeRange(tr)
}

// TimeRange returns the currently selected time range.
func (m *Manager) TimeRange() models.TimeRange {
	return m.metrics.TimeRange()
}

// SetLive toggles background polling.
func (m *Manager) SetLive(on bool) {
	m.metrics.SetLive(on)
}

// Live reports whether background polling is active.
func (m *Manager) Live() bool {
	return m.metrics.Live()
}

// RefreshAll forces a refetch of every dataset.
func (m *Manager) RefreshAll() {
	m.metrics.RefreshAll()
}

// Close closes the manager and all its services.
func (m *Manager) Close() error {
	close(m.stopChan)

	m.mu.Lock()
	for _, sub := range m.subscribers {
		close(sub)
	}
	m.subscribers = nil
	m.mu.Unlock()

	var errs []error

	if err := m.metrics.Close(); err != nil {
		errs = append(errs, err)
	}

	if err := m.catalog.Close(); err != nil {
		errs = append(errs, err)
	}

	if m.database != nil {
		if err := m.database.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}
