// Package metricsvc fetches metric series from the backend, derives the
// per-tab aggregates, and publishes snapshot events.
package metricsvc

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/k-mensah/ussd-dash-tui/internal/api"
	"github.com/k-mensah/ussd-dash-tui/internal/logger"
	"github.com/k-mensah/ussd-dash-tui/internal/metrics"
	"github.com/k-mensah/ussd-dash-tui/internal/models"
)

// Fetcher is the slice of the API client the service needs.
type Fetcher interface {
	FetchVolume(ctx context.Context, tr models.TimeRange) ([]models.IntervalRecord, error)
	FetchPeakHours(ctx context.Context, tr models.TimeRange) ([]models.HeatmapCell, error)
	FetchRevenue(ctx context.Context, tr models.TimeRange) ([]models.RevenueRecord, error)
	FetchDemographics(ctx context.Context, tr models.TimeRange) (*api.Demographics, error)
}

// Dataset identifies one fetchable series.
type Dataset int

const (
	DatasetVolume Dataset = iota
	DatasetPeakHours
	DatasetRevenue
	DatasetDemographics
)

// Datasets enumerates every dataset the service refreshes.
var Datasets = []Dataset{DatasetVolume, DatasetPeakHours, DatasetRevenue, DatasetDemographics}

// String returns the dataset name for logs and error events.
func (d Dataset) String() string {
	switch d {
	case DatasetVolume:
		return "volume"
	case DatasetPeakHours:
		return "peak-hours"
	case DatasetRevenue:
		return "revenue"
	case DatasetDemographics:
		return "demographics"
	default:
		return "unknown"
	}
}

// VolumeSnapshot is the derived state of the volume dataset. Snapshots
// are immutable; a new fetch builds a fresh one and replaces the old
// wholesale.
type VolumeSnapshot struct {
	TimeRange models.TimeRange
	Records   []models.IntervalRecord
	Summary   models.SummaryMetrics
}

// PeakHoursSnapshot is the derived state of the peak-hours dataset.
type PeakHoursSnapshot struct {
	TimeRange models.TimeRange
	Cells     []models.HeatmapCell
	DayStats  []models.DayStat
	Pivot     []models.HourlyPivotRow
	Insights  models.HeatmapInsights
}

// RevenueSnapshot is the derived state of the revenue dataset.
type RevenueSnapshot struct {
	TimeRange models.TimeRange
	Records   []models.RevenueRecord
	Shares    []models.ServiceShare
	Insights  models.RevenueInsights
}

// DemographicsSnapshot is the derived state of the demographics dataset.
type DemographicsSnapshot struct {
	TimeRange models.TimeRange
	Provinces []models.DemographicShare
	Networks  []models.DemographicShare
}

// EventType defines the type of metrics event.
type EventType int

const (
	// EventRefreshing indicates that a dataset fetch is in progress.
	EventRefreshing EventType = iota
	// EventUpdated indicates that a dataset snapshot has been replaced.
	EventUpdated
	// EventError indicates that a dataset fetch failed.
	EventError
)

// Event represents a metrics service event. Exactly one snapshot field
// is set on an EventUpdated event, matching Dataset.
type Event struct {
	Type         EventType
	Dataset      Dataset
	TimeRange    models.TimeRange
	Error        error
	Volume       *VolumeSnapshot
	PeakHours    *PeakHoursSnapshot
	Revenue      *RevenueSnapshot
	Demographics *DemographicsSnapshot
}

// Config holds configuration for the metrics service.
type Config struct {
	PollInterval time.Duration
	MaxRetries   int
	RetryBackoff time.Duration
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		PollInterval: 4 * time.Second,
		MaxRetries:   3,
		RetryBackoff: 500 * time.Millisecond,
	}
}

// Service fetches and caches the derived snapshot of every dataset.
type Service struct {
	fetcher   Fetcher
	config    Config
	eventChan chan Event
	stopChan  chan struct{}

	mu           sync.RWMutex
	timeRange    models.TimeRange
	volume       *VolumeSnapshot
	peakHours    *PeakHoursSnapshot
	revenue      *RevenueSnapshot
	demographics *DemographicsSnapshot

	// tokens guard against stale responses: each refresh takes the next
	// token for its dataset, and a response is discarded unless its
	// token still matches the latest issued one.
	tokens [4]atomic.Uint64

	liveMu   sync.Mutex
	liveStop chan struct{}
}

// New creates a new metrics service. Polling is off until SetLive.
func New(fetcher Fetcher, config Config) *Service {
	if config.PollInterval == 0 {
		config = DefaultConfig()
	}
	return &Service{
		fetcher:   fetcher,
		config:    config,
		timeRange: models.Range7Days,
		eventChan: make(chan Event, 100),
		stopChan:  make(chan struct{}),
	}
}

// Events returns the event channel.
func (s *Service) Events() <-chan Event {
	return s.eventChan
}

// TimeRange returns the currently selected time range.
func (s *Service) TimeRange() models.TimeRange {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.timeRange
}

// SetTimeRange switches the selected range and refreshes every dataset.
// In-flight fetches for the previous range are invalidated by the token
// guard rather than cancelled.
func (s *Service) SetTimeRange(tr models.TimeRange) {
	s.mu.Lock()
	s.timeRange = tr
	s.mu.Unlock()
	s.RefreshAll()
}

// Volume returns the cached volume snapshot, nil before the first fetch.
func (s *Service) Volume() *VolumeSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.volume
}

// PeakHours returns the cached peak-hours snapshot.
func (s *Service) PeakHours() *PeakHoursSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.peakHours
}

// Revenue returns the cached revenue snapshot.
func (s *Service) Revenue() *RevenueSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revenue
}

// Demographics returns the cached demographics snapshot.
func (s *Service) Demographics() *DemographicsSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.demographics
}

// RefreshAll refreshes every dataset concurrently.
func (s *Service) RefreshAll() {
	for _, d := range Datasets {
		go s.Refresh(d)
	}
}

// Refresh fetches one dataset, rebuilds its snapshot, and broadcasts
// an update. Stale responses (a newer refresh was issued meanwhile)
// are dropped silently.
func (s *Service) Refresh(dataset Dataset) {
	token := s.tokens[dataset].Add(1)
	s.mu.RLock()
	tr := s.timeRange
	s.mu.RUnlock()

	s.sendEvent(Event{Type: EventRefreshing, Dataset: dataset, TimeRange: tr})

	switch dataset {
	case DatasetVolume:
		s.refreshVolume(tr, token)
	case DatasetPeakHours:
		s.refreshPeakHours(tr, token)
	case DatasetRevenue:
		s.refreshRevenue(tr, token)
	case DatasetDemographics:
		s.refreshDemographics(tr, token)
	}
}

func (s *Service) refreshVolume(tr models.TimeRange, token uint64) {
	var records []models.IntervalRecord
	err := s.withRetry(func(ctx context.Context) error {
		var err error
		records, err = s.fetcher.FetchVolume(ctx, tr)
		return err
	})
	if err != nil {
		s.fail(DatasetVolume, tr, err)
		return
	}
	snap := &VolumeSnapshot{
		TimeRange: tr,
		Records:   records,
		Summary:   metrics.Summarize(records),
	}
	if !s.store(DatasetVolume, token, func() { s.volume = snap }) {
		return
	}
	s.sendEvent(Event{Type: EventUpdated, Dataset: DatasetVolume, TimeRange: tr, Volume: snap})
}

func (s *Service) refreshPeakHours(tr models.TimeRange, token uint64) {
	var cells []models.HeatmapCell
	err := s.withRetry(func(ctx context.Context) error {
		var err error
		cells, err = s.fetcher.FetchPeakHours(ctx, tr)
		return err
	})
	if err != nil {
		s.fail(DatasetPeakHours, tr, err)
		return
	}
	snap := &PeakHoursSnapshot{
		TimeRange: tr,
		Cells:     cells,
		DayStats:  metrics.BuildDayStats(cells),
		Pivot:     metrics.BuildHourlyPivot(cells),
		Insights:  metrics.BuildHeatmapInsights(cells),
	}
	if !s.store(DatasetPeakHours, token, func() { s.peakHours = snap }) {
		return
	}
	s.sendEvent(Event{Type: EventUpdated, Dataset: DatasetPeakHours, TimeRange: tr, PeakHours: snap})
}

func (s *Service) refreshRevenue(tr models.TimeRange, token uint64) {
	var records []models.RevenueRecord
	err := s.withRetry(func(ctx context.Context) error {
		var err error
		records, err = s.fetcher.FetchRevenue(ctx, tr)
		return err
	})
	if err != nil {
		s.fail(DatasetRevenue, tr, err)
		return
	}
	shares := metrics.BuildShares(records)
	snap := &RevenueSnapshot{
		TimeRange: tr,
		Records:   records,
		Shares:    shares,
		Insights:  metrics.BuildRevenueInsights(shares, records),
	}
	if !s.store(DatasetRevenue, token, func() { s.revenue = snap }) {
		return
	}
	s.sendEvent(Event{Type: EventUpdated, Dataset: DatasetRevenue, TimeRange: tr, Revenue: snap})
}

func (s *Service) refreshDemographics(tr models.TimeRange, token uint64) {
	var demo *api.Demographics
	err := s.withRetry(func(ctx context.Context) error {
		var err error
		demo, err = s.fetcher.FetchDemographics(ctx, tr)
		return err
	})
	if err != nil {
		s.fail(DatasetDemographics, tr, err)
		return
	}
	snap := &DemographicsSnapshot{TimeRange: tr}
	if demo != nil {
		snap.Provinces = metrics.BuildGroupShares(demo.Provinces)
		snap.Networks = metrics.BuildGroupShares(demo.Networks)
	}
	if !s.store(DatasetDemographics, token, func() { s.demographics = snap }) {
		return
	}
	s.sendEvent(Event{Type: EventUpdated, Dataset: DatasetDemographics, TimeRange: tr, Demographics: snap})
}

// store installs a snapshot via install unless a newer refresh for the
// dataset superseded token while the fetch was in flight. The token
// check and the write share the lock, so a stale response can never
// overwrite a fresher snapshot that landed between the fetch returning
// and the write.
func (s *Service) store(dataset Dataset, token uint64, install func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tokens[dataset].Load() != token {
		return false
	}
	install()
	return true
}

func (s *Service) fail(dataset Dataset, tr models.TimeRange, err error) {
	logger.Error("dataset refresh failed", "dataset", dataset.String(), "error", err)
	s.sendEvent(Event{Type: EventError, Dataset: dataset, TimeRange: tr, Error: err})
}

// withRetry runs fn with exponential backoff.
func (s *Service) withRetry(fn func(ctx context.Context) error) error {
	backoff := s.config.RetryBackoff
	retries := s.config.MaxRetries
	if retries < 1 {
		retries = 1
	}

	var err error
	for i := 0; i < retries; i++ {
		err = fn(context.Background())
		if err == nil {
			return nil
		}
		if i < retries-1 {
			time.Sleep(backoff)
			backoff *= 2
		}
	}
	return err
}

// SetLive toggles the polling loop. Turning it on starts an explicit
// ticker goroutine; turning it off stops that goroutine deterministically
// before returning.
func (s *Service) SetLive(on bool) {
	s.liveMu.Lock()
	defer s.liveMu.Unlock()

	if on == (s.liveStop != nil) {
		return
	}

	if !on {
		close(s.liveStop)
		s.liveStop = nil
		return
	}

	s.liveStop = make(chan struct{})
	go s.pollLoop(s.liveStop)
}

// Live reports whether the polling loop is running.
func (s *Service) Live() bool {
	s.liveMu.Lock()
	defer s.liveMu.Unlock()
	return s.liveStop != nil
}

func (s *Service) pollLoop(stop chan struct{}) {
	ticker := time.NewTicker(s.config.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.RefreshAll()
		case <-stop:
			return
		case <-s.stopChan:
			return
		}
	}
}

// sendEvent sends an event to the event channel non-blocking.
func (s *Service) sendEvent(event Event) {
	select {
	case s.eventChan <- event:
	default:
		// Channel full, drop oldest
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

// Close stops the service and cleans up resources.
func (s *Service) Close() error {
	s.SetLive(false)
	close(s.stopChan)
	return nil
}
