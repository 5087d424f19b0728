// Package app provides the main Bubble Tea application model and state management.
package app

import (
	"sync"
	"time"

	"github.com/k-mensah/ussd-dash-tui/internal/models"
	"github.com/k-mensah/ussd-dash-tui/internal/services/catalog"
	"github.com/k-mensah/ussd-dash-tui/internal/services/metricsvc"
)

// NotificationType defines the type of notification.
type NotificationType int

const (
	// NotificationSuccess represents a success notification.
	NotificationSuccess NotificationType = iota
	// NotificationError represents an error notification.
	NotificationError
	// NotificationWarning represents a warning notification.
	NotificationWarning
	// NotificationInfo represents an informational notification.
	NotificationInfo
	// NotificationLoading represents a loading notification with spinner.
	NotificationLoading
)

const (
	// LoadingNotificationID is the fixed ID for loading notifications.
	LoadingNotificationID = "__loading__"
)

// String returns the string representation of a NotificationType.
func (n NotificationType) String() string {
	switch n {
	case NotificationSuccess:
		return "success"
	case NotificationError:
		return "error"
	case NotificationWarning:
		return "warning"
	case NotificationInfo:
		return "info"
	default:
		return "unknown"
	}
}

// Notification represents a user-facing notification message.
type Notification struct {
	ID        string
	Type      NotificationType
	Message   string
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired returns true if the notification has expired.
func (n *Notification) IsExpired() bool {
	if n.Duration <= 0 {
		return false
	}
	return time.Since(n.CreatedAt) > n.Duration
}

// LoadingState tracks loading states for each dataset.
type LoadingState struct {
	Initial      bool
	Volume       bool
	PeakHours    bool
	Revenue      bool
	Demographics bool
}

// State is the shared application state accessed by all tabs.
type State struct {
	mu sync.RWMutex

	volume       *metricsvc.VolumeSnapshot
	peakHours    *metricsvc.PeakHoursSnapshot
	revenue      *metricsvc.RevenueSnapshot
	demographics *metricsvc.DemographicsSnapshot
	catalog      []catalog.Entry

	timeRange models.TimeRange
	live      bool

	Loading LoadingState

	LastUpdated time.Time

	notifications   []Notification
	notificationSeq int
}

// NewState creates the shared application state.
func NewState() *State {
	return &State{
		timeRange:     models.Range7Days,
		notifications: make([]Notification, 0),
		Loading: LoadingState{
			Initial: true,
		},
	}
}

// SetLoading sets the loading state for a dataset.
func (s *State) SetLoading(dataset metricsvc.Dataset, loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch dataset {
	case metricsvc.DatasetVolume:
		s.Loading.Volume = loading
	case metricsvc.DatasetPeakHours:
		s.Loading.PeakHours = loading
	case metricsvc.DatasetRevenue:
		s.Loading.Revenue = loading
	case metricsvc.DatasetDemographics:
		s.Loading.Demographics = loading
	}
}

// SetInitialLoading marks the initial load state.
func (s *State) SetInitialLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Loading.Initial = loading
}

// AnyLoading returns true if any dataset is currently loading.
func (s *State) AnyLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.Loading.Initial ||
		s.Loading.Volume ||
		s.Loading.PeakHours ||
		s.Loading.Revenue ||
		s.Loading.Demographics
}

// IsInitialLoading returns true if initial data is still loading.
func (s *State) IsInitialLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Loading.Initial
}

// SetVolume replaces the volume snapshot.
func (s *State) SetVolume(snap *metricsvc.VolumeSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.volume = snap
	s.LastUpdated = time.Now()
}

// GetVolume returns the current volume snapshot, nil before the first load.
func (s *State) GetVolume() *metricsvc.VolumeSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.volume
}

// SetPeakHours replaces the peak-hours snapshot.
func (s *State) SetPeakHours(snap *metricsvc.PeakHoursSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.peakHours = snap
	s.LastUpdated = time.Now()
}

// GetPeakHours returns the current peak-hours snapshot.
func (s *State) GetPeakHours() *metricsvc.PeakHoursSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.peakHours
}

// SetRevenue replaces the revenue snapshot.
func (s *State) SetRevenue(snap *metricsvc.RevenueSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revenue = snap
	s.LastUpdated = time.Now()
}

// GetRevenue returns the current revenue snapshot.
func (s *State) GetRevenue() *metricsvc.RevenueSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revenue
}

// SetDemographics replaces the demographics snapshot.
func (s *State) SetDemographics(snap *metricsvc.DemographicsSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.demographics = snap
	s.LastUpdated = time.Now()
}

// GetDemographics returns the current demographics snapshot.
func (s *State) GetDemographics() *metricsvc.DemographicsSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.demographics
}

// SetCatalog replaces the service catalog entries.
func (s *State) SetCatalog(entries []catalog.Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog = entries
}

// GetCatalog returns a copy of the service catalog entries.
func (s *State) GetCatalog() []catalog.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]catalog.Entry, len(s.catalog))
	copy(entries, s.catalog)
	return entries
}

// SetTimeRange updates the selected time range.
func (s *State) SetTimeRange(tr models.TimeRange) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timeRange = tr
}

// GetTimeRange returns the selected time range.
func (s *State) GetTimeRange() models.TimeRange {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.timeRange
}

// SetLive updates the live-refresh flag.
func (s *State) SetLive(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.live = on
}

// IsLive returns the live-refresh flag.
func (s *State) IsLive() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.live
}

// AddNotification adds a new notification and returns its ID.
func (s *State) AddNotification(notifType NotificationType, message string, duration time.Duration) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notificationSeq++
	id := time.Now().Format("20060102150405") + "-" + string(rune('A'+s.notificationSeq%26))

	notification := Notification{
		ID:        id,
		Type:      notifType,
		Message:   message,
		CreatedAt: time.Now(),
		Duration:  duration,
	}

	s.notifications = append(s.notifications, notification)

	// Keep only the last 10 notifications
	if len(s.notifications) > 10 {
		s.notifications = s.notifications[len(s.notifications)-10:]
	}

	return id
}

// RemoveNotification removes a notification by ID.
func (s *State) RemoveNotification(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.notifications {
		if n.ID == id {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			return
		}
	}
}

// ClearExpiredNotifications removes all expired notifications.
func (s *State) ClearExpiredNotifications() {
	s.mu.Lock()
	defer s.mu.Unlock()

	active := make([]Notification, 0, len(s.notifications))
	for _, n := range s.notifications {
		if !n.IsExpired() {
			active = append(active, n)
		}
	}
	s.notifications = active
}

// GetNotifications returns a copy of all active notifications.
func (s *State) GetNotifications() []Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Clear expired inline when reading
	active := make([]Notification, 0, len(s.notifications))
	for _, n := range s.notifications {
		if !n.IsExpired() {
			active = append(active, n)
		}
	}

	return active
}

// ClearAllNotifications removes all notifications.
func (s *State) ClearAllNotifications() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = make([]Notification, 0)
}

// SetLoadingNotification sets a loading notification message.
func (s *State) SetLoadingNotification(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.notifications {
		if n.ID == LoadingNotificationID {
			s.notifications[i].Message = message
			return
		}
	}

	s.notifications = append(s.notifications, Notification{
		ID:        LoadingNotificationID,
		Type:      NotificationLoading,
		Message:   message,
		CreatedAt: time.Now(),
		Duration:  0,
	})
}

// ClearLoadingNotification removes the loading notification.
func (s *State) ClearLoadingNotification() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.notifications {
		if n.ID == LoadingNotificationID {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			return
		}
	}
}

// GetLastUpdated returns the last time a snapshot was replaced.
func (s *State) GetLastUpdated() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.LastUpdated
}

// TimeSinceUpdate returns the duration since the last update.
func (s *State) TimeSinceUpdate() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.LastUpdated.IsZero() {
		return 0
	}
	return time.Since(s.LastUpdated)
}
