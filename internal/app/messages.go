package app

import (
	"time"

	"github.com/k-mensah/ussd-dash-tui/internal/models"
	"github.com/k-mensah/ussd-dash-tui/internal/services"
	"github.com/k-mensah/ussd-dash-tui/internal/services/catalog"
	"github.com/k-mensah/ussd-dash-tui/internal/services/metricsvc"
)

// TickMsg is sent periodically to trigger state refresh.
type TickMsg struct {
	Time time.Time
}

// StartLoadingMsg signals that a dataset is starting to load.
type StartLoadingMsg struct {
	Dataset metricsvc.Dataset
}

// StopLoadingMsg signals that a dataset has finished loading.
type StopLoadingMsg struct {
	Dataset metricsvc.Dataset
}

// VolumeUpdatedMsg contains a fresh volume snapshot.
type VolumeUpdatedMsg struct {
	Snapshot *metricsvc.VolumeSnapshot
}

// PeakHoursUpdatedMsg contains a fresh peak-hours snapshot.
type PeakHoursUpdatedMsg struct {
	Snapshot *metricsvc.PeakHoursSnapshot
}

// RevenueUpdatedMsg contains a fresh revenue snapshot.
type RevenueUpdatedMsg struct {
	Snapshot *metricsvc.RevenueSnapshot
}

// DemographicsUpdatedMsg contains a fresh demographics snapshot.
type DemographicsUpdatedMsg struct {
	Snapshot *metricsvc.DemographicsSnapshot
}

// CatalogUpdatedMsg contains the current service catalog entries.
type CatalogUpdatedMsg struct {
	Entries []catalog.Entry
}

// TimeRangeChangedMsg signals that the selected time range changed.
type TimeRangeChangedMsg struct {
	Range models.TimeRange
}

// LiveToggledMsg signals that live refresh was switched on or off.
type LiveToggledMsg struct {
	On bool
}

// RefreshMsg requests a refresh of all datasets.
type RefreshMsg struct{}

// ExportResultMsg contains the result of a CSV export.
type ExportResultMsg struct {
	Paths   []string
	Success bool
	Error   error
}

// AddNotificationMsg requests adding a new notification.
type AddNotificationMsg struct {
	Type     NotificationType
	Message  string
	Duration time.Duration
}

// RemoveNotificationMsg requests removal of a notification.
type RemoveNotificationMsg struct {
	ID string
}

// ClearNotificationsMsg requests clearing all notifications.
type ClearNotificationsMsg struct{}

// ClearExpiredNotificationsMsg triggers clearing of expired notifications.
type ClearExpiredNotificationsMsg struct{}

// ServiceEventMsg wraps a service event from the service manager.
type ServiceEventMsg struct {
	Event services.ServiceEvent
}

// SubscriptionEventMsg is the callback wrapper for service subscription.
type SubscriptionEventMsg struct {
	Channel chan services.ServiceEvent
}

// ErrorMsg represents a general error.
type ErrorMsg struct {
	Error   error
	Context string
}

// TabSwitchMsg requests switching to a specific tab.
type TabSwitchMsg struct {
	Tab TabID
}

// ToggleHelpMsg toggles the help display.
type ToggleHelpMsg struct{}

// QuitMsg requests the application to quit.
type QuitMsg struct{}
