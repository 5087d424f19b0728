package app

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/k-mensah/ussd-dash-tui/internal/export"
	"github.com/k-mensah/ussd-dash-tui/internal/models"
	"github.com/k-mensah/ussd-dash-tui/internal/services"
)

const (
	// DefaultTickInterval is the default interval between ticks.
	DefaultTickInterval = 2 * time.Second

	// DefaultNotificationDuration is the default duration for notifications.
	DefaultNotificationDuration = 5 * time.Second

	// QuickNotificationDuration is for brief notifications.
	QuickNotificationDuration = 3 * time.Second

	// LongNotificationDuration is for important notifications.
	LongNotificationDuration = 10 * time.Second
)

// tickCmd returns a command that sends a TickMsg after the specified interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}

// defaultTickCmd returns a command that sends a TickMsg after the default interval.
func defaultTickCmd() tea.Cmd {
	return tickCmd(DefaultTickInterval)
}

// subscribeToServicesCmd returns a command that subscribes to service events.
func subscribeToServicesCmd(mgr *services.Manager) tea.Cmd {
	ch, _ := mgr.Subscribe()
	return func() tea.Msg {
		return SubscriptionEventMsg{Channel: ch}
	}
}

// waitForServiceEventCmd returns a command that waits for the next service event.
func waitForServiceEventCmd(ch <-chan services.ServiceEvent) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-ch
		if !ok {
			return nil
		}
		return ServiceEventMsg{Event: event}
	}
}

// WaitForServiceEvent is the public version for use in models.
func WaitForServiceEvent(ch <-chan services.ServiceEvent) tea.Cmd {
	return services.WaitForEvent(ch)
}

// refreshAllCmd returns a command that refetches every dataset.
func refreshAllCmd(mgr *services.Manager) tea.Cmd {
	return func() tea.Msg {
		mgr.RefreshAll()
		return RefreshMsg{}
	}
}

// setTimeRangeCmd returns a command that switches all datasets to a new range.
func setTimeRangeCmd(mgr *services.Manager, tr models.TimeRange) tea.Cmd {
	return func() tea.Msg {
		mgr.SetTimeRange(tr)
		return TimeRangeChangedMsg{Range: tr}
	}
}

// toggleLiveCmd returns a command that flips background polling.
func toggleLiveCmd(mgr *services.Manager) tea.Cmd {
	return func() tea.Msg {
		on := !mgr.Live()
		mgr.SetLive(on)
		return LiveToggledMsg{On: on}
	}
}

// exportCmd returns a command that writes the active tab's dataset to CSV.
func exportCmd(mgr *services.Manager, tab TabID) tea.Cmd {
	return func() tea.Msg {
		if mgr == nil {
			return ExportResultMsg{Error: fmt.Errorf("services not initialized")}
		}

		writer, err := export.NewWriter(mgr.Config().ExportDir)
		if err != nil {
			return ExportResultMsg{Error: err}
		}

		var paths []string
		switch tab {
		case TabOverview:
			snap := mgr.Metrics().Volume()
			if snap == nil {
				return ExportResultMsg{Error: fmt.Errorf("no volume data loaded yet")}
			}
			path, err := writer.Intervals(snap.Records)
			if err != nil {
				return ExportResultMsg{Error: err}
			}
			paths = append(paths, path)

		case TabPeakHours:
			snap := mgr.Metrics().PeakHours()
			if snap == nil {
				return ExportResultMsg{Error: fmt.Errorf("no peak-hours data loaded yet")}
			}
			path, err := writer.Heatmap(snap.Cells)
			if err != nil {
				return ExportResultMsg{Error: err}
			}
			paths = append(paths, path)

		case TabRevenue:
			snap := mgr.Metrics().Revenue()
			if snap == nil {
				return ExportResultMsg{Error: fmt.Errorf("no revenue data loaded yet")}
			}
			path, err := writer.Shares(snap.Shares)
			if err != nil {
				return ExportResultMsg{Error: err}
			}
			paths = append(paths, path)

		case TabDemographics:
			snap := mgr.Metrics().Demographics()
			if snap == nil {
				return ExportResultMsg{Error: fmt.Errorf("no demographics data loaded yet")}
			}
			provPath, err := writer.Groups("provinces", snap.Provinces)
			if err != nil {
				return ExportResultMsg{Error: err}
			}
			netPath, err := writer.Groups("networks", snap.Networks)
			if err != nil {
				return ExportResultMsg{Error: err}
			}
			paths = append(paths, provPath, netPath)

		default:
			return ExportResultMsg{Error: fmt.Errorf("nothing to export on this tab")}
		}

		return ExportResultMsg{Paths: paths, Success: true}
	}
}

// clearNotificationCmd returns a command that removes a notification after a delay.
func clearNotificationCmd(id string, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(_ time.Time) tea.Msg {
		return RemoveNotificationMsg{ID: id}
	})
}

// notifySuccessCmd returns a command that adds a success notification.
func notifySuccessCmd(message string) tea.Cmd {
	return func() tea.Msg {
		return AddNotificationMsg{
			Type:     NotificationSuccess,
			Message:  message,
			Duration: DefaultNotificationDuration,
		}
	}
}

// notifyErrorCmd returns a command that adds an error notification.
func notifyErrorCmd(message string) tea.Cmd {
	return func() tea.Msg {
		return AddNotificationMsg{
			Type:     NotificationError,
			Message:  message,
			Duration: LongNotificationDuration,
		}
	}
}

// notifyWarningCmd returns a command that adds a warning notification.
func notifyWarningCmd(message string) tea.Cmd {
	return func() tea.Msg {
		return AddNotificationMsg{
			Type:     NotificationWarning,
			Message:  message,
			Duration: DefaultNotificationDuration,
		}
	}
}

// notifyInfoCmd returns a command that adds an info notification.
func notifyInfoCmd(message string) tea.Cmd {
	return func() tea.Msg {
		return AddNotificationMsg{
			Type:     NotificationInfo,
			Message:  message,
			Duration: QuickNotificationDuration,
		}
	}
}

// delayedCmd returns a command that sends a message after a delay.
func delayedCmd(delay time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(delay, func(_ time.Time) tea.Msg {
		return msg
	})
}

// batchCmds combines multiple commands into one.
func batchCmds(cmds ...tea.Cmd) tea.Cmd {
	return tea.Batch(cmds...)
}

// quitCmd returns a command that quits the application.
func quitCmd() tea.Cmd {
	return tea.Quit
}

// Commands provides a public interface to the command functions.
type Commands struct {
	manager *services.Manager
}

// NewCommands creates a new Commands instance.
func NewCommands(mgr *services.Manager) *Commands {
	return &Commands{manager: mgr}
}

// Tick returns a tick command with the specified interval.
func (c *Commands) Tick(interval time.Duration) tea.Cmd {
	return tickCmd(interval)
}

// DefaultTick returns a tick command with the default interval.
func (c *Commands) DefaultTick() tea.Cmd {
	return defaultTickCmd()
}

// RefreshAll returns a command that refetches every dataset.
func (c *Commands) RefreshAll() tea.Cmd {
	return refreshAllCmd(c.manager)
}

// SetTimeRange returns a command that switches the time range.
func (c *Commands) SetTimeRange(tr models.TimeRange) tea.Cmd {
	return setTimeRangeCmd(c.manager, tr)
}

// ToggleLive returns a command that flips background polling.
func (c *Commands) ToggleLive() tea.Cmd {
	return toggleLiveCmd(c.manager)
}

// Export returns a command that exports the given tab's dataset to CSV.
func (c *Commands) Export(tab TabID) tea.Cmd {
	return exportCmd(c.manager, tab)
}

// SubscribeToServices returns a command that subscribes to service events.
func (c *Commands) SubscribeToServices() tea.Cmd {
	return subscribeToServicesCmd(c.manager)
}

// NotifySuccess returns a command that adds a success notification.
func (c *Commands) NotifySuccess(message string) tea.Cmd {
	return notifySuccessCmd(message)
}

// NotifyError returns a command that adds an error notification.
func (c *Commands) NotifyError(message string) tea.Cmd {
	return notifyErrorCmd(message)
}

// NotifyWarning returns a command that adds a warning notification.
func (c *Commands) NotifyWarning(message string) tea.Cmd {
	return notifyWarningCmd(message)
}

// NotifyInfo returns a command that adds an info notification.
func (c *Commands) NotifyInfo(message string) tea.Cmd {
	return notifyInfoCmd(message)
}

// ClearNotification returns a command that removes a notification after a delay.
func (c *Commands) ClearNotification(id string, delay time.Duration) tea.Cmd {
	return clearNotificationCmd(id, delay)
}

// Quit returns a command that quits the application.
func (c *Commands) Quit() tea.Cmd {
	return quitCmd()
}

// Delayed returns a command that sends a message after a delay.
func (c *Commands) Delayed(delay time.Duration, msg tea.Msg) tea.Cmd {
	return delayedCmd(delay, msg)
}

// Batch combines multiple commands into one.
func (c *Commands) Batch(cmds ...tea.Cmd) tea.Cmd {
	return batchCmds(cmds...)
}
