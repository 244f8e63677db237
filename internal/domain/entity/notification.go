package entity

import "time"

// NotificationChannel routes a scheduled notification to a platform channel
// with its own importance and sound.
type NotificationChannel string

const (
	// ChannelSubuh is the dedicated pre-dawn prayer channel.
	ChannelSubuh NotificationChannel = "subuh_notifications"
	// ChannelPrayer is the shared channel for the other daily prayers.
	ChannelPrayer NotificationChannel = "prayer_notifications"
	// ChannelImsyak is the abstinence-reminder channel.
	ChannelImsyak NotificationChannel = "imsyak_notifications"
)

// Sound assets bundled with the app, referenced by channel mapping.
const (
	SoundAdzan        = "adzan.mp3"
	SoundAdzanSubuh   = "adzan_subuh.mp3"
	SoundNotification = "notification.wav"
)

// Stable notification ids, one per prayer slot, reused every day so a
// re-scheduling run always replaces the same logical slot.
const (
	NotificationIDSubuh   = 1
	NotificationIDDzuhur  = 2
	NotificationIDAshar   = 3
	NotificationIDMaghrib = 4
	NotificationIDIsya    = 5
	NotificationIDImsyak  = 6
)

// ScheduledNotification is one entry submitted to the notification gateway.
// TriggerAt is strictly in the future at enqueue time; times already elapsed
// for today are rolled forward to the same clock time tomorrow.
type ScheduledNotification struct {
	ID        int                 `json:"id"`
	Title     string              `json:"title"`
	Body      string              `json:"body"`
	TriggerAt time.Time           `json:"trigger_at"`
	Channel   NotificationChannel `json:"channel"`
	Sound     string              `json:"sound"`
	Extra     map[string]string   `json:"extra,omitempty"`
}
