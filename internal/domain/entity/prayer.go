package entity

import "time"

// Prayer slot names as used throughout the app (Indonesian spellings).
const (
	PrayerSubuh   = "Subuh"
	PrayerDzuhur  = "Dzuhur"
	PrayerAshar   = "Ashar"
	PrayerMaghrib = "Maghrib"
	PrayerIsya    = "Isya"
	PrayerImsyak  = "Imsyak"
)

// ScheduleDateLayout is the calendar-day stamp format for DailyPrayerSchedule.
const ScheduleDateLayout = "2006-01-02"

// DailyPrayerSchedule holds the five daily prayer times plus the pre-dawn
// abstinence time for one calendar day at one location. Times are local
// "HH:MM" clock strings; they are not valid for a different day or for a
// location meaningfully far from Origin.
type DailyPrayerSchedule struct {
	Subuh   string `json:"subuh"`
	Dzuhur  string `json:"dzuhur"`
	Ashar   string `json:"ashar"`
	Maghrib string `json:"maghrib"`
	Isya    string `json:"isya"`
	Imsyak  string `json:"imsyak"`

	Date   string     `json:"date"` // YYYY-MM-DD
	City   string     `json:"city,omitempty"`
	Origin Coordinate `json:"origin"`
}

// PrayerSlot pairs a prayer name with its clock time for scheduling.
type PrayerSlot struct {
	Name string
	Time string
}

// PrimarySlots returns the five daily prayers in canonical order.
func (s *DailyPrayerSchedule) PrimarySlots() []PrayerSlot {
	return []PrayerSlot{
		{Name: PrayerSubuh, Time: s.Subuh},
		{Name: PrayerDzuhur, Time: s.Dzuhur},
		{Name: PrayerAshar, Time: s.Ashar},
		{Name: PrayerMaghrib, Time: s.Maghrib},
		{Name: PrayerIsya, Time: s.Isya},
	}
}

// IsForDay reports whether the schedule was computed for the given day.
func (s *DailyPrayerSchedule) IsForDay(day time.Time) bool {
	return s.Date == day.Format(ScheduleDateLayout)
}
