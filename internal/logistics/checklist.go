package logistics

import "fmt"

// Task kinds emitted by the generator.
const (
	KindPhotoWide    = "photo_wide"
	KindPhotoCloseup = "photo_closeup"
	KindPlaceQR      = "place_qr"
	KindVerifyScan   = "verify_scan"
	KindPrepVideo    = "prep_video"
	KindPrepProps    = "prep_props"
	KindPrintQR      = "print_qr"
)

// Checklist phases, mirrored from the persistence model to keep this package
// free of gorm types.
const (
	PhasePreEvent = "pre_event"
	PhaseDayOf    = "day_of"
)

// TaskKey derives the deterministic identity of a checklist task. Generating
// tasks for the same event twice yields the same keys, which is what makes
// regeneration an upsert instead of an append.
func TaskKey(eventID uint, phase, subject, kind string) string {
	return fmt.Sprintf("%d_%s_%s_%s", eventID, phase, subject, kind)
}

// StationSubject and MissionSubject name the task subject within a key.
func StationSubject(stationID uint) string { return fmt.Sprintf("station_%d", stationID) }
func MissionSubject(missionID uint) string { return fmt.Sprintf("mission_%d", missionID) }

// GlobalSubject marks event-wide tasks.
const GlobalSubject = "event"

// StationInfo is the station snapshot the planner reads.
type StationInfo struct {
	ID          uint
	DisplayName string
}

// MissionInfo is the enabled-mission snapshot the planner reads.
type MissionInfo struct {
	ID            uint
	Title         string
	RequiresVideo bool
	PropCount     int
}

// PlannedTask is one derived task, ready to be upserted by its Key.
type PlannedTask struct {
	Key         string
	Phase       string
	Kind        string
	Title       string
	Description string
	StationID   *uint
	MissionID   *uint
	Required    bool
	SortOrder   int
}

// PlanTasks derives the full task set for an event from its used stations and
// enabled missions. The output is deterministic: same inputs, same tasks in
// the same order with the same keys.
func PlanTasks(eventID uint, usedStations []StationInfo, enabledMissions []MissionInfo) []PlannedTask {
	tasks := make([]PlannedTask, 0, 4*len(usedStations)+2*len(enabledMissions)+1)
	sort := 0
	next := func() int { sort++; return sort }

	// One global preparation task regardless of station count
	tasks = append(tasks, PlannedTask{
		Key:         TaskKey(eventID, PhasePreEvent, GlobalSubject, KindPrintQR),
		Phase:       PhasePreEvent,
		Kind:        KindPrintQR,
		Title:       "Print all station QR codes",
		Description: "Print one QR code sheet per station and pack them for the event.",
		Required:    true,
		SortOrder:   next(),
	})

	for _, s := range usedStations {
		id := s.ID
		tasks = append(tasks,
			PlannedTask{
				Key:         TaskKey(eventID, PhasePreEvent, StationSubject(id), KindPhotoWide),
				Phase:       PhasePreEvent,
				Kind:        KindPhotoWide,
				Title:       fmt.Sprintf("Wide establishing photo: %s", s.DisplayName),
				Description: fmt.Sprintf("Take a wide shot of %s so teams can recognize the area.", s.DisplayName),
				StationID:   &id,
				Required:    true,
				SortOrder:   next(),
			},
			PlannedTask{
				Key:         TaskKey(eventID, PhasePreEvent, StationSubject(id), KindPhotoCloseup),
				Phase:       PhasePreEvent,
				Kind:        KindPhotoCloseup,
				Title:       fmt.Sprintf("Hiding spot close-up: %s", s.DisplayName),
				Description: fmt.Sprintf("Photograph the exact hiding spot at %s for the setup crew.", s.DisplayName),
				StationID:   &id,
				Required:    true,
				SortOrder:   next(),
			},
			PlannedTask{
				Key:         TaskKey(eventID, PhaseDayOf, StationSubject(id), KindPlaceQR),
				Phase:       PhaseDayOf,
				Kind:        KindPlaceQR,
				Title:       fmt.Sprintf("Place QR code: %s", s.DisplayName),
				Description: fmt.Sprintf("Hide the printed QR code at %s.", s.DisplayName),
				StationID:   &id,
				Required:    true,
				SortOrder:   next(),
			},
			PlannedTask{
				Key:         TaskKey(eventID, PhaseDayOf, StationSubject(id), KindVerifyScan),
				Phase:       PhaseDayOf,
				Kind:        KindVerifyScan,
				Title:       fmt.Sprintf("Verify scan: %s", s.DisplayName),
				Description: fmt.Sprintf("Scan the placed code at %s with the operator app to confirm it resolves.", s.DisplayName),
				StationID:   &id,
				Required:    true,
				SortOrder:   next(),
			},
		)
	}

	for _, m := range enabledMissions {
		id := m.ID
		if m.RequiresVideo {
			tasks = append(tasks, PlannedTask{
				Key:         TaskKey(eventID, PhasePreEvent, MissionSubject(id), KindPrepVideo),
				Phase:       PhasePreEvent,
				Kind:        KindPrepVideo,
				Title:       fmt.Sprintf("Record mission video: %s", m.Title),
				Description: fmt.Sprintf("Capture and upload the briefing video for mission %q.", m.Title),
				MissionID:   &id,
				Required:    true,
				SortOrder:   next(),
			})
		}
		if m.PropCount > 0 {
			tasks = append(tasks, PlannedTask{
				Key:         TaskKey(eventID, PhasePreEvent, MissionSubject(id), KindPrepProps),
				Phase:       PhasePreEvent,
				Kind:        KindPrepProps,
				Title:       fmt.Sprintf("Prepare props: %s", m.Title),
				Description: fmt.Sprintf("Stage the %d prop(s) mission %q needs.", m.PropCount, m.Title),
				MissionID:   &id,
				Required:    true,
				SortOrder:   next(),
			})
		}
	}

	return tasks
}
