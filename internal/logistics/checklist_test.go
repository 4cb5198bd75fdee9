package logistics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskKey(t *testing.T) {
	assert.Equal(t, "7_pre_event_station_3_photo_wide",
		TaskKey(7, PhasePreEvent, StationSubject(3), KindPhotoWide))
	assert.Equal(t, "7_day_of_station_3_place_qr",
		TaskKey(7, PhaseDayOf, StationSubject(3), KindPlaceQR))
	assert.Equal(t, "12_pre_event_mission_9_prep_props",
		TaskKey(12, PhasePreEvent, MissionSubject(9), KindPrepProps))
	assert.Equal(t, "12_pre_event_event_print_qr",
		TaskKey(12, PhasePreEvent, GlobalSubject, KindPrintQR))
}

func TestPlanTasks_Composition(t *testing.T) {
	stations := []StationInfo{
		{ID: 1, DisplayName: "Fountain"},
		{ID: 2, DisplayName: "Old Oak"},
	}
	missions := []MissionInfo{
		{ID: 10, Title: "Sing a ballad", RequiresVideo: true},
		{ID: 11, Title: "Build a raft", PropCount: 3},
		{ID: 12, Title: "Riddle"},
	}

	tasks := PlanTasks(5, stations, missions)

	// 1 global + 2 stations × 4 + video + props (the plain mission adds none)
	require.Len(t, tasks, 1+8+2)

	byKind := make(map[string]int)
	byPhase := make(map[string]int)
	for _, task := range tasks {
		byKind[task.Kind]++
		byPhase[task.Phase]++
	}
	assert.Equal(t, 1, byKind[KindPrintQR])
	assert.Equal(t, 2, byKind[KindPhotoWide])
	assert.Equal(t, 2, byKind[KindPhotoCloseup])
	assert.Equal(t, 2, byKind[KindPlaceQR])
	assert.Equal(t, 2, byKind[KindVerifyScan])
	assert.Equal(t, 1, byKind[KindPrepVideo])
	assert.Equal(t, 1, byKind[KindPrepProps])
	assert.Equal(t, 7, byPhase[PhasePreEvent])
	assert.Equal(t, 4, byPhase[PhaseDayOf])
}

func TestPlanTasks_Deterministic(t *testing.T) {
	stations := []StationInfo{{ID: 1, DisplayName: "Fountain"}}
	missions := []MissionInfo{{ID: 10, Title: "Sing", RequiresVideo: true}}

	first := PlanTasks(5, stations, missions)
	second := PlanTasks(5, stations, missions)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Key, second[i].Key)
		assert.Equal(t, first[i].SortOrder, second[i].SortOrder)
	}
}

func TestPlanTasks_UniqueKeys(t *testing.T) {
	stations := []StationInfo{{ID: 1, DisplayName: "A"}, {ID: 2, DisplayName: "B"}, {ID: 3, DisplayName: "C"}}
	missions := []MissionInfo{
		{ID: 1, Title: "M1", RequiresVideo: true, PropCount: 1},
		{ID: 2, Title: "M2", RequiresVideo: true},
	}

	tasks := PlanTasks(9, stations, missions)
	seen := make(map[string]bool)
	for _, task := range tasks {
		assert.False(t, seen[task.Key], "duplicate key %s", task.Key)
		seen[task.Key] = true
	}
	// Station 1 and mission 1 share a numeric ID but not a key
	assert.True(t, seen[TaskKey(9, PhasePreEvent, StationSubject(1), KindPhotoWide)])
	assert.True(t, seen[TaskKey(9, PhasePreEvent, MissionSubject(1), KindPrepVideo)])
}

func TestPlanTasks_Empty(t *testing.T) {
	tasks := PlanTasks(3, nil, nil)
	// The global print task is always emitted
	require.Len(t, tasks, 1)
	assert.Equal(t, KindPrintQR, tasks[0].Kind)
	assert.Equal(t, PhasePreEvent, tasks[0].Phase)
}

func TestPlanTasks_SubjectPointers(t *testing.T) {
	tasks := PlanTasks(4,
		[]StationInfo{{ID: 21, DisplayName: "Pier"}},
		[]MissionInfo{{ID: 33, Title: "Dance", RequiresVideo: true}})

	for _, task := range tasks {
		switch task.Kind {
		case KindPrintQR:
			assert.Nil(t, task.StationID)
			assert.Nil(t, task.MissionID)
		case KindPrepVideo:
			require.NotNil(t, task.MissionID)
			assert.Equal(t, uint(33), *task.MissionID)
		default:
			require.NotNil(t, task.StationID)
			assert.Equal(t, uint(21), *task.StationID)
		}
	}
}
