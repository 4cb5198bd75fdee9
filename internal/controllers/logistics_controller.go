package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"quest_logistics/internal/config"
	"quest_logistics/internal/logistics"
	"quest_logistics/internal/models"
	"quest_logistics/internal/travel"
)

// fetchEvent resolves the :id param to an event or writes the error response.
func fetchEvent(c *gin.Context) (*models.Event, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return nil, false
	}

	var event models.Event
	if err := config.DB.First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		} else {
			logrus.WithError(err).Error("fetchEvent: database error")
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return nil, false
	}
	return &event, true
}

// BuildTravelMatrix computes and persists the directed travel-time matrix for
// an event's geolocated stations. POST /events/:id/travel-matrix
func BuildTravelMatrix(c *gin.Context) {
	event, ok := fetchEvent(c)
	if !ok {
		return
	}

	mode := c.DefaultQuery("mode", models.ModeWalking)
	if mode != models.ModeWalking && mode != models.ModeCycling && mode != models.ModeDriving {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown travel mode: " + mode})
		return
	}
	force := c.Query("force") == "true"

	var stations []models.Station
	if err := config.DB.
		Where("event_id = ? AND lat IS NOT NULL AND lng IS NOT NULL", event.ID).
		Order("id").Find(&stations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch stations: " + err.Error()})
		return
	}

	if len(stations) < 2 {
		c.JSON(http.StatusOK, gin.H{
			"ok":            false,
			"reason":        fmt.Sprintf("need at least 2 geolocated stations, found %d", len(stations)),
			"station_count": len(stations),
		})
		return
	}

	points := make([]logistics.StationPoint, len(stations))
	for i, s := range stations {
		points[i] = logistics.StationPoint{ID: s.ID, Lat: *s.Lat, Lng: *s.Lng}
	}

	if !force {
		var existing int64
		if err := config.DB.Model(&models.TravelEdge{}).
			Where("event_id = ? AND mode = ?", event.ID, mode).
			Count(&existing).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if logistics.CoverageSufficient(int(existing), len(points)) {
			c.JSON(http.StatusOK, gin.H{
				"ok":            true,
				"skipped":       true,
				"station_count": len(points),
				"pair_count":    existing,
			})
			return
		}
	}

	primary := travel.NewOSRM(config.GetEnv("OSRM_BASE_URL", "https://router.project-osrm.org"), mode)
	edges := logistics.PlanMatrix(c.Request.Context(), points, primary, travel.StraightLine{})

	now := time.Now()
	rows := make([]models.TravelEdge, len(edges))
	for i, e := range edges {
		rows[i] = models.TravelEdge{
			EventID:       event.ID,
			Mode:          mode,
			FromStationID: e.FromID,
			ToStationID:   e.ToID,
			Seconds:       e.Seconds,
			Meters:        e.Meters,
			Provider:      e.Provider,
			ComputedAt:    now,
		}
	}

	// Rewrite the whole (event, mode) edge set atomically so a concurrent
	// recompute cannot interleave between the delete and the insert.
	tx := config.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
		return
	}
	if err := tx.Unscoped().
		Where("event_id = ? AND mode = ?", event.ID, mode).
		Delete(&models.TravelEdge{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear edges: " + err.Error()})
		return
	}
	if len(rows) > 0 {
		if err := tx.CreateInBatches(rows, 500).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write edges: " + err.Error()})
			return
		}
	}
	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Transaction commit failed: " + err.Error()})
		return
	}

	summary := logistics.Summarize(len(points), edges)
	logrus.WithFields(logrus.Fields{
		"event": event.ID,
		"mode":  mode,
		"pairs": summary.PairCount,
	}).Info("travel matrix rebuilt")

	c.JSON(http.StatusOK, gin.H{
		"ok":              true,
		"skipped":         false,
		"station_count":   summary.StationCount,
		"pair_count":      summary.PairCount,
		"average_seconds": summary.AverageSeconds,
		"max_seconds":     summary.MaxSeconds,
	})
}

// walkingCostFunc loads the walking matrix for an event into a lookup.
func walkingCostFunc(eventID uint) (logistics.CostFunc, error) {
	var edges []models.TravelEdge
	if err := config.DB.
		Where("event_id = ? AND mode = ?", eventID, models.ModeWalking).
		Find(&edges).Error; err != nil {
		return nil, err
	}

	lookup := make(map[[2]uint]float64, len(edges))
	for _, e := range edges {
		lookup[[2]uint{e.FromStationID, e.ToStationID}] = e.Seconds
	}
	return func(from, to uint) (float64, bool) {
		seconds, ok := lookup[[2]uint{from, to}]
		return seconds, ok
	}, nil
}

// BuildSetupRoute orders the stations that still need QR placement into a
// low-cost walking sequence. POST /events/:id/setup-route
func BuildSetupRoute(c *gin.Context) {
	event, ok := fetchEvent(c)
	if !ok {
		return
	}

	var input struct {
		StationIDs []uint `json:"station_ids"`
	}
	// Body is optional; without one the open place_qr tasks decide.
	_ = c.ShouldBindJSON(&input)

	ids := input.StationIDs
	if len(ids) == 0 {
		var checklist models.Checklist
		err := config.DB.
			Where("event_id = ? AND phase = ?", event.ID, models.PhaseDayOf).
			First(&checklist).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Day-of checklist not found – generate checklists first or pass station_ids"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}

		var tasks []models.ChecklistTask
		if err := config.DB.
			Where("checklist_id = ? AND kind = ? AND status <> ?",
				checklist.ID, logistics.KindPlaceQR, models.TaskDone).
			Order("sort_order").Find(&tasks).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		for _, task := range tasks {
			if task.StationID != nil {
				ids = append(ids, *task.StationID)
			}
		}
	}

	if len(ids) < 2 {
		c.JSON(http.StatusOK, gin.H{
			"ok":                      true,
			"order":                   ids,
			"total_seconds":           0,
			"optimization_iterations": 0,
			"has_travel_data":         false,
		})
		return
	}

	cost, err := walkingCostFunc(event.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	order := logistics.NearestNeighborOrder(ids, cost)
	order, passes := logistics.TwoOptImprove(order, cost)
	totalSeconds, hasData := logistics.RouteSeconds(order, cost)

	c.JSON(http.StatusOK, gin.H{
		"ok":                      true,
		"order":                   order,
		"total_seconds":           totalSeconds,
		"optimization_iterations": passes,
		"has_travel_data":         hasData,
	})
}

// SimulateEventSchedule estimates each team's end-to-end play duration.
// POST /events/:id/schedule-simulation
func SimulateEventSchedule(c *gin.Context) {
	event, ok := fetchEvent(c)
	if !ok {
		return
	}

	var teams []models.Team
	if err := config.DB.Where("event_id = ?", event.ID).Order("id").Find(&teams).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(teams) == 0 {
		c.JSON(http.StatusOK, gin.H{"ok": false, "reason": "event has no teams"})
		return
	}

	teamIDs := make([]uint, len(teams))
	for i, t := range teams {
		teamIDs[i] = t.ID
	}

	var assignments []models.TeamAssignment
	if err := config.DB.Where("team_id IN ?", teamIDs).Order("id").Find(&assignments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(assignments) == 0 {
		c.JSON(http.StatusOK, gin.H{"ok": false, "reason": "event has no mission assignments"})
		return
	}

	missionIDs := make([]uint, 0, len(assignments))
	seenMission := make(map[uint]bool)
	for _, a := range assignments {
		if !seenMission[a.MissionID] {
			seenMission[a.MissionID] = true
			missionIDs = append(missionIDs, a.MissionID)
		}
	}

	var missions []models.Mission
	if err := config.DB.Where("id IN ?", missionIDs).Find(&missions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	dwellByMission := make(map[uint]float64, len(missions))
	for _, m := range missions {
		dwellByMission[m.ID] = logistics.MissionSeconds(logistics.MissionSpec{
			RequiresVideo: m.RequiresVideo,
			RequiresPhoto: m.RequiresPhoto,
			RequiresActor: m.RequiresActor,
			PropCount:     len(m.PropRequirements),
		})
	}

	cost, err := walkingCostFunc(event.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	byTeam := make(map[uint][]models.TeamAssignment)
	for _, a := range assignments {
		byTeam[a.TeamID] = append(byTeam[a.TeamID], a)
	}

	schedules := make([]logistics.TeamSchedule, 0, len(teams))
	for _, team := range teams {
		teamAssignments := byTeam[team.ID]
		if len(teamAssignments) == 0 {
			continue
		}

		var stationIDs []uint
		seenStation := make(map[uint]bool)
		var dwell float64
		for _, a := range teamAssignments {
			if !seenStation[a.StationID] {
				seenStation[a.StationID] = true
				stationIDs = append(stationIDs, a.StationID)
			}
			dwell += dwellByMission[a.MissionID]
		}

		schedules = append(schedules, logistics.SimulateTeam(team.ID, team.Name, stationIDs, dwell, cost))
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":                       true,
		"schedules":                schedules,
		"total_teams":              len(schedules),
		"average_duration_minutes": logistics.AverageDurationMinutes(schedules),
	})
}

// GenerateChecklists derives the pre-event and day-of task sets for an event
// and upserts them by their deterministic keys. Rerunning refreshes titles and
// descriptions but never duplicates a task or clobbers operator status.
// POST /events/:id/checklists/generate
func GenerateChecklists(c *gin.Context) {
	event, ok := fetchEvent(c)
	if !ok {
		return
	}

	var missions []models.Mission
	if err := config.DB.Where("event_id = ? AND enabled = ?", event.ID, true).Order("id").Find(&missions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Used stations are those any enabled mission is assigned at
	usedStationIDs := make([]uint, 0)
	if len(missions) > 0 {
		missionIDs := make([]uint, len(missions))
		for i, m := range missions {
			missionIDs[i] = m.ID
		}
		var assignments []models.TeamAssignment
		if err := config.DB.Where("mission_id IN ?", missionIDs).Find(&assignments).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		seen := make(map[uint]bool)
		for _, a := range assignments {
			if !seen[a.StationID] {
				seen[a.StationID] = true
				usedStationIDs = append(usedStationIDs, a.StationID)
			}
		}
	}

	var stations []models.Station
	if len(usedStationIDs) > 0 {
		if err := config.DB.Where("id IN ?", usedStationIDs).Order("id").Find(&stations).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	stationInfos := make([]logistics.StationInfo, len(stations))
	for i, s := range stations {
		stationInfos[i] = logistics.StationInfo{ID: s.ID, DisplayName: s.DisplayName}
	}
	missionInfos := make([]logistics.MissionInfo, len(missions))
	for i, m := range missions {
		missionInfos[i] = logistics.MissionInfo{
			ID:            m.ID,
			Title:         m.Title,
			RequiresVideo: m.RequiresVideo,
			PropCount:     len(m.PropRequirements),
		}
	}

	planned := logistics.PlanTasks(event.ID, stationInfos, missionInfos)

	tx := config.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
		return
	}

	checklistIDs := make(map[string]uint, 2)
	for _, phase := range []string{models.PhasePreEvent, models.PhaseDayOf} {
		checklist := models.Checklist{EventID: event.ID, Phase: phase}
		if err := tx.Where(models.Checklist{EventID: event.ID, Phase: phase}).
			Attrs(models.Checklist{Status: models.ChecklistDraft}).
			FirstOrCreate(&checklist).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not prepare checklist: " + err.Error()})
			return
		}
		checklistIDs[phase] = checklist.ID
	}

	for _, task := range planned {
		row := models.ChecklistTask{
			ChecklistID: checklistIDs[task.Phase],
			TaskKey:     task.Key,
			Phase:       task.Phase,
			Kind:        task.Kind,
			Title:       task.Title,
			Description: task.Description,
			StationID:   task.StationID,
			MissionID:   task.MissionID,
			Status:      models.TaskOpen,
			Required:    task.Required,
			SortOrder:   task.SortOrder,
		}
		// Upsert on the deterministic key; status is deliberately absent
		// from the update list so operator progress survives regeneration.
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "task_key"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"checklist_id", "title", "description", "station_id",
				"mission_id", "required", "sort_order", "updated_at",
			}),
		}).Create(&row).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not upsert task: " + err.Error()})
			return
		}
	}

	for _, id := range checklistIDs {
		if err := tx.Model(&models.Checklist{}).Where("id = ?", id).
			Update("status", models.ChecklistReady).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Transaction commit failed: " + err.Error()})
		return
	}

	logrus.WithFields(logrus.Fields{
		"event": event.ID,
		"tasks": len(planned),
	}).Info("checklists generated")

	c.JSON(http.StatusOK, gin.H{
		"ok":                     true,
		"pre_event_checklist_id": checklistIDs[models.PhasePreEvent],
		"day_of_checklist_id":    checklistIDs[models.PhaseDayOf],
		"task_count":             len(planned),
		"stations_count":         len(stationInfos),
		"enabled_missions_count": len(missionInfos),
	})
}
