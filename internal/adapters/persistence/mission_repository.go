package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/andrescamacho/realmfleet-go/internal/domain/mission"
	"github.com/andrescamacho/realmfleet-go/internal/domain/shared"
)

// GormMissionRepository is the mission journal backed by GORM
type GormMissionRepository struct {
	db *gorm.DB
}

// NewGormMissionRepository creates a new GORM mission repository
func NewGormMissionRepository(db *gorm.DB) *GormMissionRepository {
	return &GormMissionRepository{db: db}
}

// RecordTurn upserts the realm's open missions and marks every previously open
// mission that is no longer in the list as removed at this turn
func (r *GormMissionRepository) RecordTurn(ctx context.Context, turn int, realmName string, missions []*mission.Mission) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ids := make([]string, 0, len(missions))
		for i, m := range missions {
			model := missionToModel(m, realmName, turn, i)
			if err := tx.Save(model).Error; err != nil {
				return fmt.Errorf("failed to save mission %s: %w", m.ID(), err)
			}
			ids = append(ids, m.ID())
		}

		query := tx.Model(&MissionModel{}).
			Where("realm = ? AND removed_at_turn IS NULL", realmName)
		if len(ids) > 0 {
			query = query.Where("id NOT IN ?", ids)
		}
		if err := query.Update("removed_at_turn", turn).Error; err != nil {
			return fmt.Errorf("failed to close removed missions of %s: %w", realmName, err)
		}
		return nil
	})
}

// FindOpenByRealm rebuilds the realm's open missions in mission list order
func (r *GormMissionRepository) FindOpenByRealm(ctx context.Context, realmName string) ([]*mission.Mission, error) {
	var models []MissionModel
	result := r.db.WithContext(ctx).
		Where("realm = ? AND removed_at_turn IS NULL", realmName).
		Order("position").
		Order("id").
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list missions: %w", result.Error)
	}

	missions := make([]*mission.Mission, 0, len(models))
	for i := range models {
		m, err := modelToMission(&models[i])
		if err != nil {
			return nil, fmt.Errorf("invalid mission %s in journal: %w", models[i].ID, err)
		}
		missions = append(missions, m)
	}
	return missions, nil
}

// FindByID retrieves a journal row by mission id, open or removed
func (r *GormMissionRepository) FindByID(ctx context.Context, id string) (*MissionModel, error) {
	var model MissionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("mission not found: %s", id)
		}
		return nil, fmt.Errorf("failed to find mission: %w", result.Error)
	}
	return &model, nil
}

// CountRemovedAt counts the missions of a realm that ended at the given turn
func (r *GormMissionRepository) CountRemovedAt(ctx context.Context, realmName string, turn int) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&MissionModel{}).
		Where("realm = ? AND removed_at_turn = ?", realmName, turn).
		Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to count removed missions: %w", result.Error)
	}
	return count, nil
}

// LatestTurn returns the last turn a realm's journal saw a mission open or
// removed, 0 when nothing was recorded
func (r *GormMissionRepository) LatestTurn(ctx context.Context, realmName string) (int, error) {
	var turn int
	result := r.db.WithContext(ctx).Model(&MissionModel{}).
		Where("realm = ?", realmName).
		Select("COALESCE(MAX(CASE WHEN removed_at_turn > turn THEN removed_at_turn ELSE turn END), 0)").
		Scan(&turn)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to find latest turn: %w", result.Error)
	}
	return turn, nil
}

func missionToModel(m *mission.Mission, realmName string, turn, position int) *MissionModel {
	return &MissionModel{
		ID:             m.ID(),
		Realm:          realmName,
		Type:           m.Type().String(),
		Phase:          m.Phase().String(),
		TargetX:        m.Target().X,
		TargetY:        m.Target().Y,
		FleetName:      m.FleetName(),
		PlanetBuilding: m.PlanetBuilding(),
		SunName:        m.SunName(),
		TargetPlanet:   m.TargetPlanet(),
		TargetRealm:    m.TargetRealm(),
		ShipType:       m.ShipType(),
		MissionTime:    m.MissionTime(),
		Position:       position,
		Turn:           turn,
	}
}

func modelToMission(model *MissionModel) (*mission.Mission, error) {
	missionType, err := mission.ParseMissionType(model.Type)
	if err != nil {
		return nil, err
	}
	phase, err := mission.ParseMissionPhase(model.Phase)
	if err != nil {
		return nil, err
	}

	m, err := mission.RestoreMission(model.ID, missionType, phase, shared.Coordinate{X: model.TargetX, Y: model.TargetY})
	if err != nil {
		return nil, err
	}
	m.SetFleetName(model.FleetName)
	m.SetPlanetBuilding(model.PlanetBuilding)
	m.SetSunName(model.SunName)
	m.SetTargetPlanet(model.TargetPlanet)
	m.SetTargetRealm(model.TargetRealm)
	if model.ShipType != "" {
		if err := m.SetShipType(model.ShipType); err != nil {
			return nil, err
		}
	}
	m.SetMissionTime(model.MissionTime)
	return m, nil
}
