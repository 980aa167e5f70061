package db

import (
	"strings"

	"gorm.io/gorm"

	"github.com/balkashynov/wrkday/internal/models"
)

// Store persists the engine's session state. Writes happen after every
// engine mutation; nothing in the engine ever reads through it
// mid-operation, so one full write per mutation is fine at this scale.
type Store struct {
	db *gorm.DB
}

// NewStore returns a store over the initialized connection.
func NewStore() *Store {
	return &Store{db: DB}
}

// Save writes the whole state in one transaction.
func (s *Store) Save(state *models.State) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		for i := range state.Records {
			if err := tx.Save(&state.Records[i]).Error; err != nil {
				return err
			}
		}
		for i := range state.Balances {
			if err := tx.Save(&state.Balances[i]).Error; err != nil {
				return err
			}
		}
		for i := range state.Leaves {
			if err := tx.Save(&state.Leaves[i]).Error; err != nil {
				return err
			}
		}
		for i := range state.Projects {
			if err := tx.Save(&state.Projects[i]).Error; err != nil {
				return err
			}
		}
		for i := range state.Tasks {
			if err := saveTask(tx, &state.Tasks[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

// saveTask writes one task, resolving its tags by name first so the
// unique tag table is shared across tasks.
func saveTask(tx *gorm.DB, task *models.Task) error {
	tags, err := findOrCreateTags(tx, task.Tags)
	if err != nil {
		return err
	}
	task.Tags = tags

	if err := tx.Omit("Tags").Save(task).Error; err != nil {
		return err
	}
	return tx.Model(task).Association("Tags").Replace(tags)
}

// findOrCreateTags finds existing tags by name or creates new ones
func findOrCreateTags(tx *gorm.DB, in []models.Tag) ([]models.Tag, error) {
	var tags []models.Tag

	for _, t := range in {
		name := strings.TrimSpace(t.Name)
		if name == "" {
			continue
		}

		var tag models.Tag
		err := tx.Where("name = ?", name).First(&tag).Error
		if err != nil {
			// Tag doesn't exist, create it
			tag = models.Tag{Name: name}
			if err := tx.Create(&tag).Error; err != nil {
				return nil, err
			}
		}

		tags = append(tags, tag)
	}

	return tags, nil
}

// Load reads the whole state back.
func (s *Store) Load() (*models.State, error) {
	state := &models.State{}

	if err := s.db.Order("date ASC").Find(&state.Records).Error; err != nil {
		return nil, err
	}
	if err := s.db.Order("id ASC").Find(&state.Balances).Error; err != nil {
		return nil, err
	}
	if err := s.db.Order("id ASC").Find(&state.Leaves).Error; err != nil {
		return nil, err
	}
	if err := s.db.Preload("Tags").Order("id ASC").Find(&state.Tasks).Error; err != nil {
		return nil, err
	}
	if err := s.db.Order("id ASC").Find(&state.Projects).Error; err != nil {
		return nil, err
	}
	return state, nil
}

// Reset drops all session state. Used by `wrkday init` when reseeding.
func (s *Store) Reset() error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, table := range []any{
			&models.AttendanceRecord{},
			&models.LeaveBalance{},
			&models.LeaveRequest{},
			&models.TaskTag{},
			&models.Task{},
			&models.Tag{},
			&models.Project{},
		} {
			if err := tx.Where("1 = 1").Delete(table).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
