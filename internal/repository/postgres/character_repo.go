package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dom/hxh-catalog/internal/domain"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type characterRow struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"size:100;not null"`
	Age       *int      `gorm:"column:age"`
	HeightCM  *int      `gorm:"column:height_cm"`
	WeightKG  *int      `gorm:"column:weight_kg"`
	NenType   *string   `gorm:"column:nen_type;size:100"`
	Origin    *string   `gorm:"size:255"`
	ImageURL  string    `gorm:"column:image_url;type:text;not null"`
	Notes     *string   `gorm:"type:text"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP"`
}

func (characterRow) TableName() string {
	return "characters"
}

type characterRepository struct {
	db *gorm.DB
}

func NewCharacterRepository(db *gorm.DB) *characterRepository {
	return &characterRepository{db: db}
}

func (r *characterRepository) List(ctx context.Context) ([]*domain.Character, error) {
	var rows []characterRow
	err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list characters: %w", err)
	}

	characters := make([]*domain.Character, 0, len(rows))
	for i := range rows {
		c, err := toCharacter(&rows[i])
		if err != nil {
			return nil, err
		}
		characters = append(characters, c)
	}
	return characters, nil
}

func (r *characterRepository) GetByID(ctx context.Context, id string) (*domain.Character, error) {
	pk, ok := parseID(id)
	if !ok {
		return nil, domain.ErrCharacterNotFound
	}

	var row characterRow
	err := r.db.WithContext(ctx).First(&row, "id = ?", pk).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrCharacterNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get character: %w", err)
	}
	return toCharacter(&row)
}

func (r *characterRepository) Create(ctx context.Context, character *domain.Character) error {
	row := fromCharacter(character)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("create character: %w", err)
	}

	character.ID = strconv.FormatInt(row.ID, 10)
	createdAt := row.CreatedAt
	character.CreatedAt = &createdAt
	return nil
}

// Replace overwrites every column in one UPDATE ... RETURNING statement. The
// returned row count doubles as the existence check.
func (r *characterRepository) Replace(ctx context.Context, id string, character *domain.Character) (*domain.Character, error) {
	pk, ok := parseID(id)
	if !ok {
		return nil, domain.ErrCharacterNotFound
	}

	var rows []characterRow
	err := r.db.WithContext(ctx).
		Model(&rows).
		Clauses(clause.Returning{}).
		Where("id = ?", pk).
		Updates(map[string]interface{}{
			"name":      character.Name,
			"age":       character.Age,
			"height_cm": character.HeightCM,
			"weight_kg": character.WeightKG,
			"nen_type":  character.NenType,
			"origin":    character.Origin,
			"image_url": character.ImageURL,
			"notes":     character.Notes,
		}).Error
	if err != nil {
		return nil, fmt.Errorf("replace character: %w", err)
	}
	if len(rows) == 0 {
		return nil, domain.ErrCharacterNotFound
	}
	return toCharacter(&rows[0])
}

// Delete removes the row with DELETE ... RETURNING and hands back its last state.
func (r *characterRepository) Delete(ctx context.Context, id string) (*domain.Character, error) {
	pk, ok := parseID(id)
	if !ok {
		return nil, domain.ErrCharacterNotFound
	}

	var rows []characterRow
	err := r.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("id = ?", pk).
		Delete(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("delete character: %w", err)
	}
	if len(rows) == 0 {
		return nil, domain.ErrCharacterNotFound
	}
	return toCharacter(&rows[0])
}

func parseID(id string) (int64, bool) {
	pk, err := strconv.ParseInt(id, 10, 64)
	if err != nil || pk <= 0 {
		return 0, false
	}
	return pk, true
}

func toCharacter(row *characterRow) (*domain.Character, error) {
	var c domain.Character
	if err := copier.Copy(&c, row); err != nil {
		return nil, fmt.Errorf("map character row: %w", err)
	}
	c.ID = strconv.FormatInt(row.ID, 10)
	createdAt := row.CreatedAt
	c.CreatedAt = &createdAt
	return &c, nil
}

func fromCharacter(c *domain.Character) *characterRow {
	return &characterRow{
		Name:     c.Name,
		Age:      c.Age,
		HeightCM: c.HeightCM,
		WeightKG: c.WeightKG,
		NenType:  c.NenType,
		Origin:   c.Origin,
		ImageURL: c.ImageURL,
		Notes:    c.Notes,
	}
}
