package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Product categories as displayed in the shop.
const (
	CategoryFemme   = "femme"
	CategoryHomme   = "homme"
	CategoryUnisexe = "unisexe"
)

// Fragrance intensities.
const (
	IntensityLight    = "légère"
	IntensityModerate = "modérée"
	IntensityIntense  = "intense"
)

func IsValidCategory(c string) bool {
	switch c {
	case CategoryFemme, CategoryHomme, CategoryUnisexe:
		return true
	}
	return false
}

func IsValidIntensity(i string) bool {
	switch i {
	case IntensityLight, IntensityModerate, IntensityIntense:
		return true
	}
	return false
}

// StringSlice is a []string stored as a jsonb column.
type StringSlice []string

func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		s = StringSlice{}
	}
	return json.Marshal(s)
}

func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	}
	return fmt.Errorf("unsupported type %T for StringSlice", value)
}

// FragranceNotes holds the three ordered note lists of a perfume,
// stored as a single jsonb column.
type FragranceNotes struct {
	Top   []string `json:"top"`
	Heart []string `json:"heart"`
	Base  []string `json:"base"`
}

func (n FragranceNotes) Value() (driver.Value, error) {
	return json.Marshal(n)
}

func (n *FragranceNotes) Scan(value interface{}) error {
	if value == nil {
		*n = FragranceNotes{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, n)
	case string:
		return json.Unmarshal([]byte(v), n)
	}
	return errors.New("unsupported type for FragranceNotes")
}

type Product struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name          string         `gorm:"not null" json:"name"`
	Brand         string         `gorm:"not null" json:"brand"`
	Price         float64        `gorm:"not null" json:"price"`
	OriginalPrice *float64       `json:"original_price,omitempty"`
	Images        StringSlice    `gorm:"type:jsonb" json:"images"`
	Description   string         `gorm:"type:text" json:"description"`
	Category      string         `gorm:"type:varchar(16);not null;index" json:"category"`
	Intensity     string         `gorm:"type:varchar(16);not null" json:"intensity"`
	Notes         FragranceNotes `gorm:"type:jsonb" json:"notes"`
	Size          string         `gorm:"type:varchar(16)" json:"size"`
	IsNew         bool           `gorm:"default:false" json:"is_new"`
	IsBestSeller  bool           `gorm:"default:false" json:"is_best_seller"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}
