package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/rachitsingh/baatein/backend/internal/model/profile"
)

// ProfileModel is the GORM row backing a profile.
type ProfileModel struct {
	Email     string    `gorm:"primaryKey"`
	Username  string    `gorm:"not null"`
	Gender    string    `gorm:"not null"`
	DOB       time.Time `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName keeps the table name stable across model renames.
func (ProfileModel) TableName() string { return "profiles" }

// GormStore implements ProfileStore on Postgres via GORM.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore opens the database and runs auto-migrations.
func NewGormStore(dsn string) (*GormStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := db.AutoMigrate(&ProfileModel{}); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}
	return &GormStore{db: db}, nil
}

// CreateProfile inserts the record; the primary-key constraint on
// email is the only duplicate guard, so a concurrent second submission
// surfaces as ErrProfileExists.
func (s *GormStore) CreateProfile(ctx context.Context, p profile.Profile) error {
	model := profileToModel(p)
	if err := s.db.WithContext(ctx).Create(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrProfileExists
		}
		return err
	}
	return nil
}

// GetProfile looks up a profile by email.
func (s *GormStore) GetProfile(ctx context.Context, email string) (profile.Profile, bool, error) {
	var model ProfileModel
	err := s.db.WithContext(ctx).First(&model, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return profile.Profile{}, false, nil
		}
		return profile.Profile{}, false, err
	}
	return profileFromModel(model), true, nil
}

// HasProfile reports whether an onboarding record exists for the email.
func (s *GormStore) HasProfile(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&ProfileModel{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func profileToModel(p profile.Profile) ProfileModel {
	return ProfileModel{
		Email:     p.Email,
		Username:  p.Username,
		Gender:    string(p.Gender),
		DOB:       p.DOB,
		CreatedAt: p.CreatedAt,
	}
}

func profileFromModel(m ProfileModel) profile.Profile {
	return profile.Profile{
		Email:     m.Email,
		Username:  m.Username,
		Gender:    profile.Gender(m.Gender),
		DOB:       m.DOB,
		CreatedAt: m.CreatedAt,
	}
}
