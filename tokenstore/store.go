// Package tokenstore keeps the backend session token on disk so a restart
// can resume the session the way a browser resumes from its cookie jar.
package tokenstore

import (
	"errors"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// sessionToken is a single-row table; the client holds at most one session.
type sessionToken struct {
	ID        uint   `gorm:"primaryKey"`
	Token     string `gorm:"not null"`
	UpdatedAt time.Time
}

func (sessionToken) TableName() string { return "session_tokens" }

type Store struct {
	db *gorm.DB
}

// Open connects to (and migrates) the sqlite file at path.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&sessionToken{}); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Load returns the stored token, or "" when none is stored.
func (s *Store) Load() (string, error) {
	var row sessionToken
	err := s.db.First(&row, 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return row.Token, nil
}

// Save upserts the token into the single row.
func (s *Store) Save(token string) error {
	row := sessionToken{ID: 1, Token: token}
	return s.db.Save(&row).Error
}

// Clear removes any stored token. Clearing an empty store is not an error.
func (s *Store) Clear() error {
	return s.db.Delete(&sessionToken{}, 1).Error
}
