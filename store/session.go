package store

import (
	"errors"
	"time"

	"github.com/smithbhavsar/ChatpataAI/entity"
	"github.com/smithbhavsar/ChatpataAI/utils"

	"gorm.io/gorm"
)

// ErrNotRegistered means the login lookup found no customer for the phone
// number.
var ErrNotRegistered = errors.New("session: phone number not registered")

// SessionStore owns the authenticated identity and its durable record.
type SessionStore struct {
	DB     *gorm.DB
	secret string
	ttl    time.Duration
}

func NewSessionStore(db *gorm.DB, secret string, ttl time.Duration) *SessionStore {
	return &SessionStore{DB: db, secret: secret, ttl: ttl}
}

// Login looks the identity up by phone number, persists a session record
// and returns the identity with its signed token.
func (s *SessionStore) Login(phoneNumber string) (*entity.Customer, string, error) {
	var cust entity.Customer
	if err := s.DB.Where("phone_number = ?", phoneNumber).First(&cust).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrNotRegistered
		}
		return nil, "", err
	}

	token, err := utils.GenerateToken(cust.ID, cust.Role, s.secret, s.ttl)
	if err != nil {
		return nil, "", err
	}

	sess := entity.Session{
		Token:      token,
		CustomerID: cust.ID,
		ExpiresAt:  time.Now().Add(s.ttl),
	}
	if err := s.DB.Create(&sess).Error; err != nil {
		return nil, "", err
	}
	return &cust, token, nil
}

// Logout deletes the persisted session. Deleting a session that no longer
// exists still succeeds.
func (s *SessionStore) Logout(token string) error {
	return s.DB.Where("token = ?", token).Delete(&entity.Session{}).Error
}

// Restore returns the identity behind a persisted session token. Missing,
// expired or dangling records read as absent (nil identity, no error);
// only a real storage failure is an error.
func (s *SessionStore) Restore(token string) (*entity.Customer, error) {
	if token == "" {
		return nil, nil
	}
	if _, err := utils.ParseToken(token, s.secret); err != nil {
		return nil, nil
	}

	var sess entity.Session
	err := s.DB.Where("token = ?", token).Preload("Customer").First(&sess).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if time.Now().After(sess.ExpiresAt) || sess.Customer.ID == 0 {
		return nil, nil
	}
	if _, ok := entity.ParseRole(string(sess.Customer.Role)); !ok {
		// corrupt role on disk: treat the record as absent
		return nil, nil
	}
	cust := sess.Customer
	return &cust, nil
}

// PurgeExpired drops stale session rows. Called once at startup.
func (s *SessionStore) PurgeExpired() error {
	return s.DB.Where("expires_at < ?", time.Now()).Delete(&entity.Session{}).Error
}
