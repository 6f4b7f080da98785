package session

import (
	"crypto/hmac"
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	"smssync/internal/constants"
	"smssync/internal/errors"
	"smssync/internal/privacy"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Session is the server-side state for one authenticated caller: the
// identity, the CSRF token bound 1:1 to the session, and the idle timer.
type Session struct {
	ID           string
	Email        string
	CSRFToken    string
	LastActivity time.Time
}

// Manager holds all active sessions in memory. Single logical user, so
// the map stays tiny; a restart logs everyone out, which is acceptable at
// demo scope.
type Manager struct {
	mu          sync.Mutex
	sessions    map[string]*Session
	idleTimeout time.Duration
	logger      *logrus.Logger

	now func() time.Time
}

func NewManager(idleTimeout time.Duration, logger *logrus.Logger) *Manager {
	return &Manager{
		sessions:    make(map[string]*Session),
		idleTimeout: idleTimeout,
		logger:      logger,
		now:         time.Now,
	}
}

// Create issues a brand-new session with a fresh identifier and CSRF
// token. Callers must destroy any prior session first; issuing a new ID on
// every login is the fixation defense.
func (m *Manager) Create(email string) (*Session, error) {
	token, err := generateCSRFToken()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to generate csrf token")
	}

	sess := &Session{
		ID:           uuid.NewString(),
		Email:        email,
		CSRFToken:    token,
		LastActivity: m.now(),
	}

	m.mu.Lock()
	m.sessions[sess.ID] = sess
	m.mu.Unlock()

	m.logger.WithFields(logrus.Fields{
		"session_id": privacy.MaskSessionID(sess.ID),
		"email":      privacy.MaskEmail(email),
	}).Info("Session created")

	return sess, nil
}

// Touch validates a session for a gated request. It fails with an
// auth-required error when the session is unknown, and with a
// session-expired error (destroying server-side state) when the idle
// threshold has passed. On success the idle timer is restarted.
func (m *Manager) Touch(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[id]
	if !ok {
		return nil, errors.NewAuthRequiredError()
	}

	if m.now().Sub(sess.LastActivity) > m.idleTimeout {
		delete(m.sessions, id)
		m.logger.WithField("session_id", privacy.MaskSessionID(id)).Info("Session expired after idle timeout")
		return nil, errors.NewSessionExpiredError()
	}

	sess.LastActivity = m.now()
	return sess, nil
}

// Destroy removes a session. Destroying an unknown id is a no-op.
func (m *Manager) Destroy(id string) {
	m.mu.Lock()
	_, existed := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if existed {
		m.logger.WithField("session_id", privacy.MaskSessionID(id)).Info("Session destroyed")
	}
}

// ValidateCSRF compares a presented token against the session's token in
// constant time.
func (m *Manager) ValidateCSRF(sess *Session, token string) error {
	if token == "" || !hmac.Equal([]byte(sess.CSRFToken), []byte(token)) {
		return errors.NewCsrfError()
	}
	return nil
}

func generateCSRFToken() (string, error) {
	buf := make([]byte, constants.CSRFTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
