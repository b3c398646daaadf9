package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kruthislayscoding/hardzy-app/internal/domain"
)

// State is the session lifecycle position. Transitions only ever move
// forward through SignIn -> VerifyOTP -> UpdateProfile, and SignOut resets
// to SignedOut from anywhere.
type State string

const (
	StateSignedOut           State = "signed_out"
	StatePendingVerification State = "pending_verification"
	StateSignedInIncomplete  State = "signed_in_incomplete"
	StateSignedInComplete    State = "signed_in_complete"
)

var (
	ErrEmptyPhone   = errors.New("phone number must not be empty")
	ErrInvalidState = errors.New("operation not allowed in current session state")
	ErrNotSignedIn  = errors.New("no signed-in user")
)

// DefaultLatency mirrors the mocked auth backend round trip.
const DefaultLatency = time.Second

// Service holds the single logical session for the client process. The mock
// auth flow always succeeds after a simulated delay; a real backend needs
// code matching and expiry on VerifyOTP.
type Service struct {
	mu      sync.Mutex
	state   State
	phone   string
	user    *domain.User
	latency time.Duration
	logger  *zap.Logger
}

func NewService(latency time.Duration, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		state:   StateSignedOut,
		latency: latency,
		logger:  logger,
	}
}

// SignIn begins the OTP flow for the phone number. Only the send-code
// round trip is simulated; no code is actually delivered.
func (s *Service) SignIn(ctx context.Context, phone string) error {
	if phone == "" {
		return ErrEmptyPhone
	}

	s.mu.Lock()
	if s.state != StateSignedOut {
		s.mu.Unlock()
		return ErrInvalidState
	}
	s.mu.Unlock()

	if err := s.wait(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StatePendingVerification
	s.phone = phone
	s.logger.Info("otp sent", zap.String("phone", phone))
	return nil
}

// VerifyOTP completes the pending verification and materializes an
// incomplete user stub. The mock accepts any code.
func (s *Service) VerifyOTP(ctx context.Context, code string) (*domain.User, error) {
	s.mu.Lock()
	if s.state != StatePendingVerification {
		s.mu.Unlock()
		return nil, ErrInvalidState
	}
	s.mu.Unlock()

	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user := &domain.User{
		ID:              uuid.New().String(),
		Phone:           s.phone,
		ProfileComplete: false,
		CreatedAt:       time.Now(),
	}
	s.user = user
	s.state = StateSignedInIncomplete
	s.logger.Info("otp verified", zap.String("user_id", user.ID))

	u := *user
	return &u, nil
}

// UpdateProfile merges the supplied fields into the user record.
// Profile completeness is computed from required-field presence rather than
// asserted, so a partial update cannot unlock checkout.
func (s *Service) UpdateProfile(update domain.ProfileUpdate) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil, ErrNotSignedIn
	}

	if update.Name != nil {
		s.user.Name = *update.Name
	}
	if update.Email != nil {
		s.user.Email = *update.Email
	}
	if update.DateOfBirth != nil {
		s.user.DateOfBirth = *update.DateOfBirth
	}
	if update.Address != nil {
		s.user.Address = *update.Address
	}

	s.user.ProfileComplete = profileComplete(s.user)
	if s.user.ProfileComplete {
		s.state = StateSignedInComplete
	} else {
		s.state = StateSignedInIncomplete
	}

	u := *s.user
	return &u, nil
}

// SignOut discards the user record entirely. There is no server-side
// session to invalidate.
func (s *Service) SignOut() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.phone = ""
	s.state = StateSignedOut
}

// User returns a copy of the current user, or ErrNotSignedIn.
func (s *Service) User() (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil, ErrNotSignedIn
	}
	u := *s.user
	return &u, nil
}

func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Service) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}

func (s *Service) wait(ctx context.Context) error {
	select {
	case <-time.After(s.latency):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// profileComplete checks the fields checkout needs: name, email and a full
// delivery address. Date of birth stays optional.
func profileComplete(u *domain.User) bool {
	return u.Name != "" &&
		u.Email != "" &&
		u.Phone != "" &&
		u.Address.Street != "" &&
		u.Address.City != "" &&
		u.Address.Pincode != ""
}
