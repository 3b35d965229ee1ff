// services/auth_service.go
package services

import (
	"strings"

	"github.com/google/uuid"

	"github.com/triplink-app/triplink-backend/models"
	"github.com/triplink-app/triplink-backend/repository"
	"github.com/triplink-app/triplink-backend/utils"
)

// The account every login resolves to. Auth here is a simulated state
// transition: no credentials are checked against anything, no hashes
// exist, and sessions vanish on restart.
const demoUserID = "u1"

// AuthService handles simulated login, the multi-step registration flow
// and guest share-link sessions
type AuthService struct {
	sessions *repository.SessionRepository
	trips    *repository.TripRepository
}

// NewAuthService creates a new auth service
func NewAuthService(sessions *repository.SessionRepository, trips *repository.TripRepository) *AuthService {
	return &AuthService{sessions: sessions, trips: trips}
}

// Login accepts any non-empty credentials and opens a session for the
// demo account
func (s *AuthService) Login(req *models.LoginRequest) (models.Session, models.User, error) {
	if err := utils.ValidateRequired(req.Email, "email"); err != nil {
		return models.Session{}, models.User{}, err
	}
	if err := utils.ValidateRequired(req.Password, "password"); err != nil {
		return models.Session{}, models.User{}, err
	}

	user, err := s.sessions.GetUser(demoUserID)
	if err != nil {
		return models.Session{}, models.User{}, utils.NewInternalError("demo account missing")
	}
	return s.openSession(user), user, nil
}

// Register starts the three-step signup: credentials, then OTP, then
// profile. Mismatched confirmation refuses to proceed.
func (s *AuthService) Register(req *models.RegisterRequest) (repository.Registration, error) {
	if err := utils.ValidateRequired(req.Email, "email"); err != nil {
		return repository.Registration{}, err
	}
	if err := utils.ValidateRequired(req.Password, "password"); err != nil {
		return repository.Registration{}, err
	}
	if req.Password != req.ConfirmPassword {
		return repository.Registration{}, utils.NewValidationError(utils.ErrPasswordMismatch)
	}

	reg := repository.Registration{
		ID:    uuid.NewString(),
		Email: strings.TrimSpace(req.Email),
	}
	s.sessions.PutRegistration(reg)
	return reg, nil
}

// VerifyOTP checks the simulated six-digit code. Any six digits pass;
// there is no mail to have received a real one from.
func (s *AuthService) VerifyOTP(req *models.VerifyOTPRequest) error {
	reg, err := s.sessions.GetRegistration(req.RegistrationID)
	if err != nil {
		return utils.NewNotFoundError("Registration")
	}
	if err := utils.ValidateOTP(req.OTP); err != nil {
		return err
	}
	reg.Verified = true
	s.sessions.PutRegistration(reg)
	return nil
}

// CompleteSetup finishes registration with a display name and opens a
// session for the new account
func (s *AuthService) CompleteSetup(req *models.CompleteSetupRequest) (models.Session, models.User, error) {
	reg, err := s.sessions.GetRegistration(req.RegistrationID)
	if err != nil {
		return models.Session{}, models.User{}, utils.NewNotFoundError("Registration")
	}
	if !reg.Verified {
		return models.Session{}, models.User{}, utils.NewBadRequestError(utils.ErrInvalidOTP)
	}
	name := strings.TrimSpace(req.DisplayName)
	if err := utils.ValidateRequired(name, "displayName"); err != nil {
		return models.Session{}, models.User{}, err
	}

	user := models.User{ID: utils.GenerateID(), Name: name, Avatar: ""}
	s.sessions.PutUser(user)
	s.sessions.DeleteRegistration(reg.ID)
	return s.openSession(user), user, nil
}

// GuestSession opens a read-only session bound to the trip a share link
// pointed at. No role ever upgrades it to writable.
func (s *AuthService) GuestSession(req *models.GuestSessionRequest) (models.Session, models.Trip, error) {
	trip, err := s.trips.FindTripByReference(strings.TrimSpace(req.TripRef))
	if err != nil {
		return models.Session{}, models.Trip{}, utils.NewNotFoundError("Trip")
	}

	session := models.Session{
		Token:   uuid.NewString(),
		IsGuest: true,
		TripID:  trip.ID,
	}
	s.sessions.PutSession(session)
	return session, trip, nil
}

// Logout drops a session
func (s *AuthService) Logout(token string) {
	s.sessions.DeleteSession(token)
}

// Resolve maps a bearer token to the acting identity
func (s *AuthService) Resolve(token string) (Actor, error) {
	session, err := s.sessions.GetSession(token)
	if err != nil {
		return Actor{}, utils.NewUnauthorizedError(utils.ErrSessionRequired)
	}
	return Actor{UserID: session.UserID, IsGuest: session.IsGuest, TripID: session.TripID}, nil
}

// UpdateProfile renames the acting user everywhere: the account record
// and every trip membership carrying it
func (s *AuthService) UpdateProfile(actor Actor, name string) (models.User, error) {
	if actor.IsGuest || actor.UserID == "" {
		return models.User{}, utils.NewForbiddenError(utils.ErrReadOnly)
	}
	name = strings.TrimSpace(name)
	if err := utils.ValidateRequired(name, "displayName"); err != nil {
		return models.User{}, err
	}

	user, err := s.sessions.GetUser(actor.UserID)
	if err != nil {
		return models.User{}, utils.NewUnauthorizedError(utils.ErrSessionRequired)
	}
	user.Name = name
	s.sessions.PutUser(user)

	for _, trip := range s.trips.ListTrips() {
		if _, ok := trip.MemberRole(user.ID); !ok {
			continue
		}
		_, err := s.trips.UpdateTrip(trip.ID, func(t models.Trip) (models.Trip, error) {
			for i := range t.Members {
				if t.Members[i].ID == user.ID {
					t.Members[i].Name = name
				}
			}
			return t, nil
		})
		if err != nil && err != repository.ErrNotFound {
			return models.User{}, err
		}
	}
	return user, nil
}

func (s *AuthService) openSession(user models.User) models.Session {
	session := models.Session{
		Token:  uuid.NewString(),
		UserID: user.ID,
	}
	s.sessions.PutSession(session)
	return session
}
