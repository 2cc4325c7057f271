package services

import (
	"errors"
	"time"

	"github.com/yojanasetu/portal-go/internal/api/middleware"
	"github.com/yojanasetu/portal-go/internal/domain/user"
	"github.com/yojanasetu/portal-go/internal/repository"
	"github.com/yojanasetu/portal-go/pkg/types"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrIncorrectPassword   = errors.New("old password does not match")
	ErrPasswordHashFailure = errors.New("failed to hash password")
)

type UserService struct {
	Repos *repository.Repos
}

func NewUserService(repos *repository.Repos) *UserService {
	return &UserService{Repos: repos}
}

func (s *UserService) Register(input user.CreateUserInput) (*user.User, error) {
	_, err := s.Repos.User.GetUserByEmail(input.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err == nil {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrPasswordHashFailure
	}

	usr := user.User{
		Username: input.Username,
		Email:    input.Email,
		Password: string(hashed),
		Role:     types.RoleCitizen,
	}
	if err := s.Repos.User.SaveUser(&usr); err != nil {
		return nil, err
	}
	return &usr, nil
}

func (s *UserService) Login(email, password string) (user.User, string, error) {
	usr, err := s.Repos.User.GetUserByEmail(email)
	if err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(password)); err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(usr.UID, usr.Username, usr.Role, 24*time.Hour)
	if err != nil {
		return user.User{}, "", err
	}

	return usr, token, nil
}

func (s *UserService) GetUser(id uint) (user.User, error) {
	usr, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.User{}, ErrUserNotFound
		}
		return user.User{}, err
	}
	return usr, nil
}

// UpdateProfile patches the citizen profile; untouched fields keep their
// previous values.
func (s *UserService) UpdateProfile(id uint, input user.UpdateProfileInput) (user.User, error) {
	usr, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.User{}, ErrUserNotFound
		}
		return user.User{}, err
	}

	p := &usr.Profile
	if input.FirstName != nil {
		p.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		p.LastName = *input.LastName
	}
	if input.Age != nil {
		p.Age = *input.Age
	}
	if input.State != nil {
		p.State = *input.State
	}
	if input.Gender != nil {
		p.Gender = *input.Gender
	}
	if input.Occupation != nil {
		p.Occupation = *input.Occupation
	}
	if input.AnnualIncome != nil {
		p.AnnualIncome = *input.AnnualIncome
	}
	if input.CasteCategory != nil {
		p.CasteCategory = *input.CasteCategory
	}
	if input.IsBPL != nil {
		p.IsBPL = *input.IsBPL
	}
	if input.IsDisabled != nil {
		p.IsDisabled = *input.IsDisabled
	}
	if input.EducationLevel != nil {
		p.EducationLevel = *input.EducationLevel
	}

	if err := s.Repos.User.SaveUser(&usr); err != nil {
		return user.User{}, err
	}
	return usr, nil
}

func (s *UserService) ChangePassword(id uint, input user.ChangePasswordInput) error {
	usr, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(input.OldPassword)); err != nil {
		return ErrIncorrectPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return ErrPasswordHashFailure
	}
	usr.Password = string(hashed)

	return s.Repos.User.SaveUser(&usr)
}
