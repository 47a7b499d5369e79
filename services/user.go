package services

import (
	"errors"
	"mime/multipart"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/healeasy/healeasy-api/models"
)

// UserRegistrationRequest carries a patient's self-registration.
type UserRegistrationRequest struct {
	Username    string `json:"username" validate:"required,min=3"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phone_number" validate:"required"`
	Password    string `json:"password" validate:"required,min=8"`

	ProfileImage *multipart.FileHeader `json:"-"`
}

// UserService handles patient registration and account self-service.
type UserService struct {
	db       *gorm.DB
	uploader Uploader
}

func NewUserService(db *gorm.DB, uploader Uploader) *UserService {
	return &UserService{db: db, uploader: uploader}
}

// Register creates a PATIENT user and its patient extension record. A profile
// image is optional; without one the default avatar is used.
func (s *UserService) Register(req *UserRegistrationRequest) (*models.User, error) {
	var exists int64
	if err := s.db.Model(&models.User{}).Where("email = ?", req.Email).Count(&exists).Error; err != nil {
		return nil, err
	}
	if exists > 0 {
		return nil, ErrEmailExists
	}
	if err := s.db.Model(&models.User{}).Where("phone_number = ?", req.PhoneNumber).Count(&exists).Error; err != nil {
		return nil, err
	}
	if exists > 0 {
		return nil, ErrPhoneExists
	}

	imageURL := models.DefaultAvatarURL
	if req.ProfileImage != nil {
		url, err := s.uploader.UploadImage(req.ProfileImage)
		if err != nil {
			return nil, err
		}
		imageURL = url
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:        req.Username,
		Email:           req.Email,
		PhoneNumber:     req.PhoneNumber,
		Password:        string(hashed),
		ProfileImageURL: imageURL,
		Role:            models.RolePatient,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		patient := models.Patient{ID: user.ID, ActiveStatus: true}
		return tx.Create(&patient).Error
	})
	if err != nil {
		return nil, err
	}

	user.Password = ""
	return &user, nil
}

// Login verifies the credentials and returns the user. The identifier matches
// either username or email.
func (s *UserService) Login(usernameOrEmail, password string) (*models.User, error) {
	var user models.User
	err := s.db.
		Where("user_name = ? OR email = ?", usernameOrEmail, usernameOrEmail).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// UpdateProfile applies the provided fields. A new profile image replaces the
// old Cloudinary asset.
func (s *UserService) UpdateProfile(userID uint, username, email string, image *multipart.FileHeader) (*models.User, error) {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	if username != "" {
		user.Username = username
	}
	if email != "" {
		user.Email = email
	}

	if image != nil {
		if strings.Contains(user.ProfileImageURL, "cloudinary") {
			if err := s.uploader.DeleteImage(publicIDFromURL(user.ProfileImageURL)); err != nil {
				return nil, err
			}
		}
		url, err := s.uploader.UploadImage(image)
		if err != nil {
			return nil, err
		}
		user.ProfileImageURL = url
	}

	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}
	user.Password = ""
	return user, nil
}

// UpdatePassword changes the password after verifying the old one.
func (s *UserService) UpdatePassword(userID uint, oldPassword, newPassword string) error {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)) != nil {
		return ErrInvalidOldPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)
	return s.db.Save(user).Error
}

func (s *UserService) GetUserRole(userID uint) (models.UserRole, error) {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return "", err
	}
	return user.Role, nil
}

func (s *UserService) GetUserByID(userID uint) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// publicIDFromURL recovers the Cloudinary public ID from an asset URL.
func publicIDFromURL(url string) string {
	name := url[strings.LastIndex(url, "/")+1:]
	if i := strings.Index(name, "."); i >= 0 {
		name = name[:i]
	}
	return name
}
