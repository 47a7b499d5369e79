package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/healeasy/healeasy-api/models"
)

// AdminService serves the admin user directory: paginated listing, role
// filter, substring search, and guarded deletion.
type AdminService struct {
	db *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

func (s *AdminService) ListUsers(req PageRequest) (PageResult[models.User], error) {
	return s.pageUsers(s.db.Model(&models.User{}), req)
}

func (s *AdminService) ListUsersByRole(role string, req PageRequest) (PageResult[models.User], error) {
	parsed, ok := models.ParseUserRole(strings.ToUpper(role))
	if !ok {
		return PageResult[models.User]{}, ErrInvalidRole
	}
	return s.pageUsers(s.db.Model(&models.User{}).Where("role = ?", parsed), req)
}

// SearchUsers matches the term case-insensitively against username, email and
// phone number.
func (s *AdminService) SearchUsers(term string, req PageRequest) (PageResult[models.User], error) {
	pattern := "%" + strings.ToLower(term) + "%"
	query := s.db.Model(&models.User{}).Where(
		"LOWER(user_name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(phone_number) LIKE ?",
		pattern, pattern, pattern,
	)
	return s.pageUsers(query, req)
}

func (s *AdminService) GetUserByID(userID uint) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	user.Password = ""
	return &user, nil
}

// DeleteUser removes a user and their role-specific extension. Deleting the
// sole remaining admin is refused.
func (s *AdminService) DeleteUser(userID uint) error {
	var user models.User
	err := s.db.First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return err
	}

	if user.Role == models.RoleAdmin {
		var admins int64
		if err := s.db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&admins).Error; err != nil {
			return err
		}
		if admins <= 1 {
			return ErrLastAdmin
		}
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", userID).Delete(&models.Doctor{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id = ?", userID).Delete(&models.Patient{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, userID).Error
	})
}

// UpdateAdminPassword changes an admin's password after verifying the old one.
func (s *AdminService) UpdateAdminPassword(adminID uint, oldPassword, newPassword string) error {
	var user models.User
	err := s.db.First(&user, adminID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return err
	}

	if user.Role != models.RoleAdmin {
		return ErrNotAdmin
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)) != nil {
		return ErrInvalidOldPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)
	return s.db.Save(&user).Error
}

func (s *AdminService) pageUsers(query *gorm.DB, req PageRequest) (PageResult[models.User], error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return PageResult[models.User]{}, err
	}

	var users []models.User
	err := query.
		Order(req.order()).
		Limit(req.limit()).
		Offset(req.offset()).
		Find(&users).Error
	if err != nil {
		return PageResult[models.User]{}, err
	}

	// Don't leak password hashes through the directory
	for i := range users {
		users[i].Password = ""
	}

	return newPageResult(users, total, req), nil
}
