package userControllers

import (
	"errors"
	"log"

	"github.com/AndyJai0908/ierg4210-project/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// EnsureAdminUser makes sure an admin account exists for the given
// credentials. Fresh databases have no users and registration never
// grants admin, so without this the admin panel is unreachable. The
// call is idempotent: an existing account keeps its password and is
// promoted to admin if it is not one already.
func EnsureAdminUser(db *gorm.DB, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	var user models.User
	err := db.Where("email = ?", email).First(&user).Error
	if err == nil {
		if user.IsAdmin {
			return nil
		}
		log.Printf("promoting existing user %s to admin", email)
		return db.Model(&user).Update("is_admin", true).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	log.Printf("seeding admin user %s", email)
	return db.Create(&models.User{
		Email:    email,
		Password: string(hashed),
		IsAdmin:  true,
	}).Error
}
