package models

import (
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User represents an administrative account. Back-office access additionally
// requires the email to match the organizational allowlist, see utils.IsAdminEmail.
type User struct {
	ID        int64     `gorm:"primaryKey;column:id" json:"id"`
	Email     string    `gorm:"size:255;not null;unique;index;column:email" json:"email"`
	Password  string    `gorm:"size:255;not null;column:password" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// SeedAdminUser inserts the initial admin account when ADMIN_EMAIL and
// ADMIN_PASSWORD are set and no account with that email exists yet.
func SeedAdminUser(db *gorm.DB) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		admin := User{Email: email, Password: string(hashed)}
		return tx.Where(User{Email: email}).FirstOrCreate(&admin).Error
	})
}
