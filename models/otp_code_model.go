package models

import (
	"time"

	"github.com/google/uuid"
)

type OTPPurpose string

const (
	OTPPurposeVerify OTPPurpose = "verify"
	OTPPurposeReset  OTPPurpose = "reset"
)

const (
	// OTPLifetime is how long a code stays redeemable after issuance.
	OTPLifetime = 5 * time.Minute
	// OTPThrottleWindow is the minimum gap between two issuances for the
	// same user and purpose.
	OTPThrottleWindow = 60 * time.Second
)

type OTPCode struct {
	ID      uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID  uuid.UUID  `gorm:"type:uuid;not null;index:idx_otp_user_purpose" json:"user_id"`
	User    User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"-"`
	Code    string     `gorm:"size:6;not null" json:"-"`
	Purpose OTPPurpose `gorm:"size:10;not null;index:idx_otp_user_purpose" json:"purpose"`
	IsUsed  bool       `gorm:"default:false" json:"is_used"`

	CreatedAt time.Time `json:"created_at"`
}

func (o *OTPCode) Expired() bool {
	return time.Since(o.CreatedAt) >= OTPLifetime
}

// Redeemable reports whether the code can still be consumed.
func (o *OTPCode) Redeemable() bool {
	return !o.IsUsed && !o.Expired()
}
