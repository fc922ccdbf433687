package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Vendor is a kitchen partner account. Vendor logins authenticate against this
// table; the console collapses every vendor account onto the VENDOR_ADMIN role.
type Vendor struct {
	VendorID     uuid.UUID      `gorm:"column:vendor_id;type:uuid;primaryKey" json:"vendor_id"`
	Name         string         `gorm:"column:name;not null" json:"name"`
	Email        string         `gorm:"column:email;not null;uniqueIndex" json:"email"`
	Phone        string         `gorm:"column:phone" json:"phone"`
	PasswordHash string         `gorm:"column:password_hash;not null" json:"-"`
	Cuisine      string         `gorm:"column:cuisine" json:"cuisine"`
	// No column default: a default tag makes GORM drop a false value on
	// Create, silently activating vendors provisioned inactive.
	Active       bool           `gorm:"column:active;not null" json:"active"`
	Settings     datatypes.JSON `gorm:"column:settings;type:jsonb" json:"settings"` // delivery windows, kitchen capacity, holiday calendar
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Vendor) TableName() string {
	return "Vendors"
}

// BeforeCreate sets the UUID if not set (for DBs without gen_random_uuid).
func (v *Vendor) BeforeCreate(tx *gorm.DB) error {
	if v.VendorID == uuid.Nil {
		v.VendorID = uuid.New()
	}
	return nil
}
