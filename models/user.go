package models

import "time"

type User struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"unique;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Phone        string    `json:"phone,omitempty"`
	Name         string    `json:"name"`
	Address      Address   `gorm:"embedded" json:"address"`
	Orders       []Order   `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"orders,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Address model embedded in User
type Address struct {
	Country    string `json:"country"`
	State      string `json:"state"`
	City       string `json:"city"`
	Street     string `json:"street"`
	PostalCode string `json:"postal_code"`
}

// Location flattens the address for order snapshots.
func (a Address) Location() string {
	parts := ""
	for _, p := range []string{a.Street, a.City, a.State, a.Country} {
		if p == "" {
			continue
		}
		if parts != "" {
			parts += ", "
		}
		parts += p
	}
	return parts
}
