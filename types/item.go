package types

import "time"

// Item type values.
const (
	ItemTypeLost  = "lost"
	ItemTypeFound = "found"
)

// Item status values.
const (
	ItemStatusOpen    = "open"
	ItemStatusClaimed = "claimed"
	ItemStatusClosed  = "closed"
)

// ValidItemType reports whether t is a known item type.
func ValidItemType(t string) bool {
	return t == ItemTypeLost || t == ItemTypeFound
}

// ValidItemStatus reports whether s is a known item status.
func ValidItemStatus(s string) bool {
	return s == ItemStatusOpen || s == ItemStatusClaimed || s == ItemStatusClosed
}

// Item represents a lost or found report.
type Item struct {
	// ID is the opaque unique identifier of the item, assigned at creation.
	ID string `json:"id" db:"id"`

	// Type is either "lost" or "found".
	Type string `json:"type" db:"type"`

	// Status is one of "open", "claimed", or "closed". New items start open.
	Status string `json:"status" db:"status"`

	// Title is a short summary of the item.
	Title string `json:"title" db:"title"`

	// Description is the free-text description of the item.
	Description string `json:"description" db:"description"`

	// Category is a free-text category label (e.g. "electronics").
	Category string `json:"category" db:"category"`

	// Location is where the item was lost or found.
	Location string `json:"location" db:"location"`

	// Date is the event date the item was lost or found,
	// distinct from the record timestamps below.
	Date time.Time `json:"date" db:"date"`

	// ContactName is the reporter's contact name.
	ContactName string `json:"contactName" db:"contact_name"`

	// ContactPhone is the reporter's contact phone number.
	ContactPhone string `json:"contactPhone" db:"contact_phone"`

	// ContactEmail is the reporter's contact email address.
	ContactEmail string `json:"contactEmail" db:"contact_email"`

	// ContactTelegram is an optional Telegram handle.
	ContactTelegram string `json:"contactTelegram,omitempty" db:"contact_telegram"`

	// ImageURL optionally references an image of the item,
	// either an external URL or inline data.
	ImageURL string `json:"imageUrl,omitempty" db:"image_url"`

	// UserID is the id of the owning user. It is set from the
	// authenticated caller at creation and never changes afterwards.
	UserID string `json:"userId" db:"user_id"`

	// CreatedAt is the server-assigned creation timestamp.
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	// UpdatedAt is the server-assigned timestamp of the last update.
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
