// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the core entity in the system, representing a marketplace account.
// A user holds exactly one role and carries their preferences inline rather
// than behind a separate profile lookup.
type User struct {
	ID           string          `json:"id"`           // Unique identifier for the user.
	Username     string          `json:"username"`     // Public handle shown across the marketplace.
	Email        string          `json:"email"`        // Primary contact email, used as the login identifier.
	FirstName    string          `json:"firstName"`    // The user's given name.
	LastName     string          `json:"lastName"`     // The user's family name.
	Bio          string          `json:"bio"`          // Free-form self description shown on the profile page.
	Location     string          `json:"location"`     // Human-readable location, e.g. "California, USA".
	Website      string          `json:"website"`      // Optional personal or farm website.
	Phone        string          `json:"phone"`        // Optional contact phone number.
	ProfileImage string          `json:"profileImage"` // URL of the profile picture.
	Role         Role            `json:"role"`         // The user's marketplace role.
	IsVerified   bool            `json:"isVerified"`   // Whether the account passed identity verification.
	CreatedAt    time.Time       `json:"createdAt"`    // Timestamp of when this account was created.
	LastLogin    time.Time       `json:"lastLogin"`    // Timestamp of the most recent successful login.
	SocialLinks  SocialLinks     `json:"socialLinks"`  // External social profiles, all optional.
	Preferences  UserPreferences `json:"preferences"`  // The user's preference document.
	Stats        UserStats       `json:"stats"`        // Aggregated marketplace activity.
}

// SocialLinks groups the optional external profile URLs a user can expose.
type SocialLinks struct {
	Facebook  string `json:"facebook"`
	Twitter   string `json:"twitter"`
	Instagram string `json:"instagram"`
	LinkedIn  string `json:"linkedin"`
}

// UserStats aggregates a user's marketplace activity for display on the profile.
type UserStats struct {
	TotalOrders  int       `json:"totalOrders"`
	TotalSales   int       `json:"totalSales"`
	TotalSpent   float64   `json:"totalSpent"`
	TotalEarned  float64   `json:"totalEarned"`
	JoinDate     time.Time `json:"joinDate"`
	LastActivity time.Time `json:"lastActivity"`
}

// Clone returns a deep copy of the user. Preferences contain a nested
// pointer, so a plain struct copy would alias the background schedule.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}

	clone := *u
	clone.Preferences = u.Preferences.Clone()

	return &clone
}

// UserPatch describes a partial update to a user. Nil fields are left
// untouched; a non-nil Preferences replaces the whole preference document.
type UserPatch struct {
	Username     *string
	Email        *string
	FirstName    *string
	LastName     *string
	Bio          *string
	Location     *string
	Website      *string
	Phone        *string
	ProfileImage *string
	SocialLinks  *SocialLinks
	Preferences  *UserPreferences
}

// ApplyTo writes the patch's non-nil fields onto the target user.
func (p UserPatch) ApplyTo(u *User) {
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.Bio != nil {
		u.Bio = *p.Bio
	}
	if p.Location != nil {
		u.Location = *p.Location
	}
	if p.Website != nil {
		u.Website = *p.Website
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.ProfileImage != nil {
		u.ProfileImage = *p.ProfileImage
	}
	if p.SocialLinks != nil {
		u.SocialLinks = *p.SocialLinks
	}
	if p.Preferences != nil {
		u.Preferences = p.Preferences.Clone()
	}
}
