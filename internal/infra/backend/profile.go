package backend

import (
	"time"

	"farmhub/internal/domain/entity"
)

// demoProfile returns the account behind the demonstration identity.
// Every simulated login resolves to this profile.
func demoProfile() *entity.User {
	return &entity.User{
		ID:           "1",
		Username:     "john_farmer",
		Email:        "john@example.com",
		FirstName:    "John",
		LastName:     "Smith",
		Bio:          "Organic farmer with 15 years of experience",
		Location:     "California, USA",
		Website:      "https://johnsfarm.com",
		Phone:        "+1 (555) 123-4567",
		ProfileImage: "https://images.pexels.com/photos/1222271/pexels-photo-1222271.jpeg",
		Role:         entity.RoleFarmer,
		IsVerified:   true,
		CreatedAt:    time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC),
		LastLogin:    time.Date(2024, time.January, 20, 10, 30, 0, 0, time.UTC),
		SocialLinks: entity.SocialLinks{
			Facebook:  "https://facebook.com/johnsfarm",
			Twitter:   "https://twitter.com/johnsfarm",
			Instagram: "https://instagram.com/johnsfarm",
		},
		Preferences: entity.UserPreferences{
			Theme:    entity.ThemeLight,
			Language: "en",
			Notifications: entity.NotificationPreferences{
				Email:        true,
				Push:         true,
				SMS:          false,
				Marketing:    true,
				OrderUpdates: true,
				PriceAlerts:  true,
			},
			Privacy: entity.PrivacyPreferences{
				ProfileVisibility: "public",
				ShowEmail:         false,
				ShowPhone:         false,
				ShowLocation:      true,
			},
			Customization: entity.Customization{
				AccentColor:       entity.DefaultAccentColor,
				FontSize:          entity.DefaultFontSize,
				BackgroundOpacity: entity.DefaultBackgroundOpacity,
				BackgroundBlur:    entity.DefaultBackgroundBlur,
			},
		},
		Stats: entity.UserStats{
			TotalOrders:  45,
			TotalSales:   128,
			TotalSpent:   12450.00,
			TotalEarned:  28900.00,
			JoinDate:     time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC),
			LastActivity: time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC),
		},
	}
}
