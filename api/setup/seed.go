package setup

import (
	"github.com/sociable/sociableapi/api/game"
	"github.com/sociable/sociableapi/api/group"
	"github.com/sociable/sociableapi/api/page"
	"github.com/sociable/sociableapi/api/post"
	"github.com/sociable/sociableapi/api/user"
	"github.com/sociable/sociableapi/shared/zaplogger"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// seedPassword is the demo-account password
const seedPassword = "password123"

// Seed inserts the demo content. It is idempotent: a non-empty users
// table means a previous seed (or live traffic) exists, and nothing is
// written.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&user.UserModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	zaplogger.Info("  * seeding demo content")

	hashed, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	sampleUsers := []user.UserModel{
		{
			Username:     "johndoe",
			Email:        "john@example.com",
			Password:     string(hashed),
			FirstName:    "John",
			LastName:     "Doe",
			Bio:          "Software Developer | Photography Enthusiast | Adventure Seeker",
			ProfilePhoto: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=100&h=100&fit=crop&crop=face",
			Location:     "New York, NY",
			Work:         "Software Developer at TechCorp",
		},
		{
			Username:     "sarahjohnson",
			Email:        "sarah@example.com",
			Password:     string(hashed),
			FirstName:    "Sarah",
			LastName:     "Johnson",
			Bio:          "Hiking enthusiast and nature lover",
			ProfilePhoto: "https://images.unsplash.com/photo-1494790108755-2616b612b550?w=100&h=100&fit=crop&crop=face",
			Location:     "Seattle, WA",
			Work:         "Nature Photographer",
		},
		{
			Username:     "mikechen",
			Email:        "mike@example.com",
			Password:     string(hashed),
			FirstName:    "Mike",
			LastName:     "Chen",
			Bio:          "Team player and success driven",
			ProfilePhoto: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=100&h=100&fit=crop&crop=face",
			Location:     "San Francisco, CA",
			Work:         "Product Manager",
		},
	}
	if err := db.Create(&sampleUsers).Error; err != nil {
		return err
	}

	john, sarah, mike := sampleUsers[0], sampleUsers[1], sampleUsers[2]

	sampleGroups := []group.GroupModel{
		{
			Name:         "Photography Enthusiasts",
			Description:  "Share your best shots and learn from fellow photographers",
			CoverPhoto:   "https://images.unsplash.com/photo-1517486808906-6ca8b3f04846?w=400&h=200&fit=crop",
			CreatedBy:    john.ID,
			MembersCount: 1245,
		},
		{
			Name:         "Tech Innovators",
			Description:  "Discussing the latest in technology and innovation",
			CoverPhoto:   "https://images.unsplash.com/photo-1518709268805-4e9042af2176?w=400&h=200&fit=crop",
			CreatedBy:    mike.ID,
			MembersCount: 892,
		},
		{
			Name:         "Nature Lovers",
			Description:  "Connecting outdoor enthusiasts and nature photographers",
			CoverPhoto:   "https://images.unsplash.com/photo-1441974231531-c6227db76b6e?w=400&h=200&fit=crop",
			CreatedBy:    sarah.ID,
			MembersCount: 2156,
		},
		{
			Name:         "Digital Creators Hub",
			Description:  "A community for digital artists, designers, and content creators",
			CoverPhoto:   "https://images.unsplash.com/photo-1513475382585-d06e58bcb0e0?w=400&h=200&fit=crop",
			CreatedBy:    john.ID,
			MembersCount: 1567,
		},
	}
	if err := db.Create(&sampleGroups).Error; err != nil {
		return err
	}

	samplePages := []page.PageModel{
		{
			Name:           "TechNews Daily",
			Description:    "Your daily dose of technology news and updates",
			Category:       "business",
			CoverPhoto:     "https://images.unsplash.com/photo-1519389950473-47ba0277781c?w=400&h=200&fit=crop",
			ProfilePhoto:   "https://images.unsplash.com/photo-1519389950473-47ba0277781c?w=100&h=100&fit=crop",
			CreatedBy:      mike.ID,
			FollowersCount: 15420,
			IsVerified:     true,
		},
		{
			Name:           "Creative Studio Co.",
			Description:    "Professional design and creative services",
			Category:       "brand",
			CoverPhoto:     "https://images.unsplash.com/photo-1560472354-b33ff0c44a43?w=400&h=200&fit=crop",
			ProfilePhoto:   "https://images.unsplash.com/photo-1560472354-b33ff0c44a43?w=100&h=100&fit=crop",
			CreatedBy:      john.ID,
			FollowersCount: 8934,
			IsVerified:     true,
		},
		{
			Name:           "Adventure Seekers",
			Description:    "Explore the world's most amazing destinations",
			Category:       "community",
			CoverPhoto:     "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=400&h=200&fit=crop",
			ProfilePhoto:   "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=100&h=100&fit=crop",
			CreatedBy:      sarah.ID,
			FollowersCount: 23156,
		},
		{
			Name:           "Startup Valley",
			Description:    "Latest news and insights from the startup ecosystem",
			Category:       "business",
			CoverPhoto:     "https://images.unsplash.com/photo-1556740738-b6a63e27c4df?w=400&h=200&fit=crop",
			ProfilePhoto:   "https://images.unsplash.com/photo-1556740738-b6a63e27c4df?w=100&h=100&fit=crop",
			CreatedBy:      mike.ID,
			FollowersCount: 12867,
			IsVerified:     true,
		},
	}
	if err := db.Create(&samplePages).Error; err != nil {
		return err
	}

	sampleGames := []game.GameModel{
		{
			Name:         "Word Quest Challenge",
			Description:  "Test your vocabulary skills with this exciting word puzzle game",
			Category:     "puzzle",
			ThumbnailURL: "https://images.unsplash.com/photo-1606092195730-5d7b9af1efc5?w=400&h=300&fit=crop",
			PlayURL:      "/games/word-quest",
			PlayersCount: 45678,
			Rating:       4,
		},
		{
			Name:         "Math Master Pro",
			Description:  "Challenge your mathematical skills with increasingly difficult problems",
			Category:     "puzzle",
			ThumbnailURL: "https://images.unsplash.com/photo-1509228468518-180dd4864904?w=400&h=300&fit=crop",
			PlayURL:      "/games/math-master",
			PlayersCount: 23456,
			Rating:       5,
		},
		{
			Name:         "Memory Palace",
			Description:  "Enhance your memory with this brain training game",
			Category:     "casual",
			ThumbnailURL: "https://images.unsplash.com/photo-1606092195730-5d7b9af1efc5?w=400&h=300&fit=crop",
			PlayURL:      "/games/memory-palace",
			PlayersCount: 67890,
			Rating:       4,
		},
		{
			Name:         "Strategy Empire",
			Description:  "Build your empire and conquer the world in this strategic game",
			Category:     "strategy",
			ThumbnailURL: "https://images.unsplash.com/photo-1551698618-1dfe5d97d256?w=400&h=300&fit=crop",
			PlayURL:      "/games/strategy-empire",
			PlayersCount: 34567,
			Rating:       5,
		},
		{
			Name:         "Action Heroes",
			Description:  "Fast-paced action adventure game with multiple heroes",
			Category:     "action",
			ThumbnailURL: "https://images.unsplash.com/photo-1552820728-8b83bb6b773f?w=400&h=300&fit=crop",
			PlayURL:      "/games/action-heroes",
			PlayersCount: 89012,
			Rating:       4,
		},
	}
	if err := db.Create(&sampleGames).Error; err != nil {
		return err
	}

	samplePost := post.PostModel{
		UserID:     john.ID,
		Content:    "Just tried the new camera settings for street photography. The results are amazing! 📸",
		ImageURL:   "https://images.unsplash.com/photo-1517486808906-6ca8b3f04846?w=600&h=400&fit=crop",
		LikesCount: 42,
	}
	if err := db.Create(&samplePost).Error; err != nil {
		return err
	}

	return nil
}
