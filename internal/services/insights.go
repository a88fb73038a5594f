package services

import (
	"encoding/json"
	"fmt"

	"github.com/amorgan/brandhub/internal/models"
	"gorm.io/datatypes"
)

// Per-platform baselines for the simulated analytics snapshot created when a
// platform is connected. Publishing is simulated, so the numbers are fixed
// per platform type rather than fetched from anywhere.
var baselineFollowers = map[string]int{
	models.PlatformLinkedIn:  2840,
	models.PlatformTwitter:   1253,
	models.PlatformInstagram: 5432,
	models.PlatformFacebook:  892,
}

var baselineEngagementRate = map[string]float64{
	models.PlatformLinkedIn:  4.7,
	models.PlatformTwitter:   2.1,
	models.PlatformInstagram: 6.3,
	models.PlatformFacebook:  3.4,
}

// MockAnalytics builds a deterministic analytics snapshot for a freshly
// connected platform. Same inputs, same snapshot.
func MockAnalytics(userID, platformID int, platformType string) models.Analytics {
	followers := baselineFollowers[platformType]
	rate := baselineEngagementRate[platformType]

	engagement := map[string]interface{}{
		"rate":     rate,
		"likes":    followers / 12,
		"comments": followers / 80,
		"shares":   followers / 150,
	}

	performance := []map[string]interface{}{
		{"title": "Top performing post", "impressions": followers * 3, "engagementRate": rate + 1.2},
		{"title": "Second best post", "impressions": followers * 2, "engagementRate": rate + 0.4},
		{"title": "Third best post", "impressions": followers, "engagementRate": rate - 0.6},
	}

	// Twelve weeks of growth, a fixed fraction of the baseline per week.
	trends := make([]map[string]interface{}, 0, 12)
	for week := 1; week <= 12; week++ {
		trends = append(trends, map[string]interface{}{
			"week":      fmt.Sprintf("W%d", week),
			"followers": followers - (12-week)*(followers/100),
		})
	}

	return models.Analytics{
		UserID:          userID,
		PlatformID:      platformID,
		Followers:       followers,
		Engagement:      mustJSON(engagement),
		PostPerformance: mustJSON(performance),
		GrowthTrends:    mustJSON(trends),
	}
}

func mustJSON(v interface{}) datatypes.JSON {
	b, err := json.Marshal(v)
	if err != nil {
		// Inputs above are plain maps and slices; this cannot fail.
		panic(err)
	}
	return datatypes.JSON(b)
}
