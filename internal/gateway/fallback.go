package gateway

import "strings"

// Deterministic offline stubs. Every function here is pure: the same input
// always yields the same output, so stub-mode behavior is fully testable.

var fallbackContent = map[string]string{
	"linkedin":  "As a professional in this field, I wanted to share some insights that might benefit our network. The key to successful outcomes often lies in strategic planning and consistent execution. Have you found similar patterns in your experiences? #ProfessionalDevelopment #StrategicGrowth",
	"twitter":   "Just discovered an amazing productivity hack that saved me hours this week! Anyone else trying new approaches to streamline their workflow? #Productivity #WorkSmarter",
	"instagram": "Enjoying the process is just as important as reaching the destination. Today's journey reminded me why I started this path in the first place. ✨ #JourneyNotDestination #Growth",
	"facebook":  "I'm excited to announce a new milestone in my professional journey! The support from this community has been incredible, and I'm grateful for all the connections that have helped me along the way. What are you celebrating this week?",
}

var fallbackHashtags = map[string][]string{
	"linkedin":  {"#ProfessionalGrowth", "#Leadership", "#Innovation"},
	"twitter":   {"#TuesdayThoughts", "#GrowthMindset", "#Success"},
	"instagram": {"#Motivation", "#Inspiration", "#LifeGoals"},
	"facebook":  {"#Community", "#Celebration", "#Milestone"},
}

var fallbackRepurposed = map[string]string{
	"linkedin":  "I wanted to share some professional insights from my recent work that might benefit our network. Looking forward to your thoughts on this approach! #ProfessionalDevelopment",
	"twitter":   "Just tried a new approach to solving this challenge. Game-changer! Anyone else experimenting with similar solutions? #Innovation",
	"instagram": "Behind the scenes of my latest project. Some journeys are worth documenting, and this is definitely one of them. ✨ #BehindTheScenes",
	"facebook":  "Excited to share some updates from my recent work. The response has been incredible and I'm grateful for all the support from this amazing community!",
}

// FallbackContent returns the canned post for a platform and post type.
func FallbackContent(platform, postType string) ContentResult {
	title := "My Journey This Week"
	if postType == "educational" {
		title = "Insights Worth Sharing"
	}
	return ContentResult{
		Content:  fallbackContent[platform],
		Platform: platform,
		Title:    title,
		Hashtags: fallbackHashtags[platform],
	}
}

// FallbackRepurpose returns one canned adaptation per platform, preserving
// input order.
func FallbackRepurpose(targetPlatforms []string) []RepurposedContent {
	results := make([]RepurposedContent, len(targetPlatforms))
	for i, platform := range targetPlatforms {
		results[i] = RepurposedContent{Platform: platform, Content: fallbackRepurposed[platform]}
	}
	return results
}

// defaultPillars backfill the suggested list when the substring heuristics
// produce fewer than four entries.
var defaultPillars = []Pillar{
	{Name: "Leadership & Innovation", Icon: "lightbulb", Percentage: 85},
	{Name: "Industry Insights", Icon: "barChart", Percentage: 75},
	{Name: "Personal Journey", Icon: "rocket", Percentage: 65},
	{Name: "Career Growth", Icon: "trendingUp", Percentage: 60},
	{Name: "Community Building", Icon: "heart", Percentage: 55},
	{Name: "Achievement Showcase", Icon: "award", Percentage: 50},
}

// FallbackVoiceAnalysis derives sliders and pillars from fixed substring
// checks over the samples. Always returns between 4 and 6 pillars with no
// duplicate names.
func FallbackVoiceAnalysis(samples []string) VoiceAnalysis {
	anyContains := func(subs ...string) bool {
		for _, sample := range samples {
			for _, sub := range subs {
				if strings.Contains(sample, sub) {
					return true
				}
			}
		}
		return false
	}

	analysis := VoiceAnalysis{
		FormalToCasual:          40,
		TechnicalToAccessible:   75,
		ReservedToEnthusiastic:  55,
		TraditionalToInnovative: 60,
	}
	if anyContains("excited", "love") {
		analysis.FormalToCasual = 65
	}
	if anyContains("framework", "feature") {
		analysis.TechnicalToAccessible = 60
	}
	if anyContains("excited") {
		analysis.ReservedToEnthusiastic = 80
	}
	if anyContains("new", "game-changing") {
		analysis.TraditionalToInnovative = 85
	}

	var pillars []Pillar
	if anyContains("productivity", "framework", "feature") {
		pillars = append(pillars, Pillar{Name: "Product & Innovation", Icon: "lightbulb", Percentage: 82})
	}
	if anyContains("team", "collaborate") {
		pillars = append(pillars, Pillar{Name: "Leadership & Teamwork", Icon: "users", Percentage: 72})
	}
	if anyContains("shipped", "users") {
		pillars = append(pillars, Pillar{Name: "Product Updates", Icon: "rocket", Percentage: 77})
	}
	if anyContains("productivity", "boost") {
		pillars = append(pillars, Pillar{Name: "Growth Strategies", Icon: "trendingUp", Percentage: 67})
	}
	if anyContains("excited", "love") {
		pillars = append(pillars, Pillar{Name: "Customer Success", Icon: "heart", Percentage: 62})
	}
	if anyContains("game-changing", "new") {
		pillars = append(pillars, Pillar{Name: "Industry Insights", Icon: "barChart", Percentage: 72})
	}

	// Backfill from the defaults until at least 4 pillars, never duplicating
	// a name, then cap at 6.
	for _, candidate := range defaultPillars {
		if len(pillars) >= 4 {
			break
		}
		duplicate := false
		for _, p := range pillars {
			if p.Name == candidate.Name {
				duplicate = true
				break
			}
		}
		if !duplicate {
			pillars = append(pillars, candidate)
		}
	}
	if len(pillars) > 6 {
		pillars = pillars[:6]
	}

	analysis.SuggestedPillars = pillars
	return analysis
}
