// Package article holds the tracked article catalog and the staleness
// evaluation that decides whether a piece of content needs a refresh.
package article

import (
	"sort"
	"time"
)

// DateLayout is the wire format for freshness dates. No time component:
// an article is dated by calendar day.
const DateLayout = "2006-01-02"

// Dates maps article title to freshness date (DateLayout). The title is
// the primary key; articles are never deleted, and the date is only
// rewritten when a draft for the title is approved.
type Dates map[string]string

// Titles returns the article titles in stable sorted order, used to
// populate the selector.
func (d Dates) Titles() []string {
	titles := make([]string, 0, len(d))
	for title := range d {
		titles = append(titles, title)
	}
	sort.Strings(titles)
	return titles
}

// Clone returns an independent copy.
func (d Dates) Clone() Dates {
	out := make(Dates, len(d))
	for title, date := range d {
		out[title] = date
	}
	return out
}

// ParseDate parses a freshness date in the wire format.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// Seed returns the built-in article set used when no persisted catalog
// exists yet. The mix deliberately includes content on both sides of
// the staleness threshold.
func Seed() Dates {
	return Dates{
		"Getting Started with the Dashboard":             "2025-06-12",
		"Setting Up Goal Tracking":                       "2023-01-15",
		"Understanding Heatmaps and Recordings":          "2024-11-20",
		"A/B Testing Best Practices Guide (Legacy)":      "2022-05-10",
		"What is A/B Testing?":                           "2021-05-10",
		"Working with Funnels":                           "2020-04-01",
		"Interpreting Funnel Reports":                    "2021-04-06",
		"How to Track Clicks on a Page Element":          "2023-09-15",
		"Installing the Tracking Snippet":                "2025-08-01",
		"Visitor Counting Logic":                         "2025-11-17",
		"Implementing Sitewide JavaScript":               "2025-08-04",
		"Creating Campaigns with the Assistant":          "2025-10-06",
		"Types of Conversion Goals":                      "2023-09-13",
		"Creating a Personalization Campaign":            "2025-09-11",
		"Rollout Quota FAQs":                             "2023-11-16",
		"Benefits of Migrating to the New Data Platform": "2025-08-04",
		"Setting Up Feature Experimentation Rules":       "2025-10-14",
		"Connecting the Shopify Integration":             "2025-07-18",
		"How to Create a Goal in Insights":               "2025-07-22",
		"Applying Learnings to A/B Tests":                "2025-11-20",
		"Supported SDKs for Feature Experimentation":     "2025-08-27",
		"Navigating the Campaigns Overview":              "2025-10-17",
		"What is Your Site Experience Score?":            "2024-12-12",
		"How to Create a Split URL Test":                 "2025-11-03",
		"Using the Insights Goals Dashboard":             "2023-08-01",
		"Creating Segments with Query Parameters":        "2022-10-10",
	}
}
