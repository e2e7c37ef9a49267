package service

import "service_alerts/internal/domain"

const cityHashtag = "#CapeTown"

var serviceAreaHashtags = map[string]string{
	"Water & Sanitation":         "#WaterAndSanitation",
	"Electricity":                "#Electricity",
	"Refuse":                     "#Refuse",
	"Drivers Licence Enquiries":  "#DLE",
	"Motor Vehicle Registration": "#MVR",
	"Water Management":           "#MeterManagement",
	"Events":                     "#Events",
	"City Health":                "#CityHealth",
}

// Toot appends the service area and city hashtags to the drafted tweet.
// Service areas without a hashtag only get the city tag.
func Toot(alert domain.Alert) *string {
	if alert.TweetText == nil {
		return nil
	}
	tags := cityHashtag
	if tag, ok := serviceAreaHashtags[alert.ServiceArea]; ok {
		tags = tag + " " + cityHashtag
	}
	toot := *alert.TweetText + "\n" + tags
	return &toot
}
