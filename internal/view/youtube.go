package view

import "regexp"

// The four URL shapes the program links use: watch, shorts, youtu.be, embed.
var youtubePatterns = []*regexp.Regexp{
	regexp.MustCompile(`youtube\.com/watch\?v=([^&]+)`),
	regexp.MustCompile(`youtube\.com/shorts/([^?]+)`),
	regexp.MustCompile(`youtu\.be/([^?]+)`),
	regexp.MustCompile(`youtube\.com/embed/([^?]+)`),
}

// ExtractYouTubeID pulls the video ID out of a YouTube URL, or returns ""
// when the URL doesn't match a known shape (the card then falls back to a
// plain link).
func ExtractYouTubeID(url string) string {
	for _, p := range youtubePatterns {
		if m := p.FindStringSubmatch(url); m != nil {
			return m[1]
		}
	}
	return ""
}
