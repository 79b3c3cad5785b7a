package substack

import (
	"strings"

	"github.com/tidwall/gjson"
)

const freeAudience = "everyone"

// ParsePosts extracts posts from a posts API payload. The payload may be a bare
// array of post objects or an object holding them under "posts". Malformed
// payloads yield no posts; malformed records are skipped.
func ParsePosts(data []byte, baseURL string) []Post {
	posts, _ := parsePosts(data, baseURL)
	return posts
}

// parsePosts also reports how many records were dropped.
func parsePosts(data []byte, baseURL string) ([]Post, int) {
	if !gjson.ValidBytes(data) {
		return nil, 0
	}
	records := postRecords(gjson.ParseBytes(data))
	posts := make([]Post, 0, len(records))
	dropped := 0
	for _, rec := range records {
		post, ok := postFromRecord(rec, baseURL)
		if !ok {
			dropped++
			continue
		}
		posts = append(posts, post)
	}
	return posts, dropped
}

func postRecords(root gjson.Result) []gjson.Result {
	if root.IsArray() {
		return root.Array()
	}
	if !root.IsObject() {
		return nil
	}
	inner := root.Get("posts")
	if !inner.IsArray() {
		return nil
	}
	return inner.Array()
}

func postFromRecord(rec gjson.Result, baseURL string) (Post, bool) {
	if !rec.IsObject() {
		return Post{}, false
	}
	fields := recordFields(rec)
	title, ok := stringField(fields, "title")
	if !ok || strings.TrimSpace(title) == "" {
		return Post{}, false
	}
	subtitle, _ := stringField(fields, "subtitle")
	rawDate, _ := stringField(fields, "post_date")
	slug, _ := stringField(fields, "slug")
	body, _ := stringField(fields, "body_html")
	audience, _ := stringField(fields, "audience")

	return Post{
		Title:    title,
		Subtitle: subtitle,
		Date:     postDate(rawDate),
		URL:      PostURL(baseURL, slug),
		BodyHTML: body,
		Free:     audience == freeAudience,
	}, true
}

// recordFields indexes the members of a post object. A repeated key keeps its
// last value.
func recordFields(rec gjson.Result) map[string]gjson.Result {
	fields := make(map[string]gjson.Result)
	rec.ForEach(func(k, v gjson.Result) bool {
		fields[k.String()] = v
		return true
	})
	return fields
}

// stringField reads a scalar field. Missing, null and structured values are
// reported as absent.
func stringField(fields map[string]gjson.Result, name string) (string, bool) {
	v, ok := fields[name]
	if !ok {
		return "", false
	}
	switch v.Type {
	case gjson.String:
		return v.Str, true
	case gjson.Number, gjson.True, gjson.False:
		return v.Raw, true
	default:
		return "", false
	}
}

func postDate(raw string) string {
	runes := []rune(raw)
	if len(runes) < 10 {
		return ""
	}
	return string(runes[:10])
}

// PostURL builds the public article URL for a slug.
func PostURL(baseURL, slug string) string {
	return strings.TrimRight(baseURL, "/") + "/p/" + slug
}
