package substack

// Post is one normalized article ready for display.
type Post struct {
	Title    string
	Subtitle string
	Date     string
	URL      string
	BodyHTML string
	Free     bool
}
