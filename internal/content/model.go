package content

type Testimonial struct {
	ID       int    `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Location string `json:"location" yaml:"location"`
	Text     string `json:"text" yaml:"text"`
	Image    string `json:"image" yaml:"image"`
}

type Post struct {
	ID      int    `json:"id" yaml:"id"`
	Title   string `json:"title" yaml:"title"`
	Excerpt string `json:"excerpt" yaml:"excerpt"`
	Image   string `json:"image" yaml:"image"`
	Date    string `json:"date" yaml:"date"`
	Author  string `json:"author" yaml:"author"`
}

// Content is the static copy served alongside the catalog.
type Content struct {
	Testimonials []Testimonial `yaml:"testimonials"`
	Posts        []Post        `yaml:"posts"`
}
