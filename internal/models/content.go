package models

import "html/template"

// Review is a customer testimonial shown on the home and reviews pages.
type Review struct {
	Source string `yaml:"source"`
	Title  string `yaml:"title"`
	Text   string `yaml:"text"`
	Author string `yaml:"author"`
}

// Policy is a rendered legal page.
type Policy struct {
	Slug  string
	Title string
	Body  template.HTML
}

// SocialLink is one entry on the social media page.
type SocialLink struct {
	Label  string
	Handle string
	URL    string
	QR     string
}
