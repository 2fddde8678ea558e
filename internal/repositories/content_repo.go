package repositories

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"slices"
	"strings"

	"xestetik/internal/models"

	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"
)

var ErrPolicyNotFound = errors.New("policy not found")

// ContentRepository serves the static site copy: reviews and policy pages.
type ContentRepository interface {
	Reviews() []models.Review
	Policy(slug string) (*models.Policy, error)
	PolicySlugs() []string
}

type contentRepo struct {
	reviews  []models.Review
	policies map[string]*models.Policy
}

// NewContentRepository decodes reviews and renders every policies/*.md page
// once. Policy files start with a YAML front matter block holding the title.
func NewContentRepository(reviews []byte, policies fs.FS) (ContentRepository, error) {
	var file struct {
		Reviews []models.Review `yaml:"reviews"`
	}
	if err := yaml.Unmarshal(reviews, &file); err != nil {
		return nil, fmt.Errorf("failed to parse reviews: %w", err)
	}

	r := &contentRepo{
		reviews:  file.Reviews,
		policies: make(map[string]*models.Policy),
	}

	names, err := fs.Glob(policies, "policies/*.md")
	if err != nil {
		return nil, fmt.Errorf("failed to list policies: %w", err)
	}
	md := goldmark.New()
	for _, name := range names {
		raw, err := fs.ReadFile(policies, name)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
		policy, err := renderPolicy(md, raw)
		if err != nil {
			return nil, fmt.Errorf("policy %s: %w", name, err)
		}
		policy.Slug = strings.TrimSuffix(path.Base(name), ".md")
		r.policies[policy.Slug] = policy
	}

	return r, nil
}

func renderPolicy(md goldmark.Markdown, raw []byte) (*models.Policy, error) {
	var meta struct {
		Title string `yaml:"title"`
	}
	body := raw
	if rest, ok := bytes.CutPrefix(raw, []byte("---\n")); ok {
		header, content, found := bytes.Cut(rest, []byte("\n---\n"))
		if !found {
			return nil, errors.New("unterminated front matter")
		}
		if err := yaml.Unmarshal(header, &meta); err != nil {
			return nil, fmt.Errorf("invalid front matter: %w", err)
		}
		body = content
	}
	if meta.Title == "" {
		return nil, errors.New("missing title")
	}

	var buf bytes.Buffer
	if err := md.Convert(body, &buf); err != nil {
		return nil, err
	}
	return &models.Policy{
		Title: meta.Title,
		// Policy sources are embedded at build time, never user supplied.
		Body: template.HTML(buf.String()),
	}, nil
}

func (r *contentRepo) Reviews() []models.Review {
	return slices.Clone(r.reviews)
}

func (r *contentRepo) Policy(slug string) (*models.Policy, error) {
	p, ok := r.policies[slug]
	if !ok {
		return nil, ErrPolicyNotFound
	}
	return p, nil
}

func (r *contentRepo) PolicySlugs() []string {
	slugs := make([]string, 0, len(r.policies))
	for slug := range r.policies {
		slugs = append(slugs, slug)
	}
	slices.Sort(slugs)
	return slugs
}
