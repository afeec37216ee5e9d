// Package fixtures holds the compiled-in project collection served when no
// database is configured.
package fixtures

import (
	"context"

	"github.com/rpupo63/folioverse-backend/models"
)

var projects = []models.Project{
	{
		ID:          "1",
		Position:    0,
		Title:       "Folioverse Template",
		Description: "A professional and modern portfolio template built with Next.js, Tailwind CSS, and TypeScript.",
		Image:       "/image/image.png",
		Slug:        "folioverse-template",
		Tags: []models.Tag{
			{ID: "t1", ProjectID: "1", Position: 0, Name: "Next.js"},
			{ID: "t2", ProjectID: "1", Position: 1, Name: "Tailwind CSS"},
		},
		Category:  "Web Development",
		GithubURL: "https://github.com/username/folioverse-template",
		LiveURL:   "https://folioverse-demo.vercel.app",
	},
	{
		ID:          "2",
		Position:    1,
		Title:       "E-commerce Dashboard",
		Description: "Admin dashboard to manage orders, products, and sales reports.",
		Image:       "/image/image.png",
		Slug:        "ecommerce-dashboard",
		Tags: []models.Tag{
			{ID: "t3", ProjectID: "2", Position: 0, Name: "React"},
			{ID: "t4", ProjectID: "2", Position: 1, Name: "TypeScript"},
		},
		Category:  "Dashboard",
		GithubURL: "https://github.com/username/ecommerce-dashboard",
		LiveURL:   "https://ecommerce-dashboard-demo.vercel.app",
	},
	{
		ID:          "3",
		Position:    2,
		Title:       "Personal Blog",
		Description: "A simple blog app with Markdown support and comment system.",
		Image:       "/image/image.png",
		Slug:        "personal-blog",
		Tags: []models.Tag{
			{ID: "t5", ProjectID: "3", Position: 0, Name: "Gatsby"},
			{ID: "t6", ProjectID: "3", Position: 1, Name: "GraphQL"},
		},
		Category:  "Content Platform",
		GithubURL: "https://github.com/username/personal-blog",
		LiveURL:   "https://personal-blog-demo.vercel.app",
	},
}

// Projects returns a fresh copy of the fixture collection. Callers may keep
// or modify the result without affecting later calls.
func Projects() []models.Project {
	out := make([]models.Project, len(projects))
	for i, p := range projects {
		out[i] = p.Clone()
	}
	return out
}

// Source serves the fixture collection through the same interface as the
// database repository.
type Source struct{}

func (Source) LoadProjects(ctx context.Context) ([]models.Project, error) {
	return Projects(), nil
}
