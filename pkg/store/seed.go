package store

import "audira/pkg/domain"

// seed loads the fixed demo records the platform ships with.
func (m *Memory) seed() {
	m.faqs = []domain.FAQ{
		{
			ID:       "faq-001",
			Question: "How do I create a playlist?",
			Answer:   "Open the Library section and click the New Playlist button.",
		},
		{
			ID:       "faq-002",
			Question: "How do I follow an artist?",
			Answer:   "Visit the artist profile and click Follow.",
		},
		{
			ID:       "faq-003",
			Question: "How do I download music for offline listening?",
			Answer:   "Select the song or album and enable the Available Offline option.",
		},
	}

	genres := []domain.Genre{
		{ID: "genre-001", Name: "Rock", Description: "Guitar-driven music with a strong beat."},
		{ID: "genre-002", Name: "Pop", Description: "Contemporary popular music."},
		{ID: "genre-003", Name: "Jazz", Description: "Improvisation-centered music."},
		{ID: "genre-004", Name: "Electronic", Description: "Electronically produced music."},
		{ID: "genre-005", Name: "Hip Hop", Description: "Urban music built around rap."},
	}
	for _, g := range genres {
		m.genres[g.ID] = g
	}

	products := []domain.Product{
		{ID: "prod_001", Name: "Merchandise T-Shirt", Description: "High-quality cotton t-shirt", Price: 25.99, InStock: true},
		{ID: "prod_002", Name: "Vinyl Record", Description: "Limited edition vinyl", Price: 39.99, InStock: true},
		{ID: "prod_003", Name: "Concert Ticket", Description: "VIP access ticket", Price: 150.00, InStock: false},
	}
	for _, p := range products {
		m.products[p.ID] = p
	}

	categories := []domain.Category{
		{ID: "cat_apparel", Name: "Apparel"},
		{ID: "cat_music", Name: "Music"},
		{ID: "cat_tickets", Name: "Tickets"},
	}
	for _, c := range categories {
		m.categories[c.ID] = c
	}
}
