package seed

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/bookhaven/storefront/internal/catalog/domain"
)

// CatalogSize is the number of books the seeded catalog contains
const CatalogSize = 100

var curated = []domain.Book{
	{
		ID:          "1",
		Title:       "The Echoes of Time",
		Author:      "Sarah J. Miller",
		Price:       19.99,
		Description: "A journey through the ages as one woman discovers she can rewrite history, but at a terrible cost.",
		Category:    "Science Fiction",
		Rating:      4.5,
	},
	{
		ID:          "2",
		Title:       "Culinary Secrets",
		Author:      "Chef Antonio",
		Price:       34.50,
		Description: "Master the art of Italian cooking with over 100 authentic recipes passed down through generations.",
		Category:    "Cooking",
		Rating:      4.8,
	},
	{
		ID:          "3",
		Title:       "The Silent Forest",
		Author:      "Elena Ruskov",
		Price:       14.99,
		Description: "A gripping thriller about a detective searching for a missing child in a forest that whispers secrets.",
		Category:    "Mystery",
		Rating:      4.2,
	},
	{
		ID:          "4",
		Title:       "Code of the Future",
		Author:      "David Chen",
		Price:       45.00,
		Description: "An in-depth look at how AI and quantum computing are reshaping the landscape of software engineering.",
		Category:    "Technology",
		Rating:      4.9,
	},
	{
		ID:          "5",
		Title:       "Gardens of Babylon",
		Author:      "Historian James",
		Price:       22.95,
		Description: "Unearthing the myths and realities of the ancient world's most mysterious wonder.",
		Category:    "History",
		Rating:      4.3,
	},
	{
		ID:          "6",
		Title:       "Starlight Voyage",
		Author:      "K. R. Tims",
		Price:       18.99,
		Description: "A space opera spanning three galaxies and a war that threatens to extinguish the stars.",
		Category:    "Science Fiction",
		Rating:      4.6,
	},
	{
		ID:          "7",
		Title:       "Mindful Living",
		Author:      "Dr. A. Sharma",
		Price:       15.99,
		Description: "Practical steps to reduce stress and find peace in a chaotic modern world.",
		Category:    "Self Help",
		Rating:      4.7,
	},
	{
		ID:          "8",
		Title:       "The Lost Painter",
		Author:      "Isabella V.",
		Price:       28.00,
		Description: "A historical fiction novel about a forgotten artist in Renaissance Florence.",
		Category:    "Historical Fiction",
		Rating:      4.4,
	},
}

var (
	categories = []string{"Fiction", "Non-Fiction", "Sci-Fi", "Fantasy", "Biography", "History", "Technology"}
	adjectives = []string{"Silent", "Bright", "Dark", "Hidden", "Lost", "Eternal", "Broken", "Golden", "Crimson", "Azure", "Frozen", "Burning"}
	nouns      = []string{"City", "Dream", "Shadow", "Light", "Wind", "Storm", "Sea", "Mountain", "Soul", "Star", "Empire", "Secret"}
	intros     = []string{"A compelling tale of", "The untold story of", "A journey into the heart of", "Discover the secrets of", "An epic saga involving", "A deep dive into"}
	outros     = []string{"that changes everything.", "buried for centuries.", "in a world of uncertainty.", "fighting for survival.", "beyond the realms of imagination.", "waiting to be discovered."}
)

// Books builds the mock catalog: 8 curated titles followed by generated
// filler up to CatalogSize. The generated portion is deterministic for a
// given random seed, so restarts with the same seed produce the same catalog.
func Books(randomSeed int64) []domain.Book {
	books := make([]domain.Book, 0, CatalogSize)
	for _, b := range curated {
		b.CoverURL = domain.CoverURL("book" + b.ID)
		books = append(books, b)
	}

	rng := rand.New(rand.NewSource(randomSeed))
	for i := len(curated) + 1; i <= CatalogSize; i++ {
		adj := adjectives[rng.Intn(len(adjectives))]
		noun := nouns[rng.Intn(len(nouns))]
		intro := intros[rng.Intn(len(intros))]
		outro := outros[rng.Intn(len(outros))]

		id := fmt.Sprintf("%d", i)
		books = append(books, domain.Book{
			ID:     id,
			Title:  fmt.Sprintf("The %s %s", adj, noun),
			Author: fmt.Sprintf("Author %d", i),
			Price:  round2(10 + rng.Float64()*40),
			Description: fmt.Sprintf("%s the %s %s, %s This book explores the themes of %ss and %s moments in a way you've never seen before.",
				intro, strings.ToLower(adj), strings.ToLower(noun), outro, strings.ToLower(noun), strings.ToLower(adj)),
			CoverURL: domain.CoverURL("book" + id),
			Category: categories[rng.Intn(len(categories))],
			Rating:   round1(3 + rng.Float64()*2),
		})
	}
	return books
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}

func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
