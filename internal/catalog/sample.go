package catalog

import "github.com/Clark-Hu/movie-queries/internal/domain"

// Sample returns a fresh copy of the built-in fixture.
func Sample() *Dataset {
	return &Dataset{
		Movies: []domain.Movie{
			{
				ID:              1,
				Name:            "Back to the Future",
				ReleaseYear:     1985,
				FilmingLocation: domain.Location{Street: "Av. Siempre viva", Number: 2043, Country: "Colombia"},
				DirectorIDs:     []int{1},
				GenreIDs:        []int{1, 2, 6},
			},
			{
				ID:              2,
				Name:            "Matrix",
				ReleaseYear:     1999,
				FilmingLocation: domain.Location{Street: "Av. Roca", Number: 3023, Country: "Argentina"},
				DirectorIDs:     []int{2, 3},
				GenreIDs:        []int{1, 2},
			},
			{
				ID:              3,
				Name:            "Indiana Jones y los cazadores del arca perdida",
				ReleaseYear:     2012,
				FilmingLocation: domain.Location{Street: "Av. Roca", Number: 3023, Country: "Camboya"},
				DirectorIDs:     []int{5, 6},
				GenreIDs:        []int{2, 6},
			},
			{
				ID:              4,
				Name:            "Jurassic Park",
				ReleaseYear:     1993,
				FilmingLocation: domain.Location{Street: "Kualoa Ranch", Number: 49560, Country: "Estados Unidos"},
				DirectorIDs:     []int{5},
				GenreIDs:        []int{1, 6},
			},
		},
		Directors: []domain.Director{
			{ID: 1, Name: "Robert Zemeckis"},
			{ID: 2, Name: "Lana Wachowski"},
			{ID: 3, Name: "Lilly Wachowski"},
			{ID: 4, Name: "Christopher Nolan"},
			{ID: 5, Name: "Steven Spielberg"},
			{ID: 6, Name: "George Lucas"},
		},
		Genres: []domain.Genre{
			{ID: 1, Name: "Ciencia Ficcion"},
			{ID: 2, Name: "Accion"},
			{ID: 3, Name: "Drama"},
			{ID: 4, Name: "Comedia"},
			{ID: 5, Name: "Terror"},
			{ID: 6, Name: "Aventura"},
		},
		Critics: []domain.Critic{
			{ID: 1, Name: "Pepe Perez", Age: 40, CountryID: 2},
			{ID: 2, Name: "Alina Robles", Age: 21, CountryID: 1},
			{ID: 3, Name: "Suzana Mendez", Age: 33, CountryID: 1},
		},
		Countries: []domain.Country{
			{ID: 1, Name: "Argentina"},
			{ID: 2, Name: "Colombia"},
			{ID: 3, Name: "Camboya"},
		},
		Ratings: []domain.Rating{
			{CriticID: 1, MovieID: 1, Score: 9},
			{CriticID: 2, MovieID: 1, Score: 10},
			{CriticID: 1, MovieID: 2, Score: 8},
			{CriticID: 3, MovieID: 2, Score: 6},
			{CriticID: 3, MovieID: 3, Score: 5},
			{CriticID: 2, MovieID: 3, Score: 7},
		},
	}
}
