package devserver

// DefaultBreeds is the breed catalogue accepted when breed checking is on.
var DefaultBreeds = []string{
	"Abyssinian", "American Shorthair", "Bengal", "Birman", "Bombay",
	"British Shorthair", "Burmese", "Devon Rex", "Maine Coon", "Norwegian Forest Cat",
	"Persian", "Ragdoll", "Russian Blue", "Scottish Fold", "Siamese", "Sphynx",
}

// Seed fills s with a few sample agents.
func Seed(s *Store) {
	for _, c := range []Cat{
		{Name: "Whiskers", YearsOfExperience: 5, Breed: "Siamese", Salary: 5000},
		{Name: "Shadow", YearsOfExperience: 8, Breed: "Bombay", Salary: 7250.5},
		{Name: "Mittens", YearsOfExperience: 1, Breed: "Persian", Salary: 1200},
	} {
		s.Create(c)
	}
}
