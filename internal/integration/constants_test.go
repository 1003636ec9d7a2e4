package integration_test

const (
	dbName         = "movie_ticket_booking"
	dbUser         = "test_user"
	dbPassword     = "test_password"
	dbImageName    = "postgres:17-alpine"
	cacheImageName = "redis:7"
)

// Fixture ids loaded by testdata/catalog_up.sql. Hall 1 holds seats 1-4 and
// hall 2 holds seats 5-6. Shows 1-3 belong to TestMovieId, show 4 to
// TestOtherMovieId.
const (
	TestMovieId      = 1
	TestOtherMovieId = 2
	TestShowId       = 1
)
