package seeder

const (
	DemoEmployerEmail = "employer@demo.local"
	DemoYouthEmail    = "youth@demo.local"
	DemoPassword      = "Password123"
)

func Defaults() []Seeder {
	return []Seeder{
		UsersSeeder{},
		JobsSeeder{},
	}
}
