package venue

type Venue struct {
	ID       string
	Name     string
	City     string
	Address  string
	Capacity int
}
