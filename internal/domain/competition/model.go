package competition

// Competition is a league or cup for one season.
type Competition struct {
	ID       string
	Name     string
	Season   string
	Category string
}
