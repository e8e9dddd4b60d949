package team

import "fmt"

// Team is a club taking part in federation competitions.
type Team struct {
	ID        string
	Name      string
	ShortName string
	City      string
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
