package registry

// DefaultActivities returns the fixed Mergington High catalog. The registry
// is seeded from this once at process start; activity names are immutable
// after that.
func DefaultActivities() map[string]*Activity {
	return map[string]*Activity{
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		"Programming Class": {
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		"Gym Class": {
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		"Soccer Team": {
			Description:     "Competitive soccer practices and matches",
			Schedule:        "Monday, Wednesday, Friday, 4:00 PM - 6:00 PM",
			MaxParticipants: 22,
			Participants:    []string{"liam@mergington.edu", "noah@mergington.edu"},
		},
		"Basketball Club": {
			Description:     "Pickup games, drills, and intramural tournaments",
			Schedule:        "Tuesdays and Thursdays, 5:00 PM - 7:00 PM",
			MaxParticipants: 18,
			Participants:    []string{"ava@mergington.edu", "isabella@mergington.edu"},
		},
		"Art Club": {
			Description:     "Explore visual arts: painting, drawing, and mixed media",
			Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 16,
			Participants:    []string{"mia@mergington.edu", "charlotte@mergington.edu"},
		},
		"Drama Club": {
			Description:     "Acting workshops, rehearsals, and school productions",
			Schedule:        "Thursdays, 4:00 PM - 6:30 PM",
			MaxParticipants: 25,
			Participants:    []string{"harper@mergington.edu", "amelia@mergington.edu"},
		},
		"Debate Team": {
			Description:     "Develop public speaking, research, and argumentation skills",
			Schedule:        "Mondays and Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 14,
			Participants:    []string{"elijah@mergington.edu", "lucas@mergington.edu"},
		},
		"Science Club": {
			Description:     "Hands-on experiments, STEM projects, and competitions",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 20,
			Participants:    []string{"sophia.s@mergington.edu", "ethan@mergington.edu"},
		},
	}
}
