package employees

type Employee struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Position   string `json:"position"`
	Department string `json:"department"`
	StartDate  string `json:"startDate"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	Notes      string `json:"notes"`
}

// Input carries employee fields as entered by the user; StartDate is in
// display form and converted at the service boundary.
type Input struct {
	Name       string `json:"name"`
	Position   string `json:"position"`
	Department string `json:"department"`
	StartDate  string `json:"startDate"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	Notes      string `json:"notes"`
}

type IDName struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
