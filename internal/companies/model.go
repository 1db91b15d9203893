package companies

import "time"

// Company is an employer posting jobs on the board.
type Company struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	LogoURL      string    `json:"logoUrl"`
	PrimaryColor string    `json:"primaryColor"`
	CreatedAt    time.Time `json:"createdAt"`
}
