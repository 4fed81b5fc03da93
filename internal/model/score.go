package model

// PlayerScore is the running tally for one player in an autoplay match
type PlayerScore struct {
	Player     string `json:"player"`
	Strategy   string `json:"strategy"`
	TotalScore int    `json:"total_score"`
	Moves      int    `json:"moves"`
	Rejected   int    `json:"rejected"`
}
