package place

type SearchInput struct {
	Text  string `json:"text"`
	Limit int    `json:"limit"`
}

type Suggestion struct {
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type SearchOutput struct {
	Suggestions []Suggestion `json:"suggestions"`
}
