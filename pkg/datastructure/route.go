package datastructure

// SPSingleResultResult hasil satu pasang source-dest dari many-to-many query.
type SPSingleResultResult struct {
	Source string   `json:"source"`
	Dest   string   `json:"dest"`
	Paths  []string `json:"path"`
	Dist   float64  `json:"distance"`
	Found  bool     `json:"found"`
}
