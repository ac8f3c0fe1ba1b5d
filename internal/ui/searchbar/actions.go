package searchbar

const source = "searchbar"

// Result reports how typing ended. A canceled search has no query left.
type Result struct {
	Query    string
	Canceled bool
}

func (Result) ActionType() string { return "searchbar.result" }
