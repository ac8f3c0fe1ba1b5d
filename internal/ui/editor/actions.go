package editor

import "github.com/llehouerou/sukinote/internal/notes"

const source = "editor"

// Result reports how the editor closed.
type Result struct {
	Note     notes.Note // normalized and validated; zero when Canceled
	IsNew    bool
	Canceled bool
}

func (Result) ActionType() string { return "editor.result" }
