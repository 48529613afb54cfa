package component

const EventCue = "cue"

// CueRequest asks the audio collaborator to play a named sound once.
type CueRequest struct {
	Name string
}
