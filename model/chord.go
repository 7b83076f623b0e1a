package model

// Voicing is a chord as submitted over the wire, each voice as a note name
// such as "Eb4". An empty Root asks for the root to be inferred.
type Voicing struct {
	Root    string `json:"root"`
	Soprano string `json:"soprano"`
	Alto    string `json:"alto"`
	Tenor   string `json:"tenor"`
	Bass    string `json:"bass"`
}

type ChordLabel struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Roman string `json:"roman,omitempty"`
}
