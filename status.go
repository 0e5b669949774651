package engine

// DocumentStatus tags the lifecycle state of an admitted document.
type DocumentStatus int

const (
	StatusActual DocumentStatus = iota
	StatusIrrelevant
	StatusBanned
	StatusRemoved
)

func (s DocumentStatus) String() string {
	switch s {
	case StatusActual:
		return "ACTUAL"
	case StatusIrrelevant:
		return "IRRELEVANT"
	case StatusBanned:
		return "BANNED"
	case StatusRemoved:
		return "REMOVED"
	default:
		return "UNKNOWN"
	}
}

// DocumentData is the metadata retained for every admitted id: its
// computed rating and its status tag.
type DocumentData struct {
	Rating int
	Status DocumentStatus
}
