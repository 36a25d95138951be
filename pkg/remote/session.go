package remote

// sessionState tracks the progress of a transfer session. Transitions are
// strictly ordered: IDLE → CONNECTED → NEGOTIATING → DOWNLOADING →
// TIPS_UPDATED → DISCONNECTED, with DISCONNECTED reached on every exit path
// once a connection was established.
type sessionState int

const (
	stateIdle sessionState = iota
	stateConnected
	stateNegotiating
	stateDownloading
	stateTipsUpdated
	stateDisconnected
)

// String returns the state's name for logging.
func (s sessionState) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateConnected:
		return "connected"
	case stateNegotiating:
		return "negotiating"
	case stateDownloading:
		return "downloading"
	case stateTipsUpdated:
		return "tips-updated"
	case stateDisconnected:
		return "disconnected"
	default:
		return "unknown"
	}
}
