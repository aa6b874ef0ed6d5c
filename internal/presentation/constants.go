package presentation

const (
	ReasonTag     = "X-Reason"
	IDParam       = "id"
	FilenameParam = "filename"
	// UserKey is where the JWT middleware stores the parsed token claims.
	UserKey  = "user"
	ActorKey = "actor"
)
