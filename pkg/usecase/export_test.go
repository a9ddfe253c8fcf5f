package usecase

var (
	RefName     = refName
	DisplayName = displayName
	FirstLine   = firstLine
	CommitTime  = commitTime
)
