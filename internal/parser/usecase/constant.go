package usecase

const (
	// MaxTitleLength is the longest title, in runes, handed back to callers.
	MaxTitleLength = 60

	// MaxSubtaskSuggestions caps the number of suggested subtasks.
	MaxSubtaskSuggestions = 5

	errMsgDegraded = "Could not process the text automatically"

	suggestBeMoreSpecific = "Be more specific about what needs to be done"
	suggestAddClearTitle  = "Add a clear title for the task"
	suggestFullDate       = "Specify the full date, for example 2024-05-02 09:00"
	suggestResolvedDate   = "\"%s\" looks like %s; specify the full date and time"
	suggestTitleShortened = "The title was shortened to 60 characters"
	suggestUnknownPrior   = "Priority must be one of P1, P2, P3 or P4"
	suggestTryAgainLater  = "Wait a moment and try again"
)
