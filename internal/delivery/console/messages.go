package console

const (
	promptCommand = "What would you like to do? "
	promptAnswer  = "What amount should replace the questionmarks? $"

	msgInvalidCommand = "\"%s\" is not a valid command."
)
