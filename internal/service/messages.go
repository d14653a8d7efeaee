package service

const (
	msgCorrect       = "Correct!"
	msgIncorrect     = "" // TODO: report the expected and given amounts once the product wording is agreed.
	msgInvalidAnswer = "The provided answer is not a valid number!"

	msgAdded         = "%s added successfully."
	msgDuplicate     = "Duplicate!"
	msgEmptyName     = "Item name string cannot be empty."
	msgAddUsage      = "Cannot add \"%s\".\nUsage: add <item_name>: <item_price>"
	msgNotANumber    = "could not convert string to float: '%s'"
	msgInvalidPrice  = "The price argument (\"%s\") does not appear to be any of the following: float, an integer, or a string that can be parsed to a non-negative float"
	msgPriceTooLarge = "The price argument (\"%s\") is too large. Prices cannot exceed %s."
	msgRemoved       = "%s removed successfully."
	msgNotPresent    = "Item named \"%s\" is not present in the item pool."
	msgListCreated   = "Shopping list with %d items has been created."
	msgEmptyList     = "The shopping list is empty. Use \"list\" to create one."
	msgEmptyPool     = "Cannot create a shopping list from an empty item pool."
	msgTotalTooLarge = "Cannot create a shopping list: the total price is too large."
	msgShowUsage     = "Cannot show %s.\nUsage: show list|items"
	msgGoodbye       = "Have a nice day!"
)
