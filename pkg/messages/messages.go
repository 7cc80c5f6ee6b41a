package messages

const (
	BadStatusCodeMsg    = "API returned status code %d on URL %s"
	FailedToParseMsg    = "failed to parse API response"
	UnexpectedShapeMsg  = "expected a json object or array, got %T"
	FailedToFetchMsg    = "Failed to fetch %s (%s): %v"
	NoChampionIdsMsg    = "no champion IDs found for %s"
	AlreadyProcessedMsg = "[Skipping] %s (already processed)"
)
