package domain

// Store keys follow the scheme resource:<userId>[:<entityId>]. The owning
// user's id sits in every key, so prefix enumeration under one user can never
// leak another user's records.

func UserKey(userID string) string {
	return "user:" + userID
}

func CattleKey(userID, cattleID string) string {
	return CattlePrefix(userID) + cattleID
}

func CattlePrefix(userID string) string {
	return "cattle:" + userID + ":"
}

func ScanKey(userID, scanID string) string {
	return ScanPrefix(userID) + scanID
}

func ScanPrefix(userID string) string {
	return "scan:" + userID + ":"
}

func AlertKey(userID, alertID string) string {
	return AlertPrefix(userID) + alertID
}

func AlertPrefix(userID string) string {
	return "alert:" + userID + ":"
}
