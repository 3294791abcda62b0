package websocket

// ChatRoomName derives the canonical room identifier for two participants.
// The identifiers are ordered lexicographically so both sides compute the
// same name regardless of argument order.
func ChatRoomName(userID1, userID2 string) string {
	if userID2 < userID1 {
		userID1, userID2 = userID2, userID1
	}
	return "chat:" + userID1 + ":" + userID2
}

// UserChannel is the per-user broadcast target for direct server pushes,
// independent of any chat room membership.
func UserChannel(userID string) string {
	return "user:" + userID
}

// RoleChannel groups every connection sharing a role.
func RoleChannel(role string) string {
	return "role:" + role
}
