package models

// CareerActionRequest selects one career operation for a character.
// CareerID is only consulted for the apply action.
type CareerActionRequest struct {
	Action   string `json:"action" binding:"required,oneof=work work_hard promotion quit apply"`
	CareerID uint   `json:"career_id"`
}

// CareerActionResponse pairs the refreshed character with the outcome of
// the promotion roll. Promoted is only set for the promotion action.
type CareerActionResponse struct {
	Character *Character `json:"character"`
	Promoted  *bool      `json:"promoted,omitempty"`
}

// ActivityRequest is the generic spend-money-apply-deltas path. The
// client supplies the activity's literal cost and effect table.
type ActivityRequest struct {
	Name    string  `json:"name" binding:"required"`
	Cost    int     `json:"cost" binding:"min=0"`
	Effects StatMap `json:"effects"`
}
