package model

type Attendee struct {
	No      int    `json:"attendee_no"` // required
	EventNo int    `json:"event_no"`    // back-reference to Event.No
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}
