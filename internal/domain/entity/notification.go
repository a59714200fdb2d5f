package entity

// NotificationTypeDirectMessage tags push payloads produced by chat sends.
const NotificationTypeDirectMessage = "directMessage"

// NotificationPayload is the payload handed to the push dispatcher. Delivery
// is best effort and never part of the message durability contract.
type NotificationPayload struct {
	Title string
	Body  string
	Type  string
}
