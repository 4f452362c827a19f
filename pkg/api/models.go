package api

type Message struct {
	Id      int
	Message *string
}

// SubmitRequest is the form posted by the board page. NewMessage is nil when
// the field is absent from the body.
type SubmitRequest struct {
	NewMessage *string `schema:"new_message"`
}

// SubmitResponse echoes the submitted value unchanged. A missing field
// serializes as null.
type SubmitResponse struct {
	Message *string `json:"message"`
}
