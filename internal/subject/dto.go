package subject

type SubjectRequest struct {
	Name string `json:"name"`
}
