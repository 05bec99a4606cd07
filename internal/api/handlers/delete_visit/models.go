package delete_visit

// DeleteVisitResponse подтверждение удаления
type DeleteVisitResponse struct {
	ID      int64 `json:"id"`
	Deleted bool  `json:"deleted"`
}
