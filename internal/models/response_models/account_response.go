package response_models

type AccountResponse struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	Photo       string `json:"photo,omitempty"`
	HasGoogle   bool   `json:"hasGoogle"`
	HasPassword bool   `json:"hasPassword"`
	CreatedAt   int64  `json:"createdAt"`
}

type CurrentUserResponse struct {
	User *AccountResponse `json:"user"`
}
