package model

// UserInfoRecord maps an Account Manager's email to the payer accounts they
// may query. Re-uploading a row for an email replaces the whole set.
type UserInfoRecord struct {
	Email           string   `json:"email" dynamo:"email"`
	PayerAccountIDs []string `json:"payer_account_ids" dynamo:"payer_account_ids,set"`
}
