package model

// UploadKind selects which ingestion pipeline a manually uploaded file
// feeds: the raw billing bucket or the user-access bucket.
type UploadKind string

const (
	UploadBilling  = UploadKind("billing")
	UploadUserInfo = UploadKind("user-info")
)
