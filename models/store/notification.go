package storemodels

type Notification struct {
	BaseModel
	UserID  string `json:"user_id"`
	Message string `json:"message"`
	Read    bool   `json:"read"`
}
