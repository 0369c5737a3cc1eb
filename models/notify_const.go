package models

// NotifyCode tags a notification event for websocket consumers.
type NotifyCode string

const (
	NotifyCodeNewRequest    NotifyCode = "NEW_LEAVE_REQUEST"
	NotifyCodeStatusChanged NotifyCode = "REQUEST_STATUS_CHANGED"
	NotifyCodeForwarded     NotifyCode = "REQUEST_FORWARDED"
)
