package dto

// RegisterDeviceRequest is the JSON body for POST /devices. The token is the
// Expo push token the client obtains on install.
type RegisterDeviceRequest struct {
	PushToken string `json:"push_token" binding:"required,max=200"`
	Platform  string `json:"platform" binding:"omitempty,oneof=ios android"`
}

// RemoveDeviceRequest is the JSON body for DELETE /devices.
type RemoveDeviceRequest struct {
	PushToken string `json:"push_token" binding:"required,max=200"`
}
