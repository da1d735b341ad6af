package core

type ErrorNotFound struct {
}

func (e ErrorNotFound) Error() string {
	return "Not Found"
}

func NewErrorNotFound() ErrorNotFound {
	return ErrorNotFound{}
}

type ErrorAlreadyExists struct {
}

func (e ErrorAlreadyExists) Error() string {
	return "Already Exists"
}

func NewErrorAlreadyExists() ErrorAlreadyExists {
	return ErrorAlreadyExists{}
}

type ErrorInvalidCredentials struct {
}

func (e ErrorInvalidCredentials) Error() string {
	return "Invalid Credentials"
}

func NewErrorInvalidCredentials() ErrorInvalidCredentials {
	return ErrorInvalidCredentials{}
}

type ErrorPermissionDenied struct {
}

func (e ErrorPermissionDenied) Error() string {
	return "Permission Denied"
}

func NewErrorPermissionDenied() ErrorPermissionDenied {
	return ErrorPermissionDenied{}
}

// ErrorUpstream carries the message reported by the external model API
type ErrorUpstream struct {
	Message string
}

func (e ErrorUpstream) Error() string {
	return "Upstream Error: " + e.Message
}

func NewErrorUpstream(message string) ErrorUpstream {
	return ErrorUpstream{Message: message}
}
