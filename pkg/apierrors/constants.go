package apierrors

const (
	MsgInvalidAuthPayload = "invalidAuthPayload"
	MsgMissingCredentials = "missingCredentials"
	MsgUsernameTooShort   = "usernameTooShort"
	MsgPasswordTooShort   = "passwordTooShort"
	MsgUsernameTaken      = "usernameTaken"
	MsgInvalidCredentials = "invalidCredentials"
	MsgMissingToken       = "missingToken"
	MsgInvalidToken       = "invalidToken"
	MsgUserNotFound       = "userNotFound"
	MsgFailRegister       = "failRegister"
	MsgFailLogin          = "failLogin"
	MsgFailGetProfile     = "failGetProfile"

	MsgInvalidTaskID      = "invalidTaskID"
	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgMissingTitle       = "missingTitle"
	MsgInvalidDueDate     = "invalidDueDate"
	MsgTaskNotFound       = "taskNotFound"
	MsgFailListTasks      = "failListTasks"
	MsgFailCreateTask     = "failCreateTask"
	MsgFailGetTask        = "failGetTask"
	MsgFailUpdateTask     = "failUpdateTask"
	MsgFailDeleteTask     = "failDeleteTask"
)
