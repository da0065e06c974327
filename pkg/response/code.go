package response

// 业务状态码
const (
	CodeSuccess = 0
	CodeError   = 1

	// 用户模块错误 100xx
	ErrUserNotFound = 10002
	ErrAuthFailed   = 10003
	ErrTokenInvalid = 10004
	ErrNoPermission = 10005

	// 帖子模块错误 200xx
	ErrTopicNotFound     = 20001
	ErrTopicInvalid      = 20002
	ErrCommentFailed     = 20003
	ErrTopicUpdateFailed = 20004
	ErrRefreshRunning    = 20005

	// 系统错误 500xx
	ErrServerInternal  = 50001
	ErrInvalidParam    = 50002
	ErrTooManyRequests = 50003
)
