package presentation

const (
	AuthKey      = "Authorization"
	BearerPrefix = "Bearer "
	TypeKey      = "Content-Type"
	RetryAfter   = "Retry-After"

	UserKey = "user"

	IDParam        = "id"
	CommentIDParam = "commentId"
	EmailParam     = "email"

	ImageField   = "image"
	SidebarField = "sidebar_image"
	PayloadField = "payload"
)
