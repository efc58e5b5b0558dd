package consts

const (
	ApplicationName    = "Blog Server"
	ApplicationVersion = "1.0.0"
	SessionIssuer      = "blog-server"
)

// RoleAdmin 唯一具备内容管理权限的角色
const RoleAdmin = "admin"

// gin.Context 中保存的键
const (
	ContextUserKey    = "user"
	ContextSessionKey = "session"
)

const (
	LoginPath = "/login"
	PostsPath = "/posts"
)
