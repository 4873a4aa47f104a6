package domain

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// RoleTable maps the upstream's numeric role identifiers to role names. The
// upstream enumeration is configuration, not a constant: it is injected at
// startup so new roles can be added without a code change.
type RoleTable map[int]string

// Name resolves a role id, falling back to the regular-user role for ids the
// table does not know (mirrors the product's behaviour for undecodable or
// unknown claims).
func (t RoleTable) Name(roleID int) string {
	if name, ok := t[roleID]; ok {
		return name
	}
	return RoleUser
}

// DefaultView is the landing route for a role after login.
func DefaultView(role string) string {
	if role == RoleAdmin {
		return "/admin"
	}
	return "/shipments/new"
}

// Session is the portal's persisted client state: the upstream bearer token
// plus the minimal user display fields. It is populated on login, read on
// every authenticated request, and cleared atomically on logout or session
// expiry.
type Session struct {
	Token  string `json:"token" redis:"token"`
	Role   string `json:"role" redis:"role"`
	UserID int    `json:"user_id" redis:"user_id"`
	Email  string `json:"email" redis:"email"`
}
