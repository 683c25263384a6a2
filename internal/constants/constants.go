package constants

// SessionCookieName is the name of the session cookie issued to clients.
const SessionCookieName = "todo_session"

// ContextKeyUserID is the key under which the authenticated user's ID is
// stored both in the session and in the gin context.
const ContextKeyUserID = "user_id"

// ContextKeyUser holds the loaded models.User for the current request.
const ContextKeyUser = "current_user"

// ContextKeyList holds the todo list loaded by the ownership middleware.
const ContextKeyList = "todo_list"

// ContextKeyTask holds the task loaded by the ownership middleware.
const ContextKeyTask = "task"

// SessionMaxAge is the session lifetime in seconds.
const SessionMaxAge = 86400 * 7
